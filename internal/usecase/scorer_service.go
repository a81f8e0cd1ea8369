package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/futliga/liga-api/internal/domain/match"
	"github.com/futliga/liga-api/internal/domain/player"
	"github.com/futliga/liga-api/internal/domain/scorer"
	"github.com/futliga/liga-api/internal/domain/team"
)

type ScorerService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
}

func NewScorerService(matchRepo match.Repository, playerRepo player.Repository) *ScorerService {
	return &ScorerService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
	}
}

// TopScorers derives the division scorer ranking from finished matches.
func (s *ScorerService) TopScorers(ctx context.Context, division string) ([]scorer.Entry, error) {
	division = strings.TrimSpace(division)
	if !team.ValidDivision(division) {
		return nil, fmt.Errorf("%w: unknown division %q", ErrInvalidInput, division)
	}

	var (
		matches []match.Match
		players []player.Player
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.ListByDivision(ctx, division, match.Filter{Status: match.StatusFinished})
		if err != nil {
			return fmt.Errorf("list finished matches: %w", err)
		}
		matches = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.playerRepo.ListByDivision(ctx, division)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		players = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return scorer.Rank(matches, players), nil
}
