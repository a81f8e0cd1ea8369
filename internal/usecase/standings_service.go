package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/futliga/liga-api/internal/domain/match"
	"github.com/futliga/liga-api/internal/domain/standings"
	"github.com/futliga/liga-api/internal/domain/team"
)

type StandingsService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
}

func NewStandingsService(teamRepo team.Repository, matchRepo match.Repository) *StandingsService {
	return &StandingsService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
	}
}

// Standings recomputes the division table from stored teams and finished
// matches. Nothing is persisted; the table is always derived on read.
func (s *StandingsService) Standings(ctx context.Context, division string) ([]standings.Row, error) {
	division = strings.TrimSpace(division)
	if !team.ValidDivision(division) {
		return nil, fmt.Errorf("%w: unknown division %q", ErrInvalidInput, division)
	}

	var (
		teams   []team.Team
		matches []match.Match
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.teamRepo.ListByDivision(ctx, division)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		teams = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.ListByDivision(ctx, division, match.Filter{Status: match.StatusFinished})
		if err != nil {
			return fmt.Errorf("list finished matches: %w", err)
		}
		matches = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return standings.Compute(teams, matches), nil
}
