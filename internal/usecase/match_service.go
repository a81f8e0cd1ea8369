package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/futliga/liga-api/internal/domain/match"
	"github.com/futliga/liga-api/internal/domain/player"
	"github.com/futliga/liga-api/internal/domain/suspension"
	"github.com/futliga/liga-api/internal/domain/team"
	"github.com/futliga/liga-api/internal/platform/id"
	"github.com/futliga/liga-api/internal/platform/watch"
)

const defaultSuspensionGames = 1

type MatchService struct {
	matchRepo      match.Repository
	teamRepo       team.Repository
	playerRepo     player.Repository
	suspensionRepo suspension.Repository
	idGen          id.Generator
	hub            *watch.Hub
	forfeitGoals   int
	now            func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	suspensionRepo suspension.Repository,
	idGen id.Generator,
	hub *watch.Hub,
	forfeitGoals int,
) *MatchService {
	if forfeitGoals < 1 {
		forfeitGoals = 2
	}

	return &MatchService{
		matchRepo:      matchRepo,
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		suspensionRepo: suspensionRepo,
		idGen:          idGen,
		hub:            hub,
		forfeitGoals:   forfeitGoals,
		now:            time.Now,
	}
}

type ScheduleMatchInput struct {
	Division   string
	Round      int
	KickoffAt  time.Time
	Field      string
	HomeTeamID string
	AwayTeamID string
}

func (s *MatchService) ScheduleMatch(ctx context.Context, input ScheduleMatchInput) (match.Match, error) {
	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	item := match.Match{
		ID:         matchID,
		Division:   strings.TrimSpace(input.Division),
		Round:      input.Round,
		KickoffAt:  input.KickoffAt,
		Field:      strings.TrimSpace(input.Field),
		HomeTeamID: strings.TrimSpace(input.HomeTeamID),
		AwayTeamID: strings.TrimSpace(input.AwayTeamID),
		Status:     match.StatusScheduled,
		CreatedAt:  s.now(),
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for _, teamID := range []string{item.HomeTeamID, item.AwayTeamID} {
		t, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return match.Match{}, fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return match.Match{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		if t.Division != item.Division {
			return match.Match{}, fmt.Errorf("%w: team %s does not play in division %s", ErrInvalidInput, teamID, item.Division)
		}
	}

	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	s.publish(watch.ActionCreated, item)

	return item, nil
}

func (s *MatchService) ListMatches(ctx context.Context, division string, filter match.Filter) ([]match.Match, error) {
	division = strings.TrimSpace(division)
	if !team.ValidDivision(division) {
		return nil, fmt.Errorf("%w: unknown division %q", ErrInvalidInput, division)
	}

	items, err := s.matchRepo.ListByDivision(ctx, division, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return items, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	item, exists, err := s.matchRepo.GetByID(ctx, strings.TrimSpace(matchID))
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return item, nil
}

func (s *MatchService) DeleteMatch(ctx context.Context, matchID string) error {
	item, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}

	if err := s.matchRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	s.publish(watch.ActionDeleted, item)

	return nil
}

type FinalizeMatchInput struct {
	MatchID      string
	HomeScore    *int
	AwayScore    *int
	Forfeit      string
	ForfeitGoals *int
	Cards        map[string]match.CardEntry
	Goals        map[string]int
}

// FinalizeMatch closes a match with its result, cards and scorers, and
// creates one suspension per sent-off player. The match write and the
// suspension writes share a single transactional boundary; players that
// already carry an active suspension are skipped inside it.
func (s *MatchService) FinalizeMatch(ctx context.Context, input FinalizeMatchInput) (match.Match, error) {
	item, err := s.GetMatch(ctx, input.MatchID)
	if err != nil {
		return match.Match{}, err
	}
	if item.IsFinished() {
		return match.Match{}, fmt.Errorf("%w: match %s is already finished", ErrInvalidInput, item.ID)
	}

	homeScore, awayScore, forfeitTeamID, err := s.resolveScores(item, input)
	if err != nil {
		return match.Match{}, err
	}

	yellows, redReasons, err := buildCardMaps(input.Cards)
	if err != nil {
		return match.Match{}, err
	}

	goals := make(map[string]int, len(input.Goals))
	for playerID, count := range input.Goals {
		if count < 0 {
			return match.Match{}, fmt.Errorf("%w: negative goal count for player %s", ErrInvalidInput, playerID)
		}
		if count > 0 {
			goals[playerID] = count
		}
	}

	item.Status = match.StatusFinished
	item.HomeScore = &homeScore
	item.AwayScore = &awayScore
	item.ForfeitTeamID = forfeitTeamID
	item.YellowCards = yellows
	item.RedCards = redReasons
	item.Goals = goals

	suspensions, err := s.buildSuspensions(ctx, item, redReasons)
	if err != nil {
		return match.Match{}, err
	}

	if err := s.matchRepo.Finalize(ctx, item, suspensions); err != nil {
		return match.Match{}, fmt.Errorf("finalize match: %w", err)
	}

	s.publish(watch.ActionFinalized, item)
	if len(suspensions) > 0 && s.hub != nil {
		for _, sus := range suspensions {
			s.hub.Publish(watch.Event{
				Topic:    watch.Topic("suspensions", sus.Division),
				Action:   watch.ActionCreated,
				EntityID: sus.ID,
			})
		}
	}

	return item, nil
}

func (s *MatchService) resolveScores(item match.Match, input FinalizeMatchInput) (home, away int, forfeitTeamID string, err error) {
	switch input.Forfeit {
	case match.ForfeitNone:
		if input.HomeScore == nil || input.AwayScore == nil {
			return 0, 0, "", fmt.Errorf("%w: both scores are required", ErrInvalidInput)
		}
		if *input.HomeScore < 0 || *input.AwayScore < 0 {
			return 0, 0, "", fmt.Errorf("%w: scores cannot be negative", ErrInvalidInput)
		}
		return *input.HomeScore, *input.AwayScore, "", nil

	case match.ForfeitHome, match.ForfeitAway:
		awarded := s.forfeitGoals
		if input.ForfeitGoals != nil {
			if *input.ForfeitGoals < 1 {
				return 0, 0, "", fmt.Errorf("%w: forfeit goal value must be positive", ErrInvalidInput)
			}
			awarded = *input.ForfeitGoals
		}
		if input.Forfeit == match.ForfeitHome {
			return 0, awarded, item.HomeTeamID, nil
		}
		return awarded, 0, item.AwayTeamID, nil

	default:
		return 0, 0, "", fmt.Errorf("%w: unknown forfeit side %q", ErrInvalidInput, input.Forfeit)
	}
}

func buildCardMaps(cards map[string]match.CardEntry) (yellows map[string]int, redReasons map[string]string, err error) {
	yellows = make(map[string]int)
	redReasons = make(map[string]string)

	for playerID, entry := range cards {
		if playerID == "" {
			return nil, nil, fmt.Errorf("%w: card entry without player id", ErrInvalidInput)
		}
		if err := entry.Validate(); err != nil {
			return nil, nil, fmt.Errorf("%w: player %s: %v", ErrInvalidInput, playerID, err)
		}

		if entry.Yellows > 0 {
			yellows[playerID] = entry.Yellows
		}
		if reason, sentOff := entry.RedCardReason(); sentOff {
			redReasons[playerID] = reason
		}
	}

	return yellows, redReasons, nil
}

func (s *MatchService) buildSuspensions(ctx context.Context, item match.Match, redReasons map[string]string) ([]suspension.Suspension, error) {
	if len(redReasons) == 0 {
		return nil, nil
	}

	out := make([]suspension.Suspension, 0, len(redReasons))
	for playerID, reason := range redReasons {
		p, exists, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return nil, fmt.Errorf("get sent-off player: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}

		// A player carries at most one active suspension; the transactional
		// write re-checks this, the lookup here just avoids building one we
		// already know will be skipped.
		_, active, err := s.suspensionRepo.ActiveByPlayer(ctx, playerID)
		if err != nil {
			return nil, fmt.Errorf("check active suspension: %w", err)
		}
		if active {
			continue
		}

		suspensionID, err := s.idGen.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate suspension id: %w", err)
		}

		out = append(out, suspension.New(
			suspensionID,
			p.ID,
			p.Name,
			p.TeamID,
			item.Division,
			item.ID,
			reason,
			item.Round,
			defaultSuspensionGames,
			s.now(),
		))
	}

	return out, nil
}

func (s *MatchService) publish(action string, item match.Match) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(watch.Event{
		Topic:    watch.Topic("matches", item.Division),
		Action:   action,
		EntityID: item.ID,
	})
}
