package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/futliga/liga-api/internal/domain/team"
	"github.com/futliga/liga-api/internal/platform/id"
	"github.com/futliga/liga-api/internal/platform/watch"
)

type TeamService struct {
	teamRepo team.Repository
	idGen    id.Generator
	hub      *watch.Hub
	now      func() time.Time
}

func NewTeamService(teamRepo team.Repository, idGen id.Generator, hub *watch.Hub) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		idGen:    idGen,
		hub:      hub,
		now:      time.Now,
	}
}

type CreateTeamInput struct {
	Division      string
	Name          string
	Baseline      *team.Baseline
	PenaltyPoints int
}

func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	item := team.Team{
		ID:            teamID,
		Division:      strings.TrimSpace(input.Division),
		Name:          strings.TrimSpace(input.Name),
		Baseline:      input.Baseline,
		PenaltyPoints: input.PenaltyPoints,
		CreatedAt:     s.now(),
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	s.publish(watch.ActionCreated, item)

	return item, nil
}

func (s *TeamService) ListTeamsByDivision(ctx context.Context, division string) ([]team.Team, error) {
	division = strings.TrimSpace(division)
	if !team.ValidDivision(division) {
		return nil, fmt.Errorf("%w: unknown division %q", ErrInvalidInput, division)
	}

	items, err := s.teamRepo.ListByDivision(ctx, division)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	item, exists, err := s.teamRepo.GetByID(ctx, strings.TrimSpace(teamID))
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) RenameTeam(ctx context.Context, teamID, name string) (team.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	item, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	item.Name = name
	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("rename team: %w", err)
	}

	s.publish(watch.ActionUpdated, item)

	return item, nil
}

// SetBaseline replaces the team's pre-tracking history snapshot; nil clears it.
func (s *TeamService) SetBaseline(ctx context.Context, teamID string, baseline *team.Baseline) (team.Team, error) {
	if baseline != nil {
		if err := baseline.Validate(); err != nil {
			return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	item, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	item.Baseline = baseline
	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("set team baseline: %w", err)
	}

	s.publish(watch.ActionUpdated, item)

	return item, nil
}

func (s *TeamService) SetPenaltyPoints(ctx context.Context, teamID string, points int) (team.Team, error) {
	if points < 0 {
		return team.Team{}, fmt.Errorf("%w: penalty points cannot be negative", ErrInvalidInput)
	}

	item, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	item.PenaltyPoints = points
	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("set team penalty: %w", err)
	}

	s.publish(watch.ActionUpdated, item)

	return item, nil
}

// DeleteTeam removes the team record. Dependent matches and players are left
// in place; cleaning them up is an operator convention, not a cascade.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID string) error {
	item, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}

	if err := s.teamRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	s.publish(watch.ActionDeleted, item)

	return nil
}

func (s *TeamService) publish(action string, item team.Team) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(watch.Event{
		Topic:    watch.Topic("teams", item.Division),
		Action:   action,
		EntityID: item.ID,
	})
}
