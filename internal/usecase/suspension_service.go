package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/futliga/liga-api/internal/domain/suspension"
	"github.com/futliga/liga-api/internal/domain/team"
	"github.com/futliga/liga-api/internal/platform/watch"
)

// SuspensionService manages the lifecycle of suspensions created during
// match finalization. It never creates suspensions itself.
type SuspensionService struct {
	suspensionRepo suspension.Repository
	hub            *watch.Hub
}

func NewSuspensionService(suspensionRepo suspension.Repository, hub *watch.Hub) *SuspensionService {
	return &SuspensionService{
		suspensionRepo: suspensionRepo,
		hub:            hub,
	}
}

func (s *SuspensionService) ListSuspensions(ctx context.Context, division string, onlyActive bool) ([]suspension.Suspension, error) {
	division = strings.TrimSpace(division)
	if !team.ValidDivision(division) {
		return nil, fmt.Errorf("%w: unknown division %q", ErrInvalidInput, division)
	}

	items, err := s.suspensionRepo.ListByDivision(ctx, division, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list suspensions: %w", err)
	}

	return items, nil
}

func (s *SuspensionService) GetSuspension(ctx context.Context, suspensionID string) (suspension.Suspension, error) {
	item, exists, err := s.suspensionRepo.GetByID(ctx, strings.TrimSpace(suspensionID))
	if err != nil {
		return suspension.Suspension{}, fmt.Errorf("get suspension: %w", err)
	}
	if !exists {
		return suspension.Suspension{}, fmt.Errorf("%w: suspension=%s", ErrNotFound, suspensionID)
	}

	return item, nil
}

// SetGames adjusts the sanction length after a disciplinary review. Missed
// rounds and the return round are recomputed from the offense round; the
// status is untouched.
func (s *SuspensionService) SetGames(ctx context.Context, suspensionID string, games int) (suspension.Suspension, error) {
	item, err := s.GetSuspension(ctx, suspensionID)
	if err != nil {
		return suspension.Suspension{}, err
	}

	if err := item.Reschedule(games); err != nil {
		return suspension.Suspension{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.suspensionRepo.Update(ctx, item); err != nil {
		return suspension.Suspension{}, fmt.Errorf("update suspension: %w", err)
	}

	s.publish(watch.ActionUpdated, item)

	return item, nil
}

// MarkServed closes the suspension, freeing the player for new sanctions.
// Marking an already served suspension is a no-op.
func (s *SuspensionService) MarkServed(ctx context.Context, suspensionID string) (suspension.Suspension, error) {
	item, err := s.GetSuspension(ctx, suspensionID)
	if err != nil {
		return suspension.Suspension{}, err
	}
	if !item.IsActive() {
		return item, nil
	}

	item.MarkServed()
	if err := s.suspensionRepo.Update(ctx, item); err != nil {
		return suspension.Suspension{}, fmt.Errorf("update suspension: %w", err)
	}

	s.publish(watch.ActionUpdated, item)

	return item, nil
}

func (s *SuspensionService) publish(action string, item suspension.Suspension) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(watch.Event{
		Topic:    watch.Topic("suspensions", item.Division),
		Action:   action,
		EntityID: item.ID,
	})
}
