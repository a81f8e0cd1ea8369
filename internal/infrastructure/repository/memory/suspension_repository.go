package memory

import (
	"context"
	"sync"

	"github.com/futliga/liga-api/internal/domain/suspension"
)

type SuspensionRepository struct {
	mu     sync.RWMutex
	items  map[string]suspension.Suspension
	orders []string
}

func NewSuspensionRepository(suspensions []suspension.Suspension) *SuspensionRepository {
	items := make(map[string]suspension.Suspension, len(suspensions))
	orders := make([]string, 0, len(suspensions))

	for _, s := range suspensions {
		items[s.ID] = cloneSuspension(s)
		orders = append(orders, s.ID)
	}

	return &SuspensionRepository{
		items:  items,
		orders: orders,
	}
}

func (r *SuspensionRepository) ListByDivision(_ context.Context, division string, onlyActive bool) ([]suspension.Suspension, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]suspension.Suspension, 0)
	for _, id := range r.orders {
		s := r.items[id]
		if s.Division != division {
			continue
		}
		if onlyActive && !s.IsActive() {
			continue
		}
		out = append(out, cloneSuspension(s))
	}

	return out, nil
}

func (r *SuspensionRepository) GetByID(_ context.Context, suspensionID string) (suspension.Suspension, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[suspensionID]
	if !ok {
		return suspension.Suspension{}, false, nil
	}

	return cloneSuspension(s), true, nil
}

func (r *SuspensionRepository) ActiveByPlayer(_ context.Context, playerID string) (suspension.Suspension, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.activeByPlayerLocked(playerID)
	if !ok {
		return suspension.Suspension{}, false, nil
	}

	return cloneSuspension(s), true, nil
}

func (r *SuspensionRepository) Update(_ context.Context, item suspension.Suspension) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = cloneSuspension(item)

	return nil
}

// insertLocked is used by the match repository during finalization; the
// caller must hold the write lock.
func (r *SuspensionRepository) insertLocked(item suspension.Suspension) {
	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = cloneSuspension(item)
}

func (r *SuspensionRepository) activeByPlayerLocked(playerID string) (suspension.Suspension, bool) {
	for _, id := range r.orders {
		s := r.items[id]
		if s.PlayerID == playerID && s.IsActive() {
			return s, true
		}
	}

	return suspension.Suspension{}, false
}

func cloneSuspension(s suspension.Suspension) suspension.Suspension {
	copied := s
	copied.MissedRounds = append([]int(nil), s.MissedRounds...)
	return copied
}
