package memory

import (
	"context"
	"sync"

	"github.com/futliga/liga-api/internal/domain/match"
	"github.com/futliga/liga-api/internal/domain/suspension"
)

// MatchRepository keeps matches in memory. It shares the suspension store so
// Finalize can write the match and its suspensions under one lock.
type MatchRepository struct {
	mu          sync.Mutex
	items       map[string]match.Match
	orders      []string
	suspensions *SuspensionRepository
}

func NewMatchRepository(matches []match.Match, suspensions *SuspensionRepository) *MatchRepository {
	items := make(map[string]match.Match, len(matches))
	orders := make([]string, 0, len(matches))

	for _, m := range matches {
		items[m.ID] = cloneMatch(m)
		orders = append(orders, m.ID)
	}

	return &MatchRepository{
		items:       items,
		orders:      orders,
		suspensions: suspensions,
	}
}

func (r *MatchRepository) ListByDivision(_ context.Context, division string, filter match.Filter) ([]match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]match.Match, 0)
	for _, id := range r.orders {
		m := r.items[id]
		if m.Division != division {
			continue
		}
		if filter.Round != nil && m.Round != *filter.Round {
			continue
		}
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		out = append(out, cloneMatch(m))
	}

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return cloneMatch(m), true, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = cloneMatch(item)

	return nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[matchID]; !exists {
		return nil
	}
	delete(r.items, matchID)

	for i, id := range r.orders {
		if id == matchID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}

// Finalize writes the finished match and its suspensions in one critical
// section. Players that already carry an active suspension are skipped.
func (r *MatchRepository) Finalize(_ context.Context, item match.Match, suspensions []suspension.Suspension) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.suspensions.mu.Lock()
	defer r.suspensions.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = cloneMatch(item)

	for _, s := range suspensions {
		if _, active := r.suspensions.activeByPlayerLocked(s.PlayerID); active {
			continue
		}
		r.suspensions.insertLocked(s)
	}

	return nil
}

func cloneMatch(m match.Match) match.Match {
	copied := m
	if m.HomeScore != nil {
		v := *m.HomeScore
		copied.HomeScore = &v
	}
	if m.AwayScore != nil {
		v := *m.AwayScore
		copied.AwayScore = &v
	}
	copied.YellowCards = cloneIntMap(m.YellowCards)
	copied.RedCards = cloneStringMap(m.RedCards)
	copied.Goals = cloneIntMap(m.Goals)
	return copied
}

func cloneIntMap(in map[string]int) map[string]int {
	if in == nil {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
