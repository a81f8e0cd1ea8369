package memory

import (
	"context"
	"sync"

	"github.com/futliga/liga-api/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	items  map[string]team.Team
	orders []string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	items := make(map[string]team.Team, len(teams))
	orders := make([]string, 0, len(teams))

	for _, t := range teams {
		items[t.ID] = cloneTeam(t)
		orders = append(orders, t.ID)
	}

	return &TeamRepository{
		items:  items,
		orders: orders,
	}
}

func (r *TeamRepository) ListByDivision(_ context.Context, division string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.orders))
	for _, id := range r.orders {
		t := r.items[id]
		if t.Division == division {
			out = append(out, cloneTeam(t))
		}
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	return cloneTeam(t), true, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = cloneTeam(item)

	return nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = cloneTeam(item)

	return nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[teamID]; !exists {
		return nil
	}
	delete(r.items, teamID)

	for i, id := range r.orders {
		if id == teamID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}

func cloneTeam(t team.Team) team.Team {
	copied := t
	if t.Baseline != nil {
		baseline := *t.Baseline
		copied.Baseline = &baseline
	}
	return copied
}
