package memory

import (
	"context"
	"sync"

	"github.com/futliga/liga-api/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[string]player.Player
	orders []string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make(map[string]player.Player, len(players))
	orders := make([]string, 0, len(players))

	for _, p := range players {
		items[p.ID] = p
		orders = append(orders, p.ID)
	}

	return &PlayerRepository{
		items:  items,
		orders: orders,
	}
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, id := range r.orders {
		p := r.items[id]
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PlayerRepository) ListByDivision(_ context.Context, division string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, id := range r.orders {
		p := r.items[id]
		if p.Division == division {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return p, true, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[playerID]; !exists {
		return nil
	}
	delete(r.items, playerID)

	for i, id := range r.orders {
		if id == playerID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}
