package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/futliga/liga-api/internal/domain/aviso"
)

type AvisoRepository struct {
	mu    sync.RWMutex
	items map[string]aviso.Aviso
}

func NewAvisoRepository(avisos []aviso.Aviso) *AvisoRepository {
	items := make(map[string]aviso.Aviso, len(avisos))
	for _, a := range avisos {
		items[a.ID] = a
	}

	return &AvisoRepository{items: items}
}

// List returns announcements newest first.
func (r *AvisoRepository) List(_ context.Context) ([]aviso.Aviso, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]aviso.Aviso, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *AvisoRepository) Create(_ context.Context, item aviso.Aviso) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item

	return nil
}

func (r *AvisoRepository) Delete(_ context.Context, avisoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, avisoID)

	return nil
}
