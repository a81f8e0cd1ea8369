package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/futliga/liga-api/internal/domain/contact"
)

type ContactRepository struct {
	mu    sync.RWMutex
	items map[string]contact.Message
}

func NewContactRepository(messages []contact.Message) *ContactRepository {
	items := make(map[string]contact.Message, len(messages))
	for _, m := range messages {
		items[m.ID] = m
	}

	return &ContactRepository{items: items}
}

func (r *ContactRepository) Create(_ context.Context, item contact.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item

	return nil
}

// ListPage walks the inbox newest first. StartAfter skips everything up to
// and including that message; EndBefore returns the window right before it.
// An unknown cursor id yields an empty page rather than an error.
func (r *ContactRepository) ListPage(_ context.Context, page contact.Page) ([]contact.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]contact.Message, 0, len(r.items))
	for _, m := range r.items {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	switch {
	case page.StartAfter != "":
		start := -1
		for i, m := range all {
			if m.ID == page.StartAfter {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return []contact.Message{}, nil
		}
		all = all[start:]
		if len(all) > page.Limit {
			all = all[:page.Limit]
		}

	case page.EndBefore != "":
		end := -1
		for i, m := range all {
			if m.ID == page.EndBefore {
				end = i
				break
			}
		}
		if end < 0 {
			return []contact.Message{}, nil
		}
		start := end - page.Limit
		if start < 0 {
			start = 0
		}
		all = all[start:end]

	default:
		if len(all) > page.Limit {
			all = all[:page.Limit]
		}
	}

	out := make([]contact.Message, len(all))
	copy(out, all)

	return out, nil
}
