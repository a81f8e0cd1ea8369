package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/futliga/liga-api/internal/domain/album"
)

type AlbumRepository struct {
	mu    sync.RWMutex
	items map[string]album.Album
}

func NewAlbumRepository(albums []album.Album) *AlbumRepository {
	items := make(map[string]album.Album, len(albums))
	for _, a := range albums {
		items[a.ID] = cloneAlbum(a)
	}

	return &AlbumRepository{items: items}
}

// List returns albums newest first.
func (r *AlbumRepository) List(_ context.Context) ([]album.Album, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]album.Album, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, cloneAlbum(a))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *AlbumRepository) GetByID(_ context.Context, albumID string) (album.Album, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[albumID]
	if !ok {
		return album.Album{}, false, nil
	}

	return cloneAlbum(a), true, nil
}

func (r *AlbumRepository) Create(_ context.Context, item album.Album) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneAlbum(item)

	return nil
}

func (r *AlbumRepository) Delete(_ context.Context, albumID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, albumID)

	return nil
}

func cloneAlbum(a album.Album) album.Album {
	copied := a
	copied.Photos = append([]album.Photo(nil), a.Photos...)
	return copied
}
