package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/futliga/liga-api/internal/domain/album"
	"github.com/futliga/liga-api/internal/platform/id"
	"github.com/futliga/liga-api/internal/platform/watch"
)

const albumsTopic = "albums"

type AlbumService struct {
	albumRepo album.Repository
	photos    PhotoStore
	cleaner   *PhotoCleaner
	idGen     id.Generator
	hub       *watch.Hub
	now       func() time.Time
}

func NewAlbumService(
	albumRepo album.Repository,
	photos PhotoStore,
	cleaner *PhotoCleaner,
	idGen id.Generator,
	hub *watch.Hub,
) *AlbumService {
	return &AlbumService{
		albumRepo: albumRepo,
		photos:    photos,
		cleaner:   cleaner,
		idGen:     idGen,
		hub:       hub,
		now:       time.Now,
	}
}

func (s *AlbumService) ListAlbums(ctx context.Context) ([]album.Album, error) {
	items, err := s.albumRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}

	return items, nil
}

type AlbumPhotoInput struct {
	ContentType string
	Data        []byte
}

// CreateAlbum uploads every photo before writing the album record, so the
// stored album never references missing objects. On a failed record write
// the uploaded photos are removed again.
func (s *AlbumService) CreateAlbum(ctx context.Context, title string, photos []AlbumPhotoInput) (album.Album, error) {
	albumID, err := s.idGen.NewID()
	if err != nil {
		return album.Album{}, fmt.Errorf("generate album id: %w", err)
	}

	item := album.Album{
		ID:        albumID,
		Title:     strings.TrimSpace(title),
		CreatedAt: s.now(),
	}
	if err := item.Validate(); err != nil {
		return album.Album{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uploaded := make([]album.Photo, 0, len(photos))
	rollback := func() {
		for _, p := range uploaded {
			s.cleaner.Remove(p.Path)
		}
	}

	for _, photo := range photos {
		if len(photo.Data) == 0 {
			rollback()
			return album.Album{}, fmt.Errorf("%w: empty photo payload", ErrInvalidInput)
		}

		objectID, err := s.idGen.NewID()
		if err != nil {
			rollback()
			return album.Album{}, fmt.Errorf("generate photo id: %w", err)
		}

		path := fmt.Sprintf("albums/%s/%s", item.ID, objectID)
		url, err := s.photos.Upload(ctx, path, photo.ContentType, photo.Data)
		if err != nil {
			rollback()
			return album.Album{}, fmt.Errorf("upload album photo: %w", err)
		}
		uploaded = append(uploaded, album.Photo{URL: url, Path: path})
	}
	item.Photos = uploaded

	if err := s.albumRepo.Create(ctx, item); err != nil {
		rollback()
		return album.Album{}, fmt.Errorf("create album: %w", err)
	}

	s.publish(watch.ActionCreated, item.ID)

	return item, nil
}

// DeleteAlbum removes the record and schedules removal of its photos.
func (s *AlbumService) DeleteAlbum(ctx context.Context, albumID string) error {
	item, exists, err := s.albumRepo.GetByID(ctx, strings.TrimSpace(albumID))
	if err != nil {
		return fmt.Errorf("get album: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: album=%s", ErrNotFound, albumID)
	}

	if err := s.albumRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete album: %w", err)
	}

	for _, photo := range item.Photos {
		s.cleaner.Remove(photo.Path)
	}

	s.publish(watch.ActionDeleted, item.ID)

	return nil
}

func (s *AlbumService) publish(action, entityID string) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(watch.Event{
		Topic:    albumsTopic,
		Action:   action,
		EntityID: entityID,
	})
}
