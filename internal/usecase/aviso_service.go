package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/futliga/liga-api/internal/domain/aviso"
	"github.com/futliga/liga-api/internal/platform/id"
	"github.com/futliga/liga-api/internal/platform/watch"
)

const avisosTopic = "avisos"

type AvisoService struct {
	avisoRepo aviso.Repository
	idGen     id.Generator
	hub       *watch.Hub
	now       func() time.Time
}

func NewAvisoService(avisoRepo aviso.Repository, idGen id.Generator, hub *watch.Hub) *AvisoService {
	return &AvisoService{
		avisoRepo: avisoRepo,
		idGen:     idGen,
		hub:       hub,
		now:       time.Now,
	}
}

func (s *AvisoService) ListAvisos(ctx context.Context) ([]aviso.Aviso, error) {
	items, err := s.avisoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list avisos: %w", err)
	}

	return items, nil
}

func (s *AvisoService) PublishAviso(ctx context.Context, title, body string) (aviso.Aviso, error) {
	avisoID, err := s.idGen.NewID()
	if err != nil {
		return aviso.Aviso{}, fmt.Errorf("generate aviso id: %w", err)
	}

	item := aviso.Aviso{
		ID:        avisoID,
		Title:     strings.TrimSpace(title),
		Body:      strings.TrimSpace(body),
		CreatedAt: s.now(),
	}
	if err := item.Validate(); err != nil {
		return aviso.Aviso{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.avisoRepo.Create(ctx, item); err != nil {
		return aviso.Aviso{}, fmt.Errorf("create aviso: %w", err)
	}

	s.publish(watch.ActionCreated, item.ID)

	return item, nil
}

func (s *AvisoService) DeleteAviso(ctx context.Context, avisoID string) error {
	avisoID = strings.TrimSpace(avisoID)
	if avisoID == "" {
		return fmt.Errorf("%w: aviso id is required", ErrInvalidInput)
	}

	if err := s.avisoRepo.Delete(ctx, avisoID); err != nil {
		return fmt.Errorf("delete aviso: %w", err)
	}

	s.publish(watch.ActionDeleted, avisoID)

	return nil
}

func (s *AvisoService) publish(action, entityID string) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(watch.Event{
		Topic:    avisosTopic,
		Action:   action,
		EntityID: entityID,
	})
}
