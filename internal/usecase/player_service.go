package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/futliga/liga-api/internal/domain/player"
	"github.com/futliga/liga-api/internal/domain/team"
	"github.com/futliga/liga-api/internal/platform/id"
	"github.com/futliga/liga-api/internal/platform/watch"
)

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	photos     PhotoStore
	cleaner    *PhotoCleaner
	idGen      id.Generator
	hub        *watch.Hub
	now        func() time.Time
}

func NewPlayerService(
	playerRepo player.Repository,
	teamRepo team.Repository,
	photos PhotoStore,
	cleaner *PhotoCleaner,
	idGen id.Generator,
	hub *watch.Hub,
) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		photos:     photos,
		cleaner:    cleaner,
		idGen:      idGen,
		hub:        hub,
		now:        time.Now,
	}
}

type RegisterPlayerInput struct {
	TeamID           string
	Name             string
	Age              int
	Photo            []byte
	PhotoContentType string
}

// RegisterPlayer creates the player under its team, uploading the photo
// first so the stored record never points at a missing object. If the
// record write fails the uploaded photo is removed again.
func (s *PlayerService) RegisterPlayer(ctx context.Context, input RegisterPlayerInput) (player.Player, error) {
	t, exists, err := s.teamRepo.GetByID(ctx, strings.TrimSpace(input.TeamID))
	if err != nil {
		return player.Player{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	item := player.Player{
		ID:        playerID,
		Name:      strings.TrimSpace(input.Name),
		Age:       input.Age,
		Division:  t.Division,
		TeamID:    t.ID,
		TeamName:  t.Name,
		CreatedAt: s.now(),
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(input.Photo) > 0 {
		objectID, err := s.idGen.NewID()
		if err != nil {
			return player.Player{}, fmt.Errorf("generate photo id: %w", err)
		}

		path := fmt.Sprintf("players/%s/%s", t.ID, objectID)
		url, err := s.photos.Upload(ctx, path, input.PhotoContentType, input.Photo)
		if err != nil {
			return player.Player{}, fmt.Errorf("upload player photo: %w", err)
		}
		item.PhotoURL = url
		item.PhotoPath = path
	}

	if err := s.playerRepo.Create(ctx, item); err != nil {
		if item.PhotoPath != "" {
			s.cleaner.Remove(item.PhotoPath)
		}
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.publish(watch.ActionCreated, item)

	return item, nil
}

func (s *PlayerService) ListTeamPlayers(ctx context.Context, teamID string) ([]player.Player, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	items, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team players: %w", err)
	}

	return items, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	item, exists, err := s.playerRepo.GetByID(ctx, strings.TrimSpace(playerID))
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

// DeletePlayer removes the record and schedules photo removal in the
// background. The photo cleanup never blocks or undoes the deletion.
func (s *PlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	item, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}

	if err := s.playerRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	if item.PhotoPath != "" {
		s.cleaner.Remove(item.PhotoPath)
	}

	s.publish(watch.ActionDeleted, item)

	return nil
}

func (s *PlayerService) publish(action string, item player.Player) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(watch.Event{
		Topic:    watch.Topic("players", item.Division),
		Action:   action,
		EntityID: item.ID,
	})
}
