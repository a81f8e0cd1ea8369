package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	ListByDivision(ctx context.Context, division string) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	Create(ctx context.Context, item Player) error
	Delete(ctx context.Context, playerID string) error
}
