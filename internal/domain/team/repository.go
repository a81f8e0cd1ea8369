package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	ListByDivision(ctx context.Context, division string) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Create(ctx context.Context, item Team) error
	Update(ctx context.Context, item Team) error
	Delete(ctx context.Context, teamID string) error
}
