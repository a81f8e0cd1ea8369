package album

import "context"

// Repository describes gallery persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Album, error)
	GetByID(ctx context.Context, albumID string) (Album, bool, error)
	Create(ctx context.Context, item Album) error
	Delete(ctx context.Context, albumID string) error
}
