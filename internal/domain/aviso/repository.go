package aviso

import "context"

// Repository describes announcement persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Aviso, error)
	Create(ctx context.Context, item Aviso) error
	Delete(ctx context.Context, avisoID string) error
}
