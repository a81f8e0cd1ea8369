package suspension

import "context"

// Repository describes suspension persistence needs from use cases.
// Creation happens through match.Repository.Finalize so that the score write
// and its consequences share one transactional boundary.
type Repository interface {
	ListByDivision(ctx context.Context, division string, onlyActive bool) ([]Suspension, error)
	GetByID(ctx context.Context, suspensionID string) (Suspension, bool, error)
	ActiveByPlayer(ctx context.Context, playerID string) (Suspension, bool, error)
	Update(ctx context.Context, item Suspension) error
}
