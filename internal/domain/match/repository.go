package match

import (
	"context"

	"github.com/futliga/liga-api/internal/domain/suspension"
)

// Filter narrows division match listings.
type Filter struct {
	Round  *int
	Status string
}

// Repository describes match persistence needs from use cases.
type Repository interface {
	ListByDivision(ctx context.Context, division string, filter Filter) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, item Match) error
	Delete(ctx context.Context, matchID string) error

	// Finalize persists the finished match together with the suspensions its
	// red cards produced, in one atomic write. Suspensions for players that
	// already carry an active one are silently skipped.
	Finalize(ctx context.Context, item Match, suspensions []suspension.Suspension) error
}
