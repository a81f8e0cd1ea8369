package contact

import "context"

// Page requests one inbox window, newest first. StartAfter and EndBefore are
// message IDs from a previous page; at most one should be set.
type Page struct {
	Limit      int
	StartAfter string
	EndBefore  string
}

// Repository describes contact inbox persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Message) error
	ListPage(ctx context.Context, page Page) ([]Message, error)
}
