package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/futliga/liga-api/internal/platform/logging"
)

const photoDeleteTimeout = 10 * time.Second

// PhotoCleaner removes stored photos in the background after the owning
// record is deleted. Object-store failures never block or undo the record
// deletion: a missing object is ignored, anything else is logged as a
// warning and dropped.
type PhotoCleaner struct {
	store  PhotoStore
	pool   *ants.Pool
	logger *logging.Logger
	wg     sync.WaitGroup
}

func NewPhotoCleaner(store PhotoStore, workers int, logger *logging.Logger) (*PhotoCleaner, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if workers < 1 {
		workers = 4
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}

	return &PhotoCleaner{
		store:  store,
		pool:   pool,
		logger: logger,
	}, nil
}

// Remove schedules deletion of the object at path. Falls back to deleting
// inline when the pool rejects the task.
func (c *PhotoCleaner) Remove(path string) {
	if path == "" {
		return
	}

	c.wg.Add(1)
	task := func() {
		defer c.wg.Done()
		c.remove(path)
	}

	if err := c.pool.Submit(task); err != nil {
		task()
	}
}

func (c *PhotoCleaner) remove(path string) {
	ctx, cancel := context.WithTimeout(context.Background(), photoDeleteTimeout)
	defer cancel()

	err := c.store.Delete(ctx, path)
	switch {
	case err == nil, errors.Is(err, ErrNotFound):
	default:
		c.logger.Warn("photo deletion failed", "path", path, "error", err)
	}
}

// Close waits for pending deletions and releases the pool.
func (c *PhotoCleaner) Close() {
	c.wg.Wait()
	c.pool.Release()
}
