package store

import (
	"context"
	"errors"
	"time"

	"github.com/me/flightsched/pkg/model"
)

// ErrNotFound is returned by mutating operations on a missing entity.
// Getters return (nil, nil) instead.
var ErrNotFound = errors.New("not found")

// Store defines the persistence layer for archived runs.
type Store interface {
	CreateRun(ctx context.Context, run *model.Run) error
	GetRun(ctx context.Context, id string) (*model.Run, error)
	ListRuns(ctx context.Context, opts model.ListOptions) ([]*model.Run, int, error)
	DeleteRun(ctx context.Context, id string) error
	// PruneRuns deletes runs created before cutoff and reports how many went.
	PruneRuns(ctx context.Context, cutoff time.Time) (int, error)

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
