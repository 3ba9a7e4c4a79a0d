// Package retention prunes old runs from the archive on a timer.
package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/me/flightsched/internal/store"
)

// Config holds retention settings.
type Config struct {
	MaxAge       time.Duration // runs older than this are deleted; 0 disables pruning
	PollInterval time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{PollInterval: time.Hour}
}

// Loop deletes expired runs every PollInterval.
type Loop struct {
	store  store.Store
	config Config
	logger *slog.Logger
	now    func() time.Time
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewLoop creates a new retention loop.
func NewLoop(st store.Store, cfg Config, logger *slog.Logger) *Loop {
	return &Loop{
		store:  st,
		config: cfg,
		logger: logger.With("component", "retention"),
		now:    time.Now,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start runs one prune immediately, then one per tick. Blocks until ctx is
// cancelled or Stop is called.
func (l *Loop) Start(ctx context.Context) error {
	defer close(l.doneCh)
	if l.config.MaxAge <= 0 {
		l.logger.Info("retention disabled")
		return nil
	}
	l.logger.Info("retention started", "max_age", l.config.MaxAge, "poll_interval", l.config.PollInterval)
	if _, err := l.Tick(ctx); err != nil {
		l.logger.Error("prune error", "error", err)
	}

	ticker := time.NewTicker(l.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("retention stopping (context cancelled)")
			return ctx.Err()
		case <-l.stopCh:
			l.logger.Info("retention stopping (stop called)")
			return nil
		case <-ticker.C:
			if _, err := l.Tick(ctx); err != nil {
				l.logger.Error("prune error", "error", err)
			}
		}
	}
}

// Stop shuts the loop down and waits for the current prune to finish.
// Stop must only be called after Start.
func (l *Loop) Stop() {
	close(l.stopCh)
	<-l.doneCh
}

// Tick deletes runs older than MaxAge and returns how many were removed.
func (l *Loop) Tick(ctx context.Context) (int, error) {
	cutoff := l.now().Add(-l.config.MaxAge)
	n, err := l.store.PruneRuns(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	if n > 0 {
		l.logger.Info("pruned runs", "count", n, "cutoff", cutoff)
	}
	return n, nil
}
