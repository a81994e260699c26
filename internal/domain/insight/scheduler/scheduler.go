package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/vadim/neo-insights/internal/domain/insight/entity"
)

// DatasetReloader defines the interface for refreshing the dataset
type DatasetReloader interface {
	Reload(ctx context.Context) (*entity.Dataset, error)
}

// Scheduler periodically reloads the export dataset so new pipeline runs
// are picked up without a restart
type Scheduler struct {
	reloader DatasetReloader
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// New creates a new scheduler. timeout bounds a single reload; zero means no bound.
func New(reloader DatasetReloader, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		reloader: reloader,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

// Start starts the scheduler. The first reload happens one interval after
// start since the initial load is done at boot.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.logger.Info("reload scheduler started", "interval", s.interval)

	s.wg.Add(1)
	go s.run(ctx)
}

// Stop stops the scheduler and waits for an in-flight reload
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	s.logger.Info("reload scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.reload(ctx)
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) reload(ctx context.Context) {
	s.logger.Debug("reloading dataset")

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	// the reloader logs the failure itself and keeps the previous dataset
	_, _ = s.reloader.Reload(ctx)
}
