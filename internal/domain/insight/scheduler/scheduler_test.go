package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vadim/neo-insights/internal/domain/insight/entity"
)

type countingReloader struct {
	calls atomic.Int32
	err   error
}

func (r *countingReloader) Reload(ctx context.Context) (*entity.Dataset, error) {
	r.calls.Add(1)
	if r.err != nil {
		return nil, r.err
	}
	return &entity.Dataset{ID: "x"}, nil
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestSchedulerReloadsPeriodically(t *testing.T) {
	r := &countingReloader{err: errors.New("source down")}
	s := New(r, 10*time.Millisecond, time.Second, discard)

	s.Start(context.Background())
	s.Start(context.Background()) // second start is a no-op

	waitFor(t, func() bool { return r.calls.Load() >= 2 })

	s.Stop()
	s.Stop()

	after := r.calls.Load()
	time.Sleep(30 * time.Millisecond)
	if got := r.calls.Load(); got != after {
		t.Errorf("reloads after stop: %d -> %d", after, got)
	}
}

func TestSchedulerStopsWithContext(t *testing.T) {
	r := &countingReloader{}
	s := New(r, 10*time.Millisecond, 0, discard)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	waitFor(t, func() bool { return r.calls.Load() >= 1 })
	cancel()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop() blocked after context cancel")
	}
}
