package retry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

func fastConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Multiplier:      1.5,
	}
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), discard, "test", func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, fastConfig())

	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestDoGivesUp(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	err := Do(context.Background(), discard, "test", func() error {
		calls++
		return boom
	}, fastConfig())

	if !errors.Is(err, boom) {
		t.Fatalf("Do() error = %v, want boom", err)
	}
	if calls != 4 {
		t.Errorf("calls = %d, want 1 attempt + 3 retries", calls)
	}
}

func TestDoStopsOnPermanent(t *testing.T) {
	calls := 0
	fatal := errors.New("fatal")
	err := Do(context.Background(), discard, "test", func() error {
		calls++
		return Permanent(fatal)
	}, fastConfig())

	if !errors.Is(err, fatal) {
		t.Fatalf("Do() error = %v, want fatal", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
