package chat

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestThinkZeroDurationReturnsImmediately(t *testing.T) {
	if err := Think(context.Background(), 0); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestThinkWaitsOutTheDelay(t *testing.T) {
	slept := time.Duration(0)
	sleep = func(d time.Duration) { slept = d }
	defer func() { sleep = time.Sleep }()

	if err := Think(context.Background(), ThinkingDelay); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if slept != ThinkingDelay {
		t.Fatalf("expected to sleep %v, got %v", ThinkingDelay, slept)
	}
}

func TestThinkStopsOnCanceledContext(t *testing.T) {
	block := make(chan struct{})
	sleep = func(time.Duration) { <-block }
	defer func() {
		close(block)
		sleep = time.Sleep
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Think(ctx, ThinkingDelay); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
