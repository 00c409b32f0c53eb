package chat

import (
	"context"
	"time"
)

// ThinkingDelay is the short pause before showing an answer. Purely a
// presentation affordance; the engine itself answers instantly.
const ThinkingDelay = 300 * time.Millisecond

var sleep = time.Sleep

// Think waits for the given duration, returning early when the context is
// canceled.
func Think(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sleep(d)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
