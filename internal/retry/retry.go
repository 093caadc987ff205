// Where: internal/retry/retry.go
// What: Bounded sleep-and-recheck retry helper.
// Why: Keep timeout policy declarative and testable without real waits.
package retry

import (
	"context"
	"time"
)

// Outcome is the terminal result of a bounded retry loop.
type Outcome int

const (
	Satisfied Outcome = iota
	TimedOut
	Canceled
)

// Policy describes one bounded retry loop: evaluate the predicate once per
// Interval until it holds or Ceiling elapses. The first evaluation happens
// immediately, so a predicate that already holds costs no sleep.
type Policy struct {
	Interval time.Duration
	Ceiling  time.Duration

	// Sleep is swapped out in tests. Defaults to a context-aware sleep.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Attempts returns the exact number of predicate evaluations the policy
// performs before giving up.
func (p Policy) Attempts() int {
	if p.Interval <= 0 {
		return 1
	}
	n := int(p.Ceiling / p.Interval)
	if n < 1 {
		n = 1
	}
	return n
}

// Until runs the loop. A predicate error is treated as "not yet satisfied";
// only ctx cancellation aborts early.
func (p Policy) Until(ctx context.Context, predicate func(context.Context) (bool, error)) (Outcome, error) {
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	for i := 0; i < p.Attempts(); i++ {
		if i > 0 {
			if err := sleep(ctx, p.Interval); err != nil {
				return Canceled, err
			}
		}
		ok, err := predicate(ctx)
		if err == nil && ok {
			return Satisfied, nil
		}
		if ctx.Err() != nil {
			return Canceled, ctx.Err()
		}
	}

	return TimedOut, nil
}

// Sleep pauses for d or until ctx is canceled, returning ctx's error in
// the latter case.
func Sleep(ctx context.Context, d time.Duration) error {
	return sleepCtx(ctx, d)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
