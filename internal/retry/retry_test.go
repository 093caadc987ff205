// Where: internal/retry/retry_test.go
// What: Tests for the bounded retry helper.
// Why: Ensure poll counts and outcomes are stable without real sleeps.
package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func noSleep(_ context.Context, _ time.Duration) error { return nil }

func TestUntilSatisfiedImmediately(t *testing.T) {
	policy := Policy{Interval: time.Second, Ceiling: 30 * time.Second, Sleep: noSleep}

	calls := 0
	outcome, err := policy.Until(context.Background(), func(context.Context) (bool, error) {
		calls++
		return true, nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if outcome != Satisfied {
		t.Fatalf("expected Satisfied, got %v", outcome)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestUntilNeverSatisfiedPollsExactly(t *testing.T) {
	policy := Policy{Interval: 2 * time.Second, Ceiling: 60 * time.Second, Sleep: noSleep}

	calls := 0
	outcome, err := policy.Until(context.Background(), func(context.Context) (bool, error) {
		calls++
		return false, nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if outcome != TimedOut {
		t.Fatalf("expected TimedOut, got %v", outcome)
	}
	if calls != 30 {
		t.Fatalf("expected exactly 30 polls, got %d", calls)
	}
}

func TestUntilPredicateErrorIsNotSatisfied(t *testing.T) {
	policy := Policy{Interval: time.Second, Ceiling: 3 * time.Second, Sleep: noSleep}

	calls := 0
	outcome, err := policy.Until(context.Background(), func(context.Context) (bool, error) {
		calls++
		if calls < 2 {
			return false, errors.New("connection refused")
		}
		return true, nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if outcome != Satisfied {
		t.Fatalf("expected Satisfied after recovery, got %v", outcome)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestUntilCanceledDuringSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	policy := Policy{
		Interval: time.Second,
		Ceiling:  10 * time.Second,
		Sleep: func(ctx context.Context, _ time.Duration) error {
			cancel()
			return ctx.Err()
		},
	}

	outcome, err := policy.Until(ctx, func(context.Context) (bool, error) {
		return false, nil
	})
	if outcome != Canceled {
		t.Fatalf("expected Canceled, got %v", outcome)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAttemptsFloorsToOne(t *testing.T) {
	cases := []struct {
		name   string
		policy Policy
		want   int
	}{
		{"zero interval", Policy{Ceiling: time.Minute}, 1},
		{"ceiling below interval", Policy{Interval: 2 * time.Second, Ceiling: time.Second}, 1},
		{"network wait", Policy{Interval: time.Second, Ceiling: 30 * time.Second}, 30},
	}
	for _, tc := range cases {
		if got := tc.policy.Attempts(); got != tc.want {
			t.Fatalf("%s: expected %d attempts, got %d", tc.name, tc.want, got)
		}
	}
}
