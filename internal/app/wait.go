// Where: internal/app/wait.go
// What: Two-phase readiness waiting.
// Why: "Container running" is necessary but not sufficient; the listening
// socket can lag behind scheduling, so the network probe is a second phase.
package app

import (
	"context"
	"time"

	"github.com/openhands-tools/handsctl/internal/config"
	"github.com/openhands-tools/handsctl/internal/probe"
	"github.com/openhands-tools/handsctl/internal/retry"
)

// ReadinessWaiter drives the two wait phases for a compose project.
type ReadinessWaiter interface {
	Wait(ctx context.Context, cfg config.Runtime) (ReadinessOutcome, error)
}

// RunningChecker reports whether the project's container set is up.
type RunningChecker interface {
	Running(ctx context.Context, project string) (bool, error)
}

type readinessWaiter struct {
	checker RunningChecker
	prober  probe.Prober

	containerPolicy retry.Policy
	networkPolicy   retry.Policy
}

// NewReadinessWaiter returns a waiter with the standard budgets: the
// container-state phase polls every 2s for up to 60s, the network phase
// polls every 1s for up to 30s.
func NewReadinessWaiter(checker RunningChecker, prober probe.Prober) ReadinessWaiter {
	return readinessWaiter{
		checker:         checker,
		prober:          prober,
		containerPolicy: retry.Policy{Interval: 2 * time.Second, Ceiling: 60 * time.Second},
		networkPolicy:   retry.Policy{Interval: time.Second, Ceiling: 30 * time.Second},
	}
}

func (w readinessWaiter) Wait(ctx context.Context, cfg config.Runtime) (ReadinessOutcome, error) {
	outcome, err := w.containerPolicy.Until(ctx, func(ctx context.Context) (bool, error) {
		return w.checker.Running(ctx, cfg.Project)
	})
	if err != nil {
		return ReadinessOutcome{}, err
	}
	if outcome == retry.TimedOut {
		return ReadinessOutcome{TimedOutPhase: PhaseContainerState},
			&TimeoutError{Phase: PhaseContainerState, Budget: w.containerPolicy.Ceiling}
	}

	outcome, err = w.networkPolicy.Until(ctx, func(ctx context.Context) (bool, error) {
		return w.prober.Probe(ctx, cfg.BackendHost, cfg.BackendPort), nil
	})
	if err != nil {
		return ReadinessOutcome{}, err
	}
	if outcome == retry.TimedOut {
		return ReadinessOutcome{TimedOutPhase: PhaseNetworkProbe},
			&TimeoutError{Phase: PhaseNetworkProbe, Budget: w.networkPolicy.Ceiling}
	}

	return ReadinessOutcome{Ready: true}, nil
}
