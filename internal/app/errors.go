// Where: internal/app/errors.go
// What: Error taxonomy for orchestration runs.
// Why: Keep the terminal failure classes explicit and matchable.
package app

import (
	"errors"
	"fmt"
	"time"
)

// Phase identifies which wait phase exceeded its budget.
type Phase string

const (
	PhaseContainerState Phase = "container-state"
	PhaseNetworkProbe   Phase = "network-probe"
)

// ErrBringUp marks a compose up failure. It is fatal for the run and is
// never retried within a single invocation.
var ErrBringUp = errors.New("bring-up failed")

// TimeoutError is returned when a wait phase exhausts its budget.
type TimeoutError struct {
	Phase  Phase
	Budget time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s wait timed out after %s", e.Phase, e.Budget)
}

// ReadinessOutcome is the binary result of one orchestration run.
type ReadinessOutcome struct {
	Ready bool
	// TimedOutPhase is set when Ready is false because a wait phase expired.
	TimedOutPhase Phase
}
