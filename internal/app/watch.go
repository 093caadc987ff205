// Where: internal/app/watch.go
// What: Post-ready supervision loop.
// Why: Detect unexpected termination after the readiness contract is met.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/openhands-tools/handsctl/internal/retry"
)

// watchInterval is the coarse poll used after the deployment is ready.
const watchInterval = 5 * time.Second

// watchDeployment polls the container-state signal until the service set
// stops running or the operator interrupts. A stopped deployment exits
// non-zero with the captured logs; an interrupt tears the deployment down.
func watchDeployment(ctx context.Context, deps Dependencies, ctxInfo commandContext, out io.Writer) int {
	if deps.Up.Checker == nil {
		fmt.Fprintln(out, "watch: not implemented")
		return 1
	}

	sleep := deps.Up.WatchSleep
	if sleep == nil {
		sleep = retry.Sleep
	}

	fmt.Fprintln(out, "Watching deployment (Ctrl-C to stop)...")

	for {
		if err := sleep(ctx, watchInterval); err != nil {
			return teardownOnInterrupt(deps, ctxInfo, out)
		}
		running, err := deps.Up.Checker.Running(ctx, ctxInfo.Cfg.Project)
		if err != nil {
			if interrupted(ctx) {
				return teardownOnInterrupt(deps, ctxInfo, out)
			}
			fmt.Fprintf(out, "Warning: state check failed: %v\n", err)
			continue
		}
		if !running {
			return failWithLogs(deps, ctxInfo, out, fmt.Errorf("deployment stopped unexpectedly"))
		}
	}
}
