// Where: internal/app/up.go
// What: Up command orchestration.
// Why: Sequence teardown, bring-up, and the two-phase readiness wait.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openhands-tools/handsctl/internal/config"
)

// runUp executes the 'up' command: best-effort teardown of any previous
// instance, compose bring-up, container-state wait, network-probe wait,
// then a summary of access URLs. Every terminal failure prints the failed
// phase and the captured service logs.
func runUp(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Up.Upper == nil || deps.Up.Downer == nil || deps.Up.Waiter == nil {
		fmt.Fprintln(out, "up: not implemented")
		return 1
	}

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	cfg := ctxInfo.Cfg

	ctx, cancel := signalContext(deps)
	defer cancel()

	// Materialize the effective frontend config before any container starts.
	if cfg.FrontendEnabled {
		if path, created, err := config.MaterializeFrontendEnv(ctxInfo.Ctx.RootDir, cfg); err != nil {
			return exitWithError(out, err)
		} else if created {
			fmt.Fprintf(out, "Created %s\n", path)
		}
	}

	// Pre-run cleanup is best-effort: a missing prior instance is expected.
	if err := deps.Up.Downer.Down(ctx, cfg.Project, false); err != nil {
		fmt.Fprintf(out, "Warning: pre-run teardown failed: %v\n", err)
	}

	fmt.Fprintf(out, "Starting %s...\n", cfg.Project)
	if err := deps.Up.Upper.Up(ctx, UpRequest{
		Context:  ctxInfo.Ctx,
		Frontend: cfg.FrontendEnabled,
		Build:    cli.Up.Build,
	}); err != nil {
		if interrupted(ctx) {
			return teardownOnInterrupt(deps, ctxInfo, out)
		}
		return failWithLogs(deps, ctxInfo, out, fmt.Errorf("%w: %v", ErrBringUp, err))
	}

	outcome, err := deps.Up.Waiter.Wait(ctx, cfg)
	if err != nil {
		if interrupted(ctx) {
			return teardownOnInterrupt(deps, ctxInfo, out)
		}
		var timeout *TimeoutError
		if errors.As(err, &timeout) {
			return failWithLogs(deps, ctxInfo, out, err)
		}
		return exitWithError(out, err)
	}
	if !outcome.Ready {
		return failWithLogs(deps, ctxInfo, out, &TimeoutError{Phase: outcome.TimedOutPhase})
	}

	fmt.Fprintln(out, "✓ Deployment ready")
	fmt.Fprintf(out, "  Backend:  http://%s\n", cfg.BackendAddr())
	if cfg.FrontendEnabled {
		fmt.Fprintf(out, "  Frontend: http://%s\n", cfg.FrontendAddr())
	}
	fmt.Fprintf(out, "  Workspace: %s\n", cfg.WorkspaceBase)

	remember := deps.Remember
	if remember == nil {
		remember = config.RememberDeployment
	}
	remember(ctxInfo.Ctx.RootDir, cfg.Project)

	if cli.Up.Watch {
		return watchDeployment(ctx, deps, ctxInfo, out)
	}
	return 0
}

func signalContext(deps Dependencies) (context.Context, context.CancelFunc) {
	if deps.SignalContext != nil {
		return deps.SignalContext()
	}
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func interrupted(ctx context.Context) bool {
	return ctx.Err() != nil
}

// teardownOnInterrupt releases the service set before exiting: once compose
// up has been issued, the started containers are a held resource whose
// release on interrupt must be guaranteed.
func teardownOnInterrupt(deps Dependencies, ctxInfo commandContext, out io.Writer) int {
	fmt.Fprintln(out, "Interrupted, tearing down...")
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := deps.Up.Downer.Down(ctx, ctxInfo.Cfg.Project, false); err != nil {
		fmt.Fprintf(out, "Warning: teardown failed: %v\n", err)
	}
	return 130
}

// failWithLogs prints the terminal error followed by the captured log tail.
func failWithLogs(deps Dependencies, ctxInfo commandContext, out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	if deps.Up.Capturer != nil {
		fmt.Fprintln(out, "--- service logs ---")
		fmt.Fprint(out, deps.Up.Capturer.Capture(context.Background(), ctxInfo.Ctx, ctxInfo.Cfg.FrontendEnabled))
	}
	return 1
}
