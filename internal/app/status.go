// Where: internal/app/status.go
// What: Status command helpers.
// Why: Show per-container state for the managed project.
package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/openhands-tools/handsctl/internal/state"
)

// runStatus executes the 'status' command, printing one line per container.
func runStatus(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Status.Lister == nil {
		fmt.Fprintln(out, "status: not implemented")
		return 1
	}

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, cancel := signalContext(deps)
	defer cancel()

	containers, err := deps.Status.Lister.List(ctx, ctxInfo.Cfg.Project)
	if err != nil {
		return exitWithError(out, err)
	}

	if len(containers) == 0 {
		fmt.Fprintf(out, "%s: not running\n", ctxInfo.Cfg.Project)
		return 0
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SERVICE\tCONTAINER\tSTATE")
	for _, ctr := range containers {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ctr.Service, ctr.Name, ctr.State)
	}
	_ = w.Flush()

	if state.Running(containers) {
		fmt.Fprintf(out, "%s: running\n", ctxInfo.Cfg.Project)
	} else {
		fmt.Fprintf(out, "%s: degraded\n", ctxInfo.Cfg.Project)
	}
	return 0
}
