// Where: internal/app/down.go
// What: Down command helpers.
// Why: Tear down the deployment unconditionally and idempotently.
package app

import (
	"fmt"
	"io"
)

// runDown executes the 'down' command. It exits 0 regardless of whether a
// deployment was running.
func runDown(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Down.Downer == nil {
		fmt.Fprintln(out, "down: not implemented")
		return 1
	}

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, cancel := signalContext(deps)
	defer cancel()

	if err := deps.Down.Downer.Down(ctx, ctxInfo.Cfg.Project, cli.Down.Volumes); err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintln(out, "down complete")
	return 0
}
