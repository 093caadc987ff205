// Where: internal/app/logs.go
// What: Logs command helpers.
// Why: Provide log access via docker compose with CLI flags.
package app

import (
	"fmt"
	"io"
	"strings"
)

// runLogs executes the 'logs' command which streams container logs with
// optional follow, tail, and timestamp options. On a terminal with no
// service argument, the operator picks a service interactively.
func runLogs(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Logs.Logger == nil {
		fmt.Fprintln(out, "logs: not implemented")
		return 1
	}

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, cancel := signalContext(deps)
	defer cancel()

	req := LogsRequest{
		Context:    ctxInfo.Ctx,
		Frontend:   ctxInfo.Cfg.FrontendEnabled,
		Follow:     cli.Logs.Follow,
		Tail:       cli.Logs.Tail,
		Timestamps: cli.Logs.Timestamps,
		Service:    strings.TrimSpace(cli.Logs.Service),
	}

	if req.Service == "" && deps.Prompter != nil && stdinIsTerminal() {
		services, err := deps.Logs.Logger.ListServices(ctx, req)
		if err != nil {
			// If listing services fails, streaming will likely fail too.
			return exitWithError(out, err)
		}
		if len(services) > 0 {
			options := []selectOption{{Label: "All services", Value: ""}}
			for _, svc := range services {
				options = append(options, selectOption{Label: svc, Value: svc})
			}
			selected, err := deps.Prompter.SelectValue("Select service to view logs", options)
			if err != nil {
				return exitWithError(out, err)
			}
			req.Service = selected
		}
	}

	if err := deps.Logs.Logger.Logs(ctx, req); err != nil {
		return exitWithError(out, err)
	}
	return 0
}
