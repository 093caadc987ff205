// Where: internal/compose/logs.go
// What: Log access helpers for a compose project.
// Why: Stream logs for operators and capture tails for failure diagnostics.
package compose

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
)

// LogsOptions contains configuration for viewing compose logs.
type LogsOptions struct {
	RootDir    string
	Project    string
	Frontend   bool
	Follow     bool
	Tail       int
	Timestamps bool
	Service    string
}

// LogsProject runs docker compose logs with specified follow/tail options.
func LogsProject(ctx context.Context, runner CommandRunner, opts LogsOptions) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	if opts.RootDir == "" {
		return fmt.Errorf("root dir is required")
	}

	args, err := composeArgs(opts.RootDir, opts.Project, opts.Frontend)
	if err != nil {
		return err
	}

	args = append(args, "logs")
	if opts.Follow {
		args = append(args, "--follow")
	}
	if opts.Tail > 0 {
		args = append(args, "--tail", fmt.Sprintf("%d", opts.Tail))
	}
	if opts.Timestamps {
		args = append(args, "--timestamps")
	}
	if strings.TrimSpace(opts.Service) != "" {
		args = append(args, opts.Service)
	}

	return runner.Run(ctx, opts.RootDir, "docker", args...)
}

// CaptureLogs returns the last Tail lines of the project's logs as text.
// Used to attach diagnostics to readiness failures; capture errors degrade
// to an explanatory placeholder rather than masking the original failure.
func CaptureLogs(ctx context.Context, runner CommandRunner, opts LogsOptions) string {
	if runner == nil || opts.RootDir == "" {
		return "(logs unavailable)"
	}

	args, err := composeArgs(opts.RootDir, opts.Project, opts.Frontend)
	if err != nil {
		return fmt.Sprintf("(logs unavailable: %v)", err)
	}

	args = append(args, "logs", "--no-color")
	if opts.Tail > 0 {
		args = append(args, "--tail", fmt.Sprintf("%d", opts.Tail))
	}

	out, err := runner.RunOutput(ctx, opts.RootDir, "docker", args...)
	if err != nil {
		return fmt.Sprintf("(logs unavailable: %v)", err)
	}
	return string(out)
}

// ListServices returns the services defined for the compose project.
func ListServices(ctx context.Context, runner CommandRunner, opts LogsOptions) ([]string, error) {
	if runner == nil {
		return nil, fmt.Errorf("command runner is nil")
	}
	if opts.RootDir == "" {
		return nil, fmt.Errorf("root dir is required")
	}

	args, err := composeArgs(opts.RootDir, opts.Project, opts.Frontend)
	if err != nil {
		return nil, err
	}
	args = append(args, "config", "--services")

	output, err := runner.RunOutput(ctx, opts.RootDir, "docker", args...)
	if err != nil {
		return nil, err
	}

	var services []string
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			services = append(services, line)
		}
	}
	return services, scanner.Err()
}
