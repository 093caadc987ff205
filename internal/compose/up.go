// Where: internal/compose/up.go
// What: Docker compose command helpers for bringing stacks up.
// Why: Provide a minimal, testable interface for starting services.
package compose

import (
	"context"
	"fmt"
	"strings"
)

// UpOptions contains configuration for starting compose services.
type UpOptions struct {
	RootDir  string
	Project  string
	Frontend bool
	Detach   bool
	Build    bool
	EnvFile  string
}

// UpProject runs docker compose up with the resolved configuration files.
// This is a single blocking call; a non-zero exit is returned as-is and is
// never retried here.
func UpProject(ctx context.Context, runner CommandRunner, opts UpOptions) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}

	args, err := composeArgs(opts.RootDir, opts.Project, opts.Frontend)
	if err != nil {
		return err
	}

	if opts.EnvFile != "" {
		args = append(args, "--env-file", opts.EnvFile)
	}

	args = append(args, "up")
	if opts.Detach {
		args = append(args, "-d")
	}
	if opts.Build {
		args = append(args, "--build")
	}

	return runner.Run(ctx, opts.RootDir, "docker", args...)
}

// composeArgs builds the shared "compose -p ... -f ..." argument prefix.
func composeArgs(rootDir, project string, frontend bool) ([]string, error) {
	files, err := ResolveComposeFiles(rootDir, frontend)
	if err != nil {
		return nil, err
	}

	args := []string{"compose"}
	if strings.TrimSpace(project) != "" {
		args = append(args, "-p", project)
	}
	for _, file := range files {
		args = append(args, "-f", file)
	}
	return args, nil
}
