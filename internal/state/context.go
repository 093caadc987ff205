// Where: internal/state/context.go
// What: Deployment context and container state types.
// Why: Normalize the compose project layout into canonical paths.
package state

import (
	"fmt"
	"os"
	"path/filepath"
)

// Context identifies the compose deployment a command operates on.
type Context struct {
	// RootDir is the directory holding docker-compose.yml.
	RootDir string
	// Project is the compose project name (-p).
	Project string
	// EnvFile is an optional --env-file path passed to compose.
	EnvFile string
}

// ContainerInfo is the per-container state reported by the container runtime.
type ContainerInfo struct {
	Name    string
	Service string
	State   string
}

// ResolveContext validates rootDir and returns a Context for the project.
// The compose file must exist; everything else is optional.
func ResolveContext(rootDir, project string) (Context, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return Context{}, fmt.Errorf("resolve root dir: %w", err)
	}

	composePath := filepath.Join(absRoot, "docker-compose.yml")
	if _, err := os.Stat(composePath); err != nil {
		return Context{}, fmt.Errorf("compose file not found: %s", composePath)
	}

	if project == "" {
		return Context{}, fmt.Errorf("compose project name is required")
	}

	return Context{RootDir: absRoot, Project: project}, nil
}

// Running reports whether the container set counts as running: at least one
// container exists and every container reports "running". An exited container
// counts against readiness so a crash-looping service is never reported as up.
func Running(containers []ContainerInfo) bool {
	if len(containers) == 0 {
		return false
	}
	for _, ctr := range containers {
		if ctr.State != "running" {
			return false
		}
	}
	return true
}
