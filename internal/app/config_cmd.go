// Where: internal/app/config_cmd.go
// What: Config command helpers.
// Why: Materialize and inspect the effective configuration.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/openhands-tools/handsctl/internal/config"
)

// runConfigInit seeds handsctl.yaml and the frontend env file if absent.
// Existing files are never overwritten.
func runConfigInit(cli CLI, deps Dependencies, out io.Writer) int {
	rootDir, err := resolveRootDirForInit(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	cfg, err := resolveRuntime(rootDir, cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	path, created, err := config.WriteDefaultProjectFile(rootDir, cfg)
	if err != nil {
		return exitWithError(out, err)
	}
	reportMaterialized(out, path, created)

	if cfg.FrontendEnabled {
		path, created, err = config.MaterializeFrontendEnv(rootDir, cfg)
		if err != nil {
			return exitWithError(out, err)
		}
		reportMaterialized(out, path, created)
	}
	return 0
}

// runConfigShow prints the resolved runtime configuration.
func runConfigShow(cli CLI, deps Dependencies, out io.Writer) int {
	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	cfg := ctxInfo.Cfg

	fmt.Fprintf(out, "project:          %s\n", cfg.Project)
	fmt.Fprintf(out, "backend:          %s\n", cfg.BackendAddr())
	fmt.Fprintf(out, "frontend:         %s (enabled: %t)\n", cfg.FrontendAddr(), cfg.FrontendEnabled)
	fmt.Fprintf(out, "debug:            %t\n", cfg.Debug)
	fmt.Fprintf(out, "cors_origins:     %s\n", cfg.CORSOrigins)
	fmt.Fprintf(out, "workspace:        %s\n", cfg.WorkspaceBase)
	fmt.Fprintf(out, "sandbox_user_id:  %d\n", cfg.SandboxUserID)
	return 0
}

// resolveRootDirForInit is resolveRootDir without the compose-file
// requirement: init may run in a directory that has nothing yet.
func resolveRootDirForInit(cli CLI, deps Dependencies) (string, error) {
	if cli.Dir != "" {
		return filepath.Abs(cli.Dir)
	}
	if deps.WorkDir != "" {
		return deps.WorkDir, nil
	}
	return os.Getwd()
}

func reportMaterialized(out io.Writer, path string, created bool) {
	if created {
		fmt.Fprintf(out, "Created %s\n", path)
	} else {
		fmt.Fprintf(out, "Kept existing %s\n", path)
	}
}
