// Where: internal/app/command_context.go
// What: Shared context resolution for CLI commands.
// Why: Reduce duplicated root/config setup across commands.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/openhands-tools/handsctl/internal/config"
	"github.com/openhands-tools/handsctl/internal/state"
)

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

// commandContext bundles the resolved deployment root, runtime config, and
// compose context for one command invocation.
type commandContext struct {
	Cfg config.Runtime
	Ctx state.Context
}

// resolveCommandContext locates the deployment directory (flag, then cwd,
// then the globally remembered root) and resolves the runtime config there.
func resolveCommandContext(cli CLI, deps Dependencies) (commandContext, error) {
	rootDir, err := resolveRootDir(cli, deps)
	if err != nil {
		return commandContext{}, err
	}

	cfg, err := resolveRuntime(rootDir, cli, deps)
	if err != nil {
		return commandContext{}, err
	}

	ctx, err := state.ResolveContext(rootDir, cfg.Project)
	if err != nil {
		return commandContext{}, err
	}
	ctx.EnvFile = cli.EnvFile

	return commandContext{Cfg: cfg, Ctx: ctx}, nil
}

// resolveRuntime resolves the runtime config for rootDir and applies the
// global flag overrides, which outrank the environment.
func resolveRuntime(rootDir string, cli CLI, deps Dependencies) (config.Runtime, error) {
	cfg, err := config.Resolve(rootDir, deps.LookupEnv)
	if err != nil {
		return config.Runtime{}, err
	}

	if project := strings.TrimSpace(cli.Project); project != "" {
		cfg.Project = project
	}
	if workspace := strings.TrimSpace(cli.Workspace); workspace != "" {
		if !filepath.IsAbs(workspace) {
			workspace = filepath.Join(rootDir, workspace)
		}
		cfg.WorkspaceBase = workspace
	}
	if err := cfg.Validate(); err != nil {
		return config.Runtime{}, err
	}
	return cfg, nil
}

func resolveRootDir(cli CLI, deps Dependencies) (string, error) {
	if dir := strings.TrimSpace(cli.Dir); dir != "" {
		return filepath.Abs(dir)
	}

	workDir := deps.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		workDir = wd
	}
	if _, err := os.Stat(filepath.Join(workDir, "docker-compose.yml")); err == nil {
		return workDir, nil
	}

	// Fall back to the last deployment this CLI managed.
	path, err := config.GlobalConfigPath()
	if err == nil {
		if global, err := config.LoadGlobalConfig(path); err == nil && global.LastRoot != "" {
			if _, err := os.Stat(filepath.Join(global.LastRoot, "docker-compose.yml")); err == nil {
				return global.LastRoot, nil
			}
		}
	}

	return "", fmt.Errorf("no deployment found in %s (run with -C <dir> or from the deployment directory)", workDir)
}
