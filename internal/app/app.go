// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/openhands-tools/handsctl/internal/config"
	"github.com/openhands-tools/handsctl/internal/version"
)

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Dir       string     `short:"C" help:"Deployment directory (default: current directory)"`
	EnvFile   string     `name:"env-file" help:"Path to .env file"`
	Project   string     `help:"Compose project name override"`
	Workspace string     `help:"Workspace directory override"`
	Up      UpCmd      `cmd:"" help:"Start the deployment and wait for readiness"`
	Down    DownCmd    `cmd:"" help:"Stop the deployment (idempotent)"`
	Logs    LogsCmd    `cmd:"" help:"View service logs"`
	Status  StatusCmd  `cmd:"" help:"Show container state"`
	Config  ConfigCmd  `cmd:"" name:"config" help:"Manage configuration files"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type UpCmd struct {
	Build bool `help:"Rebuild images before starting"`
	Watch bool `short:"w" help:"Stay attached after ready and exit if the deployment stops"`
}

type DownCmd struct {
	Volumes bool `short:"v" help:"Remove named volumes"`
}

type LogsCmd struct {
	Service    string `arg:"" optional:"" help:"Service name (default: all)"`
	Follow     bool   `short:"f" help:"Follow logs"`
	Tail       int    `help:"Tail the latest N lines"`
	Timestamps bool   `help:"Show timestamps"`
}

type StatusCmd struct{}

type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Materialize default config files"`
	Show ConfigShowCmd `cmd:"" help:"Print the resolved configuration"`
}

type (
	ConfigInitCmd struct{}
	ConfigShowCmd struct{}
	VersionCmd    struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns the process exit code.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	// Load environment file if provided or if .env exists in the current
	// directory, before the runtime config snapshots the environment.
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"up":          runUp,
		"down":        runDown,
		"status":      runStatus,
		"config init": runConfigInit,
		"config show": runConfigShow,
		"version":     func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	if strings.HasPrefix(command, "logs") {
		return runLogs(cli, deps, out), true
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}
