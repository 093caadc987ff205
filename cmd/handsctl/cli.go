// Where: cmd/handsctl/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"io"
	"os"

	"github.com/openhands-tools/handsctl/internal/app"
	"github.com/openhands-tools/handsctl/internal/compose"
	"github.com/openhands-tools/handsctl/internal/probe"
)

var (
	getwd           = os.Getwd
	newDockerClient = compose.NewDockerClient
)

// buildDependencies constructs all runtime dependencies required by the CLI.
// It initializes the Docker client and the per-command collaborators.
// Returns the dependencies, a closer for cleanup, and any initialization error.
func buildDependencies() (app.Dependencies, io.Closer, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	client, err := newDockerClient()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	checker := app.NewRunningChecker(client)
	downer := app.NewDowner(client)
	deps := app.Dependencies{
		WorkDir:   workDir,
		Out:       os.Stdout,
		LookupEnv: os.LookupEnv,
		Prompter:  app.HuhPrompter{},
		Up: app.UpDeps{
			Upper:    app.NewUpper(),
			Downer:   downer,
			Waiter:   app.NewReadinessWaiter(checker, probe.NewTCPProber()),
			Capturer: app.NewLogCapturer(),
			Checker:  checker,
		},
		Down: app.DownDeps{
			Downer: downer,
		},
		Logs: app.LogsDeps{
			Logger: app.NewLogger(),
		},
		Status: app.StatusDeps{
			Lister: app.NewContainerLister(client),
		},
	}

	return deps, asCloser(client), nil
}

// asCloser attempts to cast the Docker client to an io.Closer.
// Returns nil if the client does not implement the Closer interface.
func asCloser(client compose.DockerClient) io.Closer {
	if closer, ok := client.(io.Closer); ok {
		return closer
	}
	return nil
}
