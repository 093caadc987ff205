// Where: internal/app/deps.go
// What: Dependency wiring between commands and the compose layer.
// Why: Centralize construction so every collaborator is fakeable in tests.
package app

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/openhands-tools/handsctl/internal/compose"
	"github.com/openhands-tools/handsctl/internal/state"
)

var ErrDockerClientNil = errors.New("docker client is nil")

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of various subsystems.
type Dependencies struct {
	WorkDir       string
	Out           io.Writer
	LookupEnv     func(string) (string, bool)
	Prompter      Prompter
	SignalContext func() (context.Context, context.CancelFunc)
	Remember      func(rootDir, project string)
	Up            UpDeps
	Down          DownDeps
	Logs          LogsDeps
	Status        StatusDeps
}

type UpDeps struct {
	Upper    Upper
	Downer   Downer
	Waiter   ReadinessWaiter
	Capturer LogCapturer
	Checker  RunningChecker
	// WatchSleep overrides the watch loop's sleep in tests.
	WatchSleep func(ctx context.Context, d time.Duration) error
}

type DownDeps struct {
	Downer Downer
}

type LogsDeps struct {
	Logger Logger
}

type StatusDeps struct {
	Lister ContainerLister
}

// Upper starts the compose project. A failure is fatal and not retried.
type Upper interface {
	Up(ctx context.Context, request UpRequest) error
}

// UpRequest contains parameters for starting the deployment.
type UpRequest struct {
	Context  state.Context
	Frontend bool
	Build    bool
}

// Downer tears the compose project down. Absence of a running instance is
// not an error.
type Downer interface {
	Down(ctx context.Context, project string, removeVolumes bool) error
}

// LogCapturer fetches a log tail for failure diagnostics.
type LogCapturer interface {
	Capture(ctx context.Context, stateCtx state.Context, frontend bool) string
}

// ContainerLister reports per-container state for a project.
type ContainerLister interface {
	List(ctx context.Context, project string) ([]state.ContainerInfo, error)
}

// Logger streams compose logs and lists the project's services.
type Logger interface {
	Logs(ctx context.Context, request LogsRequest) error
	ListServices(ctx context.Context, request LogsRequest) ([]string, error)
}

// LogsRequest contains parameters for viewing container logs.
type LogsRequest struct {
	Context    state.Context
	Frontend   bool
	Follow     bool
	Tail       int
	Timestamps bool
	Service    string
}

// NewUpper creates an Upper that starts containers via docker compose.
func NewUpper() Upper {
	return upperFunc(func(ctx context.Context, request UpRequest) error {
		opts := compose.UpOptions{
			RootDir:  request.Context.RootDir,
			Project:  request.Context.Project,
			Frontend: request.Frontend,
			Detach:   true,
			Build:    request.Build,
			EnvFile:  request.Context.EnvFile,
		}
		return compose.UpProject(ctx, compose.ExecRunner{}, opts)
	})
}

type upperFunc func(ctx context.Context, request UpRequest) error

func (fn upperFunc) Up(ctx context.Context, request UpRequest) error {
	return fn(ctx, request)
}

// NewDowner creates a Downer that uses the Docker client to stop and remove
// the project's containers.
func NewDowner(client compose.DockerClient) Downer {
	return downerFunc(func(ctx context.Context, project string, removeVolumes bool) error {
		if client == nil {
			return ErrDockerClientNil
		}
		return compose.DownProject(ctx, client, project, removeVolumes)
	})
}

type downerFunc func(ctx context.Context, project string, removeVolumes bool) error

func (fn downerFunc) Down(ctx context.Context, project string, removeVolumes bool) error {
	return fn(ctx, project, removeVolumes)
}

// NewRunningChecker adapts the Docker client to the readiness waiter's
// container-state signal.
func NewRunningChecker(client compose.DockerClient) RunningChecker {
	return checkerFunc(func(ctx context.Context, project string) (bool, error) {
		if client == nil {
			return false, ErrDockerClientNil
		}
		return compose.ProjectRunning(ctx, client, project)
	})
}

type checkerFunc func(ctx context.Context, project string) (bool, error)

func (fn checkerFunc) Running(ctx context.Context, project string) (bool, error) {
	return fn(ctx, project)
}

// NewContainerLister adapts the Docker client for the status command.
func NewContainerLister(client compose.DockerClient) ContainerLister {
	return listerFunc(func(ctx context.Context, project string) ([]state.ContainerInfo, error) {
		if client == nil {
			return nil, ErrDockerClientNil
		}
		return compose.ListContainersByProject(ctx, client, project)
	})
}

type listerFunc func(ctx context.Context, project string) ([]state.ContainerInfo, error)

func (fn listerFunc) List(ctx context.Context, project string) ([]state.ContainerInfo, error) {
	return fn(ctx, project)
}

// diagnosticTail is the log tail attached to readiness failures.
const diagnosticTail = 120

// NewLogCapturer creates a LogCapturer backed by docker compose logs.
func NewLogCapturer() LogCapturer {
	return capturerFunc(func(ctx context.Context, stateCtx state.Context, frontend bool) string {
		// Capture must work even while the parent context is being canceled.
		captureCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 15*time.Second)
		defer cancel()
		return compose.CaptureLogs(captureCtx, compose.ExecRunner{}, compose.LogsOptions{
			RootDir:  stateCtx.RootDir,
			Project:  stateCtx.Project,
			Frontend: frontend,
			Tail:     diagnosticTail,
		})
	})
}

type capturerFunc func(ctx context.Context, stateCtx state.Context, frontend bool) string

func (fn capturerFunc) Capture(ctx context.Context, stateCtx state.Context, frontend bool) string {
	return fn(ctx, stateCtx, frontend)
}

// NewLogger creates a Logger that streams container logs via docker compose.
func NewLogger() Logger {
	return loggerImpl{
		logsFn: func(ctx context.Context, request LogsRequest) error {
			return compose.LogsProject(ctx, compose.ExecRunner{}, logsOptions(request))
		},
		listServicesFn: func(ctx context.Context, request LogsRequest) ([]string, error) {
			return compose.ListServices(ctx, compose.ExecRunner{}, logsOptions(request))
		},
	}
}

func logsOptions(request LogsRequest) compose.LogsOptions {
	return compose.LogsOptions{
		RootDir:    request.Context.RootDir,
		Project:    request.Context.Project,
		Frontend:   request.Frontend,
		Follow:     request.Follow,
		Tail:       request.Tail,
		Timestamps: request.Timestamps,
		Service:    request.Service,
	}
}

type loggerImpl struct {
	logsFn         func(ctx context.Context, request LogsRequest) error
	listServicesFn func(ctx context.Context, request LogsRequest) ([]string, error)
}

func (l loggerImpl) Logs(ctx context.Context, request LogsRequest) error {
	return l.logsFn(ctx, request)
}

func (l loggerImpl) ListServices(ctx context.Context, request LogsRequest) ([]string, error) {
	return l.listServicesFn(ctx, request)
}
