// Where: internal/app/test_helpers_test.go
// What: Shared fakes and fixtures for app command tests.
// Why: Drive commands through Run without docker or real sleeps.
package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/openhands-tools/handsctl/internal/config"
	"github.com/openhands-tools/handsctl/internal/state"
)

type fakeUpper struct {
	calls    int
	requests []UpRequest
	err      error
}

func (f *fakeUpper) Up(_ context.Context, request UpRequest) error {
	f.calls++
	f.requests = append(f.requests, request)
	return f.err
}

type fakeDowner struct {
	calls    int
	projects []string
	volumes  []bool
	err      error
}

func (f *fakeDowner) Down(_ context.Context, project string, removeVolumes bool) error {
	f.calls++
	f.projects = append(f.projects, project)
	f.volumes = append(f.volumes, removeVolumes)
	return f.err
}

type fakeWaiter struct {
	calls   int
	outcome ReadinessOutcome
	err     error
}

func (f *fakeWaiter) Wait(_ context.Context, _ config.Runtime) (ReadinessOutcome, error) {
	f.calls++
	return f.outcome, f.err
}

type fakeCapturer struct {
	calls int
	logs  string
}

func (f *fakeCapturer) Capture(_ context.Context, _ state.Context, _ bool) string {
	f.calls++
	return f.logs
}

type fakeLister struct {
	containers []state.ContainerInfo
	err        error
}

func (f *fakeLister) List(_ context.Context, _ string) ([]state.ContainerInfo, error) {
	return f.containers, f.err
}

type fakeLogger struct {
	requests []LogsRequest
	services []string
	err      error
}

func (f *fakeLogger) Logs(_ context.Context, request LogsRequest) error {
	f.requests = append(f.requests, request)
	return f.err
}

func (f *fakeLogger) ListServices(_ context.Context, _ LogsRequest) ([]string, error) {
	return f.services, f.err
}

// newDeploymentDir creates a deployment root with compose files and
// isolates the global config under a temp home.
func newDeploymentDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{"docker-compose.yml", "docker-compose.frontend.yml"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("services: {}\n"), 0o644); err != nil {
			t.Fatalf("write compose fixture: %v", err)
		}
	}
	t.Setenv("OH_CONFIG_HOME", t.TempDir())
	return root
}

func noEnv(string) (string, bool) { return "", false }

func baseDeps(root string) Dependencies {
	return Dependencies{
		WorkDir:   root,
		LookupEnv: noEnv,
		Remember:  func(string, string) {},
		SignalContext: func() (context.Context, context.CancelFunc) {
			return context.WithCancel(context.Background())
		},
	}
}
