// Where: internal/compose/docker_test.go
// What: Tests for Docker SDK wrappers.
// Why: Ensure container state queries are scoped and deterministic.
package compose

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types/container"

	"github.com/openhands-tools/handsctl/internal/state"
)

type fakeDockerClient struct {
	containers []container.Summary
	listErr    error
	stopped    []string
	removed    []string
}

func (f *fakeDockerClient) ContainerList(_ context.Context, _ container.ListOptions) ([]container.Summary, error) {
	return f.containers, f.listErr
}

func (f *fakeDockerClient) ContainerStop(_ context.Context, id string, _ container.StopOptions) error {
	f.stopped = append(f.stopped, id)
	return nil
}

func (f *fakeDockerClient) ContainerRemove(_ context.Context, id string, _ container.RemoveOptions) error {
	f.removed = append(f.removed, id)
	return nil
}

func TestListContainersByProject(t *testing.T) {
	client := &fakeDockerClient{
		containers: []container.Summary{
			{
				Names: []string{"/openhands-backend-1"},
				State: "running",
				Labels: map[string]string{
					ComposeProjectLabel: "openhands",
					ComposeServiceLabel: "backend",
				},
			},
			{State: "exited", Labels: map[string]string{ComposeProjectLabel: "other"}},
			{State: "created", Labels: map[string]string{"unrelated": "value"}},
		},
	}

	containers, err := ListContainersByProject(context.Background(), client, "openhands")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(containers) != 1 {
		t.Fatalf("expected 1 container, got %d", len(containers))
	}
	want := state.ContainerInfo{Name: "openhands-backend-1", Service: "backend", State: "running"}
	if containers[0] != want {
		t.Fatalf("unexpected container info: %v", containers[0])
	}
}

func TestProjectRunningAllRunning(t *testing.T) {
	client := &fakeDockerClient{
		containers: []container.Summary{
			{State: "running", Labels: map[string]string{ComposeProjectLabel: "openhands", ComposeServiceLabel: "backend"}},
			{State: "running", Labels: map[string]string{ComposeProjectLabel: "openhands", ComposeServiceLabel: "frontend"}},
		},
	}

	running, err := ProjectRunning(context.Background(), client, "openhands")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !running {
		t.Fatalf("expected project to be running")
	}
}

func TestProjectRunningPartialIsNotRunning(t *testing.T) {
	client := &fakeDockerClient{
		containers: []container.Summary{
			{State: "running", Labels: map[string]string{ComposeProjectLabel: "openhands", ComposeServiceLabel: "backend"}},
			{State: "exited", Labels: map[string]string{ComposeProjectLabel: "openhands", ComposeServiceLabel: "frontend"}},
		},
	}

	running, err := ProjectRunning(context.Background(), client, "openhands")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if running {
		t.Fatalf("expected exited frontend to count against readiness")
	}
}

func TestProjectRunningNoContainers(t *testing.T) {
	running, err := ProjectRunning(context.Background(), &fakeDockerClient{}, "openhands")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if running {
		t.Fatalf("expected empty project to not be running")
	}
}

func TestProjectRunningPropagatesListError(t *testing.T) {
	wantErr := errors.New("daemon unavailable")
	_, err := ProjectRunning(context.Background(), &fakeDockerClient{listErr: wantErr}, "openhands")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected list error, got %v", err)
	}
}
