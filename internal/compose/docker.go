// Where: internal/compose/docker.go
// What: Docker SDK helpers for container state queries.
// Why: Provide scoped, label-filtered queries for readiness detection.
package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"

	"github.com/openhands-tools/handsctl/internal/state"
)

const (
	// ComposeProjectLabel is set by docker compose on every managed container.
	ComposeProjectLabel = "com.docker.compose.project"
	// ComposeServiceLabel carries the service name within the project.
	ComposeServiceLabel = "com.docker.compose.service"
)

// DockerClient defines the subset of Docker SDK methods used by this package.
// This interface enables mocking the Docker client in tests.
type DockerClient interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
}

// ListContainersByProject returns container information for all containers
// belonging to the specified compose project, including stopped ones.
func ListContainersByProject(
	ctx context.Context,
	client DockerClient,
	project string,
) ([]state.ContainerInfo, error) {
	labelFilter := filters.NewArgs()
	labelFilter.Add("label", fmt.Sprintf("%s=%s", ComposeProjectLabel, project))

	containers, err := client.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: labelFilter,
	})
	if err != nil {
		return nil, err
	}

	result := make([]state.ContainerInfo, 0, len(containers))
	for _, ctr := range containers {
		if ctr.Labels == nil || ctr.Labels[ComposeProjectLabel] != project {
			continue
		}

		name := ""
		if len(ctr.Names) > 0 {
			name = strings.TrimPrefix(ctr.Names[0], "/")
		}

		result = append(result, state.ContainerInfo{
			Name:    name,
			Service: ctr.Labels[ComposeServiceLabel],
			State:   ctr.State,
		})
	}
	return result, nil
}

// ProjectRunning reports whether the compose project's container set is up,
// aggregated per state.Running.
func ProjectRunning(ctx context.Context, client DockerClient, project string) (bool, error) {
	containers, err := ListContainersByProject(ctx, client, project)
	if err != nil {
		return false, err
	}
	return state.Running(containers), nil
}
