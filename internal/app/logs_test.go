// Where: internal/app/logs_test.go
// What: Tests for the logs command.
// Why: Pin flag propagation and interactive service selection.
package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type fakePrompter struct {
	title   string
	options []selectOption
	value   string
	err     error
}

func (p *fakePrompter) SelectValue(title string, options []selectOption) (string, error) {
	p.title = title
	p.options = options
	return p.value, p.err
}

func forceTerminal(t *testing.T, interactive bool) {
	t.Helper()
	previous := stdinIsTerminal
	stdinIsTerminal = func() bool { return interactive }
	t.Cleanup(func() { stdinIsTerminal = previous })
}

func TestRunLogsPropagatesFlags(t *testing.T) {
	root := newDeploymentDir(t)
	logger := &fakeLogger{}
	deps := baseDeps(root)
	deps.Logs = LogsDeps{Logger: logger}
	forceTerminal(t, false)
	var out bytes.Buffer
	deps.Out = &out

	exitCode := Run([]string{"logs", "backend", "--follow", "--tail", "50", "--timestamps"}, deps)
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\n%s", exitCode, out.String())
	}
	if len(logger.requests) != 1 {
		t.Fatalf("expected one logs call, got %d", len(logger.requests))
	}
	req := logger.requests[0]
	if req.Service != "backend" || !req.Follow || req.Tail != 50 || !req.Timestamps {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.Context.Project != "openhands" {
		t.Fatalf("unexpected project: %q", req.Context.Project)
	}
}

func TestRunLogsInteractiveSelection(t *testing.T) {
	root := newDeploymentDir(t)
	logger := &fakeLogger{services: []string{"backend", "frontend"}}
	prompter := &fakePrompter{value: "frontend"}
	deps := baseDeps(root)
	deps.Logs = LogsDeps{Logger: logger}
	deps.Prompter = prompter
	forceTerminal(t, true)
	var out bytes.Buffer
	deps.Out = &out

	if exitCode := Run([]string{"logs"}, deps); exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\n%s", exitCode, out.String())
	}
	// "All services" plus the two compose services.
	if len(prompter.options) != 3 || prompter.options[0].Value != "" {
		t.Fatalf("unexpected options: %+v", prompter.options)
	}
	if logger.requests[0].Service != "frontend" {
		t.Fatalf("expected selected service, got %q", logger.requests[0].Service)
	}
}

func TestRunLogsNonInteractiveDefaultsToAllServices(t *testing.T) {
	root := newDeploymentDir(t)
	logger := &fakeLogger{services: []string{"backend"}}
	prompter := &fakePrompter{value: "backend"}
	deps := baseDeps(root)
	deps.Logs = LogsDeps{Logger: logger}
	deps.Prompter = prompter
	forceTerminal(t, false)
	var out bytes.Buffer
	deps.Out = &out

	if exitCode := Run([]string{"logs"}, deps); exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\n%s", exitCode, out.String())
	}
	if prompter.options != nil {
		t.Fatalf("prompter must not run without a terminal")
	}
	if logger.requests[0].Service != "" {
		t.Fatalf("expected all services, got %q", logger.requests[0].Service)
	}
}

func TestRunLogsReportsStreamErrors(t *testing.T) {
	root := newDeploymentDir(t)
	deps := baseDeps(root)
	deps.Logs = LogsDeps{Logger: &fakeLogger{err: errors.New("no such service: db")}}
	forceTerminal(t, false)
	var out bytes.Buffer
	deps.Out = &out

	if exitCode := Run([]string{"logs", "db"}, deps); exitCode != 1 {
		t.Fatalf("expected exit 1, got %d", exitCode)
	}
	if !strings.Contains(out.String(), "no such service") {
		t.Fatalf("expected error output:\n%s", out.String())
	}
}
