// Where: internal/app/config_cmd_test.go
// What: Tests for config init and config show.
// Why: Pin file materialization and the resolved-config report.
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunConfigInitSeedsFiles(t *testing.T) {
	t.Setenv("OH_CONFIG_HOME", t.TempDir())
	root := t.TempDir() // no compose files: init must still work
	deps := baseDeps(root)
	var out bytes.Buffer
	deps.Out = &out

	if exitCode := Run([]string{"config", "init"}, deps); exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\n%s", exitCode, out.String())
	}

	project, err := os.ReadFile(filepath.Join(root, "handsctl.yaml"))
	if err != nil {
		t.Fatalf("expected project file: %v", err)
	}
	if !strings.Contains(string(project), "project: openhands") {
		t.Fatalf("unexpected project file:\n%s", project)
	}
	if _, err := os.Stat(filepath.Join(root, "frontend", ".env")); err != nil {
		t.Fatalf("expected frontend env: %v", err)
	}
	if strings.Count(out.String(), "Created") != 2 {
		t.Fatalf("expected two created files:\n%s", out.String())
	}
}

func TestRunConfigInitKeepsExistingFiles(t *testing.T) {
	t.Setenv("OH_CONFIG_HOME", t.TempDir())
	root := t.TempDir()
	deps := baseDeps(root)
	var out bytes.Buffer
	deps.Out = &out

	if exitCode := Run([]string{"config", "init"}, deps); exitCode != 0 {
		t.Fatalf("first init: got %d\n%s", exitCode, out.String())
	}

	custom := []byte("VITE_BACKEND_HOST=example.test:9999\n")
	envPath := filepath.Join(root, "frontend", ".env")
	if err := os.WriteFile(envPath, custom, 0o644); err != nil {
		t.Fatalf("edit env: %v", err)
	}

	out.Reset()
	if exitCode := Run([]string{"config", "init"}, deps); exitCode != 0 {
		t.Fatalf("second init: got %d\n%s", exitCode, out.String())
	}
	if strings.Count(out.String(), "Kept existing") != 2 {
		t.Fatalf("expected both files kept:\n%s", out.String())
	}
	content, err := os.ReadFile(envPath)
	if err != nil {
		t.Fatalf("read env: %v", err)
	}
	if string(content) != string(custom) {
		t.Fatalf("edited env must survive init:\n%s", content)
	}
}

func TestRunConfigShowReportsResolvedValues(t *testing.T) {
	root := newDeploymentDir(t)
	deps := baseDeps(root)
	deps.LookupEnv = func(key string) (string, bool) {
		switch key {
		case "OH_BACKEND_PORT":
			return "8080", true
		case "OH_DEBUG":
			return "true", true
		}
		return "", false
	}
	var out bytes.Buffer
	deps.Out = &out

	if exitCode := Run([]string{"config", "show"}, deps); exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\n%s", exitCode, out.String())
	}
	for _, want := range []string{
		"project:          openhands",
		"backend:          localhost:8080",
		"debug:            true",
		"localhost:3001 (enabled: true)",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("missing %q in:\n%s", want, out.String())
		}
	}
}
