// Where: internal/config/config.go
// What: Runtime configuration resolution.
// Why: Build one immutable config at startup instead of reading ambient env mid-flow.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/openhands-tools/handsctl/internal/meta"
)

// Environment override keys. Every Runtime field has one.
const (
	EnvBackendHost     = "OH_BACKEND_HOST"
	EnvBackendPort     = "OH_BACKEND_PORT"
	EnvFrontendHost    = "OH_FRONTEND_HOST"
	EnvFrontendPort    = "OH_FRONTEND_PORT"
	EnvFrontendEnabled = "OH_FRONTEND_ENABLED"
	EnvDebug           = "OH_DEBUG"
	EnvCORSOrigins     = "OH_CORS_ORIGINS"
	EnvWorkspaceBase   = "OH_WORKSPACE_BASE"
	EnvSandboxUserID   = "OH_SANDBOX_USER_ID"
	EnvComposeProject  = "OH_COMPOSE_PROJECT"
)

// Runtime is the resolved configuration for one orchestration run.
// It is constructed once by Resolve and never mutated afterwards.
type Runtime struct {
	BackendHost     string
	BackendPort     int
	FrontendHost    string
	FrontendPort    int
	FrontendEnabled bool
	Debug           bool
	CORSOrigins     string
	WorkspaceBase   string
	SandboxUserID   int
	Project         string
}

// Defaults returns the built-in configuration. The sandbox user id defaults
// to the invoking user so workspace files stay owned by the operator.
func Defaults() Runtime {
	return Runtime{
		BackendHost:     "localhost",
		BackendPort:     3000,
		FrontendHost:    "localhost",
		FrontendPort:    3001,
		FrontendEnabled: true,
		Debug:           false,
		CORSOrigins:     "http://localhost:3001",
		WorkspaceBase:   "./workspace",
		SandboxUserID:   os.Getuid(),
		Project:         meta.DefaultProject,
	}
}

// Resolve builds the effective Runtime for rootDir: defaults, then the
// project file (handsctl.yaml, schema-validated) if present, then
// environment overrides. The workspace path is absolutized against rootDir.
func Resolve(rootDir string, lookup func(string) (string, bool)) (Runtime, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := Defaults()

	projectFile := filepath.Join(rootDir, meta.ProjectConfigFile)
	if _, err := os.Stat(projectFile); err == nil {
		loaded, err := loadProjectFile(projectFile, cfg)
		if err != nil {
			return Runtime{}, err
		}
		cfg = loaded
	}

	cfg, err := applyEnvOverrides(cfg, lookup)
	if err != nil {
		return Runtime{}, err
	}

	if !filepath.IsAbs(cfg.WorkspaceBase) {
		cfg.WorkspaceBase = filepath.Join(rootDir, cfg.WorkspaceBase)
	}

	if err := cfg.Validate(); err != nil {
		return Runtime{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that could never reach readiness.
func (r Runtime) Validate() error {
	if err := validatePort("backend port", r.BackendPort); err != nil {
		return err
	}
	if r.FrontendEnabled {
		if err := validatePort("frontend port", r.FrontendPort); err != nil {
			return err
		}
		if r.FrontendPort == r.BackendPort {
			return fmt.Errorf("backend and frontend ports collide: %d", r.BackendPort)
		}
	}
	if strings.TrimSpace(r.Project) == "" {
		return fmt.Errorf("compose project name is required")
	}
	if strings.TrimSpace(r.BackendHost) == "" {
		return fmt.Errorf("backend host is required")
	}
	return nil
}

// BackendAddr returns the host:port the backend is reachable on.
func (r Runtime) BackendAddr() string {
	return fmt.Sprintf("%s:%d", r.BackendHost, r.BackendPort)
}

// FrontendAddr returns the host:port the frontend is reachable on.
func (r Runtime) FrontendAddr() string {
	return fmt.Sprintf("%s:%d", r.FrontendHost, r.FrontendPort)
}

func validatePort(label string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s out of range: %d", label, port)
	}
	return nil
}

func applyEnvOverrides(cfg Runtime, lookup func(string) (string, bool)) (Runtime, error) {
	if v, ok := lookupTrimmed(lookup, EnvBackendHost); ok {
		cfg.BackendHost = v
	}
	if v, ok := lookupTrimmed(lookup, EnvFrontendHost); ok {
		cfg.FrontendHost = v
	}
	if v, ok := lookupTrimmed(lookup, EnvCORSOrigins); ok {
		cfg.CORSOrigins = v
	}
	if v, ok := lookupTrimmed(lookup, EnvWorkspaceBase); ok {
		cfg.WorkspaceBase = v
	}
	if v, ok := lookupTrimmed(lookup, EnvComposeProject); ok {
		cfg.Project = v
	}

	var err error
	if cfg.BackendPort, err = overrideInt(lookup, EnvBackendPort, cfg.BackendPort); err != nil {
		return Runtime{}, err
	}
	if cfg.FrontendPort, err = overrideInt(lookup, EnvFrontendPort, cfg.FrontendPort); err != nil {
		return Runtime{}, err
	}
	if cfg.SandboxUserID, err = overrideInt(lookup, EnvSandboxUserID, cfg.SandboxUserID); err != nil {
		return Runtime{}, err
	}
	if cfg.FrontendEnabled, err = overrideBool(lookup, EnvFrontendEnabled, cfg.FrontendEnabled); err != nil {
		return Runtime{}, err
	}
	if cfg.Debug, err = overrideBool(lookup, EnvDebug, cfg.Debug); err != nil {
		return Runtime{}, err
	}

	return cfg, nil
}

func lookupTrimmed(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

func overrideInt(lookup func(string) (string, bool), key string, current int) (int, error) {
	v, ok := lookupTrimmed(lookup, key)
	if !ok {
		return current, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return parsed, nil
}

func overrideBool(lookup func(string) (string, bool), key string, current bool) (bool, error) {
	v, ok := lookupTrimmed(lookup, key)
	if !ok {
		return current, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %q", key, v)
	}
	return parsed, nil
}
