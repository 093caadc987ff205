// Where: internal/config/frontend.go
// What: Frontend env file materialization.
// Why: Produce the effective frontend config once, from the resolved runtime values.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/openhands-tools/handsctl/assets"
	"github.com/openhands-tools/handsctl/internal/meta"
)

// frontendEnvData is the template input for frontend.env.tmpl. Hosts are
// browser-facing: a bind-all backend address must never leak into the file,
// so it is rewritten to localhost before rendering.
type frontendEnvData struct {
	BackendHost   string
	BackendPort   int
	FrontendHost  string
	FrontendPort  int
	Debug         bool
	CORSOrigins   string
	WorkspaceBase string
	SandboxUserID int
	Project       string
}

// MaterializeFrontendEnv renders frontend/.env under rootDir from the
// embedded template if it does not already exist. The file persists across
// runs until manually removed. Returns the path and whether it was created.
func MaterializeFrontendEnv(rootDir string, cfg Runtime) (string, bool, error) {
	path := filepath.Join(rootDir, meta.FrontendEnvFile)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !os.IsNotExist(err) {
		return "", false, err
	}

	rendered, err := renderFrontendEnv(cfg)
	if err != nil {
		return "", false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, err
	}
	if err := os.WriteFile(path, rendered, 0o644); err != nil {
		return "", false, err
	}
	return path, true, nil
}

func renderFrontendEnv(cfg Runtime) ([]byte, error) {
	raw, err := assets.Templates.ReadFile("templates/frontend.env.tmpl")
	if err != nil {
		return nil, fmt.Errorf("read frontend template: %w", err)
	}

	tmpl, err := template.New("frontend.env").Funcs(sprig.TxtFuncMap()).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse frontend template: %w", err)
	}

	data := frontendEnvData{
		BackendHost:   browserHost(cfg.BackendHost),
		BackendPort:   cfg.BackendPort,
		FrontendHost:  browserHost(cfg.FrontendHost),
		FrontendPort:  cfg.FrontendPort,
		Debug:         cfg.Debug,
		CORSOrigins:   cfg.CORSOrigins,
		WorkspaceBase: cfg.WorkspaceBase,
		SandboxUserID: cfg.SandboxUserID,
		Project:       cfg.Project,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render frontend template: %w", err)
	}
	return buf.Bytes(), nil
}

// browserHost maps bind-all addresses to the address a browser can reach.
func browserHost(host string) string {
	switch host {
	case "0.0.0.0", "::", "[::]":
		return "localhost"
	}
	return host
}
