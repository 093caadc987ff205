// Where: internal/config/init.go
// What: Default project file materialization.
// Why: Give `config init` a single place to seed handsctl.yaml.
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

// WriteDefaultProjectFile writes handsctl.yaml under rootDir from the
// embedded template if absent. Returns the path and whether it was created.
func WriteDefaultProjectFile(rootDir string, cfg Runtime) (string, bool, error) {
	path := filepath.Join(rootDir, meta.ProjectConfigFile)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !os.IsNotExist(err) {
		return "", false, err
	}

	raw, err := assets.Templates.ReadFile("templates/handsctl.yaml.tmpl")
	if err != nil {
		return "", false, fmt.Errorf("read project template: %w", err)
	}

	tmpl, err := template.New("handsctl.yaml").Funcs(sprig.TxtFuncMap()).Parse(string(raw))
	if err != nil {
		return "", false, fmt.Errorf("parse project template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return "", false, fmt.Errorf("render project template: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", false, err
	}
	return path, true, nil
}
