// Where: internal/config/project_file.go
// What: handsctl.yaml load and schema validation.
// Why: Catch malformed deployment config before touching containers.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/openhands-tools/handsctl/assets"
)

// projectFile mirrors the handsctl.yaml structure. Absent fields keep the
// values already resolved from defaults.
type projectFile struct {
	Version int    `json:"version"`
	Project string `json:"project,omitempty"`
	Backend *struct {
		Host string `json:"host,omitempty"`
		Port int    `json:"port,omitempty"`
	} `json:"backend,omitempty"`
	Frontend *struct {
		Enabled *bool  `json:"enabled,omitempty"`
		Host    string `json:"host,omitempty"`
		Port    int    `json:"port,omitempty"`
	} `json:"frontend,omitempty"`
	Debug         *bool  `json:"debug,omitempty"`
	CORSOrigins   string `json:"cors_origins,omitempty"`
	Workspace     string `json:"workspace,omitempty"`
	SandboxUserID *int   `json:"sandbox_user_id,omitempty"`
}

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func loadProjectFile(path string, base Runtime) (Runtime, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Runtime{}, err
	}

	jsonData, err := validateProjectConfig(payload)
	if err != nil {
		return Runtime{}, fmt.Errorf("%s: %w", path, err)
	}

	var file projectFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return Runtime{}, fmt.Errorf("%s: %w", path, err)
	}

	cfg := base
	if file.Project != "" {
		cfg.Project = file.Project
	}
	if file.Backend != nil {
		if file.Backend.Host != "" {
			cfg.BackendHost = file.Backend.Host
		}
		if file.Backend.Port != 0 {
			cfg.BackendPort = file.Backend.Port
		}
	}
	if file.Frontend != nil {
		if file.Frontend.Enabled != nil {
			cfg.FrontendEnabled = *file.Frontend.Enabled
		}
		if file.Frontend.Host != "" {
			cfg.FrontendHost = file.Frontend.Host
		}
		if file.Frontend.Port != 0 {
			cfg.FrontendPort = file.Frontend.Port
		}
	}
	if file.Debug != nil {
		cfg.Debug = *file.Debug
	}
	if file.CORSOrigins != "" {
		cfg.CORSOrigins = file.CORSOrigins
	}
	if file.Workspace != "" {
		cfg.WorkspaceBase = file.Workspace
	}
	if file.SandboxUserID != nil {
		cfg.SandboxUserID = *file.SandboxUserID
	}
	return cfg, nil
}

// validateProjectConfig converts YAML to JSON and validates it against the
// embedded schema, returning the JSON payload on success.
func validateProjectConfig(content []byte) ([]byte, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, err
	}

	jsonData, err := sigsyaml.YAMLToJSON(content)
	if err != nil {
		return nil, fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return nil, err
	}
	return jsonData, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("handsctl.schema.json", bytes.NewReader(assets.ProjectConfigSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("handsctl.schema.json")
	})
	return compiledSchema, schemaErr
}
