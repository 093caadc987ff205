// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.handsctl/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/openhands-tools/handsctl/internal/meta"
)

// GlobalConfig represents the ~/.handsctl/config.yaml global configuration.
// It remembers the last deployment directory so commands can run from anywhere.
type GlobalConfig struct {
	Version     int    `yaml:"version"`
	LastRoot    string `yaml:"last_root,omitempty"`
	LastProject string `yaml:"last_project,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{Version: 1}
}

// GlobalConfigPath returns the path to the global config file.
// OH_CONFIG_HOME overrides the directory for tests and sandboxed installs.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(meta.EnvPrefix + "_CONFIG_HOME")); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, "config.yaml"), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}

// RememberDeployment records the last used root/project so later invocations
// outside the deployment directory can still address it. Best-effort.
func RememberDeployment(rootDir, project string) {
	path, err := GlobalConfigPath()
	if err != nil {
		return
	}
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		cfg = DefaultGlobalConfig()
	}
	cfg.LastRoot = rootDir
	cfg.LastProject = project
	_ = SaveGlobalConfig(path, cfg)
}
