package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath overrides the configuration root directory.
	EnvConfigPath = "DYNAMITE_CONFIG_PATH"

	configFileExt = ".yaml"
)

// Indirection points for testing.
var (
	osGetenv = os.Getenv
)

// ConfigRoot returns the directory holding the per-service configuration
// files: the DYNAMITE_CONFIG_PATH environment variable when set, otherwise
// /etc/dynamite.
func ConfigRoot() string {
	if p := osGetenv(EnvConfigPath); p != "" {
		return p
	}
	return defaultConfigRoot
}

// ServicePath returns the configuration file path for one service
// (e.g. "suricata" -> /etc/dynamite/suricata.yaml).
func ServicePath(service string) string {
	return filepath.Join(ConfigRoot(), service+configFileExt)
}

// LoadYAML reads path and unmarshals it into out. A missing file is
// reported as os.ErrNotExist so callers can fall back to defaults.
func LoadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// SaveYAML marshals in and writes it to path, creating the parent
// directory when needed.
func SaveYAML(path string, in any) error {
	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
