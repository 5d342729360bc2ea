package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	Name    string   `yaml:"name"`
	Enabled bool     `yaml:"enabled"`
	Hosts   []string `yaml:"hosts"`
}

func TestConfigRoot_Default(t *testing.T) {
	originalGetenv := osGetenv
	defer func() { osGetenv = originalGetenv }()
	osGetenv = func(string) string { return "" }

	assert.Equal(t, "/etc/dynamite", ConfigRoot())
}

func TestConfigRoot_EnvOverride(t *testing.T) {
	originalGetenv := osGetenv
	defer func() { osGetenv = originalGetenv }()
	osGetenv = func(key string) string {
		if key == EnvConfigPath {
			return "/tmp/dynamite-test"
		}
		return ""
	}

	assert.Equal(t, "/tmp/dynamite-test", ConfigRoot())
	assert.Equal(t, filepath.Join("/tmp/dynamite-test", "suricata.yaml"), ServicePath("suricata"))
}

func TestSaveLoadYAML_RoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "sample.yaml")

	in := sampleConfig{Name: "suricata", Enabled: true, Hosts: []string{"10.0.0.5:9200"}}
	require.NoError(t, SaveYAML(path, &in))

	var out sampleConfig
	require.NoError(t, LoadYAML(path, &out))
	assert.Equal(t, in, out)
}

func TestLoadYAML_MissingFile(t *testing.T) {
	var out sampleConfig
	err := LoadYAML(filepath.Join(t.TempDir(), "absent.yaml"), &out)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadYAML_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0644))

	var out sampleConfig
	err := LoadYAML(path, &out)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
