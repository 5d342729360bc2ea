package base

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSettings struct {
	Interfaces []string `yaml:"interfaces"`
	SampleRate int      `yaml:"sample_rate"`
}

type testManager struct {
	ConfigManager
}

func (m *testManager) DefaultSettings() any {
	return &testSettings{Interfaces: []string{"eth0"}, SampleRate: 100}
}

func newTestManager(t *testing.T) *testManager {
	t.Helper()
	return &testManager{ConfigManager: NewConfigManager("fake", t.TempDir(), false, false)}
}

func TestSettingsPath(t *testing.T) {
	m := &testManager{ConfigManager: NewConfigManager("fake", "/etc/dynamite/fake", false, false)}
	assert.Equal(t, "fake", m.ServiceName())
	assert.Equal(t, "/etc/dynamite/fake/fake.yaml", m.SettingsPath())
}

func TestResetWritesDefaults(t *testing.T) {
	m := newTestManager(t)

	msg, err := Reset(m)
	require.NoError(t, err)
	assert.Contains(t, msg, "reset to defaults")

	data, err := os.ReadFile(m.SettingsPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "eth0")
	assert.Contains(t, string(data), "sample_rate: 100")
}

func TestShowRendersSettingsTable(t *testing.T) {
	m := newTestManager(t)
	_, err := Reset(m)
	require.NoError(t, err)

	rendered, err := Show(m)
	require.NoError(t, err)
	assert.Contains(t, rendered, "Setting")
	assert.Contains(t, rendered, "interfaces")
	assert.Contains(t, rendered, "sample_rate")
}

func TestShowMissingSettingsFile(t *testing.T) {
	m := newTestManager(t)
	_, err := Show(m)
	assert.True(t, os.IsNotExist(err))
}

func TestValidateWellFormed(t *testing.T) {
	m := newTestManager(t)
	_, err := Reset(m)
	require.NoError(t, err)

	msg, err := Validate(m)
	require.NoError(t, err)
	assert.Contains(t, msg, "OK (2 settings)")
}

func TestValidateMalformed(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, os.WriteFile(m.SettingsPath(), []byte("interfaces: [unclosed"), 0644))

	_, err := Validate(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid YAML")
}

func TestBackupCopiesSettings(t *testing.T) {
	m := newTestManager(t)
	_, err := Reset(m)
	require.NoError(t, err)

	backupDir := filepath.Join(t.TempDir(), "backups")
	msg, err := Backup(m, backupDir)
	require.NoError(t, err)
	assert.Contains(t, msg, backupDir)

	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "fake-")

	original, err := os.ReadFile(m.SettingsPath())
	require.NoError(t, err)
	copied, err := os.ReadFile(filepath.Join(backupDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, original, copied)
}

func TestOperationsManifest(t *testing.T) {
	ops := Operations()
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, op.Name)
	}
	assert.Equal(t, []string{"show", "validate", "reset", "backup"}, names)

	// Only backup takes a parameter, with a defaulted backup directory.
	for _, op := range ops {
		if op.Name == "backup" {
			require.Len(t, op.Params, 1)
			assert.Equal(t, "backup_directory", op.Params[0].Name)
			assert.NotNil(t, op.Params[0].Default)
			continue
		}
		assert.Empty(t, op.Params, op.Name)
	}
}

func TestOperationsDispatchThroughManager(t *testing.T) {
	m := newTestManager(t)
	ops := Operations()

	for _, op := range ops {
		if op.Name == "reset" {
			_, err := op.Handler(m, nil)
			require.NoError(t, err)
		}
	}
	for _, op := range ops {
		if op.Name == "show" {
			rendered, err := op.Handler(m, nil)
			require.NoError(t, err)
			assert.Contains(t, rendered.(string), "interfaces")
		}
	}
}
