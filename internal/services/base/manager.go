package base

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/vlabsio/dynamite-nsm/internal/cmdline"
	"github.com/vlabsio/dynamite-nsm/internal/config"
	"github.com/vlabsio/dynamite-nsm/pkg/logging"
)

// Manager is the behavior shared by the per-service configuration
// managers. Concrete managers embed ConfigManager and may shadow any of
// these methods; the shared operation manifest dispatches through the
// interface so the most-derived definition wins at run time as well.
type Manager interface {
	// ServiceName identifies the managed service (e.g. "suricata").
	ServiceName() string
	// SettingsPath is the settings file the manager operates on.
	SettingsPath() string
	// DefaultSettings returns the document written by reset.
	DefaultSettings() any
}

// ConfigManager is the common core of every service configuration manager:
// the configuration directory it works in and the output toggles shared by
// all managers.
type ConfigManager struct {
	ConfigurationDirectory string
	Stdout                 bool
	Verbose                bool

	service string
}

// NewConfigManager builds the shared manager core for service.
func NewConfigManager(service, configurationDirectory string, stdout, verbose bool) ConfigManager {
	return ConfigManager{
		ConfigurationDirectory: configurationDirectory,
		Stdout:                 stdout,
		Verbose:                verbose,
		service:                service,
	}
}

// ServiceName identifies the managed service.
func (m ConfigManager) ServiceName() string { return m.service }

// SettingsPath is the settings file inside the configuration directory.
func (m ConfigManager) SettingsPath() string {
	return filepath.Join(m.ConfigurationDirectory, m.service+".yaml")
}

// Show loads the manager's settings file and renders it as a key/value
// table.
func Show(m Manager) (string, error) {
	data, err := os.ReadFile(m.SettingsPath())
	if err != nil {
		return "", err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", m.SettingsPath(), err)
	}
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Setting", "Value"})
	for key, value := range doc {
		t.AppendRow(table.Row{key, fmt.Sprintf("%v", value)})
	}
	return t.Render(), nil
}

// Validate parses the manager's settings file and reports whether it is
// well-formed.
func Validate(m Manager) (string, error) {
	data, err := os.ReadFile(m.SettingsPath())
	if err != nil {
		return "", err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("%s is not valid YAML: %w", m.SettingsPath(), err)
	}
	return fmt.Sprintf("%s OK (%d settings)", m.SettingsPath(), len(doc)), nil
}

// Reset overwrites the settings file with the manager's defaults.
func Reset(m Manager) (string, error) {
	data, err := yaml.Marshal(m.DefaultSettings())
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(m.SettingsPath()), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(m.SettingsPath(), data, 0644); err != nil {
		return "", err
	}
	logging.Info(m.ServiceName(), "reset %s to defaults", m.SettingsPath())
	return fmt.Sprintf("%s reset to defaults", m.SettingsPath()), nil
}

// Backup copies the settings file into backupDirectory under a timestamped
// name.
func Backup(m Manager, backupDirectory string) (string, error) {
	data, err := os.ReadFile(m.SettingsPath())
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(backupDirectory, 0755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s-%s.yaml", m.ServiceName(), time.Now().Format("20060102-150405"))
	dest := filepath.Join(backupDirectory, name)
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", err
	}
	logging.Info(m.ServiceName(), "backed up %s to %s", m.SettingsPath(), dest)
	return fmt.Sprintf("backed up %s to %s", m.SettingsPath(), dest), nil
}

// Operations is the shared operation manifest every service configuration
// manager inherits. Concrete managers merge their own manifests in front of
// it; the first definition seen under a name wins.
func Operations() []cmdline.OperationSpec {
	return []cmdline.OperationSpec{
		{
			Name: "show",
			Doc:  "Render the current settings as a table",
			Handler: func(target any, _ cmdline.Values) (any, error) {
				return Show(target.(Manager))
			},
		},
		{
			Name: "validate",
			Doc:  "Check that the settings file is well-formed",
			Handler: func(target any, _ cmdline.Values) (any, error) {
				return Validate(target.(Manager))
			},
		},
		{
			Name: "reset",
			Doc:  "Overwrite the settings file with defaults",
			Handler: func(target any, _ cmdline.Values) (any, error) {
				return Reset(target.(Manager))
			},
		},
		{
			Name: "backup",
			Doc:  "Copy the settings file into a backup directory",
			Params: []cmdline.ParameterSpec{
				{
					Name:        "backup_directory",
					Kind:        cmdline.KindString,
					Default:     config.DefaultBackupDir,
					Description: "The directory backups are written to",
				},
			},
			Handler: func(target any, args cmdline.Values) (any, error) {
				return Backup(target.(Manager), args.String("backup_directory"))
			},
		},
	}
}
