package suricata

import (
	"fmt"
	"strings"

	"github.com/vlabsio/dynamite-nsm/internal/cmdline"
	"github.com/vlabsio/dynamite-nsm/internal/services/base"
)

// ConfigManager manages the Suricata configuration directory. It inherits
// the shared manager operations and overrides validate with a rule-set
// aware check.
type ConfigManager struct {
	base.ConfigManager
}

// NewConfigManager builds a Suricata configuration manager rooted at
// configurationDirectory.
func NewConfigManager(configurationDirectory string, stdout, verbose bool) *ConfigManager {
	return &ConfigManager{
		ConfigManager: base.NewConfigManager("suricata", configurationDirectory, stdout, verbose),
	}
}

// DefaultSettings returns the document reset writes.
func (m *ConfigManager) DefaultSettings() any {
	return &Settings{RuleSets: DefaultRuleSets()}
}

// validateRuleSets checks the persisted rule-set collection beyond YAML
// well-formedness: ids must be unique and every rule-set needs a name.
func (m *ConfigManager) validateRuleSets() (string, error) {
	s, err := LoadSettings()
	if err != nil {
		return "", err
	}
	seen := make(map[int]struct{})
	enabled := 0
	for _, a := range s.RuleSets.Analyzers {
		if _, dup := seen[a.ID]; dup {
			return "", fmt.Errorf("duplicate rule-set id %d", a.ID)
		}
		seen[a.ID] = struct{}{}
		if strings.TrimSpace(a.Name) == "" {
			return "", fmt.Errorf("rule-set %d has no name", a.ID)
		}
		if a.Enabled {
			enabled++
		}
	}
	return fmt.Sprintf("suricata rule-sets OK (%d total, %d enabled)", len(s.RuleSets.Analyzers), enabled), nil
}

// Spec is the statically declared manifest turning ConfigManager into a
// command-line target. The suricata-specific validate shadows the shared
// definition.
func Spec() cmdline.TargetSpec {
	ownOps := []cmdline.OperationSpec{
		{
			Name: "validate",
			Doc:  "Check the rule-set collection for duplicate ids and unnamed entries",
			Handler: func(target any, _ cmdline.Values) (any, error) {
				return target.(*ConfigManager).validateRuleSets()
			},
		},
	}
	return cmdline.TargetSpec{
		Name:        "Suricata Config Manager",
		Description: "Inspect and maintain the Suricata configuration",
		Constructor: cmdline.ConstructorSpec{
			Params: []cmdline.ParameterSpec{
				{
					Name:        "configuration_directory",
					Kind:        cmdline.KindString,
					Description: "Path to the Suricata configuration directory (E.G /etc/dynamite/suricata)",
				},
				{
					Name:        "stdout",
					Kind:        cmdline.KindBool,
					Optional:    true,
					Description: "Print output to console",
				},
				{
					Name:        "verbose",
					Kind:        cmdline.KindBool,
					Optional:    true,
					Description: "Include detailed debug messages",
				},
			},
			Build: func(args cmdline.Values) (any, error) {
				return NewConfigManager(args.String("configuration_directory"), args.Bool("stdout"), args.Bool("verbose")), nil
			},
		},
		Operations: cmdline.MergeOperations(ownOps, base.Operations()),
	}
}
