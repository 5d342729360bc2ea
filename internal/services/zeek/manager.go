package zeek

import (
	"github.com/vlabsio/dynamite-nsm/internal/cmdline"
	"github.com/vlabsio/dynamite-nsm/internal/services/base"
)

// ConfigManager manages the Zeek configuration directory with the shared
// manager operations.
type ConfigManager struct {
	base.ConfigManager
}

// NewConfigManager builds a Zeek configuration manager rooted at
// configurationDirectory.
func NewConfigManager(configurationDirectory string, stdout, verbose bool) *ConfigManager {
	return &ConfigManager{
		ConfigManager: base.NewConfigManager("zeek", configurationDirectory, stdout, verbose),
	}
}

// DefaultSettings returns the document reset writes.
func (m *ConfigManager) DefaultSettings() any {
	return &Settings{Scripts: DefaultScripts(), Redefs: DefaultRedefs()}
}

// Spec is the statically declared manifest turning ConfigManager into a
// command-line target.
func Spec() cmdline.TargetSpec {
	return cmdline.TargetSpec{
		Name:        "Zeek Config Manager",
		Description: "Inspect and maintain the Zeek configuration",
		Constructor: cmdline.ConstructorSpec{
			Params: []cmdline.ParameterSpec{
				{
					Name:        "configuration_directory",
					Kind:        cmdline.KindString,
					Description: "Path to the Zeek configuration directory (E.G /etc/dynamite/zeek)",
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
		Operations: base.Operations(),
	}
}
