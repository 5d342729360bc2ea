package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vlabsio/dynamite-nsm/internal/cmdline"
	"github.com/vlabsio/dynamite-nsm/internal/config"
	"github.com/vlabsio/dynamite-nsm/internal/configobj"
	"github.com/vlabsio/dynamite-nsm/internal/services/suricata"
)

// newSuricataCmd groups the Suricata sub-commands: the rule-set collection
// and the configuration manager.
func newSuricataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suricata",
		Short: "Configure the Suricata analyzer",
	}
	cmd.AddCommand(newSuricataRulesCmd())
	attachSuricataConfig(cmd)
	return cmd
}

func newSuricataRulesCmd() *cobra.Command {
	return newAnalyzersCmd("rules", "Inspect and toggle Suricata rule-sets", suricata.DefaultRuleSets(),
		func() (*configobj.AnalyzerCollection, func() error, error) {
			settings, err := suricata.LoadSettings()
			if err != nil {
				return nil, nil, err
			}
			return settings.RuleSets, func() error { return suricata.SaveSettings(settings) }, nil
		})
}

func attachSuricataConfig(parent *cobra.Command) {
	iface, err := cmdline.NewMultipleResponsibility(suricata.Spec(),
		[]string{"show", "validate", "reset", "backup"},
		cmdline.InterfaceOptions{
			Name: "Suricata Config Manager",
			Defaults: map[string]any{
				"configuration_directory": config.DefaultSuricataConfigDir,
			},
		})
	cobra.CheckErr(err)
	iface.Attach(parent, "config")
}
