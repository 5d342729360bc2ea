package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vlabsio/dynamite-nsm/internal/cmdline"
	"github.com/vlabsio/dynamite-nsm/internal/config"
	"github.com/vlabsio/dynamite-nsm/internal/configobj"
	"github.com/vlabsio/dynamite-nsm/internal/services/zeek"
)

// newZeekCmd groups the Zeek sub-commands: the script and redef collections
// and the configuration manager.
func newZeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zeek",
		Short: "Configure the Zeek analyzer",
	}
	cmd.AddCommand(newZeekScriptsCmd())
	cmd.AddCommand(newZeekRedefsCmd())
	attachZeekConfig(cmd)
	return cmd
}

func newZeekScriptsCmd() *cobra.Command {
	return newAnalyzersCmd("scripts", "Inspect and toggle Zeek scripts", zeek.DefaultScripts(),
		func() (*configobj.AnalyzerCollection, func() error, error) {
			settings, err := zeek.LoadSettings()
			if err != nil {
				return nil, nil, err
			}
			return settings.Scripts, func() error { return zeek.SaveSettings(settings) }, nil
		})
}

func newZeekRedefsCmd() *cobra.Command {
	return newAnalyzersCmd("redefs", "Inspect and assign Zeek redefs", zeek.DefaultRedefs(),
		func() (*configobj.AnalyzerCollection, func() error, error) {
			settings, err := zeek.LoadSettings()
			if err != nil {
				return nil, nil, err
			}
			return settings.Redefs, func() error { return zeek.SaveSettings(settings) }, nil
		})
}

func attachZeekConfig(parent *cobra.Command) {
	iface, err := cmdline.NewMultipleResponsibility(zeek.Spec(),
		[]string{"show", "validate", "reset", "backup"},
		cmdline.InterfaceOptions{
			Name: "Zeek Config Manager",
			Defaults: map[string]any{
				"configuration_directory": config.DefaultZeekConfigDir,
			},
		})
	cobra.CheckErr(err)
	iface.Attach(parent, "config")
}
