package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vlabsio/dynamite-nsm/internal/configobj"
)

// newAnalyzersCmd builds a command over one analyzer collection following
// the query-or-mutate protocol: no selected ids prints a snapshot, selected
// ids mutate in place, persist and echo the changes. The shape collection
// only decides which flags exist; open loads the live collection at run
// time together with the closure that persists it.
func newAnalyzersCmd(use, short string, shape *configobj.AnalyzerCollection, open func() (*configobj.AnalyzerCollection, func() error, error)) *cobra.Command {
	var req configobj.AnalyzersRequest
	cmd := &cobra.Command{
		Use:          use,
		Short:        short,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			collection, save, err := open()
			if err != nil {
				return err
			}
			outcome := configobj.NewAnalyzersInterface(collection).Execute(req)
			if outcome.Mutated() {
				if err := save(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), configobj.RenderChanges(outcome.Changes))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), outcome.Report)
			return nil
		},
	}
	configobj.NewAnalyzersInterface(shape).Register(cmd, &req)
	return cmd
}

// newTargetConfigCmd builds a command over one downstream target config.
// Field flags are derived from the shape config's manifest; open loads the
// live config at run time together with the closure that persists it.
func newTargetConfigCmd(use, short string, shape configobj.TargetConfig, open func() (configobj.TargetConfig, func() error, error)) *cobra.Command {
	var req configobj.TargetRequest
	iface := configobj.NewTargetConfigInterface(shape, nil)
	cmd := &cobra.Command{
		Use:          use,
		Short:        short,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, save, err := open()
			if err != nil {
				return err
			}
			live := configobj.NewTargetConfigInterface(config, nil)
			live.Collect(cmd.Flags(), &req)
			outcome := live.Execute(req)
			if outcome.Mutated() {
				if err := save(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), configobj.RenderChanges(outcome.Changes))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), outcome.Report)
			return nil
		},
	}
	iface.Register(cmd, &req)
	return cmd
}
