package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vlabsio/dynamite-nsm/internal/cmdline"
	"github.com/vlabsio/dynamite-nsm/internal/config"
	"github.com/vlabsio/dynamite-nsm/internal/configobj"
	"github.com/vlabsio/dynamite-nsm/internal/services/filebeat"
)

// newFilebeatCmd groups the Filebeat sub-commands: the downstream delivery
// targets and the log search interface.
func newFilebeatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filebeat",
		Short: "Configure the Filebeat forwarder",
	}
	cmd.AddCommand(newFilebeatTargetsCmd())
	attachFilebeatLogs(cmd)
	return cmd
}

func newFilebeatTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Configure the downstream targets events are delivered to",
	}
	cmd.AddCommand(newTargetConfigCmd("elasticsearch", "Deliver events to an Elasticsearch cluster",
		&filebeat.ElasticsearchTarget{},
		func() (configobj.TargetConfig, func() error, error) {
			settings, err := filebeat.LoadSettings()
			if err != nil {
				return nil, nil, err
			}
			return &settings.Elasticsearch, func() error { return filebeat.SaveSettings(settings) }, nil
		}))
	cmd.AddCommand(newTargetConfigCmd("logstash", "Deliver events to a Logstash pipeline",
		&filebeat.LogstashTarget{},
		func() (configobj.TargetConfig, func() error, error) {
			settings, err := filebeat.LoadSettings()
			if err != nil {
				return nil, nil, err
			}
			return &settings.Logstash, func() error { return filebeat.SaveSettings(settings) }, nil
		}))
	cmd.AddCommand(newTargetConfigCmd("kafka", "Deliver events to a Kafka topic",
		&filebeat.KafkaTarget{},
		func() (configobj.TargetConfig, func() error, error) {
			settings, err := filebeat.LoadSettings()
			if err != nil {
				return nil, nil, err
			}
			return &settings.Kafka, func() error { return filebeat.SaveSettings(settings) }, nil
		}))
	return cmd
}

func attachFilebeatLogs(parent *cobra.Command) {
	iface, err := cmdline.NewSingleResponsibility(filebeat.LogSearchSpec(), "search",
		cmdline.InterfaceOptions{
			Name: "Filebeat Log Search",
			Defaults: map[string]any{
				"log_path": filepath.Join(config.DefaultLogDir, "filebeat", "filebeat.log"),
			},
		})
	cobra.CheckErr(err)
	iface.Attach(parent, "logs")
}
