package filebeat

import (
	"os"

	"github.com/vlabsio/dynamite-nsm/internal/cmdline"
	"github.com/vlabsio/dynamite-nsm/internal/config"
	"github.com/vlabsio/dynamite-nsm/internal/configobj"
)

// Settings is the persisted Filebeat configuration document: one section
// per downstream target.
type Settings struct {
	Elasticsearch ElasticsearchTarget `yaml:"elasticsearch_targets"`
	Logstash      LogstashTarget      `yaml:"logstash_targets"`
	Kafka         KafkaTarget         `yaml:"kafka_targets"`
}

// LoadSettings reads the persisted Filebeat settings. A missing settings
// file yields zeroed targets; the interface reports unset fields as "N/A".
func LoadSettings() (*Settings, error) {
	var s Settings
	err := config.LoadYAML(config.ServicePath("filebeat"), &s)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return &s, nil
}

// SaveSettings persists the Filebeat settings document.
func SaveSettings(s *Settings) error {
	return config.SaveYAML(config.ServicePath("filebeat"), s)
}

// ElasticsearchTarget configures event delivery straight to an
// Elasticsearch cluster.
type ElasticsearchTarget struct {
	TargetHosts []string `yaml:"target_hosts"`
	Index       string   `yaml:"index"`
	Username    string   `yaml:"username"`
	Password    string   `yaml:"password"`
	Enabled     bool     `yaml:"enabled"`
}

// Name identifies the target.
func (t *ElasticsearchTarget) Name() string { return "elasticsearch" }

// IsEnabled reports whether events are delivered to this target.
func (t *ElasticsearchTarget) IsEnabled() bool { return t.Enabled }

// SetEnabled toggles delivery to this target.
func (t *ElasticsearchTarget) SetEnabled(v bool) { t.Enabled = v }

// Fields returns the closed field set of the target.
func (t *ElasticsearchTarget) Fields() []configobj.Field {
	return []configobj.Field{
		{
			Name:        "target_hosts",
			Kind:        cmdline.KindStringList,
			Description: "One or more Elasticsearch hosts (E.G 10.0.0.5:9200)",
			Get:         func() any { return t.TargetHosts },
			Set:         func(v any) { t.TargetHosts, _ = v.([]string) },
		},
		{
			Name:        "index",
			Kind:        cmdline.KindString,
			Description: "The index events are written to",
			Get:         func() any { return t.Index },
			Set:         func(v any) { t.Index, _ = v.(string) },
		},
		{
			Name:        "username",
			Kind:        cmdline.KindString,
			Description: "The username for basic authentication",
			Get:         func() any { return t.Username },
			Set:         func(v any) { t.Username, _ = v.(string) },
		},
		{
			Name:        "password",
			Kind:        cmdline.KindString,
			Description: "The password for basic authentication",
			Get:         func() any { return t.Password },
			Set:         func(v any) { t.Password, _ = v.(string) },
		},
	}
}

// LogstashTarget configures event delivery to a Logstash pipeline.
type LogstashTarget struct {
	TargetHosts []string `yaml:"target_hosts"`
	Timeout     int      `yaml:"timeout"`
	Enabled     bool     `yaml:"enabled"`
}

// Name identifies the target.
func (t *LogstashTarget) Name() string { return "logstash" }

// IsEnabled reports whether events are delivered to this target.
func (t *LogstashTarget) IsEnabled() bool { return t.Enabled }

// SetEnabled toggles delivery to this target.
func (t *LogstashTarget) SetEnabled(v bool) { t.Enabled = v }

// Fields returns the closed field set of the target.
func (t *LogstashTarget) Fields() []configobj.Field {
	return []configobj.Field{
		{
			Name:        "target_hosts",
			Kind:        cmdline.KindStringList,
			Description: "One or more Logstash hosts (E.G 10.0.0.5:5044)",
			Get:         func() any { return t.TargetHosts },
			Set:         func(v any) { t.TargetHosts, _ = v.([]string) },
		},
		{
			Name:        "timeout",
			Kind:        cmdline.KindInt,
			Description: "The number of seconds to wait for responses from Logstash",
			Get:         func() any { return t.Timeout },
			Set:         func(v any) { t.Timeout, _ = v.(int) },
		},
	}
}

// KafkaTarget configures event delivery to a Kafka topic.
type KafkaTarget struct {
	TargetHosts []string `yaml:"target_hosts"`
	Topic       string   `yaml:"topic"`
	Username    string   `yaml:"username"`
	Password    string   `yaml:"password"`
	Enabled     bool     `yaml:"enabled"`
}

// Name identifies the target.
func (t *KafkaTarget) Name() string { return "kafka" }

// IsEnabled reports whether events are delivered to this target.
func (t *KafkaTarget) IsEnabled() bool { return t.Enabled }

// SetEnabled toggles delivery to this target.
func (t *KafkaTarget) SetEnabled(v bool) { t.Enabled = v }

// Fields returns the closed field set of the target.
func (t *KafkaTarget) Fields() []configobj.Field {
	return []configobj.Field{
		{
			Name:        "target_hosts",
			Kind:        cmdline.KindStringList,
			Description: "One or more Kafka brokers (E.G 10.0.0.5:9092)",
			Get:         func() any { return t.TargetHosts },
			Set:         func(v any) { t.TargetHosts, _ = v.([]string) },
		},
		{
			Name:        "topic",
			Kind:        cmdline.KindString,
			Description: "The topic events are published to",
			Get:         func() any { return t.Topic },
			Set:         func(v any) { t.Topic, _ = v.(string) },
		},
		{
			Name:        "username",
			Kind:        cmdline.KindString,
			Description: "The username for SASL authentication",
			Get:         func() any { return t.Username },
			Set:         func(v any) { t.Username, _ = v.(string) },
		},
		{
			Name:        "password",
			Kind:        cmdline.KindString,
			Description: "The password for SASL authentication",
			Get:         func() any { return t.Password },
			Set:         func(v any) { t.Password, _ = v.(string) },
		},
	}
}
