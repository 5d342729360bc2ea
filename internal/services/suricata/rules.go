package suricata

import (
	"os"

	"github.com/vlabsio/dynamite-nsm/internal/config"
	"github.com/vlabsio/dynamite-nsm/internal/configobj"
)

// Settings is the persisted Suricata configuration document.
type Settings struct {
	RuleSets *configobj.AnalyzerCollection `yaml:"rule_sets"`
}

// DefaultRuleSets returns the rule-set collection shipped on first run:
// the Emerging Threats categories dynamite enables out of the box, plus
// the heavier categories left disabled.
func DefaultRuleSets() *configobj.AnalyzerCollection {
	return &configobj.AnalyzerCollection{
		Analyzers: []*configobj.Analyzer{
			{ID: 1, Name: "emerging-attack_response.rules", Enabled: true},
			{ID: 2, Name: "emerging-dns.rules", Enabled: true},
			{ID: 3, Name: "emerging-dos.rules", Enabled: true},
			{ID: 4, Name: "emerging-exploit.rules", Enabled: true},
			{ID: 5, Name: "emerging-malware.rules", Enabled: true},
			{ID: 6, Name: "emerging-scan.rules", Enabled: true},
			{ID: 7, Name: "emerging-trojan.rules", Enabled: true},
			{ID: 8, Name: "emerging-web_server.rules", Enabled: true},
			{ID: 9, Name: "emerging-chat.rules", Enabled: false},
			{ID: 10, Name: "emerging-games.rules", Enabled: false},
			{ID: 11, Name: "emerging-p2p.rules", Enabled: false},
			{ID: 12, Name: "emerging-pop3.rules", Enabled: false},
		},
	}
}

// LoadSettings reads the persisted Suricata settings, falling back to the
// defaults when no settings file exists yet.
func LoadSettings() (*Settings, error) {
	var s Settings
	err := config.LoadYAML(config.ServicePath("suricata"), &s)
	if os.IsNotExist(err) {
		return &Settings{RuleSets: DefaultRuleSets()}, nil
	}
	if err != nil {
		return nil, err
	}
	if s.RuleSets == nil {
		s.RuleSets = DefaultRuleSets()
	}
	return &s, nil
}

// SaveSettings persists the Suricata settings document.
func SaveSettings(s *Settings) error {
	return config.SaveYAML(config.ServicePath("suricata"), s)
}
