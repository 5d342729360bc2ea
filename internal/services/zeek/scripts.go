package zeek

import (
	"os"

	"github.com/vlabsio/dynamite-nsm/internal/config"
	"github.com/vlabsio/dynamite-nsm/internal/configobj"
)

// Settings is the persisted Zeek configuration document.
type Settings struct {
	Scripts *configobj.AnalyzerCollection `yaml:"scripts"`
	Redefs  *configobj.AnalyzerCollection `yaml:"redefs"`
}

// DefaultScripts returns the Zeek script collection shipped on first run.
// Scripts carry no values; they are only toggled.
func DefaultScripts() *configobj.AnalyzerCollection {
	return &configobj.AnalyzerCollection{
		Analyzers: []*configobj.Analyzer{
			{ID: 1, Name: "protocols/ftp/detect", Enabled: true},
			{ID: 2, Name: "protocols/ftp/detect-bruteforcing", Enabled: true},
			{ID: 3, Name: "protocols/http/detect-sqli", Enabled: true},
			{ID: 4, Name: "protocols/ssh/detect-bruteforcing", Enabled: true},
			{ID: 5, Name: "protocols/ssl/validate-certs", Enabled: true},
			{ID: 6, Name: "protocols/ssl/log-hostcerts-only", Enabled: false},
			{ID: 7, Name: "frameworks/dpd/detect-protocols", Enabled: true},
			{ID: 8, Name: "frameworks/intel/seen", Enabled: false},
			{ID: 9, Name: "misc/detect-traceroute", Enabled: false},
			{ID: 10, Name: "misc/scan", Enabled: true},
		},
	}
}

// DefaultRedefs returns the Zeek redef collection. Redef values are Zeek
// statements and must end with the ';' statement terminator; assignments
// missing it are canonicalized on mutation.
func DefaultRedefs() *configobj.AnalyzerCollection {
	return &configobj.AnalyzerCollection{
		Terminator: ";",
		Analyzers: []*configobj.Analyzer{
			{ID: 1, Name: "redef LogAscii::use_json", Enabled: true, Value: "redef LogAscii::use_json = T;"},
			{ID: 2, Name: "redef ignore_checksums", Enabled: false, Value: "redef ignore_checksums = F;"},
			{ID: 3, Name: "redef Log::default_rotation_interval", Enabled: true, Value: "redef Log::default_rotation_interval = 1hr;"},
		},
	}
}

// LoadSettings reads the persisted Zeek settings, falling back to the
// defaults when no settings file exists yet.
func LoadSettings() (*Settings, error) {
	var s Settings
	err := config.LoadYAML(config.ServicePath("zeek"), &s)
	if os.IsNotExist(err) {
		return &Settings{Scripts: DefaultScripts(), Redefs: DefaultRedefs()}, nil
	}
	if err != nil {
		return nil, err
	}
	if s.Scripts == nil {
		s.Scripts = DefaultScripts()
	}
	if s.Redefs == nil {
		s.Redefs = DefaultRedefs()
	}
	return &s, nil
}

// SaveSettings persists the Zeek settings document.
func SaveSettings(s *Settings) error {
	return config.SaveYAML(config.ServicePath("zeek"), s)
}
