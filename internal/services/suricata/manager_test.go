package suricata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlabsio/dynamite-nsm/internal/cmdline"
	"github.com/vlabsio/dynamite-nsm/internal/config"
	"github.com/vlabsio/dynamite-nsm/internal/configobj"
)

func TestLoadSettingsDefaultsWhenMissing(t *testing.T) {
	t.Setenv(config.EnvConfigPath, t.TempDir())

	s, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, s.RuleSets)
	assert.Len(t, s.RuleSets.Analyzers, 12)
	assert.Equal(t, "emerging-attack_response.rules", s.RuleSets.Analyzers[0].Name)
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Setenv(config.EnvConfigPath, t.TempDir())

	s, err := LoadSettings()
	require.NoError(t, err)
	s.RuleSets.Analyzers[8].Enabled = true
	require.NoError(t, SaveSettings(s))

	reloaded, err := LoadSettings()
	require.NoError(t, err)
	assert.True(t, reloaded.RuleSets.Analyzers[8].Enabled)
	assert.Equal(t, "emerging-chat.rules", reloaded.RuleSets.Analyzers[8].Name)
}

func TestSpecValidateOverridesShared(t *testing.T) {
	spec := Spec()
	require.NoError(t, spec.Validate())

	op, ok := spec.Operation("validate")
	require.True(t, ok)
	assert.Contains(t, op.Doc, "rule-set collection")

	// The shared operations survive behind the override.
	for _, name := range []string{"show", "reset", "backup"} {
		_, ok := spec.Operation(name)
		assert.True(t, ok, name)
	}
}

func TestValidateRuleSetsReportsCounts(t *testing.T) {
	t.Setenv(config.EnvConfigPath, t.TempDir())

	m := NewConfigManager(config.DefaultSuricataConfigDir, false, false)
	msg, err := m.validateRuleSets()
	require.NoError(t, err)
	assert.Equal(t, "suricata rule-sets OK (12 total, 8 enabled)", msg)
}

func TestValidateRuleSetsRejectsDuplicates(t *testing.T) {
	t.Setenv(config.EnvConfigPath, t.TempDir())

	require.NoError(t, SaveSettings(&Settings{
		RuleSets: &configobj.AnalyzerCollection{
			Analyzers: []*configobj.Analyzer{
				{ID: 1, Name: "emerging-dns.rules", Enabled: true},
				{ID: 1, Name: "emerging-dos.rules", Enabled: true},
			},
		},
	}))

	m := NewConfigManager(config.DefaultSuricataConfigDir, false, false)
	_, err := m.validateRuleSets()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate rule-set id 1")
}

func TestValidateRuleSetsRejectsUnnamed(t *testing.T) {
	t.Setenv(config.EnvConfigPath, t.TempDir())

	require.NoError(t, SaveSettings(&Settings{
		RuleSets: &configobj.AnalyzerCollection{
			Analyzers: []*configobj.Analyzer{
				{ID: 1, Name: "  ", Enabled: true},
			},
		},
	}))

	m := NewConfigManager(config.DefaultSuricataConfigDir, false, false)
	_, err := m.validateRuleSets()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no name")
}

func TestSpecValidateDispatchesOverride(t *testing.T) {
	t.Setenv(config.EnvConfigPath, t.TempDir())

	iface, err := cmdline.NewMultipleResponsibility(Spec(),
		[]string{"show", "validate", "reset", "backup"}, cmdline.InterfaceOptions{})
	require.NoError(t, err)

	result, err := iface.Execute("validate", cmdline.Values{
		"configuration_directory": config.DefaultSuricataConfigDir,
	})
	require.NoError(t, err)
	assert.Contains(t, result.(string), "rule-sets OK")
}
