package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFlagSpec(t *testing.T) {
	tests := []struct {
		name     string
		param    ParameterSpec
		override any
		want     FlagSpec
	}{
		{
			name:  "required string scalar",
			param: ParameterSpec{Name: "configuration_directory", Kind: KindString, Description: "Path to the configuration directory"},
			want: FlagSpec{
				Name:     "configuration_directory",
				Switches: []string{"--configuration-directory"},
				Required: true,
				Value:    ValueString,
				Help:     "Path to the configuration directory",
			},
		},
		{
			name:  "bool becomes zero-argument toggle",
			param: ParameterSpec{Name: "stdout", Kind: KindBool, Optional: true},
			want: FlagSpec{
				Name:     "stdout",
				Switches: []string{"--stdout"},
				Value:    ValueNone,
			},
		},
		{
			name:  "string list accepts one or more values",
			param: ParameterSpec{Name: "target_hosts", Kind: KindStringList},
			want: FlagSpec{
				Name:         "target_hosts",
				Switches:     []string{"--target-hosts"},
				Required:     true,
				Value:        ValueString,
				Multiplicity: Many,
			},
		},
		{
			name:  "int list accepts one or more values",
			param: ParameterSpec{Name: "ids", Kind: KindIntList, Optional: true},
			want: FlagSpec{
				Name:         "ids",
				Switches:     []string{"--ids"},
				Value:        ValueInt,
				Multiplicity: Many,
			},
		},
		{
			name:  "default implies optional",
			param: ParameterSpec{Name: "log_sample_size", Kind: KindInt, Default: 500},
			want: FlagSpec{
				Name:     "log_sample_size",
				Switches: []string{"--log-sample-size"},
				Value:    ValueInt,
				Default:  500,
			},
		},
		{
			name:  "optional without default",
			param: ParameterSpec{Name: "pattern", Kind: KindString, Optional: true},
			want: FlagSpec{
				Name:     "pattern",
				Switches: []string{"--pattern"},
				Value:    ValueString,
			},
		},
		{
			name:     "override pins default and forces optional",
			param:    ParameterSpec{Name: "backup_directory", Kind: KindString, Default: "/etc/dynamite/backups"},
			override: "/tmp/backups",
			want: FlagSpec{
				Name:     "backup_directory",
				Switches: []string{"--backup-directory"},
				Value:    ValueString,
				Default:  "/tmp/backups",
			},
		},
		{
			name:  "float scalar",
			param: ParameterSpec{Name: "sample_rate", Kind: KindFloat},
			want: FlagSpec{
				Name:     "sample_rate",
				Switches: []string{"--sample-rate"},
				Required: true,
				Value:    ValueFloat,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveFlagSpec(tt.param, tt.override)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveFlagSpecDeterministic(t *testing.T) {
	p := ParameterSpec{Name: "log_sample_size", Kind: KindInt, Default: 500, Description: "Sample size"}
	first := DeriveFlagSpec(p, nil)
	second := DeriveFlagSpec(p, nil)
	assert.Equal(t, first, second)
}

func TestHyphenateUnderscoreRoundTrip(t *testing.T) {
	assert.Equal(t, "list-backups", Hyphenate("list_backups"))
	assert.Equal(t, "list_backups", Underscore("list-backups"))
	assert.Equal(t, "show", Hyphenate("show"))
}

func TestIsReservedName(t *testing.T) {
	for _, name := range []string{"action", "sub_interface", "component", "command"} {
		assert.True(t, IsReservedName(name), name)
	}
	assert.False(t, IsReservedName("configuration_directory"))
}

func TestFlagName(t *testing.T) {
	spec := DeriveFlagSpec(ParameterSpec{Name: "log_sample_size", Kind: KindInt}, nil)
	assert.Equal(t, "log-sample-size", spec.FlagName())
}
