package configobj

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vlabsio/dynamite-nsm/internal/cmdline"
)

// Field is one named, typed entry of a target configuration's closed field
// set. Access goes through the explicit getter/setter pair; mutation and
// diffing never touch free-form attribute names.
type Field struct {
	// Name is the field name in underscore form.
	Name string
	// Kind is the field's semantic type, used to derive its flag.
	Kind cmdline.Kind
	// Description is attached to the derived flag as help text.
	Description string
	// Get returns the current value.
	Get func() any
	// Set assigns a parsed value. The value's type matches Kind.
	Set func(v any)
}

// TargetConfig is a downstream configuration target: a bag of named, typed
// fields plus an enabled gate deciding whether the target is active.
type TargetConfig interface {
	// Name identifies the target (e.g. "elasticsearch").
	Name() string
	// Fields returns the closed, ordered field set. The "enabled" field is
	// not part of it; it is gated through IsEnabled/SetEnabled.
	Fields() []Field
	// IsEnabled reports whether the target is active.
	IsEnabled() bool
	// SetEnabled toggles the target.
	SetEnabled(v bool)
}

// TargetRequest is the parsed input of one pass over a target config: the
// per-field value bag plus the enable/disable toggles.
type TargetRequest struct {
	Values  cmdline.Values
	Enable  bool
	Disable bool
}

// TargetConfigInterface applies query or mutation passes to a target
// config. Non-empty field values are applied and recorded; empty eligible
// fields are reported read-only; the enable/disable toggle is applied last
// and always recorded.
type TargetConfigInterface struct {
	config   TargetConfig
	defaults map[string]any
	flags    []cmdline.FlagSpec
}

// NewTargetConfigInterface wraps config. Fields named in defaults are
// pinned ahead of time and excluded from both mutation and reporting.
func NewTargetConfigInterface(config TargetConfig, defaults map[string]any) *TargetConfigInterface {
	i := &TargetConfigInterface{config: config, defaults: defaults}
	seen := make(map[string]struct{})
	for _, f := range config.Fields() {
		if f.Name == "enabled" || cmdline.IsReservedName(f.Name) {
			continue
		}
		p := cmdline.ParameterSpec{Name: f.Name, Kind: f.Kind, Optional: true, Description: f.Description}
		spec := cmdline.DeriveFlagSpec(p, nil)
		if _, dup := seen[spec.FlagName()]; dup {
			continue
		}
		seen[spec.FlagName()] = struct{}{}
		i.flags = append(i.flags, spec)
	}
	return i
}

// Config returns the wrapped target config.
func (i *TargetConfigInterface) Config() TargetConfig {
	return i.config
}

// Register binds the per-field flags plus --enable/--disable onto cmd.
func (i *TargetConfigInterface) Register(cmd *cobra.Command, req *TargetRequest) {
	cmdline.RegisterFlagSpecs(cmd.Flags(), i.flags)
	cmd.Flags().BoolVar(&req.Enable, "enable", false, "Enable selected target")
	cmd.Flags().BoolVar(&req.Disable, "disable", false, "Disable selected target")
}

// Collect reads the per-field values back out of a parsed flag set into
// req's value bag.
func (i *TargetConfigInterface) Collect(fs *pflag.FlagSet, req *TargetRequest) {
	req.Values = cmdline.CollectValues(fs, i.flags)
}

// Execute runs one pass. Every eligible field with a non-empty value in the
// bag is assigned onto the config and recorded; every eligible field left
// empty is listed in the read-only report with its current value or "N/A".
// Enable/disable is applied last and always recorded. When nothing was
// recorded the pass returns the report (including the current enabled
// state) and the config is left for the caller to print, not persist.
func (i *TargetConfigInterface) Execute(req TargetRequest) Outcome {
	changes := NewChangeSet()
	var rows [][]any
	for _, f := range i.config.Fields() {
		if f.Name == "enabled" || cmdline.IsReservedName(f.Name) {
			continue
		}
		if _, pinned := i.defaults[f.Name]; pinned {
			continue
		}
		option := cmdline.Hyphenate(f.Name)
		v, ok := req.Values[f.Name]
		if ok && !isEmptyValue(v) {
			changes.Record(option, f.Get(), v)
			f.Set(v)
			continue
		}
		current := f.Get()
		if isEmptyValue(current) {
			rows = append(rows, []any{option, emptyValue})
		} else {
			rows = append(rows, []any{option, current})
		}
	}
	if req.Enable {
		changes.Record("enabled", i.config.IsEnabled(), true)
		i.config.SetEnabled(true)
	} else if req.Disable {
		changes.Record("enabled", i.config.IsEnabled(), false)
		i.config.SetEnabled(false)
	}
	if changes.Empty() {
		rows = append(rows, []any{"enabled", i.config.IsEnabled()})
		return Outcome{Report: renderTable([]any{"Config Option", "Value"}, rows), Changes: changes}
	}
	return Outcome{Changes: changes}
}

// isEmptyValue reports whether a parsed or current value counts as unset:
// zero scalars, false booleans and empty lists are never applied as
// mutations and display as "N/A" in reports.
func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case int:
		return t == 0
	case float64:
		return t == 0
	case bool:
		return !t
	case []string:
		return len(t) == 0
	case []int:
		return len(t) == 0
	default:
		return false
	}
}
