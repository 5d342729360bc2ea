package cmdline

import "strings"

// ValueType is the scalar type a flag coerces its argument to. ValueNone
// marks a zero-argument toggle whose presence means true.
type ValueType int

const (
	ValueNone ValueType = iota
	ValueString
	ValueInt
	ValueFloat
)

// Multiplicity distinguishes single-value flags from flags accepting one or
// more values.
type Multiplicity int

const (
	Single Multiplicity = iota
	Many
)

// FlagSpec is the CLI-facing projection of one ParameterSpec: the switches,
// requiredness, value coercion and help text the parser grammar needs.
// Derivation is deterministic: the same ParameterSpec and default override
// always produce the same FlagSpec.
type FlagSpec struct {
	// Name is the originating parameter name in underscore form. Parsed
	// values are stored under it.
	Name string
	// Switches holds one or more flag switches; the first is primary
	// (e.g. "--log-sample-size").
	Switches []string
	// Required marks the flag as mandatory at parse time.
	Required bool
	// Value is the scalar coercion applied to the flag argument; ValueNone
	// for toggles.
	Value ValueType
	// Multiplicity is Many for list parameters.
	Multiplicity Multiplicity
	// Help is the attached description, possibly empty.
	Help string
	// Default is the value used when the flag is omitted.
	Default any
}

// FlagName returns the hyphenated flag name without the leading dashes.
func (f FlagSpec) FlagName() string {
	return strings.TrimPrefix(f.Switches[0], "--")
}

// reservedNames are parameter names used internally for dispatch control.
// They never become user flags and are stripped from parsed value bags
// before partitioning.
var reservedNames = map[string]struct{}{
	"action":        {},
	"sub_interface": {},
	"component":     {},
	"command":       {},
}

// IsReservedName reports whether name is an internal dispatch key.
func IsReservedName(name string) bool {
	_, ok := reservedNames[name]
	return ok
}

// Hyphenate converts a parameter name to its flag form: underscores become
// hyphens.
func Hyphenate(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// Underscore converts an action token back to its operation name:
// hyphens become underscores.
func Underscore(token string) string {
	return strings.ReplaceAll(token, "-", "_")
}

// DeriveFlagSpec maps one parameter to its flag specification. The
// defaultOverride, when non-nil, replaces any declaration-time default and
// forces the flag optional; interface builders use it to pin values such as
// fixed configuration directories.
//
// Derivation rules, in precedence order: a bool parameter becomes a
// zero-argument toggle; a list parameter accepts one or more values; an
// optional or defaulted parameter is not required; anything else is a
// required single value coerced to the declared scalar kind.
func DeriveFlagSpec(p ParameterSpec, defaultOverride any) FlagSpec {
	spec := FlagSpec{
		Name:     p.Name,
		Switches: []string{"--" + Hyphenate(p.Name)},
		Required: true,
		Help:     p.Description,
		Default:  p.Default,
	}
	if p.Default != nil {
		spec.Required = false
	}
	if defaultOverride != nil {
		spec.Default = defaultOverride
		spec.Required = false
	}
	if p.Optional {
		spec.Required = false
	}
	if p.Kind.IsList() {
		spec.Multiplicity = Many
	}
	switch p.Kind {
	case KindBool:
		spec.Value = ValueNone
	case KindInt, KindIntList:
		spec.Value = ValueInt
	case KindFloat:
		spec.Value = ValueFloat
	default:
		spec.Value = ValueString
	}
	return spec
}
