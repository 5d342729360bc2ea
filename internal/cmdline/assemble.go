package cmdline

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Grammar is the full set of flags and positional arguments derived for one
// interface. It is assembled once, at interface-construction time, and
// consumed many times to parse and execute.
type Grammar struct {
	// Flags holds the derived flag specifications: base (constructor) flags
	// first, then operation flags. Flag-name collisions are resolved by
	// first-wins: a later duplicate is silently dropped. This is a
	// deliberate merge policy, observable and tested, not an accident of
	// insertion order.
	Flags []FlagSpec
	// Actions enumerates the positional action tokens (hyphenated
	// zero-parameter operation names) in whitelist order. Empty for
	// single-responsibility interfaces.
	Actions []string

	// base records which parameter names belong to the constructor, for
	// value partitioning at dispatch time.
	base map[string]struct{}
}

// IsBaseParam reports whether the named parameter belongs to the
// constructor signature.
func (g Grammar) IsBaseParam(name string) bool {
	_, ok := g.base[name]
	return ok
}

// appendFlags derives and appends flag specs for params, skipping reserved
// names and flag-name collisions with already-appended specs.
func (g *Grammar) appendFlags(params []ParameterSpec, defaults map[string]any, seen map[string]struct{}) {
	for _, p := range params {
		if IsReservedName(p.Name) {
			continue
		}
		spec := DeriveFlagSpec(p, defaults[p.Name])
		if _, dup := seen[spec.FlagName()]; dup {
			continue
		}
		seen[spec.FlagName()] = struct{}{}
		g.Flags = append(g.Flags, spec)
	}
}

// InterfaceOptions carries the caller-supplied identity and defaults for an
// assembled interface.
type InterfaceOptions struct {
	// Name is the interface name shown in help output.
	Name string
	// Description documents the interface; when empty the target's own
	// description is used.
	Description string
	// Defaults pins parameter values ahead of time (e.g. fixed install
	// paths). A pinned parameter's flag is never required.
	Defaults map[string]any
}

// SingleResponsibilityInterface maps a target type with one designated
// entry operation to a flat command-line grammar: base flags plus the entry
// operation's flags, no action selector.
type SingleResponsibilityInterface struct {
	name        string
	description string
	target      TargetSpec
	entry       OperationSpec
	grammar     Grammar
}

// NewSingleResponsibility assembles the grammar for target's entryOperation.
// The target manifest is validated first: a constructor parameter without a
// type annotation fails assembly.
func NewSingleResponsibility(target TargetSpec, entryOperation string, opts InterfaceOptions) (*SingleResponsibilityInterface, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	var entry OperationSpec
	found := false
	for _, op := range target.usableOperations() {
		if op.Name == entryOperation {
			entry, found = op, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("target %q exposes no operation %q", target.Name, entryOperation)
	}
	i := &SingleResponsibilityInterface{
		name:        opts.Name,
		description: opts.Description,
		target:      target,
		entry:       entry,
	}
	if i.description == "" {
		i.description = target.Description
	}
	i.grammar = assembleGrammar(target, opts.Defaults, func(g *Grammar, seen map[string]struct{}) {
		g.appendFlags(entry.Params, opts.Defaults, seen)
	})
	return i, nil
}

// Name returns the interface name.
func (i *SingleResponsibilityInterface) Name() string { return i.name }

// Description returns the interface description.
func (i *SingleResponsibilityInterface) Description() string { return i.description }

// Grammar returns the assembled grammar.
func (i *SingleResponsibilityInterface) Grammar() Grammar { return i.grammar }

// MultipleResponsibilityInterface maps a target type with several exposed
// operations to a grammar with a positional action selector. Whitelisted
// operations without parameters become action tokens; whitelisted
// operations with parameters contribute their flags to the shared grammar.
type MultipleResponsibilityInterface struct {
	name        string
	description string
	target      TargetSpec
	supported   []string
	grammar     Grammar
}

// NewMultipleResponsibility assembles the grammar for the whitelisted
// operations of target, preserving whitelist order. Whitelist entries the
// target does not expose are skipped.
func NewMultipleResponsibility(target TargetSpec, supported []string, opts InterfaceOptions) (*MultipleResponsibilityInterface, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	i := &MultipleResponsibilityInterface{
		name:        opts.Name,
		description: opts.Description,
		target:      target,
		supported:   slices.Clone(supported),
	}
	if i.description == "" {
		i.description = target.Description
	}
	usable := target.usableOperations()
	i.grammar = assembleGrammar(target, opts.Defaults, func(g *Grammar, seen map[string]struct{}) {
		for _, name := range supported {
			for _, op := range usable {
				if op.Name != name {
					continue
				}
				if len(op.Params) == 0 {
					g.Actions = append(g.Actions, Hyphenate(op.Name))
				} else {
					g.appendFlags(op.Params, opts.Defaults, seen)
				}
				break
			}
		}
	})
	return i, nil
}

// Name returns the interface name.
func (i *MultipleResponsibilityInterface) Name() string { return i.name }

// Description returns the interface description.
func (i *MultipleResponsibilityInterface) Description() string { return i.description }

// Grammar returns the assembled grammar.
func (i *MultipleResponsibilityInterface) Grammar() Grammar { return i.grammar }

// assembleGrammar builds the base flags shared by both interface shapes and
// then lets the variant-specific step extend the grammar.
func assembleGrammar(target TargetSpec, defaults map[string]any, extend func(*Grammar, map[string]struct{})) Grammar {
	g := Grammar{base: make(map[string]struct{})}
	seen := make(map[string]struct{})
	g.appendFlags(target.Constructor.Params, defaults, seen)
	for _, p := range target.Constructor.Params {
		if !IsReservedName(p.Name) {
			g.base[p.Name] = struct{}{}
		}
	}
	extend(&g, seen)
	return g
}

// Command materializes the interface as a cobra command named use. The
// grammar is not re-derived; the same interface can be attached under any
// number of parent dispatchers.
func (i *SingleResponsibilityInterface) Command(use string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          use,
		Short:        i.description,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := i.Execute(CollectValues(cmd.Flags(), i.grammar.Flags))
			if err != nil {
				return err
			}
			if result != nil {
				fmt.Fprintln(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}
	RegisterFlagSpecs(cmd.Flags(), i.grammar.Flags)
	return cmd
}

// Attach appends the interface under parent as a sub-command named use.
func (i *SingleResponsibilityInterface) Attach(parent *cobra.Command, use string) *cobra.Command {
	cmd := i.Command(use)
	parent.AddCommand(cmd)
	return cmd
}

// Command materializes the interface as a cobra command named use, with the
// positional action argument appended when any zero-parameter operations
// were whitelisted.
func (i *MultipleResponsibilityInterface) Command(use string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          use,
		Short:        i.description,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &UsageError{Message: fmt.Sprintf("%s requires an action (choose from: %s)",
					use, strings.Join(i.grammar.Actions, ", "))}
			}
			result, err := i.Execute(args[0], CollectValues(cmd.Flags(), i.grammar.Flags))
			if err != nil {
				return err
			}
			if result != nil {
				fmt.Fprintln(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}
	if len(i.grammar.Actions) > 0 {
		cmd.Use = use + " <action>"
		cmd.ValidArgs = slices.Clone(i.grammar.Actions)
		cmd.Args = cobra.MaximumNArgs(1)
	} else {
		cmd.Args = cobra.NoArgs
	}
	RegisterFlagSpecs(cmd.Flags(), i.grammar.Flags)
	return cmd
}

// Attach appends the interface under parent as a sub-command named use.
func (i *MultipleResponsibilityInterface) Attach(parent *cobra.Command, use string) *cobra.Command {
	cmd := i.Command(use)
	parent.AddCommand(cmd)
	return cmd
}

// RegisterFlagSpecs registers one pflag per flag spec, typed according to
// the flag spec's value type and multiplicity.
func RegisterFlagSpecs(fs *pflag.FlagSet, flags []FlagSpec) {
	for _, f := range flags {
		name := f.FlagName()
		switch {
		case f.Value == ValueNone:
			def, _ := f.Default.(bool)
			fs.Bool(name, def, f.Help)
		case f.Multiplicity == Many && f.Value == ValueInt:
			def, _ := f.Default.([]int)
			fs.IntSlice(name, def, f.Help)
		case f.Multiplicity == Many:
			def, _ := f.Default.([]string)
			fs.StringSlice(name, def, f.Help)
		case f.Value == ValueInt:
			def, _ := f.Default.(int)
			fs.Int(name, def, f.Help)
		case f.Value == ValueFloat:
			def, _ := f.Default.(float64)
			fs.Float64(name, def, f.Help)
		default:
			def, _ := f.Default.(string)
			fs.String(name, def, f.Help)
		}
		if f.Required {
			_ = cobra.MarkFlagRequired(fs, name)
		}
	}
}

// CollectValues reads every flag spec back out of the parsed flag set into
// a value bag keyed by parameter name. Omitted flags contribute their
// defaults, matching the parse semantics the dispatcher partitions over.
func CollectValues(fs *pflag.FlagSet, flags []FlagSpec) Values {
	vals := make(Values, len(flags))
	for _, f := range flags {
		name := f.FlagName()
		switch {
		case f.Value == ValueNone:
			v, _ := fs.GetBool(name)
			vals[f.Name] = v
		case f.Multiplicity == Many && f.Value == ValueInt:
			v, _ := fs.GetIntSlice(name)
			vals[f.Name] = v
		case f.Multiplicity == Many:
			v, _ := fs.GetStringSlice(name)
			vals[f.Name] = v
		case f.Value == ValueInt:
			v, _ := fs.GetInt(name)
			vals[f.Name] = v
		case f.Value == ValueFloat:
			v, _ := fs.GetFloat64(name)
			vals[f.Name] = v
		default:
			v, _ := fs.GetString(name)
			vals[f.Name] = v
		}
	}
	return vals
}
