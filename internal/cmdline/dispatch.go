package cmdline

import "slices"

// partition splits a parsed value bag into constructor arguments (parameter
// names matching a base flag) and operation arguments (everything else).
// Reserved dispatch keys are dropped from both sides.
func (g Grammar) partition(vals Values) (ctorArgs, opArgs Values) {
	ctorArgs = make(Values)
	opArgs = make(Values)
	for name, v := range vals {
		if IsReservedName(name) {
			continue
		}
		if g.IsBaseParam(name) {
			ctorArgs[name] = v
		} else {
			opArgs[name] = v
		}
	}
	return ctorArgs, opArgs
}

// Execute instantiates the target with the constructor arguments found in
// vals and invokes the designated entry operation with the rest. The
// operation's return value is handed back to the caller; any error raised
// by the constructor or the operation propagates unmodified.
func (i *SingleResponsibilityInterface) Execute(vals Values) (any, error) {
	ctorArgs, opArgs := i.grammar.partition(vals)
	target, err := i.target.Constructor.Build(ctorArgs)
	if err != nil {
		return nil, err
	}
	return i.entry.Handler(target, opArgs)
}

// Execute resolves the action token against the assembled action set,
// instantiates the target and invokes the resolved operation. An action
// outside the whitelist is rejected with a UsageError before the target is
// constructed. Hyphens in the token are converted back to the operation's
// underscore form.
func (i *MultipleResponsibilityInterface) Execute(action string, vals Values) (any, error) {
	if !slices.Contains(i.grammar.Actions, action) {
		return nil, &UsageError{Token: action, Choices: slices.Clone(i.grammar.Actions)}
	}
	op, ok := i.target.Operation(Underscore(action))
	if !ok {
		return nil, &UsageError{Token: action, Choices: slices.Clone(i.grammar.Actions)}
	}
	ctorArgs, opArgs := i.grammar.partition(vals)
	target, err := i.target.Constructor.Build(ctorArgs)
	if err != nil {
		return nil, err
	}
	return op.Handler(target, opArgs)
}
