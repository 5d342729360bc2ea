package cmdline

// Kind classifies the semantic type of a single command parameter. The
// narrowest matching scalar wins when a grammar is derived: bool beats int,
// int beats float, float beats string.
type Kind int

const (
	// KindInvalid marks a parameter whose type could not be declared.
	// Constructors containing such a parameter cannot be turned into a
	// grammar; operations containing one are silently skipped.
	KindInvalid Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindStringList
	KindIntList
)

// String makes Kind satisfy the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindStringList:
		return "string-list"
	case KindIntList:
		return "int-list"
	default:
		return "invalid"
	}
}

// IsList reports whether the kind accepts one or more values.
func (k Kind) IsList() bool {
	return k == KindStringList || k == KindIntList
}

// ParameterSpec describes one named, typed input to a constructor or an
// operation. Specs are declared statically per target type; the grammar is
// derived from them without any runtime reflection.
type ParameterSpec struct {
	// Name is the parameter name in underscore form (e.g. "log_sample_size").
	// It must be unique within its owning signature.
	Name string
	// Kind is the declared semantic type.
	Kind Kind
	// Optional marks the parameter as omissible even without a default.
	Optional bool
	// Default, when non-nil, implies optionality and is surfaced in the
	// derived flag.
	Default any
	// Description is the help text attached verbatim to the derived flag.
	// May be empty; an unresolvable description is never an error.
	Description string
}

// OperationSpec describes one named operation of a target type: its ordered
// parameter list and the handler invoked at dispatch time.
type OperationSpec struct {
	// Name is the operation name in underscore form (e.g. "list_backups").
	Name string
	// Doc is a short human-readable summary.
	Doc string
	// Params is the ordered parameter list.
	Params []ParameterSpec
	// Handler executes the operation against an instantiated target.
	// The target argument is whatever the constructor built.
	Handler func(target any, args Values) (any, error)
}

// usable reports whether every parameter carries retrievable type
// information. Operations that fail this check are dropped from grammar
// derivation rather than failing the whole target.
func (o OperationSpec) usable() bool {
	for _, p := range o.Params {
		if p.Kind == KindInvalid {
			return false
		}
	}
	return true
}

// ConstructorSpec describes how a target type is instantiated: its base
// parameters and the build function that turns parsed values into a live
// target object.
type ConstructorSpec struct {
	Params []ParameterSpec
	Build  func(args Values) (any, error)
}

// TargetSpec is the statically declared manifest for one target type. It is
// the registration-time replacement for runtime type introspection: the
// constructor and every exposed operation are pre-declared, with any
// inheritance chain already merged via MergeOperations.
type TargetSpec struct {
	// Name identifies the target type (e.g. "Suricata Config Manager").
	Name string
	// Description documents the target as a whole. Interfaces fall back to
	// it when no interface description is supplied.
	Description string
	// Constructor builds the target from base parameters.
	Constructor ConstructorSpec
	// Operations maps, in declaration order, every operation the target
	// exposes. Earlier entries shadow later ones of the same name.
	Operations []OperationSpec
}

// Validate checks that the manifest can produce a grammar. A constructor
// parameter without a declared type is fatal: the grammar cannot be derived
// without it.
func (s TargetSpec) Validate() error {
	for _, p := range s.Constructor.Params {
		if p.Kind == KindInvalid {
			return &MissingTypeAnnotationError{Target: s.Name, Operation: "constructor", Param: p.Name}
		}
	}
	return nil
}

// Operation returns the first operation recorded under name.
func (s TargetSpec) Operation(name string) (OperationSpec, bool) {
	for _, op := range s.Operations {
		if op.Name == name {
			return op, true
		}
	}
	return OperationSpec{}, false
}

// usableOperations returns the operations eligible for grammar derivation,
// preserving declaration order.
func (s TargetSpec) usableOperations() []OperationSpec {
	ops := make([]OperationSpec, 0, len(s.Operations))
	for _, op := range s.Operations {
		if op.usable() {
			ops = append(ops, op)
		}
	}
	return ops
}

// MergeOperations flattens an override chain into a single operation list.
// Chains are supplied most-derived first; the first definition seen under a
// given name wins, reproducing override semantics where a derived manager's
// redefinition of an operation shadows its base. The merge happens once at
// registration time, never at call time.
func MergeOperations(chain ...[]OperationSpec) []OperationSpec {
	var merged []OperationSpec
	seen := make(map[string]struct{})
	for _, ops := range chain {
		for _, op := range ops {
			if _, ok := seen[op.Name]; ok {
				continue
			}
			seen[op.Name] = struct{}{}
			merged = append(merged, op)
		}
	}
	return merged
}
