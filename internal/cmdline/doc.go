// Package cmdline synthesizes command-line interfaces from statically
// declared target manifests.
//
// A target manifest (TargetSpec) describes one manager type: the parameters
// of its constructor, the operations it exposes, and the handlers that
// instantiate it and invoke those operations. From a manifest the package
// derives a complete parser grammar and executes parsed input against it.
//
// # Pipeline
//
// Grammar construction flows one direction:
//
//	manifest -> parameter-to-flag mapping -> assembled grammar
//
// and execution flows the other:
//
//	parsed values -> partition -> construct target -> invoke operation
//
// Two interface shapes exist. A SingleResponsibilityInterface exposes
// exactly one entry operation: the grammar is the constructor's flags plus
// the entry operation's flags, with no action selector. A
// MultipleResponsibilityInterface exposes a whitelisted subset of
// operations: zero-parameter operations become tokens of a positional
// action argument, operations with parameters contribute their flags to the
// shared grammar.
//
// # Merge policy
//
// Within one grammar a flag name is bound at most once. When base and
// operation parameters collide on a flag name, the first occurrence wins
// and the later duplicate is dropped silently. This is a deliberate,
// documented rule, relied on by interfaces whose operations share
// constructor parameters.
//
// Assembled interfaces are immutable and safe to reuse across repeated
// parse/execute cycles. They materialize as cobra commands and can be
// attached under any parent dispatcher without re-deriving the grammar.
package cmdline
