// Package configobj applies parsed command-line input to live
// configuration objects with change tracking.
//
// Two object shapes are supported. An AnalyzerCollection is an ordered list
// of addressable sub-items (Zeek scripts and redefs, Suricata rule-sets)
// that are toggled and assigned values by id. A TargetConfig is a closed
// bag of named, typed fields (a downstream log target, for example) gated
// by an enabled flag.
//
// Both follow the same protocol: query if nothing is selected, mutate and
// report if something is. A pass with no selected ids and no non-empty
// field values renders a read-only tabulated snapshot and leaves the object
// untouched; otherwise the object is mutated in place, every change is
// recorded into a ChangeSet, and the caller persists the object. The two
// outcomes are mutually exclusive within one pass.
//
// Objects are mutated in place and are not safe for concurrent passes.
package configobj
