package configobj

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Analyzer is one addressable sub-item of an analyzer collection: a Zeek
// script or redef, a Suricata rule-set, and so on. Items are toggled in
// place; they are never reordered or deleted.
type Analyzer struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
	// Value is the optional statement assigned to the analyzer (e.g. a
	// redef value). Empty when the collection does not carry values.
	Value string `yaml:"value,omitempty"`
}

// AnalyzerCollection is an ordered list of analyzers owned by a parent
// service configuration. Instances are mutated in place and are not safe
// for concurrent mutation passes.
type AnalyzerCollection struct {
	Analyzers []*Analyzer `yaml:"analyzers"`
	// Terminator is the statement terminator assigned values must end
	// with; values missing it are canonicalized by appending it. Empty
	// disables canonicalization.
	Terminator string `yaml:"terminator,omitempty"`
}

// HasValues reports whether any analyzer in the collection carries a value,
// which decides whether the --value flag is exposed.
func (c *AnalyzerCollection) HasValues() bool {
	for _, a := range c.Analyzers {
		if a.Value != "" {
			return true
		}
	}
	return false
}

// analyzerState snapshots the mutable portion of an analyzer for change
// recording.
type analyzerState struct {
	Enabled bool
	Value   string
}

// String renders the snapshot the way change tables display it.
func (s analyzerState) String() string {
	if s.Value == "" {
		return fmt.Sprintf("enabled=%v", s.Enabled)
	}
	return fmt.Sprintf("enabled=%v value=%s", s.Enabled, s.Value)
}

// AnalyzersRequest is the parsed input of one pass over an analyzer
// collection.
type AnalyzersRequest struct {
	// IDs selects the analyzers to act on. Empty means query: the pass
	// reports and mutates nothing. Ids not present in the collection are
	// skipped, not errors.
	IDs []int
	// Enable sets the selected analyzers enabled. When Enable and Disable
	// are both set, enable wins.
	Enable bool
	// Disable sets the selected analyzers disabled.
	Disable bool
	// Value, when non-empty, is assigned to the selected analyzers after
	// terminator canonicalization.
	Value string
}

// AnalyzersInterface applies query or mutation passes to an analyzer
// collection following the query-if-nothing-selected, mutate-and-report-if-
// selected protocol.
type AnalyzersInterface struct {
	collection *AnalyzerCollection
}

// NewAnalyzersInterface wraps collection. The collection is mutated in
// place by Execute; the caller persists it when a pass reports mutations.
func NewAnalyzersInterface(collection *AnalyzerCollection) *AnalyzersInterface {
	return &AnalyzersInterface{collection: collection}
}

// Collection returns the wrapped collection.
func (i *AnalyzersInterface) Collection() *AnalyzerCollection {
	return i.collection
}

// Register binds the analyzer flags onto cmd: --ids, --enable, --disable,
// and --value when the collection carries values.
func (i *AnalyzersInterface) Register(cmd *cobra.Command, req *AnalyzersRequest) {
	fs := cmd.Flags()
	fs.IntSliceVar(&req.IDs, "ids", nil, "Specify one or more ids for the config object you want to work with")
	fs.BoolVar(&req.Enable, "enable", false, "Enable selected object")
	fs.BoolVar(&req.Disable, "disable", false, "Disable selected object")
	if i.collection.HasValues() {
		fs.StringVar(&req.Value, "value", "", "The value associated with the selected object")
	}
}

// Execute runs one pass. With no ids selected it returns a tabulated
// snapshot of every analyzer and leaves the collection untouched. With ids
// selected it applies the requested enable/disable toggle (enable takes
// precedence when both are set) and value assignment to each matching
// analyzer, records every selected analyzer into the change set, and leaves
// the report empty so the caller persists the mutated collection.
func (i *AnalyzersInterface) Execute(req AnalyzersRequest) Outcome {
	changes := NewChangeSet()
	if len(req.IDs) == 0 {
		rows := make([][]any, 0, len(i.collection.Analyzers))
		for _, a := range i.collection.Analyzers {
			rows = append(rows, []any{a.ID, a.Name, a.Enabled, valueOrNA(a.Value)})
		}
		return Outcome{
			Report:  renderTable([]any{"Id", "Name", "Enabled", "Value"}, rows),
			Changes: changes,
		}
	}

	selected := make(map[int]struct{}, len(req.IDs))
	for _, id := range req.IDs {
		selected[id] = struct{}{}
	}
	for _, a := range i.collection.Analyzers {
		if _, ok := selected[a.ID]; !ok {
			continue
		}
		before := analyzerState{Enabled: a.Enabled, Value: a.Value}
		if req.Enable {
			a.Enabled = true
		} else if req.Disable {
			a.Enabled = false
		}
		if req.Value != "" {
			a.Value = i.canonicalize(req.Value)
		}
		after := analyzerState{Enabled: a.Enabled, Value: a.Value}
		changes.Record(fmt.Sprintf("analyzer:%d", a.ID), before, after)
	}
	return Outcome{Changes: changes}
}

// canonicalize ensures a value string ends with the collection's statement
// terminator.
func (i *AnalyzersInterface) canonicalize(value string) string {
	term := i.collection.Terminator
	if term == "" || strings.HasSuffix(value, term) {
		return value
	}
	return value + term
}

func valueOrNA(value string) string {
	if value == "" {
		return emptyValue
	}
	return value
}
