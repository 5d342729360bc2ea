package configobj

import "github.com/google/uuid"

// Change records one mutated field or item: its key and the old and new
// values observed during the pass.
type Change struct {
	// Key identifies the mutated field (hyphenated option name) or item
	// (analyzer id prefixed with "analyzer:").
	Key string
	// Old is the value before the pass.
	Old any
	// New is the value after the pass.
	New any
}

// ChangeSet is the record of everything mutated during one execution pass.
// An empty ChangeSet means the pass produced a read-only report and left
// the underlying object untouched.
type ChangeSet struct {
	// ID uniquely identifies the pass.
	ID string
	// Entries lists the changes in application order.
	Entries []Change
}

// NewChangeSet creates an empty change set with a fresh pass id.
func NewChangeSet() ChangeSet {
	return ChangeSet{ID: uuid.NewString()}
}

// Record appends one change.
func (c *ChangeSet) Record(key string, oldValue, newValue any) {
	c.Entries = append(c.Entries, Change{Key: key, Old: oldValue, New: newValue})
}

// Empty reports whether the pass mutated anything.
func (c ChangeSet) Empty() bool {
	return len(c.Entries) == 0
}

// Outcome is the result of one execution pass: either a read-only rendered
// report (nothing was selected or every eligible input was empty) or a
// recorded set of in-place mutations the caller should persist. The two are
// mutually exclusive; there is no partial-mutation-then-report outcome.
type Outcome struct {
	// Report holds the tabulated snapshot when the pass mutated nothing.
	Report string
	// Changes records the mutations applied during the pass.
	Changes ChangeSet
}

// Mutated reports whether the pass mutated the underlying object, in which
// case the caller should persist it rather than print Report.
func (o Outcome) Mutated() bool {
	return !o.Changes.Empty()
}
