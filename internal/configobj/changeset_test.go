package configobj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeSetRecordsInOrder(t *testing.T) {
	changes := NewChangeSet()
	assert.True(t, changes.Empty())
	require.NotEmpty(t, changes.ID)

	changes.Record("index", "old", "new")
	changes.Record("enabled", false, true)

	assert.False(t, changes.Empty())
	require.Len(t, changes.Entries, 2)
	assert.Equal(t, "index", changes.Entries[0].Key)
	assert.Equal(t, "enabled", changes.Entries[1].Key)
}

func TestChangeSetIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, NewChangeSet().ID, NewChangeSet().ID)
}

func TestRenderChanges(t *testing.T) {
	changes := NewChangeSet()
	changes.Record("index", "old-index", "new-index")

	rendered := RenderChanges(changes)
	assert.Contains(t, rendered, "Option")
	assert.Contains(t, rendered, "Previous")
	assert.Contains(t, rendered, "Current")
	assert.Contains(t, rendered, "old-index")
	assert.Contains(t, rendered, "new-index")
}

func TestOutcomeMutated(t *testing.T) {
	empty := Outcome{Report: "snapshot", Changes: NewChangeSet()}
	assert.False(t, empty.Mutated())

	mutated := Outcome{Changes: NewChangeSet()}
	mutated.Changes.Record("enabled", false, true)
	assert.True(t, mutated.Mutated())
}
