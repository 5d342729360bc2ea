package cmdline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opNames(ops []OperationSpec) []string {
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, op.Name)
	}
	return names
}

func TestMergeOperationsFirstWins(t *testing.T) {
	derived := []OperationSpec{
		{Name: "validate", Doc: "derived validate"},
	}
	base := []OperationSpec{
		{Name: "show", Doc: "base show"},
		{Name: "validate", Doc: "base validate"},
		{Name: "reset", Doc: "base reset"},
	}

	merged := MergeOperations(derived, base)

	assert.Equal(t, []string{"validate", "show", "reset"}, opNames(merged))
	op := merged[0]
	assert.Equal(t, "derived validate", op.Doc)
}

func TestMergeOperationsSingleChain(t *testing.T) {
	base := []OperationSpec{
		{Name: "show"},
		{Name: "reset"},
	}
	assert.Equal(t, []string{"show", "reset"}, opNames(MergeOperations(base)))
}

func TestValidateRejectsUntypedConstructorParam(t *testing.T) {
	spec := TargetSpec{
		Name: "Broken Manager",
		Constructor: ConstructorSpec{
			Params: []ParameterSpec{
				{Name: "configuration_directory", Kind: KindString},
				{Name: "mystery"},
			},
		},
	}

	err := spec.Validate()
	require.Error(t, err)

	var missing *MissingTypeAnnotationError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Broken Manager", missing.Target)
	assert.Equal(t, "constructor", missing.Operation)
	assert.Equal(t, "mystery", missing.Param)
	assert.True(t, errors.Is(err, &MissingTypeAnnotationError{}))
}

func TestUsableOperationsSkipsUntypedParams(t *testing.T) {
	spec := TargetSpec{
		Name: "Manager",
		Constructor: ConstructorSpec{
			Params: []ParameterSpec{{Name: "configuration_directory", Kind: KindString}},
		},
		Operations: []OperationSpec{
			{Name: "show"},
			{Name: "broken", Params: []ParameterSpec{{Name: "mystery"}}},
			{Name: "reset"},
		},
	}

	require.NoError(t, spec.Validate())
	assert.Equal(t, []string{"show", "reset"}, opNames(spec.usableOperations()))
}

func TestOperationLookupReturnsFirstMatch(t *testing.T) {
	spec := TargetSpec{
		Operations: []OperationSpec{
			{Name: "validate", Doc: "first"},
			{Name: "validate", Doc: "second"},
		},
	}
	op, ok := spec.Operation("validate")
	require.True(t, ok)
	assert.Equal(t, "first", op.Doc)

	_, ok = spec.Operation("missing")
	assert.False(t, ok)
}
