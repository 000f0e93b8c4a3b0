package tunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferUnitSingleLeaf(t *testing.T) {
	d, err := InferUnit(int64(5), CastSameKind, true)
	require.Error(t, err) // a bare integer has no unit of its own
	_ = d
}

func TestInferUnitFlatStrings(t *testing.T) {
	d, err := InferUnit([]interface{}{"2024-01-01", "2024-06-15T10:00:00"}, CastSameKind, false)
	require.NoError(t, err)
	// GCD of a date-only suggestion (Day) and a date-time suggestion
	// (Microsecond) collapses to the finer side in instant mode.
	assert.Equal(t, Descriptor{Base: BaseMicrosecond, Num: 1}, d)
}

func TestInferUnitNestedEmpty(t *testing.T) {
	d, err := InferUnit([]interface{}{}, CastSameKind, false)
	require.NoError(t, err)
	assert.Equal(t, GenericDescriptor, d)
}

func TestInferUnitRecursionLimit(t *testing.T) {
	var nest interface{} = "2024-01-01"
	for i := 0; i < 5; i++ {
		nest = []interface{}{nest}
	}
	_, err := InferUnit(nest, CastSameKind, false, WithRecursionLimit(2))
	var terr *TemporalError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, KindOverflow, terr.Kind)
}

func TestInferUnitSkipsInvalidLeaf(t *testing.T) {
	d, err := InferUnit([]interface{}{"2024-02-30", "2024-01-01"}, CastSameKind, false)
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Base: BaseDay, Num: 1}, d)
}

func TestInferUnitAllLeavesInvalidYieldsGeneric(t *testing.T) {
	d, err := InferUnit([]interface{}{"2024-02-30", "2024-13-01"}, CastSameKind, false)
	require.NoError(t, err)
	assert.Equal(t, GenericDescriptor, d)
}

func TestInferUnitNestedMixed(t *testing.T) {
	d, err := InferUnit([]interface{}{
		[]interface{}{"2024-01-01"},
		[]interface{}{}, // empty branch contributes nothing
		"2024-01-02",
	}, CastSameKind, false)
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Base: BaseDay, Num: 1}, d)
}
