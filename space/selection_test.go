package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morlab/boltzvec/buffer"
)

func TestNewSelection(t *testing.T) {
	sel, err := NewSelection(5, 1, 3, 1)
	require.NoError(t, err)

	// Duplicates collapse; indices come back sorted.
	assert.Equal(t, 3, sel.Cardinality())
	assert.Equal(t, []int{1, 3, 5}, sel.Indices())
	assert.True(t, sel.Contains(3))
	assert.False(t, sel.Contains(2))
	assert.False(t, sel.Contains(-1))
	assert.False(t, sel.IsEmpty())
}

func TestNewSelectionNegative(t *testing.T) {
	_, err := NewSelection(0, -4)
	var idxErr *buffer.ErrIndexOutOfRange
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, -4, idxErr.Index)
}

func TestEmptySelection(t *testing.T) {
	sel, err := NewSelection()
	require.NoError(t, err)
	assert.True(t, sel.IsEmpty())
	assert.Zero(t, sel.Cardinality())
	assert.Empty(t, sel.Indices())
	require.NoError(t, sel.validate(0))
}

func TestSelectionValidate(t *testing.T) {
	sel, err := NewSelection(0, 7)
	require.NoError(t, err)

	require.NoError(t, sel.validate(8))

	err = sel.validate(7)
	var idxErr *buffer.ErrIndexOutOfRange
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, 7, idxErr.Index)
	assert.Equal(t, 7, idxErr.Dim)
}
