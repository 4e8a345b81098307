package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morlab/boltzvec/buffer"
)

func TestStateRoundTrip(t *testing.T) {
	v := mustFromSlice(t, []float64{1.0, -2.5, 3.0})

	st := v.State()
	assert.Equal(t, buffer.KindDense, st.Kind)
	assert.Equal(t, []float64{1.0, -2.5, 3.0}, st.Data)

	restored, err := FromState(st)
	require.NoError(t, err)

	// Value equality round-trips, object identity does not.
	assert.Equal(t, v.ToSlice(false), restored.ToSlice(false))
	assert.Equal(t, 3, restored.Dim())
	assert.NotSame(t, v, restored)

	restored.Scal(2)
	assert.Equal(t, []float64{1.0, -2.5, 3.0}, v.ToSlice(false))
}

func TestStateDetached(t *testing.T) {
	v := mustFromSlice(t, []float64{1, 2})
	st := v.State()
	v.Scal(5)
	assert.Equal(t, []float64{1, 2}, st.Data)
}

func TestFromStateUnknownKind(t *testing.T) {
	_, err := FromState(State{Kind: "mmap", Data: []float64{1}})
	var kindErr *buffer.ErrUnknownKind
	require.ErrorAs(t, err, &kindErr)
}
