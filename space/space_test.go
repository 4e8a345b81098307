package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morlab/boltzvec/buffer"
)

func mustSpace(t *testing.T, dim int, opts ...Option) *Space {
	t.Helper()
	s, err := New(dim, opts...)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	s := mustSpace(t, 7, WithID("psi"))
	assert.Equal(t, 7, s.Dim())
	assert.Equal(t, "psi", s.ID())
	assert.Equal(t, buffer.KindDense, s.Kind())

	_, err := New(-1)
	var dimErr *buffer.ErrInvalidDimension
	require.ErrorAs(t, err, &dimErr)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Space
		want bool
	}{
		{"SameDimNoID", mustSpace(t, 4), mustSpace(t, 4), true},
		{"SameDimSameID", mustSpace(t, 4, WithID("x")), mustSpace(t, 4, WithID("x")), true},
		{"DifferentDim", mustSpace(t, 4), mustSpace(t, 5), false},
		{"DifferentID", mustSpace(t, 4, WithID("x")), mustSpace(t, 4, WithID("y")), false},
		{"IDVersusNone", mustSpace(t, 4, WithID("x")), mustSpace(t, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}

	assert.False(t, mustSpace(t, 4).Equal(nil))
}

func TestZeroVector(t *testing.T) {
	for _, dim := range []int{0, 1, 33} {
		s := mustSpace(t, dim)
		v, err := s.ZeroVector()
		require.NoError(t, err)
		assert.Equal(t, dim, v.Dim())
		assert.Zero(t, v.L1Norm())
		assert.True(t, s.Contains(v))
	}
}

func TestMake(t *testing.T) {
	s := mustSpace(t, 2)

	buf := buffer.FromSlice([]float64{1, 2})
	v, err := s.Make(buf)
	require.NoError(t, err)

	// Wrap is by reference: mutations of the source stay visible.
	buf.Scal(2)
	assert.Equal(t, []float64{2, 4}, v.ToSlice(false))

	_, err = s.Make(buffer.FromSlice([]float64{1, 2, 3}))
	var dimErr *buffer.ErrDimensionMismatch
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 2, dimErr.Expected)
	assert.Equal(t, 3, dimErr.Actual)
}

func TestFromSlice(t *testing.T) {
	s := mustSpace(t, 2)

	t.Run("Aliased", func(t *testing.T) {
		src := []float64{1, 2}
		v, err := s.FromSlice(src, false)
		require.NoError(t, err)
		src[0] = 42
		assert.Equal(t, []float64{42, 2}, v.ToSlice(false))
	})

	t.Run("Copied", func(t *testing.T) {
		src := []float64{1, 2}
		v, err := s.FromSlice(src, true)
		require.NoError(t, err)
		src[0] = 42
		assert.Equal(t, []float64{1, 2}, v.ToSlice(false))
	})

	t.Run("WrongDimension", func(t *testing.T) {
		_, err := s.FromSlice([]float64{1}, false)
		var dimErr *buffer.ErrDimensionMismatch
		require.ErrorAs(t, err, &dimErr)
	})
}

func TestDerivedSpaces(t *testing.T) {
	s := mustSpace(t, 3, WithID("rho"))
	v, err := s.ZeroVector()
	require.NoError(t, err)

	forVec := ForVector(v, "rho")
	assert.True(t, s.Equal(forVec))

	forDim, err := ForDim(3, "rho")
	require.NoError(t, err)
	assert.True(t, s.Equal(forDim))

	other, err := ForDim(3, "")
	require.NoError(t, err)
	assert.False(t, s.Equal(other))
}
