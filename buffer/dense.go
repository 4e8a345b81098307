package buffer

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

// KindDense is the kind name of the built-in memory-backed buffer.
const KindDense = "dense"

// Dense is a memory-backed Buffer over a contiguous float64 slice.
//
// The length is fixed at construction. Arithmetic delegates to gonum; every
// binary operation validates operand length first, so the gonum kernels never
// see mismatched shapes.
type Dense struct {
	data []float64
}

var _ Buffer = (*Dense)(nil)

// New returns a zero-filled Dense buffer of the given dimension.
// Dimension 0 is valid and yields an empty buffer.
func New(dim int) (*Dense, error) {
	return NewFill(dim, 0)
}

// NewFill returns a Dense buffer with every entry set to fill.
func NewFill(dim int, fill float64) (*Dense, error) {
	if dim < 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	d := &Dense{data: allocAlignedFloat64(dim)}
	if fill != 0 {
		for i := range d.data {
			d.data[i] = fill
		}
	}
	return d, nil
}

// FromSlice returns a Dense buffer holding a copy of values.
func FromSlice(values []float64) *Dense {
	d := &Dense{data: allocAlignedFloat64(len(values))}
	copy(d.data, values)
	return d
}

// WrapSlice returns a Dense buffer aliasing values without copying.
//
// The caller keeps a handle on the same storage: mutations through either
// side are visible through the other. Use FromSlice for detached ownership.
func WrapSlice(values []float64) *Dense {
	return &Dense{data: values}
}

// Kind returns KindDense.
func (d *Dense) Kind() string { return KindDense }

// Dim returns the buffer length.
func (d *Dense) Dim() int { return len(d.data) }

// Data returns the backing storage. The slice aliases internal memory.
func (d *Dense) Data() []float64 { return d.data }

// Zero returns a fresh zero-filled Dense buffer of the given dimension.
func (d *Dense) Zero(dim int) (Buffer, error) {
	return New(dim)
}

// Copy returns a Dense buffer with independent storage and identical values.
func (d *Dense) Copy() *Dense {
	return FromSlice(d.data)
}

// At returns the element at index i.
func (d *Dense) At(i int) (float64, error) {
	if i < 0 || i >= len(d.data) {
		return 0, &ErrIndexOutOfRange{Index: i, Dim: len(d.data)}
	}
	return d.data[i], nil
}

// Set writes the element at index i.
func (d *Dense) Set(i int, v float64) error {
	if i < 0 || i >= len(d.data) {
		return &ErrIndexOutOfRange{Index: i, Dim: len(d.data)}
	}
	d.data[i] = v
	return nil
}

// Scal scales the buffer in place by alpha.
func (d *Dense) Scal(alpha float64) {
	floats.Scale(alpha, d.data)
}

// Axpy computes d += alpha * x in place.
func (d *Dense) Axpy(alpha float64, x []float64) error {
	if err := d.checkDim(x); err != nil {
		return err
	}
	floats.AddScaled(d.data, alpha, x)
	return nil
}

// AddInPlace computes d += x in place.
func (d *Dense) AddInPlace(x []float64) error {
	if err := d.checkDim(x); err != nil {
		return err
	}
	floats.Add(d.data, x)
	return nil
}

// SubInPlace computes d -= x in place.
func (d *Dense) SubInPlace(x []float64) error {
	if err := d.checkDim(x); err != nil {
		return err
	}
	floats.Sub(d.data, x)
	return nil
}

// Dot returns the inner product of the buffer with x.
func (d *Dense) Dot(x []float64) (float64, error) {
	if err := d.checkDim(x); err != nil {
		return 0, err
	}
	return floats.Dot(d.data, x), nil
}

// L1Norm returns the sum of absolute values.
func (d *Dense) L1Norm() float64 {
	if len(d.data) == 0 {
		return 0
	}
	return floats.Norm(d.data, 1)
}

// L2Norm returns the Euclidean norm.
func (d *Dense) L2Norm() float64 {
	if len(d.data) == 0 {
		return 0
	}
	return floats.Norm(d.data, 2)
}

// SupNorm returns the maximum absolute value.
func (d *Dense) SupNorm() float64 {
	if len(d.data) == 0 {
		return 0
	}
	return floats.Norm(d.data, math.Inf(1))
}

// Amax returns the index of the element with the largest absolute value,
// or -1 for an empty buffer. Ties resolve to the lowest index.
func (d *Dense) Amax() int {
	if len(d.data) == 0 {
		return -1
	}
	return blas64.Iamax(blas64.Vector{N: len(d.data), Data: d.data, Inc: 1})
}

func (d *Dense) checkDim(x []float64) error {
	if len(x) != len(d.data) {
		return &ErrDimensionMismatch{Expected: len(d.data), Actual: len(x)}
	}
	return nil
}
