package vector

import (
	"fmt"
	"slices"

	"github.com/morlab/boltzvec/buffer"
)

// Subtype is the structural type tag of a vector: the concrete buffer kind
// plus the dimension. Two vectors with equal subtypes are interchangeable as
// far as space membership is concerned.
type Subtype struct {
	Kind string
	Dim  int
}

// String returns a compact representation, e.g. "dense(128)".
func (s Subtype) String() string {
	return fmt.Sprintf("%s(%d)", s.Kind, s.Dim)
}

// Vector wraps one buffer and owns its lifecycle.
type Vector struct {
	buf buffer.Buffer
}

// New wraps an existing buffer by reference. The vector takes ownership;
// callers that keep their own handle on buf must not mutate it concurrently.
func New(buf buffer.Buffer) *Vector {
	return &Vector{buf: buf}
}

// Zero constructs a zero-filled vector of the given subtype. The subtype's
// kind must be registered with the buffer package.
func Zero(st Subtype) (*Vector, error) {
	ctor, ok := buffer.ByKind(st.Kind)
	if !ok {
		return nil, &buffer.ErrUnknownKind{Kind: st.Kind}
	}
	buf, err := ctor(st.Dim)
	if err != nil {
		return nil, err
	}
	return &Vector{buf: buf}, nil
}

// FromSlice constructs a vector of the given kind holding a copy of values.
func FromSlice(kind string, values []float64) (*Vector, error) {
	v, err := Zero(Subtype{Kind: kind, Dim: len(values)})
	if err != nil {
		return nil, err
	}
	copy(v.buf.Data(), values)
	return v, nil
}

// Buffer returns the owned buffer.
func (v *Vector) Buffer() buffer.Buffer { return v.buf }

// Dim returns the vector dimension.
func (v *Vector) Dim() int { return v.buf.Dim() }

// Subtype returns the structural type tag (buffer kind, dimension).
func (v *Vector) Subtype() Subtype {
	return Subtype{Kind: v.buf.Kind(), Dim: v.buf.Dim()}
}

// ToSlice exports the vector values. When forceCopy is false the returned
// slice may alias internal storage, so later mutations of the vector remain
// visible through it. That aliasing is a documented contract, not an error.
func (v *Vector) ToSlice(forceCopy bool) []float64 {
	if forceCopy {
		return slices.Clone(v.buf.Data())
	}
	return v.buf.Data()
}

// Copy returns a new vector with an independent buffer and identical values.
// Deep copy is the only supported mode; deep=false is accepted for interface
// symmetry and still copies the storage.
func (v *Vector) Copy(deep bool) *Vector {
	_ = deep
	return v.clone()
}

// Scal scales the vector in place by alpha.
func (v *Vector) Scal(alpha float64) {
	v.buf.Scal(alpha)
}

// Axpy computes v += alpha * x in place.
func (v *Vector) Axpy(alpha float64, x *Vector) error {
	return v.buf.Axpy(alpha, x.buf.Data())
}

// Dot returns the inner product with x.
func (v *Vector) Dot(x *Vector) (float64, error) {
	return v.buf.Dot(x.buf.Data())
}

// L1Norm returns the sum of absolute values.
func (v *Vector) L1Norm() float64 { return v.buf.L1Norm() }

// L2Norm returns the Euclidean norm.
func (v *Vector) L2Norm() float64 { return v.buf.L2Norm() }

// L2Norm2 returns the squared Euclidean norm.
func (v *Vector) L2Norm2() float64 {
	n := v.buf.L2Norm()
	return n * n
}

// SupNorm returns the maximum absolute value.
func (v *Vector) SupNorm() float64 { return v.buf.SupNorm() }

// DOFs gathers the values at the given indices. An empty or nil index set
// returns an empty slice without touching the buffer. Any index outside
// [0, dim) aborts the gather with ErrIndexOutOfRange.
func (v *Vector) DOFs(indices []int) ([]float64, error) {
	if len(indices) == 0 {
		return []float64{}, nil
	}
	dim := v.buf.Dim()
	out := make([]float64, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= dim {
			return nil, &buffer.ErrIndexOutOfRange{Index: idx, Dim: dim}
		}
		val, err := v.buf.At(idx)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

// Amax returns the index of the entry with the largest absolute value,
// or -1 for a zero-dimension vector.
func (v *Vector) Amax() int { return v.buf.Amax() }

// Add returns v + x as a new vector.
func (v *Vector) Add(x *Vector) (*Vector, error) {
	if err := v.checkDim(x); err != nil {
		return nil, err
	}
	out := v.clone()
	if err := out.buf.AddInPlace(x.buf.Data()); err != nil {
		return nil, err
	}
	return out, nil
}

// Sub returns v - x as a new vector.
func (v *Vector) Sub(x *Vector) (*Vector, error) {
	if err := v.checkDim(x); err != nil {
		return nil, err
	}
	out := v.clone()
	if err := out.buf.SubInPlace(x.buf.Data()); err != nil {
		return nil, err
	}
	return out, nil
}

// Mul returns alpha * v as a new vector.
func (v *Vector) Mul(alpha float64) *Vector {
	out := v.clone()
	out.buf.Scal(alpha)
	return out
}

// Neg returns -v as a new vector.
func (v *Vector) Neg() *Vector {
	return v.Mul(-1)
}

// AddAssign computes v += x in place.
func (v *Vector) AddAssign(x *Vector) error {
	return v.buf.AddInPlace(x.buf.Data())
}

// SubAssign computes v -= x in place.
func (v *Vector) SubAssign(x *Vector) error {
	return v.buf.SubInPlace(x.buf.Data())
}

func (v *Vector) checkDim(x *Vector) error {
	if x.buf.Dim() != v.buf.Dim() {
		return &buffer.ErrDimensionMismatch{Expected: v.buf.Dim(), Actual: x.buf.Dim()}
	}
	return nil
}

// clone allocates a same-subtype vector and copies the values over.
func (v *Vector) clone() *Vector {
	nb, err := v.buf.Zero(v.buf.Dim())
	if err != nil {
		// A live buffer always has a valid dimension.
		panic(fmt.Sprintf("vector: clone of %s failed: %v", v.Subtype(), err))
	}
	copy(nb.Data(), v.buf.Data())
	return &Vector{buf: nb}
}
