package space

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/morlab/boltzvec/buffer"
	"github.com/morlab/boltzvec/vector"
)

// Array is an ordered sequence of vectors belonging to one space.
//
// Bulk mutations delegate to per-element calls on a single goroutine.
// Read-only batch reductions fan out with an errgroup: each goroutine only
// reads its own element's buffer, so no buffer is written concurrently.
type Array struct {
	space *Space
	vecs  []*vector.Vector
}

// NewArray returns an empty array over the given space.
func NewArray(s *Space) *Array {
	return &Array{space: s}
}

// MakeArray wraps externally constructed buffers into an array, taking each
// by reference through Space.Make.
func MakeArray(s *Space, bufs ...buffer.Buffer) (*Array, error) {
	a := NewArray(s)
	for _, buf := range bufs {
		v, err := s.Make(buf)
		if err != nil {
			return nil, err
		}
		a.vecs = append(a.vecs, v)
	}
	return a, nil
}

// Space returns the array's space.
func (a *Array) Space() *Space { return a.space }

// Len returns the number of vectors held.
func (a *Array) Len() int { return len(a.vecs) }

// At returns the vector at position i.
func (a *Array) At(i int) (*vector.Vector, error) {
	if i < 0 || i >= len(a.vecs) {
		return nil, &buffer.ErrIndexOutOfRange{Index: i, Dim: len(a.vecs)}
	}
	return a.vecs[i], nil
}

// Append adds vectors to the end of the array. Every vector must match the
// space's dimension; on mismatch nothing is appended.
func (a *Array) Append(vs ...*vector.Vector) error {
	for _, v := range vs {
		if v.Dim() != a.space.dim {
			return &buffer.ErrDimensionMismatch{Expected: a.space.dim, Actual: v.Dim()}
		}
	}
	a.vecs = append(a.vecs, vs...)
	return nil
}

// AppendArray adds every vector of other to the end of the array.
func (a *Array) AppendArray(other *Array) error {
	return a.Append(other.vecs...)
}

// Copy returns a new array holding deep copies of every vector.
func (a *Array) Copy() *Array {
	out := &Array{space: a.space, vecs: make([]*vector.Vector, len(a.vecs))}
	for i, v := range a.vecs {
		out.vecs[i] = v.Copy(true)
	}
	return out
}

// Scal scales every vector in place by alpha.
func (a *Array) Scal(alpha float64) {
	for _, v := range a.vecs {
		v.Scal(alpha)
	}
}

// Axpy computes a[i] += alpha * x[i] for every position. The arrays must
// have equal length and equal-dimension spaces.
func (a *Array) Axpy(alpha float64, x *Array) error {
	if x.Len() != a.Len() {
		return &buffer.ErrDimensionMismatch{Expected: a.Len(), Actual: x.Len()}
	}
	for i, v := range a.vecs {
		if err := v.Axpy(alpha, x.vecs[i]); err != nil {
			return err
		}
	}
	return nil
}

// PairwiseDot returns a[i] · x[i] for every position.
func (a *Array) PairwiseDot(x *Array) ([]float64, error) {
	if x.Len() != a.Len() {
		return nil, &buffer.ErrDimensionMismatch{Expected: a.Len(), Actual: x.Len()}
	}
	out := make([]float64, len(a.vecs))
	for i, v := range a.vecs {
		d, err := v.Dot(x.vecs[i])
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// L1Norms returns the L1 norm of every vector.
func (a *Array) L1Norms() []float64 {
	return a.reduce((*vector.Vector).L1Norm)
}

// L2Norms returns the L2 norm of every vector.
func (a *Array) L2Norms() []float64 {
	return a.reduce((*vector.Vector).L2Norm)
}

// SupNorms returns the sup norm of every vector.
func (a *Array) SupNorms() []float64 {
	return a.reduce((*vector.Vector).SupNorm)
}

// reduce evaluates a read-only reduction on every vector in parallel.
// Each goroutine writes only its own output slot.
func (a *Array) reduce(f func(*vector.Vector) float64) []float64 {
	out := make([]float64, len(a.vecs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, v := range a.vecs {
		g.Go(func() error {
			out[i] = f(v)
			return nil
		})
	}
	_ = g.Wait() // reductions cannot fail
	return out
}

// DOFs gathers the selected degrees of freedom from every vector, one row
// per vector. An empty selection yields empty rows.
func (a *Array) DOFs(sel *Selection) ([][]float64, error) {
	indices := sel.Indices()
	if err := sel.validate(a.space.dim); err != nil {
		return nil, err
	}
	out := make([][]float64, len(a.vecs))
	for i, v := range a.vecs {
		row, err := v.DOFs(indices)
		if err != nil {
			return nil, err
		}
		out[i] = row
	}
	return out, nil
}

// Amax returns, for every vector, the index of its largest-magnitude entry.
func (a *Array) Amax() []int {
	out := make([]int, len(a.vecs))
	for i, v := range a.vecs {
		out[i] = v.Amax()
	}
	return out
}
