package space

import (
	"fmt"

	"github.com/morlab/boltzvec/buffer"
	"github.com/morlab/boltzvec/vector"
)

type options struct {
	id   string
	kind string
}

// Option configures space construction.
type Option func(*options)

// WithID sets the namespace id distinguishing otherwise-identical spaces,
// e.g. multiple physical fields of the same dimension. Empty means no
// namespace.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

// WithKind sets the buffer kind used for zero-construction.
// Defaults to buffer.KindDense.
func WithKind(kind string) Option {
	return func(o *options) {
		if kind == "" {
			kind = buffer.KindDense
		}
		o.kind = kind
	}
}

// Space is a factory and type authority for vectors of one dimension.
// It is stateless beyond its identity fields and never mutated after
// construction.
type Space struct {
	dim  int
	id   string
	kind string
}

// New constructs a space of the given dimension.
func New(dim int, opts ...Option) (*Space, error) {
	if dim < 0 {
		return nil, &buffer.ErrInvalidDimension{Dimension: dim}
	}
	o := options{kind: buffer.KindDense}
	for _, opt := range opts {
		opt(&o)
	}
	return &Space{dim: dim, id: o.id, kind: o.kind}, nil
}

// ForVector derives a space matching the given vector's subtype.
func ForVector(v *vector.Vector, id string) *Space {
	st := v.Subtype()
	return &Space{dim: st.Dim, id: id, kind: st.Kind}
}

// ForDim derives a space of an explicit dimension.
func ForDim(dim int, id string) (*Space, error) {
	return New(dim, WithID(id))
}

// Dim returns the space dimension.
func (s *Space) Dim() int { return s.dim }

// ID returns the namespace id; empty means no namespace.
func (s *Space) ID() string { return s.id }

// Kind returns the buffer kind used for zero-construction.
func (s *Space) Kind() string { return s.kind }

// Equal reports structural equality on (dimension, namespace id).
func (s *Space) Equal(other *Space) bool {
	if other == nil {
		return false
	}
	return s.dim == other.dim && s.id == other.id
}

// Contains reports whether v's dimension matches the space's.
func (s *Space) Contains(v *vector.Vector) bool {
	return v != nil && v.Dim() == s.dim
}

// String returns a compact representation, e.g. "space(dim=128, id=psi)".
func (s *Space) String() string {
	if s.id == "" {
		return fmt.Sprintf("space(dim=%d)", s.dim)
	}
	return fmt.Sprintf("space(dim=%d, id=%s)", s.dim, s.id)
}

// ZeroVector returns an all-zero vector of the space's dimension and kind.
func (s *Space) ZeroVector() (*vector.Vector, error) {
	return vector.Zero(vector.Subtype{Kind: s.kind, Dim: s.dim})
}

// Make wraps an externally constructed buffer by reference.
//
// The buffer is typically produced by a native numerical routine rather than
// freshly allocated here, so no copy is taken. The caller must not mutate
// the aliased source concurrently.
func (s *Space) Make(buf buffer.Buffer) (*vector.Vector, error) {
	if buf.Dim() != s.dim {
		return nil, &buffer.ErrDimensionMismatch{Expected: s.dim, Actual: buf.Dim()}
	}
	return vector.New(buf), nil
}

// FromSlice builds a vector of the space's dimension from flat values.
// When forceCopy is true the values are copied into fresh storage;
// otherwise the vector aliases the caller's slice.
func (s *Space) FromSlice(values []float64, forceCopy bool) (*vector.Vector, error) {
	if len(values) != s.dim {
		return nil, &buffer.ErrDimensionMismatch{Expected: s.dim, Actual: len(values)}
	}
	if forceCopy || s.kind != buffer.KindDense {
		v, err := s.ZeroVector()
		if err != nil {
			return nil, err
		}
		copy(v.Buffer().Data(), values)
		return v, nil
	}
	return vector.New(buffer.WrapSlice(values)), nil
}
