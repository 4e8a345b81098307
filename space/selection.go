package space

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/morlab/boltzvec/buffer"
)

// Selection is a set of degree-of-freedom indices used for restricted
// evaluation over arrays, e.g. empirical-interpolation style gathers.
//
// Indices are kept in a roaring bitmap, so duplicates collapse and Indices
// always returns them in ascending order.
type Selection struct {
	bm *roaring.Bitmap
}

// NewSelection builds a selection from the given indices.
// Negative indices are rejected with ErrIndexOutOfRange; upper-bound
// validation happens against the dimension of whatever the selection is
// applied to.
func NewSelection(indices ...int) (*Selection, error) {
	bm := roaring.New()
	for _, idx := range indices {
		if idx < 0 {
			return nil, &buffer.ErrIndexOutOfRange{Index: idx, Dim: 0}
		}
		bm.Add(uint32(idx))
	}
	return &Selection{bm: bm}, nil
}

// Cardinality returns the number of distinct selected indices.
func (s *Selection) Cardinality() int {
	return int(s.bm.GetCardinality())
}

// IsEmpty reports whether nothing is selected.
func (s *Selection) IsEmpty() bool {
	return s.bm.IsEmpty()
}

// Contains reports whether idx is selected.
func (s *Selection) Contains(idx int) bool {
	if idx < 0 {
		return false
	}
	return s.bm.Contains(uint32(idx))
}

// Indices returns the selected indices in ascending order.
func (s *Selection) Indices() []int {
	out := make([]int, 0, s.bm.GetCardinality())
	it := s.bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// validate checks that every selected index fits inside [0, dim).
func (s *Selection) validate(dim int) error {
	if s.bm.IsEmpty() {
		return nil
	}
	if max := int(s.bm.Maximum()); max >= dim {
		return &buffer.ErrIndexOutOfRange{Index: max, Dim: dim}
	}
	return nil
}
