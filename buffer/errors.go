package buffer

import "fmt"

// ErrDimensionMismatch indicates a binary operation between buffers of
// different lengths. Shape mismatches are precondition violations: the
// offending operation is aborted and nothing is written.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrIndexOutOfRange indicates an indexed access outside [0, dim).
type ErrIndexOutOfRange struct {
	Index int
	Dim   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Dim)
}

// ErrInvalidDimension indicates a constructor was given a negative dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrUnknownKind indicates a kind name with no registered constructor.
type ErrUnknownKind struct {
	Kind string
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown buffer kind: %q", e.Kind)
}
