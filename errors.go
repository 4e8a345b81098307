package boltzvec

import (
	"errors"

	"github.com/morlab/boltzvec/buffer"
)

var (
	// ErrNilBackend is returned when a Solver is constructed without a backend.
	ErrNilBackend = errors.New("backend must not be nil")
	// ErrInvalidSteps is returned when a time-step count is not positive.
	ErrInvalidSteps = errors.New("step count must be positive")
)

// Shape and access violations surface unchanged from the buffer layer; they
// are aliased here so facade users need not import it for error matching.
type (
	// ErrDimensionMismatch indicates a binary operation between operands of
	// different dimensions.
	ErrDimensionMismatch = buffer.ErrDimensionMismatch
	// ErrIndexOutOfRange indicates an indexed access outside [0, dim).
	ErrIndexOutOfRange = buffer.ErrIndexOutOfRange
	// ErrInvalidDimension indicates a constructor was given a negative
	// dimension.
	ErrInvalidDimension = buffer.ErrInvalidDimension
)
