package boltzvec

import (
	"context"

	"github.com/morlab/boltzvec/buffer"
	"github.com/morlab/boltzvec/params"
	"github.com/morlab/boltzvec/space"
	"github.com/morlab/boltzvec/vector"
)

// Backend is the native solver boundary.
//
// Buffers crossing this interface follow the buffer.Buffer contract: raw
// storage reachable through Data without copying, a dimension query and a
// kind tag for subtype matching. Operator applications return freshly
// allocated buffers; the inputs are never mutated.
type Backend interface {
	// InitialValues returns the initial degrees of freedom. Its dimension
	// defines the solution space.
	InitialValues() buffer.Buffer

	// Solve runs the remaining time steps to completion and returns one
	// buffer per step. With withHalfSteps, the intermediate half steps of
	// the splitting scheme are interleaved.
	Solve(withHalfSteps bool) ([]buffer.Buffer, error)
	// NextNTimeSteps advances at most n steps and returns the produced
	// states. Fewer buffers come back when the end time is reached.
	NextNTimeSteps(n int, withHalfSteps bool) ([]buffer.Buffer, error)

	Reset()
	Finished() bool
	CurrentTime() float64
	SetCurrentTime(t float64)
	TEnd() float64
	TimeStepLength() float64
	SetCurrentSolution(buf buffer.Buffer) error

	// SetRHSParameters installs the cross-section coefficients used by
	// subsequent ApplyRHS calls.
	SetRHSParameters(sigma params.Sigma)

	ApplyLFOperator(u buffer.Buffer, t, dt float64) (buffer.Buffer, error)
	ApplyRHSOperator(u buffer.Buffer, t float64) (buffer.Buffer, error)
	ApplyGodunovOperator(u buffer.Buffer, t float64) (buffer.Buffer, error)
}

// Solver drives a Backend and reassembles its results into vector arrays.
//
// It is a delegation layer: every numerical operation happens inside the
// backend. The solver owns the solution space identity, caches the last
// installed right-hand-side coefficients to skip redundant parameter pushes,
// and wraps returned buffers by reference.
//
// A Solver is not safe for concurrent use; the design assumes one logical
// thread of control drives solve and time-step sequences.
type Solver struct {
	backend   Backend
	space     *space.Space
	logger    *Logger
	lastSigma *params.Sigma
}

// NewSolver constructs a solver around the given backend. The solution
// space dimension is taken from the backend's initial values.
func NewSolver(backend Backend, opts ...Option) (*Solver, error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	o := solverOptions{logger: NoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	dim := backend.InitialValues().Dim()
	sp, err := space.New(dim, space.WithID(o.spaceID))
	if err != nil {
		return nil, err
	}
	return &Solver{
		backend: backend,
		space:   sp,
		logger:  o.logger.WithDimension(dim),
	}, nil
}

// SolutionSpace returns the space every returned array belongs to.
func (s *Solver) SolutionSpace() *space.Space { return s.space }

// InitialValues returns a one-element array holding the initial state.
func (s *Solver) InitialValues() (*space.Array, error) {
	return space.MakeArray(s.space, s.backend.InitialValues())
}

// Solve runs the backend to completion and returns the trajectory.
func (s *Solver) Solve(ctx context.Context, withHalfSteps bool) (*space.Array, error) {
	bufs, err := s.backend.Solve(withHalfSteps)
	s.logger.LogSolve(ctx, len(bufs), err)
	if err != nil {
		return nil, err
	}
	return space.MakeArray(s.space, bufs...)
}

// NextNTimeSteps advances the backend by at most n steps.
func (s *Solver) NextNTimeSteps(ctx context.Context, n int, withHalfSteps bool) (*space.Array, error) {
	if n <= 0 {
		return nil, ErrInvalidSteps
	}
	bufs, err := s.backend.NextNTimeSteps(n, withHalfSteps)
	s.logger.LogTimeSteps(ctx, n, len(bufs), err)
	if err != nil {
		return nil, err
	}
	return space.MakeArray(s.space, bufs...)
}

// Reset rewinds the backend to its initial state and drops the coefficient
// cache.
func (s *Solver) Reset() {
	s.backend.Reset()
	s.lastSigma = nil
}

// Finished reports whether the backend reached its end time.
func (s *Solver) Finished() bool { return s.backend.Finished() }

// CurrentTime returns the backend's current simulation time.
func (s *Solver) CurrentTime() float64 { return s.backend.CurrentTime() }

// SetCurrentTime moves the backend's simulation clock.
func (s *Solver) SetCurrentTime(t float64) { s.backend.SetCurrentTime(t) }

// TEnd returns the backend's end time.
func (s *Solver) TEnd() float64 { return s.backend.TEnd() }

// TimeStepLength returns the backend's time step.
func (s *Solver) TimeStepLength() float64 { return s.backend.TimeStepLength() }

// SetCurrentSolution installs v as the backend's current state. The vector
// must belong to the solution space.
func (s *Solver) SetCurrentSolution(v *vector.Vector) error {
	if !s.space.Contains(v) {
		return &ErrDimensionMismatch{Expected: s.space.Dim(), Actual: v.Dim()}
	}
	return s.backend.SetCurrentSolution(v.Buffer())
}

// SetRHSParameters pushes the coefficients to the backend unless they match
// the last installed set.
func (s *Solver) SetRHSParameters(sigma params.Sigma) {
	if s.lastSigma != nil && *s.lastSigma == sigma {
		return
	}
	s.lastSigma = &sigma
	s.backend.SetRHSParameters(sigma)
}

// ApplyLF applies the Lax-Friedrichs flux operator to every vector of u.
func (s *Solver) ApplyLF(ctx context.Context, u *space.Array, t, dt float64) (*space.Array, error) {
	out, err := s.applyEach(u, func(buf buffer.Buffer) (buffer.Buffer, error) {
		return s.backend.ApplyLFOperator(buf, t, dt)
	})
	s.logger.LogApply(ctx, "lf", u.Len(), err)
	return out, err
}

// ApplyGodunov applies the Godunov flux operator to every vector of u.
func (s *Solver) ApplyGodunov(ctx context.Context, u *space.Array) (*space.Array, error) {
	out, err := s.applyEach(u, func(buf buffer.Buffer) (buffer.Buffer, error) {
		return s.backend.ApplyGodunovOperator(buf, 0)
	})
	s.logger.LogApply(ctx, "godunov", u.Len(), err)
	return out, err
}

// ApplyRHS installs sigma and applies the right-hand-side operator to every
// vector of u.
func (s *Solver) ApplyRHS(ctx context.Context, u *space.Array, sigma params.Sigma) (*space.Array, error) {
	s.SetRHSParameters(sigma)
	out, err := s.applyEach(u, func(buf buffer.Buffer) (buffer.Buffer, error) {
		return s.backend.ApplyRHSOperator(buf, 0)
	})
	s.logger.LogApply(ctx, "rhs", u.Len(), err)
	return out, err
}

func (s *Solver) applyEach(u *space.Array, apply func(buffer.Buffer) (buffer.Buffer, error)) (*space.Array, error) {
	if !s.space.Equal(u.Space()) {
		return nil, &ErrDimensionMismatch{Expected: s.space.Dim(), Actual: u.Space().Dim()}
	}
	out := space.NewArray(s.space)
	for i := 0; i < u.Len(); i++ {
		v, err := u.At(i)
		if err != nil {
			return nil, err
		}
		res, err := apply(v.Buffer())
		if err != nil {
			return nil, err
		}
		rv, err := s.space.Make(res)
		if err != nil {
			return nil, err
		}
		if err := out.Append(rv); err != nil {
			return nil, err
		}
	}
	return out, nil
}
