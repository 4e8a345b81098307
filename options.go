package boltzvec

type solverOptions struct {
	logger  *Logger
	spaceID string
}

// Option configures Solver construction.
type Option func(*solverOptions)

// WithLogger sets the structured logger. If nil is passed, logging is
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *solverOptions) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithSpaceID sets the namespace id of the solution space. Use it to keep
// several solvers of the same dimension apart, e.g. separate physical
// fields.
func WithSpaceID(id string) Option {
	return func(o *solverOptions) {
		o.spaceID = id
	}
}
