package buffer

import "sync"

// Buffer is the capability set every numeric backend must provide.
//
// Binary operations take the operand's raw storage rather than a concrete
// buffer type, so implementations never depend on each other. All of them
// must reject operands whose length differs from Dim with
// ErrDimensionMismatch.
type Buffer interface {
	// Kind returns the stable name of the concrete storage type.
	Kind() string
	// Dim returns the fixed length of the buffer.
	Dim() int
	// Data returns the contiguous backing storage. The slice aliases
	// internal memory: mutations are visible in both directions.
	Data() []float64
	// Zero returns a fresh zero-filled buffer of the same kind.
	Zero(dim int) (Buffer, error)
	// At returns the element at index i.
	At(i int) (float64, error)

	// In-place arithmetic.
	Scal(alpha float64)
	Axpy(alpha float64, x []float64) error
	AddInPlace(x []float64) error
	SubInPlace(x []float64) error

	// Reductions.
	Dot(x []float64) (float64, error)
	L1Norm() float64
	L2Norm() float64
	SupNorm() float64
	Amax() int
}

// Constructor builds a zero-filled buffer of a registered kind.
type Constructor func(dim int) (Buffer, error)

var (
	kindsMu sync.RWMutex
	kinds   = map[string]Constructor{}
)

// RegisterKind registers a constructor under a stable kind name.
// Registering the same name twice overwrites the previous constructor.
func RegisterKind(name string, ctor Constructor) {
	kindsMu.Lock()
	defer kindsMu.Unlock()
	kinds[name] = ctor
}

// ByKind returns the constructor registered under name.
//
// Serialized vectors record their buffer kind; decoding resolves the
// constructor through this registry.
func ByKind(name string) (Constructor, bool) {
	kindsMu.RLock()
	defer kindsMu.RUnlock()
	ctor, ok := kinds[name]
	return ctor, ok
}

func init() {
	RegisterKind(KindDense, func(dim int) (Buffer, error) {
		return New(dim)
	})
}
