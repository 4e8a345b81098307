// Package vector implements the dense vector wrapper handed to the
// reduction framework.
//
// A Vector owns exactly one buffer.Buffer and adds identity and lifecycle on
// top of it: a structural subtype (buffer kind + dimension) used by vector
// spaces, deep copies, allocating and mutating arithmetic, reductions, DOF
// gathers and a serializable value state.
//
// Mutating operations (Scal, Axpy, AddAssign, SubAssign) write the owned
// buffer in place and keep the vector's identity. Allocating operations
// (Add, Sub, Mul, Neg, Copy) return a fresh Vector with a fresh buffer.
package vector
