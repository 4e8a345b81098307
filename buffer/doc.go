// Package buffer provides the dense double-precision storage used by the
// vector layer.
//
// A Buffer is a fixed-length, mutable float64 array with in-place arithmetic
// and reductions. The Buffer interface is the adapter boundary to native
// numeric backends: it is the only place foreign storage types appear.
// Dense is the built-in memory-backed implementation.
//
// # Kinds
//
// Every Buffer reports a stable kind name. Kinds are registered so that a
// buffer of a given kind can be reconstructed from its name alone, which is
// what the serialization and zero-construction paths rely on:
//
//	ctor, ok := buffer.ByKind(buffer.KindDense)
//	buf, err := ctor(128)
//
// # Aliasing
//
// Data returns the contiguous backing storage without copying. The returned
// slice stays valid as long as the buffer is alive and reflects in-place
// mutations immediately. Callers that need a detached snapshot must copy.
package buffer
