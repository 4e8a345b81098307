// Package space provides vector spaces and list-structured vector arrays.
//
// A Space is a factory and type authority for vectors of one dimension: it
// produces zero vectors, wraps externally supplied buffers and builds
// vectors from raw float64 slices. It holds no vectors itself; ownership
// stays with whichever caller or Array holds them. Two spaces are equal iff
// their dimension and namespace id match.
//
// An Array is an ordered sequence of vectors of one space. Bulk operations
// delegate to per-element calls; read-only batch reductions fan out across
// goroutines since concurrent reads of distinct (or even shared) buffers
// are safe.
package space
