// Package boltzvec binds a native finite-volume Boltzmann transport solver
// to model-order-reduction tooling.
//
// The numerical kernel (flux computation, time integration, degree-of-
// freedom storage) lives behind the Backend interface; this module marshals
// buffers, parameters and vector arrays around it. The Solver type is a thin
// delegation layer that owns the solution space, caches the last-applied
// right-hand-side coefficients and reassembles backend results into
// space.Array values.
//
// Subpackages:
//
//   - buffer: dense float64 storage and the backend buffer capability set
//   - vector: the vector wrapper handed to the reduction framework
//   - space: vector spaces, list arrays and DOF selections
//   - params: cross-section coefficients and their parameter space
//   - codec: serialized vector state encoding
//   - snapshot: binary persistence for vectors and arrays
package boltzvec
