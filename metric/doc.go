// Package metric implements the vector distance kernels used to rank stored
// vectors by proximity to a query vector:
//   - SquaredEuclidean (<->): sum of squared element differences
//   - DotProduct (<#>): sum of element products, no sign change
//   - Cosine (<=>): dot product divided by the product of both norms
//
// Every kernel validates that both operands have the same length before any
// computation and reports a *DimensionMismatchError otherwise. Kernels are
// pure functions: they never mutate or retain their inputs and are safe to
// call concurrently.
package metric
