package index

import "context"

// Index defines a vector index with basic lifecycle methods.
type Index interface {
	// Build constructs the index from the given ids and vectors.
	// ids and vectors must have the same length; all vectors share one dimension.
	Build(ids []string, vectors [][]float32) error

	// Query runs a kNN search against the index with the provided query vector
	// and returns up to k matches as parallel slices of ids and distances,
	// ordered closest first according to the index metric.
	Query(ctx context.Context, query []float32, k int) (ids []string, distances []float32, err error)
}
