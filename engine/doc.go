// Package engine binds the metric kernels to the modernc.org/sqlite driver.
// Each kernel is registered as a deterministic SQL scalar function, the
// SQLite equivalent of an immutable, parallel-safe operator, so ranking
// queries can ORDER BY a distance. It keeps a thin surface so other packages
// can share the same driver instance.
package engine
