// Package index defines the interface of vector indexes that rank stored
// vectors with a metric kernel.
package index
