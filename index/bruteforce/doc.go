// Package bruteforce provides an exact kNN index that scores every stored
// vector with a metric kernel. Scans can be split across workers since the
// kernels are parallel-safe.
package bruteforce
