// Package vecutil runs nearest-neighbour ranking queries against a table of
// vector embeddings, ordering rows with the SQL function bound to an operator
// token.
package vecutil
