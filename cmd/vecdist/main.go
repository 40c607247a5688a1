// Command vecdist evaluates vector distances through the SQLite functions
// registered by the engine package.
//
//	vecdist -op '<->' -left '[0,1]' -right '[3,2]'
//	vecdist -config vecdist.yaml -query "SELECT id FROM items ORDER BY vec_cosine(embedding, '[1,0]') DESC LIMIT 5"
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
