// Cachesim replays Valgrind memory traces against a set-associative cache
// model and reports hit, miss, and eviction counts.
package main

import "github.com/sarchlab/cachesim/cmd"

func main() {
	cmd.Execute()
}
