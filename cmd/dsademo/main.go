// Command dsademo runs console demonstrations of every dsakit
// component: array, list, stack, queue, graph, search, and sort.
package main

import "os"

var version = "dev"

func main() {
	if err := execute(version); err != nil {
		os.Exit(1)
	}
}
