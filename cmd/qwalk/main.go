// Command qwalk simulates quantum walks on small graphs and benchmarks
// marked-vertex search against classical random walks.
//
// Subcommands:
//
//	evolve — continuous-time evolution sweep from a localized start
//	search — marked-vertex search with either engine
//	bench  — quantum-vs-classical scaling benchmark over graph sizes
//
// Charts and CSV exports land in --output (default "results").
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Cobra already routed the error through the configured logger.
		os.Exit(1)
	}
}
