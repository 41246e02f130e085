// Package qwalk is a small toolkit for simulating quantum walks on graphs
// and benchmarking marked-vertex search against classical random walks.
//
// 🚀 What is qwalk?
//
//	A deterministic, library-first simulator that brings together:
//		• Graph families: complete graphs, cycles, stars, hypercubes, 2D grids
//		• Coined walks: Grover/Hadamard coins with a flip-flop shift
//		• Continuous walks: exp(-iHt) evolution via spectral decomposition
//		• Search: marked-vertex probability trajectories and peak detection
//		• Baselines: classical random-walk propagation and hitting times
//		• Reporting: PNG charts, terminal tables and CSV exports
//
// ✨ Why choose qwalk?
//
//   - Exact and reproducible – unitary evolution, no sampling noise
//   - Small instances by design – every run is dense linear algebra over
//     tens to low hundreds of basis states
//   - Engine-agnostic evaluation – discrete and continuous engines share
//     one walker interface, so the evaluator drives either
//
// Everything is organized under focused subpackages:
//
//	graph/      — graph families, adjacency/Laplacian/transition matrices
//	walk/       — state vectors, the Walker interface, trajectories
//	coined/     — discrete-time coined walk engine
//	continuous/ — continuous-time Hamiltonian evolution engine
//	search/     — marked-vertex search evaluator and scaling benchmark
//	classical/  — classical random-walk baseline
//	report/     — charts, summary tables, CSV export
//	cmd/qwalk   — command-line front end (evolve, search, bench)
//
// Quick ASCII example of a walk instance:
//
//	    0───1
//	    │ ╳ │        K4: every vertex adjacent to every other;
//	    2───3        mark one vertex and watch its probability peak.
//
// See DESIGN.md for the design ledger, and each package's doc.go for
// contracts, defaults and error taxonomies.
//
//	go get github.com/katalvlaran/qwalk
package qwalk
