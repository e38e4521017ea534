// Package varqo is your in-memory toolkit for QUBO optimization with
// variational quantum circuits: encode a problem as a Q matrix, lift it
// to an Ising Hamiltonian, build the ansatz, train the angles, inspect
// the outcome.
//
// 🚀 What is varqo?
//
//	A focused library that brings together:
//		• QUBO encodings: MaxCut, portfolio selection, custom matrices
//		• Ising conversion: constant offset + weighted Pauli-Z strings
//		• Circuit building: a gate recorder plus reusable entangling blocks
//		• QAOA training: fixed-count Adam descent over injected engines
//		• Result reports: probability and cost tables for quick inspection
//
// ✨ Why choose varqo?
//
//   - Explicit dependencies: engines and autodiff backends are
//     constructor arguments, never ambient globals
//   - Deterministic runs: every random stream is seeded
//   - Gonum underneath: dense matrices, distributions, finite differences
//   - Silent by default: progress logging is injected, zerolog.Nop() away
//
// Under the hood, everything is organized under seven subpackages:
//
//	lattice/  qubit topologies: graphs, paths, rings, 2D grids
//	qubo/     Q matrices, Ising conversion, costs, brute force
//	circuit/  gate sequence recorder, engine contract, QASM export
//	blocks/   reusable circuit fragments: Bell pairs, grids, QAOA layers
//	qaoa/     loss functions and the training loop
//	numgrad/  finite-difference reference backend with Adam
//	report/   fixed-width result tables
//
// Quick ASCII example:
//
//	    (0)───(1)
//	     │     │
//	    (2)───(3)
//
//	a 2x2 grid lattice: four qubits, four coupling edges, one MaxCut
//	matrix away from a QAOA run.
//
// Dive into examples/ for complete MaxCut and portfolio walkthroughs.
//
//	go get github.com/katalvlaran/varqo
package varqo
