// Package lattice defines core types and sentinel errors for qubit
// topology descriptors used across github.com/katalvlaran/varqo.
package lattice

import (
	"errors"
)

// Sentinel errors for lattice operations.
var (
	// ErrNoQubits indicates a topology was requested over zero or fewer qubits.
	ErrNoQubits = errors.New("lattice: topology must span at least one qubit")
	// ErrQubitRange indicates a qubit index outside [0, NumQubits).
	ErrQubitRange = errors.New("lattice: qubit index out of range")
	// ErrSelfLoop indicates an edge connecting a qubit to itself.
	ErrSelfLoop = errors.New("lattice: self-loop edges are not allowed")
	// ErrTooFewQubits indicates a standard topology needs more qubits than given.
	ErrTooFewQubits = errors.New("lattice: too few qubits for requested topology")
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("lattice: grid must have at least one row and one column")
)

// Edge is an undirected coupling between two qubits A and B.
// Weight is consumed by problem formulations (e.g. MaxCut); entangling
// blocks traverse edges structurally and ignore it.
type Edge struct {
	A, B   int     // Qubit endpoints, always stored with A < B
	Weight float64 // Coupling strength; 1 for unit-weight topologies
}

// Graph is an ordered edge list over qubits 0..n-1. It is append-only:
// edges keep their insertion order, which downstream consumers rely on
// when pairing edges with per-edge rotation angles.
//
// Graph is not safe for concurrent mutation.
type Graph struct {
	n     int
	edges []Edge
}
