package qubo

import "errors"

// Sentinel errors for qubo operations.
var (
	// ErrInvalidShape indicates a nil or non-square coefficient matrix.
	ErrInvalidShape = errors.New("qubo: coefficient matrix must be square")
	// ErrDimensionMismatch indicates a vector whose length does not match
	// the matrix dimension.
	ErrDimensionMismatch = errors.New("qubo: vector length does not match matrix dimension")
	// ErrNilGraph indicates a formulation received a nil topology.
	ErrNilGraph = errors.New("qubo: nil topology")
	// ErrBudgetRange indicates a portfolio budget outside [0, n].
	ErrBudgetRange = errors.New("qubo: budget out of range")
)

// PauliTerm marks the qubits a Pauli-Z string acts on: entry q is 1 when
// Z is applied to qubit q and 0 otherwise. Terms produced by ToIsing
// carry exactly one or two marks.
type PauliTerm []int

// Qubits returns the marked qubit indices in ascending order.
func (t PauliTerm) Qubits() []int {
	var out []int
	for q, on := range t {
		if on != 0 {
			out = append(out, q)
		}
	}
	return out
}

// Ising is the diagonal Hamiltonian equivalent of a QUBO matrix:
// offset + Σ_k Weights[k]·Z-string(Terms[k]), under the spin convention
// z = 1-2x. Terms and Weights are index-aligned; Offset collects the
// constant part excluded from expectation-based loss evaluation.
type Ising struct {
	Terms   []PauliTerm
	Weights []float64
	Offset  float64
}

// NumQubits returns the qubit count the Hamiltonian spans, 0 when empty.
func (h Ising) NumQubits() int {
	if len(h.Terms) == 0 {
		return 0
	}
	return len(h.Terms[0])
}

// NumTerms returns the number of weighted Pauli-Z strings.
func (h Ising) NumTerms() int { return len(h.Terms) }
