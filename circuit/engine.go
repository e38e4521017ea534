// SPDX-License-Identifier: MIT
// Package circuit: the Engine capability interface.
//
// Contract:
//   - Engine is the only doorway from gate sequences to numbers. varqo
//     itself ships no state-vector simulator; implementations wrap an
//     external simulator or hardware service.
//   - Calls are synchronous and side-effect free from the caller's view;
//     implementations may batch or parallelize internally but must block
//     until the result is ready.
//   - Implementation errors are returned to callers unmodified; varqo
//     never wraps, retries, or reinterprets them.

package circuit

import "gonum.org/v1/gonum/mat"

// Engine evaluates measurement queries against a gate sequence.
type Engine interface {
	// ExpectationZ returns the expectation value of the tensor product of
	// Pauli-Z operators over the given qubits in the state prepared by c.
	// The result may carry a numerically negligible imaginary part;
	// consumers take the real component.
	ExpectationZ(c *Circuit, qubits []int) (complex128, error)

	// Probabilities returns the 2^n basis-state probability vector for the
	// state prepared by c, indexed with qubit 0 as the most significant
	// bit of the state label.
	Probabilities(c *Circuit) ([]float64, error)
}

// ZZ returns the diagonal two-qubit generator diag(1,-1,-1,1), i.e. Z⊗Z.
// Exponentiating it with Exp1 yields the Ising coupling gate used by the
// QAOA cost layer. A fresh matrix is returned on every call so callers
// can hold it without aliasing concerns.
func ZZ() *mat.CDense {
	zz := mat.NewCDense(4, 4, nil)
	zz.Set(0, 0, 1)
	zz.Set(1, 1, -1)
	zz.Set(2, 2, -1)
	zz.Set(3, 3, 1)
	return zz
}
