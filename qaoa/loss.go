// SPDX-License-Identifier: MIT
// Package qaoa: Ising loss evaluation and ansatz composition.
//
// Contract:
//   - IsingLoss is side-effect free: the circuit is only read, the engine
//     is queried once per term, and no caching happens anywhere.
//   - The constant Hamiltonian offset is excluded from the loss; it does
//     not influence gradients and is reported separately by qubo.ToIsing.
//   - Engine errors are returned unmodified.

package qaoa

import (
	"fmt"

	"github.com/katalvlaran/varqo/circuit"
	"github.com/katalvlaran/varqo/qubo"
)

// Ansatz builds a fresh parametrized circuit for one loss evaluation.
// Implementations receive the flat parameter vector, the layer count and
// the Hamiltonian whose expectation the circuit will be measured against.
type Ansatz func(params []float64, layers int, h qubo.Ising) (*circuit.Circuit, error)

// IsingLoss evaluates Σ_k Weights[k]·Re⟨Z-string(Terms[k])⟩ in the state
// prepared by c. A Hamiltonian with no terms yields 0 without touching
// the engine. Term/weight permutations leave the sum unchanged.
//
// Errors: circuit.ErrNoEngine, ErrNilCircuit, ErrTermMismatch; engine
// failures propagate as-is.
// Complexity: O(terms) engine queries.
func IsingLoss(eng circuit.Engine, c *circuit.Circuit, h qubo.Ising) (float64, error) {
	if eng == nil {
		return 0, circuit.ErrNoEngine
	}
	if c == nil {
		return 0, ErrNilCircuit
	}
	if len(h.Terms) != len(h.Weights) {
		return 0, ErrTermMismatch
	}

	var loss float64
	for k, term := range h.Terms {
		ev, err := eng.ExpectationZ(c, term.Qubits())
		if err != nil {
			return 0, err
		}
		loss += h.Weights[k] * real(ev)
	}
	return loss, nil
}

// Loss composes an ansatz with IsingLoss into the LossFunc the training
// loop differentiates: rebuild the circuit from params, measure, sum.
// The circuit is rebuilt on every call and discarded afterwards.
func Loss(eng circuit.Engine, ansatz Ansatz, layers int, h qubo.Ising) LossFunc {
	if ansatz == nil {
		return func([]float64) (float64, error) { return 0, ErrNilAnsatz }
	}
	return func(params []float64) (float64, error) {
		c, err := ansatz(params, layers, h)
		if err != nil {
			return 0, err
		}
		return IsingLoss(eng, c, h)
	}
}

// AnsatzForIsing builds the standard QAOA circuit for a quadratic Ising
// Hamiltonian: a Hadamard wall, then per layer j the cost step driven by
// params[2j] (RZ(2·w·γ) for single-qubit terms, exp(-i·w·γ·Z⊗Z) for pair
// terms, in Hamiltonian term order) followed by the mixer RX(2·params[2j+1])
// on every qubit. It satisfies Ansatz.
//
// Errors: ErrLayerCount, ErrParamCount, ErrNoTerms, ErrTermMismatch,
// ErrTermSupport.
// Complexity: O(layers·terms).
func AnsatzForIsing(params []float64, layers int, h qubo.Ising) (*circuit.Circuit, error) {
	const method = "AnsatzForIsing"
	if layers < 1 {
		return nil, fmt.Errorf("%s: layers=%d: %w", method, layers, ErrLayerCount)
	}
	if len(params) != 2*layers {
		return nil, fmt.Errorf("%s: %d params for %d layers: %w",
			method, len(params), layers, ErrParamCount)
	}
	if len(h.Terms) != len(h.Weights) {
		return nil, ErrTermMismatch
	}
	n := h.NumQubits()
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", method, ErrNoTerms)
	}
	// Reject unsupported term arities before appending anything.
	for k, term := range h.Terms {
		if l := len(term.Qubits()); l != 1 && l != 2 {
			return nil, fmt.Errorf("%s: term %d acts on %d qubits: %w",
				method, k, l, ErrTermSupport)
		}
	}

	c := circuit.New(n)
	for i := 0; i < n; i++ {
		c.H(i)
	}
	gen := circuit.ZZ()
	for j := 0; j < layers; j++ {
		gamma, beta := params[2*j], params[2*j+1]
		for k, term := range h.Terms {
			qs := term.Qubits()
			if len(qs) == 1 {
				c.RZ(qs[0], 2*h.Weights[k]*gamma)
			} else {
				c.Exp1(qs[0], qs[1], gen, h.Weights[k]*gamma)
			}
		}
		for i := 0; i < n; i++ {
			c.RX(i, 2*beta)
		}
	}
	return c, nil
}
