// SPDX-License-Identifier: MIT
// Package qaoa: sentinel error set. Loop and loss code returns these
// sentinels (optionally wrapped with method context via %w); engine and
// backend errors pass through untouched.

package qaoa

import "errors"

var (
	// ErrMissingBackend is returned when a nil Backend reaches the loop.
	// Construct one first (numgrad.New() is the in-tree reference) and
	// pass it explicitly; there is no ambient default.
	ErrMissingBackend = errors.New("qaoa: no differentiation backend selected; construct one (e.g. numgrad.New()) and pass it explicitly")

	// ErrNilAnsatz indicates a nil ansatz-building function.
	ErrNilAnsatz = errors.New("qaoa: nil ansatz")

	// ErrNilCircuit indicates a loss evaluation over a nil circuit.
	ErrNilCircuit = errors.New("qaoa: nil circuit")

	// ErrTermMismatch indicates a Hamiltonian whose term and weight lists
	// have different lengths.
	ErrTermMismatch = errors.New("qaoa: terms and weights length mismatch")

	// ErrTermSupport indicates a Pauli term acting on zero or more than
	// two qubits; only quadratic Hamiltonians are representable here.
	ErrTermSupport = errors.New("qaoa: terms must act on one or two qubits")

	// ErrNoTerms indicates an empty Hamiltonian where a circuit must be
	// sized from its qubit count.
	ErrNoTerms = errors.New("qaoa: hamiltonian has no terms")

	// ErrParamCount indicates a parameter vector whose length differs
	// from 2*layers.
	ErrParamCount = errors.New("qaoa: parameter count does not match 2*layers")

	// ErrLayerCount indicates a non-positive layer count.
	ErrLayerCount = errors.New("qaoa: layer count must be positive")

	// ErrCircuitCount indicates a non-positive batch size.
	ErrCircuitCount = errors.New("qaoa: batch size must be positive")

	// ErrGradientShape indicates a backend handed back values or
	// gradients whose shape does not match the submitted parameters.
	ErrGradientShape = errors.New("qaoa: backend returned gradients with unexpected shape")
)
