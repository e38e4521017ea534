// SPDX-License-Identifier: MIT
// Package circuit: Gate record and the append-only Circuit builder.
//
// Contract:
//   - Circuit is a value builder: every appender returns the same *Circuit
//     for chaining and never allocates beyond the gate slice growth.
//   - Qubit indices are validated on every append; violations panic with a
//     "circuit: <op>: ..." message (programmer error, fail fast).
//   - Gate records are immutable once appended; accessors hand out copies.

package circuit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// GateName identifies the operation a Gate record applies. The values
// double as OpenQASM mnemonics where one exists.
type GateName string

const (
	// GateH is the Hadamard gate.
	GateH GateName = "h"
	// GateX is the Pauli-X gate.
	GateX GateName = "x"
	// GateCNOT is the controlled-NOT gate; Qubits holds (control, target).
	GateCNOT GateName = "cx"
	// GateRX is the X-axis rotation exp(-i·Theta/2·X).
	GateRX GateName = "rx"
	// GateRZ is the Z-axis rotation exp(-i·Theta/2·Z).
	GateRZ GateName = "rz"
	// GateExp1 is the exponentiated two-qubit gate exp(-i·Theta·Generator).
	GateExp1 GateName = "exp1"
)

// Gate is one step of a circuit. Qubits has length 1 for single-qubit
// gates and 2 for CNOT/Exp1. Theta is meaningful for RX, RZ and Exp1;
// Generator is non-nil only for Exp1 and must be treated as read-only.
type Gate struct {
	Name      GateName
	Qubits    []int
	Theta     float64
	Generator *mat.CDense
}

// Circuit is an ordered gate sequence over a fixed number of qubits.
// The zero value is unusable; construct via New. Not safe for concurrent
// mutation.
type Circuit struct {
	nqubits int
	gates   []Gate
}

// New constructs an empty circuit over n qubits labeled 0..n-1.
// Panics if n <= 0: the qubit count is a static property of the program
// being built, never user data.
func New(n int) *Circuit {
	if n <= 0 {
		panic(fmt.Sprintf("circuit: New(n=%d), need n >= 1", n))
	}
	return &Circuit{nqubits: n}
}

// NumQubits returns the fixed qubit count the circuit spans.
func (c *Circuit) NumQubits() int { return c.nqubits }

// Len returns the number of gates appended so far.
func (c *Circuit) Len() int { return len(c.gates) }

// H appends a Hadamard gate on qubit q.
func (c *Circuit) H(q int) *Circuit {
	c.mustQubit("H", q)
	c.gates = append(c.gates, Gate{Name: GateH, Qubits: []int{q}})
	return c
}

// X appends a Pauli-X gate on qubit q.
func (c *Circuit) X(q int) *Circuit {
	c.mustQubit("X", q)
	c.gates = append(c.gates, Gate{Name: GateX, Qubits: []int{q}})
	return c
}

// CNOT appends a controlled-NOT with the given control and target qubits.
func (c *Circuit) CNOT(control, target int) *Circuit {
	c.mustPair("CNOT", control, target)
	c.gates = append(c.gates, Gate{Name: GateCNOT, Qubits: []int{control, target}})
	return c
}

// RX appends the rotation exp(-i·theta/2·X) on qubit q.
func (c *Circuit) RX(q int, theta float64) *Circuit {
	c.mustQubit("RX", q)
	c.gates = append(c.gates, Gate{Name: GateRX, Qubits: []int{q}, Theta: theta})
	return c
}

// RZ appends the rotation exp(-i·theta/2·Z) on qubit q.
func (c *Circuit) RZ(q int, theta float64) *Circuit {
	c.mustQubit("RZ", q)
	c.gates = append(c.gates, Gate{Name: GateRZ, Qubits: []int{q}, Theta: theta})
	return c
}

// Exp1 appends exp(-i·theta·G) on the qubit pair (a, b), where G is a 4×4
// Hermitian generator such as ZZ(). The generator is stored by reference
// and must not be mutated afterwards.
func (c *Circuit) Exp1(a, b int, generator *mat.CDense, theta float64) *Circuit {
	c.mustPair("Exp1", a, b)
	if generator == nil {
		panic("circuit: Exp1(generator=nil)")
	}
	if r, cl := generator.Dims(); r != 4 || cl != 4 {
		panic(fmt.Sprintf("circuit: Exp1 generator is %dx%d, need 4x4", r, cl))
	}
	c.gates = append(c.gates, Gate{
		Name:      GateExp1,
		Qubits:    []int{a, b},
		Theta:     theta,
		Generator: generator,
	})
	return c
}

// Gates returns a deep copy of the gate sequence in append order.
// Generators are shared (read-only constants); qubit slices are copied.
// Complexity: O(len) time and space.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	for i, g := range c.gates {
		out[i] = g
		out[i].Qubits = append([]int(nil), g.Qubits...)
	}
	return out
}

// Clone returns an independent circuit with the same qubit count and a
// deep-copied gate sequence. Generators remain shared, mirroring Gates.
// Complexity: O(len) time and space.
func (c *Circuit) Clone() *Circuit {
	return &Circuit{nqubits: c.nqubits, gates: c.Gates()}
}

// mustQubit validates a single qubit index for appender op.
func (c *Circuit) mustQubit(op string, q int) {
	if q < 0 || q >= c.nqubits {
		panic(fmt.Sprintf("circuit: %s: qubit %d out of range [0,%d)", op, q, c.nqubits))
	}
}

// mustPair validates a two-qubit operand set: both in range, distinct.
func (c *Circuit) mustPair(op string, a, b int) {
	c.mustQubit(op, a)
	c.mustQubit(op, b)
	if a == b {
		panic(fmt.Sprintf("circuit: %s: qubits must differ, got (%d,%d)", op, a, b))
	}
}
