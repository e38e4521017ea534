// SPDX-License-Identifier: MIT
// Package circuit: OpenQASM 2.0 export.
//
// Contract:
//   - Output is deterministic: header, one qreg declaration, then one line
//     per gate in append order.
//   - exp1 over the ZZ() generator is emitted as rzz with the doubled
//     angle (qelib1 defines rzz(λ) = exp(-i·λ/2·Z⊗Z)); other generators
//     have no qelib1 primitive and are emitted as a comment line so the
//     surrounding program remains loadable.

package circuit

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ToQASM renders the circuit as an OpenQASM 2.0 program.
// Complexity: O(len) time and space.
func (c *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.nqubits)

	for _, g := range c.gates {
		switch g.Name {
		case GateH, GateX:
			fmt.Fprintf(&sb, "%s q[%d];\n", g.Name, g.Qubits[0])
		case GateCNOT:
			fmt.Fprintf(&sb, "cx q[%d],q[%d];\n", g.Qubits[0], g.Qubits[1])
		case GateRX, GateRZ:
			fmt.Fprintf(&sb, "%s(%g) q[%d];\n", g.Name, g.Theta, g.Qubits[0])
		case GateExp1:
			if isZZ(g.Generator) {
				fmt.Fprintf(&sb, "rzz(%g) q[%d],q[%d];\n", 2*g.Theta, g.Qubits[0], g.Qubits[1])
			} else {
				fmt.Fprintf(&sb, "// exp1(%g) q[%d],q[%d]; custom generator\n",
					g.Theta, g.Qubits[0], g.Qubits[1])
			}
		}
	}
	return sb.String()
}

// isZZ reports whether g is exactly the diag(1,-1,-1,1) generator.
func isZZ(g *mat.CDense) bool {
	want := [4]complex128{1, -1, -1, 1}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			switch {
			case i == j && g.At(i, j) != want[i]:
				return false
			case i != j && g.At(i, j) != 0:
				return false
			}
		}
	}
	return true
}
