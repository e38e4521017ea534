// Package blocks provides reusable parametrized sub-circuits ("blocks")
// that append standard entangling patterns onto a circuit under
// construction:
//
//   - BellPair: singlet preparation over disjoint qubit pairs
//   - Grid2DEntangling: exponentiated couplings across a 2D grid
//   - QAOA: one cost-plus-mixer layer over an arbitrary topology
//   - Demo: Hadamard wall plus alternating ZZ-chain / RX layers
//
// Every block mutates the circuit it receives and returns the same
// instance, so blocks compose by chaining. Validation happens before the
// first gate is appended: on error the circuit is unchanged.
package blocks

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/varqo/circuit"
	"github.com/katalvlaran/varqo/lattice"
)

// File-local method tags for error context.
const (
	methodBellPair = "BellPair"
	methodGrid2D   = "Grid2DEntangling"
	methodQAOA     = "QAOA"
	methodDemo     = "Demo"
)

// BellPair appends, for each link (a,b), the sequence X(a), H(a),
// CNOT(a,b), X(b), turning |00⟩ into the singlet (|01⟩-|10⟩)/√2.
//
// Contracts:
//   - links==nil selects the default disjoint pairing (0,1),(2,3),...;
//     a trailing unpaired qubit is left untouched.
//   - Every link must hold two distinct in-range qubits (ErrLinkRange).
//
// Complexity: O(len(links)).
func BellPair(c *circuit.Circuit, links [][2]int) (*circuit.Circuit, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	n := c.NumQubits()
	if links == nil {
		links = make([][2]int, 0, n/2)
		for i := 0; i+1 < n; i += 2 {
			links = append(links, [2]int{i, i + 1})
		}
	}
	// Validate every link before touching the circuit.
	for k, l := range links {
		a, b := l[0], l[1]
		if a < 0 || a >= n || b < 0 || b >= n || a == b {
			return nil, fmt.Errorf("%s: link %d = (%d,%d) on %d qubits: %w",
				methodBellPair, k, a, b, n, ErrLinkRange)
		}
	}
	for _, l := range links {
		c.X(l[0]).H(l[0]).CNOT(l[0], l[1]).X(l[1])
	}
	return c, nil
}

// Grid2DEntangling appends exp(-i·theta·G) across every neighboring grid
// pair: all horizontal (row) pairs first, then all vertical (column)
// pairs, consuming one angle per pair in exactly that order.
//
// Contracts:
//   - generator must be 4×4 (ErrBadGenerator); pass circuit.ZZ() for the
//     Ising coupling.
//   - The grid must fit the circuit: coord.NumQubits() <= c.NumQubits()
//     (ErrGridSize).
//   - len(thetas) must equal coord.NumPairs() (ErrAngleCount).
//
// Complexity: O(rows·cols).
func Grid2DEntangling(c *circuit.Circuit, coord lattice.Grid2DCoord, generator *mat.CDense, thetas []float64) (*circuit.Circuit, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	if err := checkGenerator(methodGrid2D, generator); err != nil {
		return nil, err
	}
	if coord.NumQubits() > c.NumQubits() {
		return nil, fmt.Errorf("%s: grid spans %d qubits, circuit has %d: %w",
			methodGrid2D, coord.NumQubits(), c.NumQubits(), ErrGridSize)
	}
	if len(thetas) != coord.NumPairs() {
		return nil, fmt.Errorf("%s: %d angles for %d pairs: %w",
			methodGrid2D, len(thetas), coord.NumPairs(), ErrAngleCount)
	}

	i := 0
	for _, p := range coord.AllRows() {
		c.Exp1(p[0], p[1], generator, thetas[i])
		i++
	}
	for _, p := range coord.AllCols() {
		c.Exp1(p[0], p[1], generator, thetas[i])
		i++
	}
	return c, nil
}

// QAOA appends one cost-plus-mixer layer for topology g: the ZZ coupling
// exp(-i·zzₖ·Z⊗Z) across every edge in insertion order, then RX(mixᵢ) on
// every node. Either angle set may be Shared (one scalar broadcast over
// the family) or PerElement (one entry per edge resp. node).
//
// Contracts:
//   - g must fit the circuit (ErrGraphSize).
//   - PerElement angle counts must match g.NumEdges() resp. g.NumQubits()
//     (ErrAngleCount). Decided before any gate is appended.
//
// Complexity: O(E + n).
func QAOA(c *circuit.Circuit, g *lattice.Graph, zz Angles, mix Angles) (*circuit.Circuit, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.NumQubits() > c.NumQubits() {
		return nil, fmt.Errorf("%s: topology spans %d qubits, circuit has %d: %w",
			methodQAOA, g.NumQubits(), c.NumQubits(), ErrGraphSize)
	}
	if err := zz.check(g.NumEdges()); err != nil {
		return nil, fmt.Errorf("%s: zz angles over %d edges: %w", methodQAOA, g.NumEdges(), err)
	}
	if err := mix.check(g.NumQubits()); err != nil {
		return nil, fmt.Errorf("%s: mixer angles over %d nodes: %w", methodQAOA, g.NumQubits(), err)
	}

	gen := circuit.ZZ()
	for k, e := range g.Edges() {
		c.Exp1(e.A, e.B, gen, zz.at(k))
	}
	for _, q := range g.Nodes() {
		c.RX(q, mix.at(q))
	}
	return c, nil
}

// Demo appends the demonstration ansatz used throughout tests and
// examples: a Hadamard wall, then per layer j the ZZ chain
// exp(-i·params[2j,i]·Z⊗Z) over qubits (i,i+1) followed by an
// RX(params[2j+1,i]) wall. Row 2j carries chain angles (entry n-1
// unused), row 2j+1 carries rotation angles.
//
// Contracts:
//   - layers >= 1 (ErrLayerCount).
//   - params must be (2·layers)×n for an n-qubit circuit (ErrParamShape);
//     nil params is ErrParamShape as well.
//
// Complexity: O(layers·n).
func Demo(c *circuit.Circuit, params *mat.Dense, layers int) (*circuit.Circuit, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	if layers < 1 {
		return nil, fmt.Errorf("%s: layers=%d: %w", methodDemo, layers, ErrLayerCount)
	}
	if params == nil {
		return nil, fmt.Errorf("%s: nil params: %w", methodDemo, ErrParamShape)
	}
	n := c.NumQubits()
	if r, cols := params.Dims(); r != 2*layers || cols != n {
		return nil, fmt.Errorf("%s: params %dx%d, need %dx%d: %w",
			methodDemo, r, cols, 2*layers, n, ErrParamShape)
	}

	for i := 0; i < n; i++ {
		c.H(i)
	}
	gen := circuit.ZZ()
	for j := 0; j < layers; j++ {
		for i := 0; i+1 < n; i++ {
			c.Exp1(i, i+1, gen, params.At(2*j, i))
		}
		for i := 0; i < n; i++ {
			c.RX(i, params.At(2*j+1, i))
		}
	}
	return c, nil
}

// checkGenerator validates an exp1 generator shape for method tag op.
func checkGenerator(op string, g *mat.CDense) error {
	if g == nil {
		return fmt.Errorf("%s: nil generator: %w", op, ErrBadGenerator)
	}
	if r, c := g.Dims(); r != 4 || c != 4 {
		return fmt.Errorf("%s: generator %dx%d: %w", op, r, c, ErrBadGenerator)
	}
	return nil
}
