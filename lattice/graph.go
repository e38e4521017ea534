// Package lattice provides lightweight topology descriptors for circuit
// construction and QUBO formulation. It supports:
//
//   - Explicit qubit graphs with ordered, optionally weighted edges
//   - Standard topologies: Path, Ring, Complete
//   - 2D grid coordinates with row/column neighbor-pair enumeration
//
// Edge order is load-bearing: entangling blocks consume one angle per edge
// in exactly the order edges were inserted (or, for grids, rows before
// columns), so every enumeration here is deterministic and documented.
package lattice

// NewGraph constructs an empty topology over n qubits labeled 0..n-1.
// Returns ErrNoQubits if n <= 0.
// Complexity: O(1).
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrNoQubits
	}
	return &Graph{n: n}, nil
}

// AddEdge appends a unit-weight undirected edge between qubits a and b.
// Returns ErrQubitRange if either endpoint is outside [0,n), ErrSelfLoop
// if a == b.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b int) error {
	return g.AddWeightedEdge(a, b, 1)
}

// AddWeightedEdge appends an undirected edge with coupling strength w.
// Endpoints are normalized so that the stored Edge has A < B; insertion
// order is preserved regardless of normalization.
// Returns ErrQubitRange or ErrSelfLoop on invalid endpoints.
// Complexity: O(1) amortized.
func (g *Graph) AddWeightedEdge(a, b int, w float64) error {
	if a < 0 || a >= g.n || b < 0 || b >= g.n {
		return ErrQubitRange
	}
	if a == b {
		return ErrSelfLoop
	}
	if a > b {
		a, b = b, a
	}
	g.edges = append(g.edges, Edge{A: a, B: b, Weight: w})
	return nil
}

// NumQubits returns the number of qubits the topology spans.
func (g *Graph) NumQubits() int { return g.n }

// NumEdges returns the number of edges inserted so far.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Nodes returns the qubit labels 0..n-1 in ascending order.
// Complexity: O(n) time and space.
func (g *Graph) Nodes() []int {
	nodes := make([]int, g.n)
	for i := range nodes {
		nodes[i] = i
	}
	return nodes
}

// Edges returns a copy of the edge list in insertion order.
// The copy keeps callers from disturbing the angle-to-edge pairing.
// Complexity: O(E) time and space.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Path builds the linear chain 0-1-...-(n-1) with unit weights.
// Returns ErrNoQubits if n <= 0.
// Complexity: O(n).
func Path(n int) (*Graph, error) {
	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err = g.AddEdge(i, i+1); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Ring builds the cycle 0-1-...-(n-1)-0 with unit weights.
// Returns ErrTooFewQubits if n < 3 (smaller rings degenerate into
// duplicate or self edges).
// Complexity: O(n).
func Ring(n int) (*Graph, error) {
	if n < 3 {
		return nil, ErrTooFewQubits
	}
	g, err := Path(n)
	if err != nil {
		return nil, err
	}
	if err = g.AddEdge(n-1, 0); err != nil {
		return nil, err
	}
	return g, nil
}

// Complete builds the complete graph K_n with unit weights. Edges are
// emitted in row-major upper-triangular order: (0,1),(0,2),...,(n-2,n-1).
// Returns ErrNoQubits if n <= 0.
// Complexity: O(n²).
func Complete(n int) (*Graph, error) {
	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = g.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
