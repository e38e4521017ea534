package lattice

// Grid2DCoord addresses qubits laid out on a rows×cols rectangle using
// row-major order: the qubit at column x, row y has index y*cols + x.
// It is an immutable value type; the zero value is unusable, construct
// via NewGrid2DCoord.
type Grid2DCoord struct {
	rows, cols int
}

// NewGrid2DCoord constructs a rows×cols coordinate system.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(1).
func NewGrid2DCoord(rows, cols int) (Grid2DCoord, error) {
	if rows <= 0 || cols <= 0 {
		return Grid2DCoord{}, ErrEmptyGrid
	}
	return Grid2DCoord{rows: rows, cols: cols}, nil
}

// Rows returns the number of grid rows.
func (gc Grid2DCoord) Rows() int { return gc.rows }

// Cols returns the number of grid columns.
func (gc Grid2DCoord) Cols() int { return gc.cols }

// NumQubits returns rows*cols, the number of qubits the grid addresses.
func (gc Grid2DCoord) NumQubits() int { return gc.rows * gc.cols }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gc Grid2DCoord) InBounds(x, y int) bool {
	return x >= 0 && x < gc.cols && y >= 0 && y < gc.rows
}

// Index maps (x,y) to its row-major qubit index: y*cols + x.
// Complexity: O(1).
func (gc Grid2DCoord) Index(x, y int) int {
	return y*gc.cols + x
}

// Coordinate converts a row-major qubit index back to (x,y).
// Complexity: O(1).
func (gc Grid2DCoord) Coordinate(idx int) (x, y int) {
	return idx % gc.cols, idx / gc.cols
}

// AllRows enumerates horizontal neighbor pairs scanned row by row:
// for each row y, pairs (Index(x,y), Index(x+1,y)) for x=0..cols-2.
// Complexity: O(rows·cols).
func (gc Grid2DCoord) AllRows() [][2]int {
	pairs := make([][2]int, 0, gc.rows*(gc.cols-1))
	for y := 0; y < gc.rows; y++ {
		for x := 0; x+1 < gc.cols; x++ {
			pairs = append(pairs, [2]int{gc.Index(x, y), gc.Index(x+1, y)})
		}
	}
	return pairs
}

// AllCols enumerates vertical neighbor pairs scanned row by row:
// for each row y=0..rows-2, pairs (Index(x,y), Index(x,y+1)) for each x.
// Complexity: O(rows·cols).
func (gc Grid2DCoord) AllCols() [][2]int {
	pairs := make([][2]int, 0, (gc.rows-1)*gc.cols)
	for y := 0; y+1 < gc.rows; y++ {
		for x := 0; x < gc.cols; x++ {
			pairs = append(pairs, [2]int{gc.Index(x, y), gc.Index(x, y+1)})
		}
	}
	return pairs
}

// NumPairs returns the total neighbor-pair count:
// rows*(cols-1) horizontal plus (rows-1)*cols vertical.
func (gc Grid2DCoord) NumPairs() int {
	return gc.rows*(gc.cols-1) + (gc.rows-1)*gc.cols
}

// Lattice materializes the grid as a unit-weight Graph whose edges are
// AllRows followed by AllCols, preserving that enumeration order.
// Complexity: O(rows·cols).
func (gc Grid2DCoord) Lattice() *Graph {
	g := &Graph{n: gc.NumQubits()}
	for _, p := range gc.AllRows() {
		g.edges = append(g.edges, Edge{A: p[0], B: p[1], Weight: 1})
	}
	for _, p := range gc.AllCols() {
		g.edges = append(g.edges, Edge{A: p[0], B: p[1], Weight: 1})
	}
	return g
}
