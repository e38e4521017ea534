package qubo

import "gonum.org/v1/gonum/mat"

// ToIsing converts a QUBO coefficient matrix into its Ising form under
// the substitution x = (1-z)/2.
//
// Contracts:
//   - Q must be square; only the shape is validated (ErrInvalidShape).
//     Symmetry is a convention the caller upholds.
//   - Term order is fixed: n single-qubit terms (ascending qubit), then
//     the n·(n-1)/2 upper-triangular pair terms in row-major order, for
//     n·(n+1)/2 terms total. Downstream consumers rely on this order.
//   - Single-qubit weight i is -Σ_j Q[i,j] / 2; pair weight (i,j) is
//     Q[i,j]/2; Offset is the upper-triangle sum (diagonal included)
//     halved. Together they satisfy, for every basis state x,
//     Offset + Σ_k w_k·Π_{q∈term_k}(1-2·x_q) == xᵀQx.
//
// Complexity: O(n²) time, O(n²) space for the indicator vectors.
func ToIsing(Q *mat.Dense) (Ising, error) {
	if Q == nil {
		return Ising{}, ErrInvalidShape
	}
	n, m := Q.Dims()
	if n != m {
		return Ising{}, ErrInvalidShape
	}

	// Stage 1: constant offset from the upper triangle, diagonal included.
	var offset float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			offset += Q.At(i, j)
		}
	}
	offset /= 2

	terms := make([]PauliTerm, 0, n*(n+1)/2)
	weights := make([]float64, 0, n*(n+1)/2)

	// Stage 2: single-qubit terms from row sums.
	for i := 0; i < n; i++ {
		var row float64
		for j := 0; j < n; j++ {
			row += Q.At(i, j)
		}
		t := make(PauliTerm, n)
		t[i] = 1
		terms = append(terms, t)
		weights = append(weights, -row/2)
	}

	// Stage 3: pair terms from the strict upper triangle.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			t := make(PauliTerm, n)
			t[i], t[j] = 1, 1
			terms = append(terms, t)
			weights = append(weights, Q.At(i, j)/2)
		}
	}

	return Ising{Terms: terms, Weights: weights, Offset: offset}, nil
}
