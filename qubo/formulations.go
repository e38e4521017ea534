package qubo

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/varqo/lattice"
)

// MaxCut builds the QUBO matrix whose minimum encodes a maximum cut of g:
// xᵀQx = -cut(x), with Q[i][j] = Q[j][i] = w_ij for every edge and
// Q[i][i] = -Σ_j w_ij (the negative weighted degree). Parallel edges
// accumulate their weights.
//
// Returns ErrNilGraph when g is nil.
// Complexity: O(n² + E) time, O(n²) space.
func MaxCut(g *lattice.Graph) (*mat.Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NumQubits()
	Q := mat.NewDense(n, n, nil)
	for _, e := range g.Edges() {
		Q.Set(e.A, e.B, Q.At(e.A, e.B)+e.Weight)
		Q.Set(e.B, e.A, Q.At(e.B, e.A)+e.Weight)
		Q.Set(e.A, e.A, Q.At(e.A, e.A)-e.Weight)
		Q.Set(e.B, e.B, Q.At(e.B, e.B)-e.Weight)
	}
	return Q, nil
}

// Portfolio builds the QUBO matrix for mean-variance asset selection:
//
//	minimize  riskAversion·xᵀΣx - μᵀx + penalty·(Σᵢxᵢ - budget)²
//
// over x ∈ {0,1}ⁿ, with μ = returns and Σ = cov. The constant
// penalty·budget² term is dropped; constant shifts belong to the Ising
// offset, never to Q.
//
// Contracts:
//   - cov must be square (ErrInvalidShape) and is treated as symmetric
//     by convention, same as every Q in this package.
//   - len(returns) must equal cov's dimension (ErrDimensionMismatch).
//   - budget must lie in [0, n] (ErrBudgetRange).
//
// Complexity: O(n²) time and space.
func Portfolio(returns []float64, cov *mat.Dense, riskAversion float64, budget int, penalty float64) (*mat.Dense, error) {
	if cov == nil {
		return nil, ErrInvalidShape
	}
	n, m := cov.Dims()
	if n != m {
		return nil, ErrInvalidShape
	}
	if len(returns) != n {
		return nil, ErrDimensionMismatch
	}
	if budget < 0 || budget > n {
		return nil, ErrBudgetRange
	}

	Q := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				// x_i² = x_i folds the quadratic budget term into the diagonal.
				Q.Set(i, i, riskAversion*cov.At(i, i)-returns[i]+penalty*float64(1-2*budget))
				continue
			}
			Q.Set(i, j, riskAversion*cov.At(i, j)+penalty)
		}
	}
	return Q, nil
}
