package qubo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/varqo/lattice"
	"github.com/katalvlaran/varqo/qubo"
)

// TestMaxCut_Triangle pins the K3 matrix: degree -2 diagonal, unit couplings.
func TestMaxCut_Triangle(t *testing.T) {
	g, err := lattice.Complete(3)
	require.NoError(t, err)
	Q, err := qubo.MaxCut(g)
	require.NoError(t, err)

	want := mat.NewDense(3, 3, []float64{
		-2, 1, 1,
		1, -2, 1,
		1, 1, -2,
	})
	require.True(t, mat.Equal(want, Q), "Q = %v", mat.Formatted(Q))
}

// TestMaxCut_EncodesNegativeCut checks xᵀQx == -cut(x) on a weighted path.
func TestMaxCut_EncodesNegativeCut(t *testing.T) {
	g, err := lattice.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddWeightedEdge(0, 1, 2))
	require.NoError(t, g.AddWeightedEdge(1, 2, 5))

	Q, err := qubo.MaxCut(g)
	require.NoError(t, err)

	// Partition {1} vs {0,2} cuts both edges: cut = 7.
	cost, err := qubo.Cost(Q, []int{0, 1, 0})
	require.NoError(t, err)
	require.Equal(t, -7.0, cost)

	// Partition {2} vs {0,1} cuts only the heavy edge: cut = 5.
	cost, err = qubo.Cost(Q, []int{0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, -5.0, cost)

	// The optimum must be the full cut.
	_, best, err := qubo.BruteForce(Q)
	require.NoError(t, err)
	require.Equal(t, -7.0, best)
}

func TestMaxCut_NilGraph(t *testing.T) {
	_, err := qubo.MaxCut(nil)
	require.ErrorIs(t, err, qubo.ErrNilGraph)
}

// portfolioObjective evaluates the mean-variance target directly,
// including the constant penalty·budget² that Portfolio drops from Q.
func portfolioObjective(returns []float64, cov *mat.Dense, lambda float64, budget int, penalty float64, bits []int) float64 {
	var risk, ret float64
	total := 0
	for i, bi := range bits {
		if bi == 0 {
			continue
		}
		total++
		ret += returns[i]
		for j, bj := range bits {
			if bj != 0 {
				risk += cov.At(i, j)
			}
		}
	}
	gap := float64(total - budget)
	return lambda*risk - ret + penalty*gap*gap
}

// TestPortfolio_MatchesObjective checks that for every basis state,
// xᵀQx + penalty·budget² equals the explicit mean-variance objective.
func TestPortfolio_MatchesObjective(t *testing.T) {
	returns := []float64{0.10, 0.20, 0.15}
	cov := mat.NewDense(3, 3, []float64{
		0.010, 0.002, 0.001,
		0.002, 0.030, 0.004,
		0.001, 0.004, 0.020,
	})
	const (
		lambda  = 0.5
		budget  = 2
		penalty = 3.0
	)

	Q, err := qubo.Portfolio(returns, cov, lambda, budget, penalty)
	require.NoError(t, err)

	costs, err := qubo.Costs(Q)
	require.NoError(t, err)

	bits := make([]int, 3)
	for s, c := range costs {
		for k := 0; k < 3; k++ {
			bits[k] = (s >> uint(2-k)) & 1
		}
		want := portfolioObjective(returns, cov, lambda, budget, penalty, bits)
		require.InDelta(t, want, c+penalty*float64(budget*budget), 1e-12, "state=%d", s)
	}

	// With a tight penalty the optimum must respect the budget.
	sel, _, err := qubo.BruteForce(Q)
	require.NoError(t, err)
	picked := 0
	for _, b := range sel {
		picked += b
	}
	require.Equal(t, budget, picked)
}

func TestPortfolio_Errors(t *testing.T) {
	cov := mat.NewDense(2, 2, []float64{0.01, 0, 0, 0.02})

	_, err := qubo.Portfolio([]float64{0.1, 0.2}, nil, 1, 1, 1)
	require.ErrorIs(t, err, qubo.ErrInvalidShape)

	_, err = qubo.Portfolio([]float64{0.1, 0.2}, mat.NewDense(2, 3, nil), 1, 1, 1)
	require.ErrorIs(t, err, qubo.ErrInvalidShape)

	_, err = qubo.Portfolio([]float64{0.1}, cov, 1, 1, 1)
	require.ErrorIs(t, err, qubo.ErrDimensionMismatch)

	_, err = qubo.Portfolio([]float64{0.1, 0.2}, cov, 1, 3, 1)
	require.ErrorIs(t, err, qubo.ErrBudgetRange)

	_, err = qubo.Portfolio([]float64{0.1, 0.2}, cov, 1, -1, 1)
	require.ErrorIs(t, err, qubo.ErrBudgetRange)
}
