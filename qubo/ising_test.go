package qubo_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/varqo/qubo"
)

// TestToIsing_Worked2x2 pins the canonical 2-qubit conversion:
// Q = [[1,2],[2,3]] → offset 3, weights [-1.5, -2.5, 1].
func TestToIsing_Worked2x2(t *testing.T) {
	Q := mat.NewDense(2, 2, []float64{1, 2, 2, 3})
	h, err := qubo.ToIsing(Q)
	require.NoError(t, err)

	require.Equal(t, 3.0, h.Offset)
	require.Equal(t, []float64{-1.5, -2.5, 1}, h.Weights)
	require.Equal(t, []qubo.PauliTerm{{1, 0}, {0, 1}, {1, 1}}, h.Terms)
	require.Equal(t, 2, h.NumQubits())
	require.Equal(t, 3, h.NumTerms())
}

// TestToIsing_SingleQubit checks the 1×1 degenerate case: one term, no pairs.
func TestToIsing_SingleQubit(t *testing.T) {
	h, err := qubo.ToIsing(mat.NewDense(1, 1, []float64{5}))
	require.NoError(t, err)
	require.Equal(t, 2.5, h.Offset)
	require.Equal(t, []float64{-2.5}, h.Weights)
	require.Equal(t, []qubo.PauliTerm{{1}}, h.Terms)
}

// TestToIsing_TermOrder verifies singles-then-pairs ordering and the
// n·(n+1)/2 term count for n=3.
func TestToIsing_TermOrder(t *testing.T) {
	Q := mat.NewDense(3, 3, []float64{
		0, 1, 2,
		1, 0, 3,
		2, 3, 0,
	})
	h, err := qubo.ToIsing(Q)
	require.NoError(t, err)
	require.Equal(t, 6, h.NumTerms())

	wantTerms := []qubo.PauliTerm{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{1, 1, 0}, {1, 0, 1}, {0, 1, 1},
	}
	require.Equal(t, wantTerms, h.Terms)
	require.Equal(t, []int{0, 2}, h.Terms[4].Qubits())
	// Pair weights are the halved upper-triangle entries, row-major.
	require.Equal(t, []float64{0.5, 1, 1.5}, h.Weights[3:])
}

// TestToIsing_ShapeErrors verifies the eager shape check and that no
// symmetry check exists (asymmetric input converts without error).
func TestToIsing_ShapeErrors(t *testing.T) {
	_, err := qubo.ToIsing(nil)
	require.ErrorIs(t, err, qubo.ErrInvalidShape)

	_, err = qubo.ToIsing(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, qubo.ErrInvalidShape)

	// Asymmetric but square: accepted by contract.
	_, err = qubo.ToIsing(mat.NewDense(2, 2, []float64{0, 1, 7, 0}))
	require.NoError(t, err)
}

// TestToIsing_Reconstruction exercises the identity
// offset + Σ_k w_k·Π_{q∈term_k}(1-2·x_q) == xᵀQx on random symmetric
// matrices for every basis state.
func TestToIsing_Reconstruction(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 5; n++ {
		Q := mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				v := rng.NormFloat64()
				Q.Set(i, j, v)
				Q.Set(j, i, v)
			}
		}
		h, err := qubo.ToIsing(Q)
		require.NoError(t, err)

		bits := make([]int, n)
		for s := 0; s < 1<<uint(n); s++ {
			for k := 0; k < n; k++ {
				bits[k] = (s >> uint(n-1-k)) & 1
			}
			want, err := qubo.Cost(Q, bits)
			require.NoError(t, err)

			got := h.Offset
			for k, term := range h.Terms {
				z := 1.0
				for _, q := range term.Qubits() {
					z *= float64(1 - 2*bits[q])
				}
				got += h.Weights[k] * z
			}
			require.InDelta(t, want, got, 1e-9, "n=%d state=%d", n, s)
		}
	}
}
