package qubo

import "gonum.org/v1/gonum/mat"

// Cost evaluates xᵀQx for one binary selection vector.
//
// Contracts:
//   - Q must be square (ErrInvalidShape), len(bits) must equal its
//     dimension (ErrDimensionMismatch).
//   - bits entries are expected in {0,1}; other values are used as-is,
//     the contract violation is the caller's.
//
// Complexity: O(n²) time, O(1) space.
func Cost(Q *mat.Dense, bits []int) (float64, error) {
	if Q == nil {
		return 0, ErrInvalidShape
	}
	n, m := Q.Dims()
	if n != m {
		return 0, ErrInvalidShape
	}
	if len(bits) != n {
		return 0, ErrDimensionMismatch
	}
	return rawCost(Q, bits), nil
}

// rawCost is the validation-free inner product used by enumeration loops.
func rawCost(Q *mat.Dense, bits []int) float64 {
	var sum float64
	n := len(bits)
	for i := 0; i < n; i++ {
		if bits[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if bits[j] == 0 {
				continue
			}
			sum += float64(bits[i]*bits[j]) * Q.At(i, j)
		}
	}
	return sum
}

// Costs evaluates xᵀQx for every basis state. The result is indexed by
// the state label s, where qubit k contributes bit (n-1-k) of s, i.e.
// qubit 0 is the most significant bit. State 0 is all-zeros.
//
// Complexity: O(2ⁿ·n²) time, O(2ⁿ) space. Keep n small.
func Costs(Q *mat.Dense) ([]float64, error) {
	if Q == nil {
		return nil, ErrInvalidShape
	}
	n, m := Q.Dims()
	if n != m {
		return nil, ErrInvalidShape
	}

	out := make([]float64, 1<<uint(n))
	bits := make([]int, n)
	for s := range out {
		stateBits(s, bits)
		out[s] = rawCost(Q, bits)
	}
	return out, nil
}

// BruteForce returns the minimizing selection vector and its cost.
// Ties resolve toward the smaller state label, so results are stable.
//
// Complexity: O(2ⁿ·n²) time, O(2ⁿ) space.
func BruteForce(Q *mat.Dense) ([]int, float64, error) {
	costs, err := Costs(Q)
	if err != nil {
		return nil, 0, err
	}
	best := 0
	for s, c := range costs {
		if c < costs[best] {
			best = s
		}
	}
	n, _ := Q.Dims()
	bits := make([]int, n)
	stateBits(best, bits)
	return bits, costs[best], nil
}

// stateBits decodes state label s into bits, qubit 0 first (MSB order).
func stateBits(s int, bits []int) {
	n := len(bits)
	for k := 0; k < n; k++ {
		bits[k] = (s >> uint(n-1-k)) & 1
	}
}
