// Package qubo provides helpers around Quadratic Unconstrained Binary
// Optimization matrices:
//
//   - QUBO → Ising conversion (ToIsing) producing weighted Pauli-Z terms
//     plus a constant offset, ready for QAOA loss evaluation.
//   - Classical cost evaluation (Cost, Costs, BruteForce) over binary
//     selection vectors.
//   - Problem formulations (MaxCut, Portfolio) that build Q matrices
//     from lattice topologies or return/covariance data.
//
// Conventions:
//   - The objective is always minimization of xᵀQx over x ∈ {0,1}ⁿ.
//   - Q is treated as symmetric by convention; only squareness is
//     validated. Off-diagonal couplings therefore contribute twice to
//     xᵀQx (once per triangle).
//   - Basis states are labeled with qubit 0 as the most significant bit,
//     matching the zero-padded binary strings used by package report.
//
// Enumeration helpers walk all 2ⁿ states; keep n small (n ≲ 20) when
// calling Costs or BruteForce.
package qubo
