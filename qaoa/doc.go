// SPDX-License-Identifier: MIT

// Package qaoa evaluates Ising losses over parametrized circuits and runs
// the gradient-descent training loop of the Quantum Approximate
// Optimization Algorithm.
//
// The package deliberately owns no numerics: circuit evaluation goes
// through circuit.Engine, differentiation and parameter updates go
// through the Backend capability interface. Both are explicit function
// arguments; when one is missing the call fails fast with a typed error
// (circuit.ErrNoEngine, ErrMissingBackend) instead of probing ambient
// state.
//
// Design contract (strict):
//   - Minimize/MinimizeBatch run exactly the configured iteration count;
//     there is no convergence check and no retry on evaluation failure.
//   - Engine and Backend errors abort the loop and are returned to the
//     caller unmodified.
//   - Determinism: parameter initialization derives from the configured
//     seed (seed==0 selects a fixed default stream), so identical inputs
//     produce identical parameter trajectories against a deterministic
//     backend.
//   - Progress is reported through an injected zerolog.Logger (default
//     zerolog.Nop()): the scalar loss every WithProgressEvery iterations.
//
// AI-Hints:
//   - numgrad.New() is the in-tree Backend for experiments and tests;
//     production setups wrap an autodiff/JIT service instead.
//   - AnsatzForIsing is the standard cost-plus-mixer circuit; any Ansatz
//     function with the same signature plugs into the loop.
//   - Use MinimizeBatch for multi-start training; it shares one Optimizer
//     across the flattened batch, which is sound for elementwise update
//     rules (Adam, SGD).
package qaoa
