// SPDX-License-Identifier: MIT

// Package circuit provides the gate-sequence value type shared by every
// ansatz constructor in varqo, plus the Engine capability interface that
// connects those sequences to an external simulator or hardware adapter.
//
// A Circuit is an ordered, append-only list of Gate records over a fixed
// qubit count. It stores structure only: no state vectors, no matrices
// beyond the 4×4 generators attached to exponentiated two-qubit gates.
// Evaluation is always delegated through Engine, so this package stays
// free of any linear-algebra backend.
//
// Design contract (strict):
//   - Appenders (H, X, CNOT, RX, RZ, Exp1) mutate the receiver and return
//     it, allowing chained construction: New(2).H(0).CNOT(0, 1).
//   - Appenders validate qubit indices and PANIC on misuse (programmer
//     error, same policy as option constructors elsewhere in varqo).
//     Code paths driven by user data must validate before appending.
//   - Queries (Gates, Clone) deep-copy gate records so callers cannot
//     disturb a sequence another component is about to evaluate.
//   - Determinism: gate order is exactly append order; ToQASM output is
//     stable for a given sequence.
//
// AI-Hints:
//   - Treat *mat.CDense generators as read-only constants; Clone shares
//     them intentionally (they are never mutated after construction).
//   - Engine implementations should read gates via Gates() once per
//     evaluation; the slice is already a private copy.
//   - ErrNoEngine is the sentinel to return when an Engine dependency is
//     nil; check it with errors.Is at call sites.
package circuit
