// Package numgrad is the in-tree reference implementation of
// qaoa.Backend: gradients by central finite differences and parameter
// updates by Adam. It exists so the training loop can run end to end
// without an external autodiff/JIT runtime, which keeps examples and
// tests self-contained.
//
// Costs and caveats:
//   - One gradient costs 2·d loss evaluations for d parameters, each of
//     which rebuilds and re-measures the ansatz circuit. Fine for small
//     experiments, not a production differentiation path.
//   - Compile and CompileBatch are identity functions; the hooks exist
//     for backends that actually compile.
//   - Batch evaluation is row-serial and blocking.
//
// All methods are deterministic given a deterministic loss function.
package numgrad
