// SPDX-License-Identifier: MIT
// Package qaoa: differentiation/compilation/update capability contracts.
//
// Contract:
//   - A Backend turns plain loss functions into value-and-gradient
//     functions, optionally vectorizes them over a leading batch
//     dimension, optionally compiles them for repeated execution, and
//     manufactures Optimizer instances.
//   - All returned functions are synchronous: implementations may fan
//     out internally but must block until results are ready.
//   - Implementations must not retain or mutate parameter slices handed
//     to them; the loop owns parameter storage.

package qaoa

// LossFunc maps a parameter vector to a scalar training loss.
type LossFunc func(params []float64) (float64, error)

// ValueGradFunc returns the loss and its gradient at params. The
// gradient has the same length as params.
type ValueGradFunc func(params []float64) (float64, []float64, error)

// BatchValueGradFunc evaluates a batch of parameter rows in one call,
// returning one loss and one gradient row per input row.
type BatchValueGradFunc func(params [][]float64) ([]float64, [][]float64, error)

// Optimizer applies one update step: given gradients and the current
// parameters it returns the next parameter vector. Implementations keep
// their own state (moments, step counters) between calls; the returned
// slice may be fresh or the input updated in place, callers use the
// return value either way.
type Optimizer interface {
	Update(grads, params []float64) []float64
}

// Backend bundles the differentiation capabilities the training loop
// needs. It mirrors what an autodiff/JIT runtime offers, without this
// package implementing any of it.
type Backend interface {
	// ValueAndGrad lifts f into a function returning loss and gradient.
	ValueAndGrad(f LossFunc) ValueGradFunc

	// VectorValueAndGrad lifts f into a batched value-and-gradient
	// function over the leading dimension of its input.
	VectorValueAndGrad(f LossFunc) BatchValueGradFunc

	// Compile prepares vg for repeated fast execution. Backends without
	// compilation return vg unchanged.
	Compile(vg ValueGradFunc) ValueGradFunc

	// CompileBatch is Compile for batched functions.
	CompileBatch(bvg BatchValueGradFunc) BatchValueGradFunc

	// Optimizer returns a fresh update rule with the given learning rate.
	Optimizer(learningRate float64) Optimizer
}
