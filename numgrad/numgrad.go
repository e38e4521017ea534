package numgrad

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/varqo/qaoa"
)

// Backend differentiates loss functions numerically. The zero value is
// not ready for use; construct with New.
type Backend struct {
	step float64 // 0 means the formula default
}

// Option mutates a Backend under construction.
type Option func(*Backend)

// WithStep overrides the finite-difference step size h.
// Panics if h is not a positive finite number - a misconfigured step is
// a programming error, not a runtime condition.
func WithStep(h float64) Option {
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		panic(fmt.Sprintf("numgrad: WithStep(%v): step must be a positive finite number", h))
	}
	return func(b *Backend) { b.step = h }
}

// New constructs a finite-difference Backend.
//
// With no options the central-difference default step (~6e-6) is used,
// which balances truncation against round-off for well-scaled losses.
func New(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ValueAndGrad returns a closure computing f(params) and its gradient.
//
// Contracts:
//   - the value is taken from one evaluation at params itself;
//   - the gradient uses central differences, 2 evaluations per
//     coordinate, none at params itself;
//   - params is never modified; perturbed copies are handed to f;
//   - the first error produced by f aborts the computation and is
//     returned unwrapped.
func (b *Backend) ValueAndGrad(f qaoa.LossFunc) qaoa.ValueGradFunc {
	return func(params []float64) (float64, []float64, error) {
		value, err := f(params)
		if err != nil {
			return 0, nil, err
		}
		// fd wants a plain float64 function; capture the first failure
		// and poison subsequent evaluations with NaN.
		var inner error
		objective := func(x []float64) float64 {
			y, ferr := f(x)
			if ferr != nil {
				if inner == nil {
					inner = ferr
				}
				return math.NaN()
			}
			return y
		}
		grad := make([]float64, len(params))
		fd.Gradient(grad, objective, params, &fd.Settings{
			Formula: fd.Central,
			Step:    b.step,
		})
		if inner != nil {
			return 0, nil, inner
		}
		return value, grad, nil
	}
}

// VectorValueAndGrad evaluates rows of parameter vectors one after
// another with the closure from ValueAndGrad. Rows may have differing
// lengths; each gradient matches its own row.
func (b *Backend) VectorValueAndGrad(f qaoa.LossFunc) qaoa.BatchValueGradFunc {
	vg := b.ValueAndGrad(f)
	return func(rows [][]float64) ([]float64, [][]float64, error) {
		values := make([]float64, len(rows))
		grads := make([][]float64, len(rows))
		for r, row := range rows {
			v, g, err := vg(row)
			if err != nil {
				return nil, nil, err
			}
			values[r], grads[r] = v, g
		}
		return values, grads, nil
	}
}

// Compile is the identity: numerical differentiation has nothing to
// specialize ahead of time.
func (b *Backend) Compile(fn qaoa.ValueGradFunc) qaoa.ValueGradFunc { return fn }

// CompileBatch is the identity, mirroring Compile.
func (b *Backend) CompileBatch(fn qaoa.BatchValueGradFunc) qaoa.BatchValueGradFunc { return fn }

// Optimizer returns a fresh Adam optimizer with the given learning
// rate. Each call returns an independent state; do not share one
// optimizer across concurrent minimizations.
func (b *Backend) Optimizer(learningRate float64) qaoa.Optimizer {
	return &adam{lr: learningRate}
}
