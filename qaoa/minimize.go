// SPDX-License-Identifier: MIT
// Package qaoa: the gradient-descent training loop.
//
// Contract:
//   - Exactly cfg.iterations update steps, no convergence shortcut.
//   - Dependencies are explicit: nil Backend → ErrMissingBackend, nil
//     Engine → circuit.ErrNoEngine, nil Ansatz → ErrNilAnsatz, all
//     checked before any computation.
//   - Backend/engine failures abort immediately and surface unmodified;
//     there are no retries and no backend fallback.
//   - Defensive shape checks on returned gradients (ErrGradientShape)
//     even though conforming backends never trip them.

package qaoa

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/varqo/circuit"
	"github.com/katalvlaran/varqo/qubo"
)

// File-local method tags for error context.
const (
	methodMinimize      = "Minimize"
	methodMinimizeBatch = "MinimizeBatch"
)

// Minimize trains one parameter vector of length 2*layers against the
// Ising form of Q: params start from N(0, 0.5²) draws of the seeded
// stream, then follow iterations steps of backend-computed gradients
// through the backend's optimizer. The loss function rebuilds the ansatz
// circuit on every evaluation.
//
// The scalar loss is logged through the injected logger every
// progressEvery iterations (iteration 0 included). The final parameter
// vector is returned; callers wanting the loss report it via the loss
// function or package report.
//
// Complexity: O(iterations) backend evaluations.
func Minimize(b Backend, eng circuit.Engine, Q *mat.Dense, ansatz Ansatz, opts ...Option) ([]float64, error) {
	if b == nil {
		return nil, ErrMissingBackend
	}
	if eng == nil {
		return nil, circuit.ErrNoEngine
	}
	if ansatz == nil {
		return nil, ErrNilAnsatz
	}
	cfg := newConfig(opts...)

	h, err := qubo.ToIsing(Q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMinimize, err)
	}

	// Stage 1: assemble the differentiable, compiled loss.
	vg := b.Compile(b.ValueAndGrad(Loss(eng, ansatz, cfg.layers, h)))
	opt := b.Optimizer(cfg.learningRate)

	// Stage 2: seeded Gaussian start.
	params := gaussianParams(2*cfg.layers, initStdDev, cfg.seed)

	// Stage 3: fixed-count descent.
	for i := 0; i < cfg.iterations; i++ {
		v, grad, err := vg(params)
		if err != nil {
			return nil, err
		}
		if len(grad) != len(params) {
			return nil, fmt.Errorf("%s: %d gradient entries for %d params: %w",
				methodMinimize, len(grad), len(params), ErrGradientShape)
		}
		params = opt.Update(grad, params)
		if i%cfg.progressEvery == 0 {
			cfg.logger.Info().Int("iteration", i).Float64("loss", v).Msg("qaoa minimize")
		}
	}
	return params, nil
}

// MinimizeBatch trains ncircuits independent parameter rows in one run.
// Rows start from N(0, 0.1²) draws of the seeded stream and are updated
// together: gradients are flattened, passed once through the shared
// optimizer, and unflattened, which matches per-row updates for
// elementwise rules like Adam. Progress records carry the mean and the
// minimum of the per-row losses.
//
// Returns the final ncircuits×(2*layers) parameter matrix.
// Complexity: O(iterations) batched backend evaluations.
func MinimizeBatch(b Backend, eng circuit.Engine, Q *mat.Dense, ansatz Ansatz, ncircuits int, opts ...Option) ([][]float64, error) {
	if b == nil {
		return nil, ErrMissingBackend
	}
	if eng == nil {
		return nil, circuit.ErrNoEngine
	}
	if ansatz == nil {
		return nil, ErrNilAnsatz
	}
	if ncircuits <= 0 {
		return nil, ErrCircuitCount
	}
	cfg := newConfig(opts...)

	h, err := qubo.ToIsing(Q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMinimizeBatch, err)
	}

	bvg := b.CompileBatch(b.VectorValueAndGrad(Loss(eng, ansatz, cfg.layers, h)))
	opt := b.Optimizer(cfg.learningRate)

	d := 2 * cfg.layers
	flat := gaussianParams(ncircuits*d, batchInitStdDev, cfg.seed)
	gflat := make([]float64, ncircuits*d)
	params := sliceRows(flat, ncircuits, d)

	for i := 0; i < cfg.iterations; i++ {
		losses, grads, err := bvg(params)
		if err != nil {
			return nil, err
		}
		if len(losses) != ncircuits || len(grads) != ncircuits {
			return nil, fmt.Errorf("%s: %d losses / %d gradient rows for batch %d: %w",
				methodMinimizeBatch, len(losses), len(grads), ncircuits, ErrGradientShape)
		}
		for r, g := range grads {
			if len(g) != d {
				return nil, fmt.Errorf("%s: gradient row %d has %d entries, want %d: %w",
					methodMinimizeBatch, r, len(g), d, ErrGradientShape)
			}
			copy(gflat[r*d:(r+1)*d], g)
		}

		flat = opt.Update(gflat, flat)
		params = sliceRows(flat, ncircuits, d)

		if i%cfg.progressEvery == 0 {
			mean, best := summarize(losses)
			cfg.logger.Info().Int("iteration", i).
				Float64("mean_loss", mean).Float64("min_loss", best).
				Msg("qaoa minimize batch")
		}
	}
	return params, nil
}

// gaussianParams draws n zero-mean Gaussians with the given stddev from
// a deterministic stream. Policy: seed==0 ⇒ defaultSeed.
func gaussianParams(n int, sigma float64, seed int64) []float64 {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: rand.NewSource(uint64(s))}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// sliceRows views flat as rows×d subslices without copying.
func sliceRows(flat []float64, rows, d int) [][]float64 {
	out := make([][]float64, rows)
	for r := range out {
		out[r] = flat[r*d : (r+1)*d]
	}
	return out
}

// summarize reduces a loss batch to its mean and minimum.
func summarize(losses []float64) (mean, best float64) {
	best = losses[0]
	for _, v := range losses {
		mean += v
		if v < best {
			best = v
		}
	}
	mean /= float64(len(losses))
	return mean, best
}
