// SPDX-License-Identifier: MIT
// Package qaoa: functional options for the training loop.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     the loop itself never panics on user data.
//   - Determinism is explicit: seeding goes through WithSeed, seed==0
//     selects a fixed default stream.
//   - No hidden globals; everything flows through config.

package qaoa

import (
	"math"

	"github.com/rs/zerolog"
)

// Documented defaults (single source of truth).
const (
	// DefaultLayers is the ansatz depth when WithLayers is absent.
	DefaultLayers = 2
	// DefaultIterations is the exact number of update steps when
	// WithIterations is absent.
	DefaultIterations = 1000
	// DefaultLearningRate feeds Backend.Optimizer when WithLearningRate
	// is absent.
	DefaultLearningRate = 1e-2
	// DefaultProgressEvery spaces the progress log records.
	DefaultProgressEvery = 100

	// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
	// The value is arbitrary but stable to keep reproducible defaults.
	defaultSeed int64 = 1

	// initStdDev scales Gaussian initialization of a single parameter
	// vector; batchInitStdDev scales each row of a batched start.
	initStdDev      = 0.5
	batchInitStdDev = 0.1
)

// Option customizes one training run by mutating the loop config before
// any computation starts.
type Option func(*config)

// config is the resolved option set; zero value is never used directly,
// construct via newConfig.
type config struct {
	layers        int
	iterations    int
	learningRate  float64
	seed          int64
	logger        zerolog.Logger
	progressEvery int
}

// newConfig applies opts over the documented defaults.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		layers:        DefaultLayers,
		iterations:    DefaultIterations,
		learningRate:  DefaultLearningRate,
		logger:        zerolog.Nop(),
		progressEvery: DefaultProgressEvery,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLayers sets the ansatz depth; parameter vectors get length
// 2*layers. Panics if layers <= 0.
func WithLayers(layers int) Option {
	if layers <= 0 {
		panic("qaoa: WithLayers(layers<=0)")
	}
	return func(c *config) { c.layers = layers }
}

// WithIterations sets the exact update-step count. Panics if it <= 0.
func WithIterations(it int) Option {
	if it <= 0 {
		panic("qaoa: WithIterations(it<=0)")
	}
	return func(c *config) { c.iterations = it }
}

// WithLearningRate sets the step size handed to Backend.Optimizer.
// Panics on non-positive or NaN rates.
func WithLearningRate(lr float64) Option {
	if lr <= 0 || math.IsNaN(lr) {
		panic("qaoa: WithLearningRate(lr<=0)")
	}
	return func(c *config) { c.learningRate = lr }
}

// WithSeed fixes the parameter-initialization stream. seed==0 keeps the
// deterministic default stream, matching the package-wide seed policy.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithLogger injects the progress logger. The default is zerolog.Nop(),
// so training is silent unless a logger is supplied.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithProgressEvery sets the iteration spacing of progress records.
// Panics if every <= 0.
func WithProgressEvery(every int) Option {
	if every <= 0 {
		panic("qaoa: WithProgressEvery(every<=0)")
	}
	return func(c *config) { c.progressEvery = every }
}
