package numgrad

import "math"

// Adam hyper-parameters, the de-facto defaults from the literature.
const (
	adamBeta1 = 0.9   // first-moment decay
	adamBeta2 = 0.999 // second-moment decay
	adamEps   = 1e-8  // denominator guard
)

// adam holds per-coordinate moment estimates. State is sized lazily on
// the first Update; a later shape change resets the moments.
type adam struct {
	lr   float64
	m, v []float64
	t    int
}

// Update applies one bias-corrected Adam step and returns the new
// parameter vector as a fresh slice. grads and params must have equal
// length; neither input is modified.
func (a *adam) Update(grads, params []float64) []float64 {
	if len(a.m) != len(params) {
		a.m = make([]float64, len(params))
		a.v = make([]float64, len(params))
		a.t = 0
	}
	a.t++
	c1 := 1 - math.Pow(adamBeta1, float64(a.t))
	c2 := 1 - math.Pow(adamBeta2, float64(a.t))
	next := make([]float64, len(params))
	for i, g := range grads {
		a.m[i] = adamBeta1*a.m[i] + (1-adamBeta1)*g
		a.v[i] = adamBeta2*a.v[i] + (1-adamBeta2)*g*g
		mHat := a.m[i] / c1
		vHat := a.v[i] / c2
		next[i] = params[i] - a.lr*mHat/(math.Sqrt(vHat)+adamEps)
	}
	return next
}
