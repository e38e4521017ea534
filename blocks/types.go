// Package blocks defines shared types and sentinel errors for the
// entangling-block library.
package blocks

import "errors"

// Sentinel errors for block constructors. Blocks validate all structural
// inputs before appending a single gate, so a non-nil error always means
// the circuit was left untouched.
var (
	// ErrNilCircuit indicates a block received a nil target circuit.
	ErrNilCircuit = errors.New("blocks: nil circuit")
	// ErrNilGraph indicates a block received a nil topology.
	ErrNilGraph = errors.New("blocks: nil topology")
	// ErrBadGenerator indicates a nil or non-4×4 two-qubit generator.
	ErrBadGenerator = errors.New("blocks: generator must be a 4x4 matrix")
	// ErrLinkRange indicates a Bell link with an out-of-range or repeated qubit.
	ErrLinkRange = errors.New("blocks: link endpoints out of range or equal")
	// ErrGridSize indicates a grid addressing more qubits than the circuit has.
	ErrGridSize = errors.New("blocks: grid does not fit circuit")
	// ErrGraphSize indicates a topology spanning more qubits than the circuit.
	ErrGraphSize = errors.New("blocks: topology does not fit circuit")
	// ErrAngleCount indicates a per-element angle set whose length does not
	// match the topology it parametrizes.
	ErrAngleCount = errors.New("blocks: angle count does not match topology")
	// ErrParamShape indicates a parameter matrix with the wrong dimensions.
	ErrParamShape = errors.New("blocks: parameter matrix has wrong shape")
	// ErrLayerCount indicates a non-positive layer count.
	ErrLayerCount = errors.New("blocks: layer count must be positive")
)

// Angles carries rotation angles for a family of gates in one of two
// explicit forms: a single value shared by every gate, or one value per
// gate. The form is fixed at construction, so consumers never guess from
// tensor sizes. The zero value behaves as Shared(0).
type Angles struct {
	perElement bool
	shared     float64
	values     []float64
}

// Shared returns an Angles applying theta to every gate of the family.
func Shared(theta float64) Angles {
	return Angles{shared: theta}
}

// PerElement returns an Angles applying thetas[i] to the i-th gate.
// The slice is copied, so later caller mutation has no effect.
func PerElement(thetas []float64) Angles {
	cp := make([]float64, len(thetas))
	copy(cp, thetas)
	return Angles{perElement: true, values: cp}
}

// at returns the angle for gate index i. Callers guarantee i < the count
// validated by check.
func (a Angles) at(i int) float64 {
	if a.perElement {
		return a.values[i]
	}
	return a.shared
}

// check verifies a per-element set covers exactly need gates.
// Shared angles fit any count by definition.
func (a Angles) check(need int) error {
	if a.perElement && len(a.values) != need {
		return ErrAngleCount
	}
	return nil
}
