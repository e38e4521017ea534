package qaoa_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/varqo/circuit"
	"github.com/katalvlaran/varqo/qaoa"
	"github.com/katalvlaran/varqo/qubo"
)

// tableEngine answers ExpectationZ from a canned table keyed by the
// queried qubit set; absent keys read as 0. It counts queries and can be
// forced to fail.
type tableEngine struct {
	ev    map[string]complex128
	calls int
	err   error
}

func evKey(qubits []int) string { return fmt.Sprint(qubits) }

func (e *tableEngine) ExpectationZ(_ *circuit.Circuit, qubits []int) (complex128, error) {
	e.calls++
	if e.err != nil {
		return 0, e.err
	}
	return e.ev[evKey(qubits)], nil
}

func (e *tableEngine) Probabilities(*circuit.Circuit) ([]float64, error) {
	return nil, errors.New("tableEngine: probabilities not stubbed")
}

// twoQubitHamiltonian mirrors the Ising form of [[1,2],[2,3]] but with
// weights chosen so every term contributes a distinct amount.
func twoQubitHamiltonian() qubo.Ising {
	return qubo.Ising{
		Terms:   []qubo.PauliTerm{{1, 0}, {0, 1}, {1, 1}},
		Weights: []float64{2, -1, 4},
	}
}

func TestIsingLossWeightedSum(t *testing.T) {
	eng := &tableEngine{ev: map[string]complex128{
		evKey([]int{0}):    0.5,
		evKey([]int{1}):    -0.25,
		evKey([]int{0, 1}): complex(0.125, 0.75), // imaginary part must be discarded
	}}
	c := circuit.New(2).H(0).H(1)

	loss, err := qaoa.IsingLoss(eng, c, twoQubitHamiltonian())
	require.NoError(t, err)
	require.InDelta(t, 2*0.5+(-1)*(-0.25)+4*0.125, loss, 1e-12)
	require.Equal(t, 3, eng.calls)
}

func TestIsingLossPermutationInvariant(t *testing.T) {
	eng := &tableEngine{ev: map[string]complex128{
		evKey([]int{0}):    0.5,
		evKey([]int{1}):    -0.25,
		evKey([]int{0, 1}): 0.125,
	}}
	c := circuit.New(2).H(0)

	h := twoQubitHamiltonian()
	shuffled := qubo.Ising{
		Terms:   []qubo.PauliTerm{{1, 1}, {1, 0}, {0, 1}},
		Weights: []float64{4, 2, -1},
	}

	a, err := qaoa.IsingLoss(eng, c, h)
	require.NoError(t, err)
	b, err := qaoa.IsingLoss(eng, c, shuffled)
	require.NoError(t, err)
	require.InDelta(t, a, b, 1e-12)
}

func TestIsingLossEmptyHamiltonian(t *testing.T) {
	eng := &tableEngine{}
	loss, err := qaoa.IsingLoss(eng, circuit.New(1), qubo.Ising{})
	require.NoError(t, err)
	require.Zero(t, loss)
	require.Zero(t, eng.calls, "empty hamiltonian must not query the engine")
}

func TestIsingLossValidation(t *testing.T) {
	h := twoQubitHamiltonian()

	_, err := qaoa.IsingLoss(nil, circuit.New(2), h)
	require.ErrorIs(t, err, circuit.ErrNoEngine)

	_, err = qaoa.IsingLoss(&tableEngine{}, nil, h)
	require.ErrorIs(t, err, qaoa.ErrNilCircuit)

	bad := qubo.Ising{Terms: []qubo.PauliTerm{{1, 0}}, Weights: []float64{1, 2}}
	_, err = qaoa.IsingLoss(&tableEngine{}, circuit.New(2), bad)
	require.ErrorIs(t, err, qaoa.ErrTermMismatch)
}

func TestIsingLossEngineErrorUnmodified(t *testing.T) {
	boom := errors.New("engine down")
	eng := &tableEngine{err: boom}

	_, err := qaoa.IsingLoss(eng, circuit.New(2), twoQubitHamiltonian())
	require.ErrorIs(t, err, boom)
	require.EqualError(t, err, "engine down")
}

func TestLossComposition(t *testing.T) {
	eng := &tableEngine{ev: map[string]complex128{
		evKey([]int{0}): 1,
		evKey([]int{1}): 1,
	}}
	h := qubo.Ising{
		Terms:   []qubo.PauliTerm{{1, 0}, {0, 1}},
		Weights: []float64{3, -2},
	}

	built := 0
	ansatz := func(params []float64, layers int, got qubo.Ising) (*circuit.Circuit, error) {
		built++
		require.Equal(t, []float64{0.1, 0.2}, params)
		require.Equal(t, 1, layers)
		require.Equal(t, h.Weights, got.Weights)
		return circuit.New(2).H(0).H(1), nil
	}

	f := qaoa.Loss(eng, ansatz, 1, h)
	loss, err := f([]float64{0.1, 0.2})
	require.NoError(t, err)
	require.InDelta(t, 1.0, loss, 1e-12)
	require.Equal(t, 1, built)

	// A second evaluation rebuilds the circuit.
	_, err = f([]float64{0.1, 0.2})
	require.NoError(t, err)
	require.Equal(t, 2, built)
}

func TestLossAnsatzErrorPropagates(t *testing.T) {
	boom := errors.New("ansatz refused")
	f := qaoa.Loss(&tableEngine{}, func([]float64, int, qubo.Ising) (*circuit.Circuit, error) {
		return nil, boom
	}, 1, twoQubitHamiltonian())

	_, err := f([]float64{0, 0})
	require.ErrorIs(t, err, boom)
}

func TestLossNilAnsatz(t *testing.T) {
	f := qaoa.Loss(&tableEngine{}, nil, 1, twoQubitHamiltonian())
	_, err := f([]float64{0, 0})
	require.ErrorIs(t, err, qaoa.ErrNilAnsatz)
}

// gateView flattens the fields the ansatz tests care about.
type gateView struct {
	name   circuit.GateName
	qubits []int
	theta  float64
}

func views(c *circuit.Circuit) []gateView {
	gates := c.Gates()
	out := make([]gateView, len(gates))
	for i, g := range gates {
		out[i] = gateView{name: g.Name, qubits: g.Qubits, theta: g.Theta}
	}
	return out
}

func TestAnsatzForIsingSingleLayer(t *testing.T) {
	h := qubo.Ising{
		Terms:   []qubo.PauliTerm{{1, 0}, {0, 1}, {1, 1}},
		Weights: []float64{-1.5, -2.5, 1},
	}

	c, err := qaoa.AnsatzForIsing([]float64{0.3, 0.7}, 1, h)
	require.NoError(t, err)
	require.Equal(t, 2, c.NumQubits())

	want := []gateView{
		{circuit.GateH, []int{0}, 0},
		{circuit.GateH, []int{1}, 0},
		{circuit.GateRZ, []int{0}, 2 * -1.5 * 0.3},
		{circuit.GateRZ, []int{1}, 2 * -2.5 * 0.3},
		{circuit.GateExp1, []int{0, 1}, 1 * 0.3},
		{circuit.GateRX, []int{0}, 2 * 0.7},
		{circuit.GateRX, []int{1}, 2 * 0.7},
	}
	require.Equal(t, want, views(c))

	// Pair terms must carry the Z⊗Z generator.
	gates := c.Gates()
	require.NotNil(t, gates[4].Generator)
	for i, want := range []complex128{1, -1, -1, 1} {
		require.Equal(t, want, gates[4].Generator.At(i, i))
	}
}

func TestAnsatzForIsingTwoLayers(t *testing.T) {
	h := qubo.Ising{
		Terms:   []qubo.PauliTerm{{1, 0}, {1, 1}},
		Weights: []float64{2, 0.5},
	}

	c, err := qaoa.AnsatzForIsing([]float64{0.3, 0.7, 0.1, 0.2}, 2, h)
	require.NoError(t, err)

	got := views(c)
	require.Len(t, got, 2+2*(2+2))

	// Layer 2 runs off the third and fourth parameters.
	layer2 := got[6:]
	want := []gateView{
		{circuit.GateRZ, []int{0}, 2 * 2 * 0.1},
		{circuit.GateExp1, []int{0, 1}, 0.5 * 0.1},
		{circuit.GateRX, []int{0}, 2 * 0.2},
		{circuit.GateRX, []int{1}, 2 * 0.2},
	}
	require.Equal(t, want, layer2)
}

func TestAnsatzForIsingValidation(t *testing.T) {
	h := twoQubitHamiltonian()

	_, err := qaoa.AnsatzForIsing(nil, 0, h)
	require.ErrorIs(t, err, qaoa.ErrLayerCount)

	_, err = qaoa.AnsatzForIsing([]float64{0.1}, 1, h)
	require.ErrorIs(t, err, qaoa.ErrParamCount)

	mismatch := qubo.Ising{Terms: []qubo.PauliTerm{{1, 0}}, Weights: []float64{1, 2}}
	_, err = qaoa.AnsatzForIsing([]float64{0, 0}, 1, mismatch)
	require.ErrorIs(t, err, qaoa.ErrTermMismatch)

	_, err = qaoa.AnsatzForIsing([]float64{0, 0}, 1, qubo.Ising{})
	require.ErrorIs(t, err, qaoa.ErrNoTerms)

	empty := qubo.Ising{Terms: []qubo.PauliTerm{{0, 0}}, Weights: []float64{1}}
	_, err = qaoa.AnsatzForIsing([]float64{0, 0}, 1, empty)
	require.ErrorIs(t, err, qaoa.ErrTermSupport)

	cubic := qubo.Ising{Terms: []qubo.PauliTerm{{1, 1, 1}}, Weights: []float64{1}}
	_, err = qaoa.AnsatzForIsing([]float64{0, 0}, 1, cubic)
	require.ErrorIs(t, err, qaoa.ErrTermSupport)
}
