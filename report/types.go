// Package report renders measurement distributions and QUBO cost
// rankings as fixed-width text tables for terminal inspection.
//
// Three reporters share one layout (37-column rule, tab-separated
// columns, zero-padded binary selection labels, qubit 0 leftmost):
//
//   - Probabilities: per-state measurement probabilities of a circuit,
//     highest first by default.
//   - CircuitCosts: per-state xᵀQx values for a circuit-sized matrix,
//     cheapest first by default.
//   - Costs: the same ranking straight from the matrix, no circuit
//     required.
//
// Contracts:
//   - Output goes to an explicit io.Writer; the package never touches
//     process-wide streams.
//   - Probabilities are rounded to 4 decimals before ranking, so the
//     printed order matches the printed values even at ties.
//   - Sorting is stable: equal values keep natural state order.
//   - Wrap truncates long tables; see Options.
//   - Write failures and engine failures surface unmodified; validation
//     failures use the sentinel set below.
package report

import "errors"

// Sentinel errors for report operations.
var (
	// ErrNilWriter indicates a nil output writer.
	ErrNilWriter = errors.New("report: nil writer")
	// ErrNilCircuit indicates a reporter received a nil circuit.
	ErrNilCircuit = errors.New("report: nil circuit")
	// ErrProbabilityLength indicates an engine returned a probability
	// vector whose length is not 2^n for the circuit's n qubits.
	ErrProbabilityLength = errors.New("report: probability vector length does not match state count")
	// ErrSizeMismatch indicates the circuit and the coefficient matrix
	// disagree on the qubit count.
	ErrSizeMismatch = errors.New("report: circuit qubit count does not match matrix dimension")
)

// Options selects row ordering and truncation. The zero value prints
// the full table in default order.
type Options struct {
	// Wrap shortens long tables. The probability table keeps its top 4
	// and bottom 4 rows around an ellipsis marker (tables of 8 rows or
	// fewer print whole); the cost tables keep their first 8 rows.
	Wrap bool
	// Reverse flips the default ordering: probabilities switch to
	// ascending, costs to descending.
	Reverse bool
}

// DefaultOptions returns the zero Options, spelled out for call sites
// that want the intent visible.
func DefaultOptions() Options { return Options{} }
