package report

import (
	"fmt"
	"io"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/varqo/circuit"
	"github.com/katalvlaran/varqo/qubo"
)

// Table fragments. The rule width and the column layout are part of the
// output contract; tests pin them byte for byte.
const (
	tableRule    = "-------------------------------------\n"
	probHeader   = "    selection\t  |\tprobability\n"
	costHeader   = "    selection\t  |\t  cost\n"
	probRowFmt   = "%10s\t  |\t  %.4f\n"
	costRowFmt   = "%10s\t  |\t%.4f\n"
	ellipsisLine = "               ... ...\n"

	// wrapRows rows survive Wrap truncation in either table flavor.
	wrapRows = 8
)

// row pairs a selection label with the value it is ranked by.
type row struct {
	state string
	value float64
}

// Probabilities prints the measurement distribution of c as a table of
// selection strings and probabilities.
//
// Contracts:
//   - every one of the 2ⁿ states appears exactly once, unless Wrap
//     truncates the table;
//   - values are rounded to 4 decimals first and ranked afterwards,
//     descending by default, ascending with Reverse;
//   - Wrap keeps the top 4 and bottom 4 rows around an ellipsis marker
//     when more than 8 rows exist, otherwise the table prints whole.
//
// Errors: ErrNilWriter, circuit.ErrNoEngine, ErrNilCircuit,
// ErrProbabilityLength; engine and write failures pass through.
// Complexity: O(n·2ⁿ) time, O(2ⁿ) space.
func Probabilities(w io.Writer, eng circuit.Engine, c *circuit.Circuit, opts Options) error {
	if w == nil {
		return ErrNilWriter
	}
	if eng == nil {
		return circuit.ErrNoEngine
	}
	if c == nil {
		return ErrNilCircuit
	}

	probs, err := eng.Probabilities(c)
	if err != nil {
		return err
	}
	n := c.NumQubits()
	if len(probs) != 1<<uint(n) {
		return fmt.Errorf("report: %d probabilities for %d qubits: %w",
			len(probs), n, ErrProbabilityLength)
	}

	// Stage 1: label, round, rank.
	rows := make([]row, len(probs))
	for s, p := range probs {
		rows[s] = row{state: stateLabel(s, n), value: round4(p)}
	}
	sortRows(rows, !opts.Reverse)

	// Stage 2: render.
	if err := writeHeader(w, probHeader); err != nil {
		return err
	}
	if opts.Wrap && len(rows) > wrapRows {
		half := wrapRows / 2
		if err := writeRows(w, probRowFmt, rows[:half]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ellipsisLine); err != nil {
			return err
		}
		if err := writeRows(w, probRowFmt, rows[len(rows)-half:]); err != nil {
			return err
		}
	} else if err := writeRows(w, probRowFmt, rows); err != nil {
		return err
	}
	_, err = io.WriteString(w, tableRule)
	return err
}

// CircuitCosts prints the xᵀQx ranking for every selection the circuit
// can measure. The matrix dimension must match the circuit's qubit
// count (ErrSizeMismatch); rendering is then identical to Costs.
func CircuitCosts(w io.Writer, c *circuit.Circuit, Q *mat.Dense, opts Options) error {
	if w == nil {
		return ErrNilWriter
	}
	if c == nil {
		return ErrNilCircuit
	}
	if Q != nil {
		if nq, _ := Q.Dims(); nq != c.NumQubits() {
			return fmt.Errorf("report: %d-qubit circuit against %d-dimensional matrix: %w",
				c.NumQubits(), nq, ErrSizeMismatch)
		}
	}
	return Costs(w, Q, opts)
}

// Costs prints the xᵀQx value of every selection vector, cheapest first
// by default, most expensive first with Reverse. Wrap keeps the first 8
// rows of the chosen ordering. Costs are ranked exactly as computed; no
// rounding happens before the 4-decimal rendering.
//
// Errors: ErrNilWriter, qubo.ErrInvalidShape; write failures pass
// through. Complexity: O(2ⁿ·n²) time, O(2ⁿ) space.
func Costs(w io.Writer, Q *mat.Dense, opts Options) error {
	if w == nil {
		return ErrNilWriter
	}
	costs, err := qubo.Costs(Q)
	if err != nil {
		return err
	}
	n, _ := Q.Dims()

	rows := make([]row, len(costs))
	for s, v := range costs {
		rows[s] = row{state: stateLabel(s, n), value: v}
	}
	sortRows(rows, opts.Reverse)

	if err := writeHeader(w, costHeader); err != nil {
		return err
	}
	limit := len(rows)
	if opts.Wrap && limit > wrapRows {
		limit = wrapRows
	}
	if err := writeRows(w, costRowFmt, rows[:limit]); err != nil {
		return err
	}
	_, err = io.WriteString(w, tableRule)
	return err
}

// writeHeader emits the leading blank line, the rule, the column header
// and the second rule in one write.
func writeHeader(w io.Writer, header string) error {
	_, err := io.WriteString(w, "\n"+tableRule+header+tableRule)
	return err
}

// writeRows renders rows with the given line format, stopping at the
// first write failure.
func writeRows(w io.Writer, format string, rows []row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, format, r.state, r.value); err != nil {
			return err
		}
	}
	return nil
}

// sortRows orders rows by value; ties keep natural state order.
func sortRows(rows []row, descending bool) {
	if descending {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].value > rows[j].value })
		return
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].value < rows[j].value })
}

// stateLabel renders state s as a zero-padded binary string of width n,
// qubit 0 leftmost.
func stateLabel(s, n int) string {
	return fmt.Sprintf("%0*b", n, s)
}

// round4 rounds half away from zero to 4 decimal places, the printed
// precision.
func round4(x float64) float64 {
	return math.Round(x*1e4) / 1e4
}
