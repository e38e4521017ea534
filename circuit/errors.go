// SPDX-License-Identifier: MIT
// Package circuit: sentinel error set.
// Algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. Panics are reserved for programmer errors (bad qubit index
// handed to an appender, nil generator).

package circuit

import "errors"

var (
	// ErrNoEngine is returned when an operation that needs a simulator or
	// device adapter receives a nil Engine. Construct an implementation
	// (e.g. a simulator binding) and pass it explicitly; there is no
	// ambient default to fall back to.
	ErrNoEngine = errors.New("circuit: no engine selected; construct a simulator or device adapter and pass it explicitly")
)
