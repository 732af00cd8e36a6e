// Package relay defines options, results, and sentinel errors for pricing
// batches of door codes through robot relay chains.
package relay

import (
	"errors"
)

// Sentinel errors for orchestration.
var (
	// ErrOptionViolation is returned when an invalid Options field is supplied.
	ErrOptionViolation = errors.New("relay: invalid option supplied")
)

// Options tunes one batch run.
//
// Fields:
//   - ShallowDepth — relay depth for the first total (directional pads
//     between the human and the numeric keypad).
//   - DeepDepth    — relay depth for the second total.
//   - Workers      — number of codes priced concurrently. 0 means the
//     default of 1 (sequential); values below zero are rejected.
type Options struct {
	ShallowDepth int
	DeepDepth    int
	Workers      int
}

// DefaultOptions returns the canonical configuration: three directional
// pads for the shallow total, twenty-six for the deep one, sequential
// pricing.
func DefaultOptions() Options {
	return Options{
		ShallowDepth: 3,
		DeepDepth:    26,
		Workers:      1,
	}
}

// Totals carries the two weighted grand totals of a batch, one per depth.
type Totals struct {
	Shallow int
	Deep    int
}
