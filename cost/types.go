// Package cost defines sentinel errors and instrumentation types for the
// relay-chain pricing engine.
package cost

import (
	"errors"
)

// Sentinel errors for pricing.
var (
	// ErrNegativeDepth indicates a relay depth below zero.
	ErrNegativeDepth = errors.New("cost: relay depth cannot be negative")

	// ErrEmptySequence indicates an empty button sequence.
	ErrEmptySequence = errors.New("cost: sequence must be non-empty")

	// ErrNoRoute indicates that no route exists between two valid buttons.
	// The grids are connected, so this is an internal invariant violation.
	ErrNoRoute = errors.New("cost: no route between buttons")
)

// Stats reports memo-cache activity for one Engine. A repeated Cost call
// with identical arguments adds exactly one hit and zero misses.
type Stats struct {
	// Hits counts memo lookups answered from the cache.
	Hits uint64
	// Misses counts sequences priced by actual recursion.
	Misses uint64
}
