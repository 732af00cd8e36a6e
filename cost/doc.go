// Package cost implements the memoized relay-chain pricing engine.
//
// What:
//
//   - Engine.Cost(seq, depth) returns the minimal number of physical
//     presses a human operator must make, depth directional-pad relays
//     away, for the target keypad to receive seq.
//   - Depth 0 means the human types seq directly: cost == len(seq).
//   - Deeper levels decompose seq into adjacent button pairs (implicitly
//     led by the activate button), price every tied minimal route of each
//     pair one level down on the directional pad, and sum the per-pair
//     minima.
//
// Why memoize:
//
//	Naive recursion grows exponentially with depth. The state space is
//	actually tiny: distinct (sequence, depth, layout-kind) triples number
//	in the low thousands even at depth 26, so a write-once memo keyed by
//	that triple makes 25-level chains run in microseconds. The cache lives
//	as long as its Engine and is shared across all codes priced through it.
//
// Determinism & concurrency:
//
//	Pricing is a pure function of its arguments. Memo entries, once
//	written, never change; the Engine is safe for concurrent use under an
//	RWMutex, and racing duplicate computations write identical values.
//
// Errors:
//
//   - ErrNegativeDepth: depth below zero.
//   - ErrEmptySequence: empty sequence.
//   - ErrNoRoute: internal invariant violation (grids are connected).
//   - keypad.ErrUnknownButton (wrapped): sequence button outside the
//     layout's vocabulary, a caller defect surfaced loudly.
package cost
