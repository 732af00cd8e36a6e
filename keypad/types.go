// Package keypad defines core types and sentinel errors for the two fixed
// keypad layouts used by the relaypad engine.
package keypad

import (
	"errors"
)

// Sentinel errors for keypad operations.
var (
	// ErrUnknownButton indicates a button that does not exist on the layout.
	ErrUnknownButton = errors.New("keypad: unknown button on layout")
)

// Button identifies a single key by its printed symbol:
// '0'–'9' and 'A' on the numeric pad; '^', 'v', '<', '>' and 'A' on the
// directional pad.
type Button rune

// Activate is the confirm/press button. It exists on both layouts,
// terminates every move sequence, and is the implicit resting position of
// a robot arm immediately after any press.
const Activate Button = 'A'

// Pos is a grid coordinate: X grows rightward, Y grows downward.
type Pos struct {
	X, Y int
}

// Kind tags one of the exactly two layouts in use. Cache keys carry a Kind
// instead of the layout itself, so layouts never need to be hashable.
type Kind int

const (
	// Numeric is the target keypad: digits 0–9 plus Activate.
	Numeric Kind = iota
	// Directional is the relay keypad: four move buttons plus Activate.
	Directional
)

// String returns a human-readable name for the layout kind.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Directional:
		return "directional"
	default:
		return "unknown"
	}
}

// Move pairs a directional-pad symbol with its unit step on the grid.
type Move struct {
	Symbol Button
	Delta  Pos
}

// moves is the fixed table of the four arm movements.
var moves = [4]Move{
	{Symbol: '^', Delta: Pos{X: 0, Y: -1}},
	{Symbol: 'v', Delta: Pos{X: 0, Y: 1}},
	{Symbol: '<', Delta: Pos{X: -1, Y: 0}},
	{Symbol: '>', Delta: Pos{X: 1, Y: 0}},
}

// Moves returns the four arm movements in a fixed order.
// The returned array is a copy; callers may not mutate the table.
func Moves() [4]Move {
	return moves
}
