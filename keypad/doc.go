// Package keypad defines the two fixed keypad layouts of a relay chain:
// the numeric target pad and the directional relay pad.
//
// What:
//
//   - Layout is an immutable bidirectional button↔position mapping.
//   - Each layout has exactly one empty cell, the gap, inside its
//     bounding box; no arm movement may ever occupy it.
//   - Step answers whether a unit move from a position lands on a real
//     button or falls into the gap / off the grid.
//   - Kind tags the two layouts in use, so cache keys downstream never
//     need to hash a layout.
//
// Why:
//
//   - pathfind enumerates minimal arm routes over a Layout.
//   - cost prices button sequences per Layout Kind.
//
// Layouts:
//
//	numeric           directional
//	7 8 9
//	4 5 6             . ^ A
//	1 2 3             < v >
//	. 0 A
//
// Errors:
//
//   - ErrUnknownButton: a referenced button does not exist on the layout.
package keypad
