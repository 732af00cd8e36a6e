// Package pathfind computes, for an ordered button pair on a keypad layout,
// the complete set of minimal move-plus-activate sequences between them.
//
// What:
//
//   - Finder wraps one keypad.Layout and a lazily-populated per-pair cache.
//   - MinimalPaths(from, to) returns every tied shortest route from `from`
//     to `to`, each terminated by the activate symbol 'A'.
//   - Routes never occupy the layout's gap cell, not even transiently.
//
// Why all ties matter:
//
//	Two minimal routes of equal length can differ in which move symbol
//	dominates (all-horizontal-then-vertical versus the reverse). Relaying
//	one or the other through further directional pads can cost a different
//	number of presses, so pricing must consider every tie; committing to a
//	single route can be wrong on deep chains.
//
// Determinism:
//
//	Results are sorted lexicographically and cached write-once per pair,
//	so repeated calls return identical slices.
//
// Complexity:
//
//   - First call per pair: exhaustive search over simple paths of a grid
//     with ≤ 11 buttons, bounded by a small constant.
//   - Subsequent calls: O(1) cache lookup. Safe for concurrent use.
//
// Errors:
//
//   - ErrNilLayout: Finder built around a nil layout.
//   - keypad.ErrUnknownButton (wrapped): an endpoint not on the layout.
package pathfind
