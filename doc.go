// Package relaypad computes the minimum number of physical button presses
// a human operator needs to drive a numeric keypad through a chain of
// directional-keypad-controlled robots: each robot types on the pad that
// controls the robot in front of it, and the human types on the outermost
// pad.
//
// 🚀 What is relaypad?
//
//	A small, deterministic pricing engine built from four pieces:
//		• keypad   — the two fixed layouts (numeric target, directional relay),
//		             each with one forbidden gap cell
//		• pathfind — exhaustive enumeration of ALL tied minimal arm routes
//		             between two buttons (ties price differently downstream)
//		• cost     — memoized recursive press-count pricing, tractable to
//		             relay depths of 25 and beyond
//		• relay    — batch orchestration: two depths per code, weighted by
//		             the code's numeric value, two grand totals
//
// ✨ Why it is shaped this way:
//
//   - A robot arm rests on the activate button after every press, so a
//     sequence decomposes into independent adjacent-button pairs.
//   - Tied minimal routes must all be priced; picking one heuristically
//     can be wrong on deep chains.
//   - Memo keys carry a two-valued layout tag instead of the layout
//     itself, so nothing ever needs to hash a keypad.
//
// Supporting packages:
//
//	codes/        — line parsing and numeric-value extraction
//	cmd/relaypad/ — the CLI: codes in, two totals out
//
// Quick ASCII picture of the chain at depth 2:
//
//	human → [directional pad] → robot → [directional pad] → robot → [numeric pad]
//
// Everything is pure computation: no I/O inside the engine, no global
// state, caches owned by their component instances.
package relaypad
