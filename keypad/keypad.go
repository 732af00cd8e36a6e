// Package keypad models the two physical keypads of the relay chain as
// immutable button↔position mappings over a small 2D grid. Each layout has
// exactly one cell inside its bounding box with no button, the gap, which
// no arm movement may ever occupy.
//
// Layouts are constructed once and shared read-only for the life of the
// process; every accessor is safe for concurrent use.
package keypad

import (
	"sort"
)

// gapMarker denotes the empty cell in a layout definition row.
const gapMarker = '.'

// Layout is an immutable bidirectional mapping between buttons and grid
// positions for one of the two fixed keypads. It answers "where is button
// B" and "what button, if any, occupies position P".
type Layout struct {
	kind     Kind
	posOf    map[Button]Pos
	buttonAt map[Pos]Button
	gap      Pos
	buttons  []Button // sorted, for deterministic iteration
}

// newLayout builds a Layout from definition rows, where each row lists the
// button symbols of one grid line top to bottom and gapMarker marks the gap.
func newLayout(kind Kind, rows []string) *Layout {
	l := &Layout{
		kind:     kind,
		posOf:    make(map[Button]Pos),
		buttonAt: make(map[Pos]Button),
	}
	for y, row := range rows {
		for x, r := range row {
			p := Pos{X: x, Y: y}
			if r == gapMarker {
				l.gap = p
				continue
			}
			b := Button(r)
			l.posOf[b] = p
			l.buttonAt[p] = b
			l.buttons = append(l.buttons, b)
		}
	}
	sort.Slice(l.buttons, func(i, j int) bool { return l.buttons[i] < l.buttons[j] })

	return l
}

// NewNumeric returns the numeric target keypad:
//
//	7 8 9
//	4 5 6
//	1 2 3
//	. 0 A
//
// The gap sits at the bottom-left corner.
func NewNumeric() *Layout {
	return newLayout(Numeric, []string{
		"789",
		"456",
		"123",
		".0A",
	})
}

// NewDirectional returns the directional relay keypad:
//
//	. ^ A
//	< v >
//
// The gap sits at the top-left corner.
func NewDirectional() *Layout {
	return newLayout(Directional, []string{
		".^A",
		"<v>",
	})
}

// Kind reports which of the two layouts this is.
func (l *Layout) Kind() Kind {
	return l.kind
}

// PosOf returns the grid position of button b, and whether b exists on the
// layout.
func (l *Layout) PosOf(b Button) (Pos, bool) {
	p, ok := l.posOf[b]
	return p, ok
}

// ButtonAt returns the button occupying position p, if any. Both the gap
// and every cell outside the bounding box report no button; callers must
// prune such steps rather than tolerate them.
func (l *Layout) ButtonAt(p Pos) (Button, bool) {
	b, ok := l.buttonAt[p]
	return b, ok
}

// Contains reports whether button b exists on the layout.
func (l *Layout) Contains(b Button) bool {
	_, ok := l.posOf[b]
	return ok
}

// Gap returns the position of the layout's single empty cell.
func (l *Layout) Gap() Pos {
	return l.gap
}

// Step applies move m from position p and returns the button it lands on.
// A landing on the gap or outside the grid reports no button.
// Complexity: O(1).
func (l *Layout) Step(p Pos, m Move) (Button, bool) {
	return l.ButtonAt(Pos{X: p.X + m.Delta.X, Y: p.Y + m.Delta.Y})
}

// Buttons returns all buttons of the layout in ascending symbol order.
// The returned slice is a copy.
func (l *Layout) Buttons() []Button {
	out := make([]Button, len(l.buttons))
	copy(out, l.buttons)
	return out
}
