// Package pathfind enumerates, for an ordered button pair on one keypad
// layout, the complete set of minimal-length move sequences that relocate a
// robot arm from the first button to the second and press it, never
// occupying the layout's gap cell.
//
// All tied minimal sequences are returned, never an arbitrary one: two ties
// of equal length can cost a different number of presses once relayed
// through further directional pads, so downstream pricing must see every
// one of them.
package pathfind

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/relaypad/keypad"
)

// pair is the cache key: an ordered (from, to) button pair.
type pair struct {
	from, to keypad.Button
}

// Finder enumerates minimal arm routes on a single layout and caches the
// result per ordered button pair. Cache entries are write-once; a Finder is
// safe for concurrent use.
type Finder struct {
	layout *keypad.Layout

	mu    sync.RWMutex
	cache map[pair][]string
}

// NewFinder returns a Finder over layout l. The cache starts empty and is
// populated lazily, one ordered pair at a time.
func NewFinder(l *keypad.Layout) *Finder {
	return &Finder{
		layout: l,
		cache:  make(map[pair][]string),
	}
}

// Layout returns the layout this Finder enumerates over.
func (f *Finder) Layout() *keypad.Layout {
	return f.layout
}

// MinimalPaths returns every minimal-length move-plus-activate sequence
// that moves the arm from button `from` to button `to` and presses it.
// The result is sorted lexicographically and identical across calls.
//
// Returns ErrNilLayout if the Finder has no layout, or a wrapped
// keypad.ErrUnknownButton if either endpoint is not on the layout; the
// latter is a caller defect, never a recoverable runtime condition.
//
// Complexity: the grids hold at most 11 buttons, so the exhaustive search
// over simple paths is O(1) with a small constant; cached thereafter.
func (f *Finder) MinimalPaths(from, to keypad.Button) ([]string, error) {
	if f.layout == nil {
		return nil, ErrNilLayout
	}
	start, ok := f.layout.PosOf(from)
	if !ok {
		return nil, fmt.Errorf("pathfind: start %q: %w", from, keypad.ErrUnknownButton)
	}
	if !f.layout.Contains(to) {
		return nil, fmt.Errorf("pathfind: end %q: %w", to, keypad.ErrUnknownButton)
	}

	key := pair{from: from, to: to}
	f.mu.RLock()
	cached, hit := f.cache[key]
	f.mu.RUnlock()
	if hit {
		return copyPaths(cached), nil
	}

	w := &walker{
		layout:  f.layout,
		goal:    to,
		visited: make(map[keypad.Button]bool, 11),
	}
	w.walk(from, start)

	paths := minimalOnly(w.found)
	sort.Strings(paths)

	f.mu.Lock()
	// Entries are write-once: a racing enumeration produced the same pure
	// result, so whichever write landed first stays.
	if prev, ok := f.cache[key]; ok {
		paths = prev
	} else {
		f.cache[key] = paths
	}
	f.mu.Unlock()

	return copyPaths(paths), nil
}

// copyPaths returns a fresh slice so callers can never alias the cache.
func copyPaths(paths []string) []string {
	out := make([]string, len(paths))
	copy(out, paths)
	return out
}

// walker holds the mutable state of one exhaustive depth-first enumeration.
type walker struct {
	layout  *keypad.Layout
	goal    keypad.Button
	visited map[keypad.Button]bool
	path    []byte
	found   []string
}

// walk explores every simple path from button b (at position p) toward the
// goal. Reaching the goal terminates the path with the activate symbol; a
// button is never revisited within one attempt, and steps off the grid or
// onto the gap are pruned by Layout.Step reporting no button.
func (w *walker) walk(b keypad.Button, p keypad.Pos) {
	if b == w.goal {
		w.found = append(w.found, string(w.path)+string(keypad.Activate))
		return
	}
	w.visited[b] = true
	for _, m := range keypad.Moves() {
		next, ok := w.layout.Step(p, m)
		if !ok || w.visited[next] {
			continue
		}
		nextPos, _ := w.layout.PosOf(next)
		w.path = append(w.path, byte(m.Symbol))
		w.walk(next, nextPos)
		w.path = w.path[:len(w.path)-1]
	}
	w.visited[b] = false
}

// minimalOnly keeps only the paths of globally minimal length.
func minimalOnly(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	minLen := len(paths[0])
	for _, p := range paths[1:] {
		if len(p) < minLen {
			minLen = len(p)
		}
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if len(p) == minLen {
			out = append(out, p)
		}
	}
	return out
}
