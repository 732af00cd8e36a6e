// Package cost prices a button sequence through a chain of directional-pad
// relays: the minimal total number of presses a human must make, `depth`
// relay levels away, for the target keypad to receive the sequence.
//
// The recursion decomposes a sequence into adjacent (previous, current)
// button pairs; the first "previous" is always the activate button, since
// a robot arm rests on activate immediately after any press. Each pair is
// priced as the cheapest of all tied minimal routes between the two
// buttons, each route priced one level deeper on the directional pad.
// Memoization per (sequence, depth, layout kind) bounds total work to the
// small constant pair space times depth, instead of exponential growth.
package cost

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/relaypad/keypad"
	"github.com/katalvlaran/relaypad/pathfind"
)

// memoKey identifies one priced subproblem. The layout is carried as its
// two-valued Kind tag, so the key stays trivially comparable.
type memoKey struct {
	seq   string
	depth int
	kind  keypad.Kind
}

// Engine prices button sequences on one target layout. Its memo cache is
// write-once per key and persists for the engine's lifetime, amortizing
// work across every code and chain level priced through it. An Engine is
// safe for concurrent use.
type Engine struct {
	target *pathfind.Finder // routes on the target layout
	relay  *pathfind.Finder // routes on the directional layout

	mu   sync.RWMutex
	memo map[memoKey]int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewEngine returns an Engine pricing sequences typed on the target layout.
// Relay levels always run on the directional layout; when the target itself
// is directional, both share one Finder and therefore one route cache.
func NewEngine(target *keypad.Layout) *Engine {
	e := &Engine{
		target: pathfind.NewFinder(target),
		memo:   make(map[memoKey]int),
	}
	if target != nil && target.Kind() == keypad.Directional {
		e.relay = e.target
	} else {
		e.relay = pathfind.NewFinder(keypad.NewDirectional())
	}
	return e
}

// Cost returns the minimal number of human presses, depth relay levels
// away, for the target keypad to receive seq. Every button of seq must
// exist on the target layout and seq conventionally ends with the activate
// symbol; a button outside the layout's vocabulary is a caller defect and
// surfaces as a wrapped keypad.ErrUnknownButton, never as a silently wrong
// count.
//
// cost(seq, 0) == len(seq): at depth zero the human types seq directly.
// For fixed seq the result is non-decreasing in depth.
//
// Complexity: O(P·depth) once warm, where P is the number of distinct
// adjacent button pairs on the layouts (≤ ~30).
func (e *Engine) Cost(seq string, depth int) (int, error) {
	if depth < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	if seq == "" {
		return 0, ErrEmptySequence
	}
	if e.target.Layout() == nil {
		return 0, pathfind.ErrNilLayout
	}
	return e.price(seq, depth, e.target)
}

// Stats returns the engine's memo-cache counters.
func (e *Engine) Stats() Stats {
	return Stats{Hits: e.hits.Load(), Misses: e.misses.Load()}
}

// price evaluates seq at the given depth on the layout owned by f,
// consulting the memo first and recording the result after.
func (e *Engine) price(seq string, depth int, f *pathfind.Finder) (int, error) {
	key := memoKey{seq: seq, depth: depth, kind: f.Layout().Kind()}

	e.mu.RLock()
	v, ok := e.memo[key]
	e.mu.RUnlock()
	if ok {
		e.hits.Add(1)
		return v, nil
	}
	e.misses.Add(1)

	total, err := e.compute(seq, depth, f)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	// Entries are write-once: a racing duplicate computed the same pure
	// value, so keep whichever landed first.
	if prev, ok := e.memo[key]; ok {
		total = prev
	} else {
		e.memo[key] = total
	}
	e.mu.Unlock()

	return total, nil
}

// compute prices seq without consulting the memo for seq itself.
func (e *Engine) compute(seq string, depth int, f *pathfind.Finder) (int, error) {
	if depth == 0 {
		// The human types seq directly; one press per button.
		n := 0
		for _, r := range seq {
			if !f.Layout().Contains(keypad.Button(r)) {
				return 0, fmt.Errorf("cost: button %q: %w", r, keypad.ErrUnknownButton)
			}
			n++
		}
		return n, nil
	}

	total := 0
	prev := keypad.Activate
	for _, r := range seq {
		cur := keypad.Button(r)
		paths, err := f.MinimalPaths(prev, cur)
		if err != nil {
			return 0, err
		}
		if len(paths) == 0 {
			return 0, fmt.Errorf("%w: %q -> %q on %s pad", ErrNoRoute, prev, cur, f.Layout().Kind())
		}

		best := -1
		for _, p := range paths {
			c, err := e.price(p, depth-1, e.relay)
			if err != nil {
				return 0, err
			}
			if best < 0 || c < best {
				best = c
			}
		}
		total += best
		prev = cur
	}
	return total, nil
}
