// Package relay orchestrates batch pricing: every door code is priced on
// the numeric keypad at a shallow and a deep relay depth, weighted by the
// code's embedded numeric value, and accumulated into two grand totals.
//
// One cost.Engine serves the whole batch and both depths; its memo cache
// persists across codes, which is what keeps deep chains cheap after the
// first code has warmed the shared subproblems. Codes contribute to the
// totals commutatively, so the optional worker pool needs no ordering.
package relay

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/relaypad/codes"
	"github.com/katalvlaran/relaypad/cost"
	"github.com/katalvlaran/relaypad/keypad"
)

// Sum prices every code at both configured depths and returns the two
// weighted totals. Each code's contribution is its press cost multiplied by
// its numeric value. An error on any code aborts the batch; no partial
// totals are ever returned.
//
// With Options.Workers > 1, codes are priced concurrently over one shared
// engine; the caches are write-once and lock-protected, so sharing them is
// safe. The cache is never duplicated per worker, which would defeat it.
func Sum(cs []codes.Code, opts Options) (Totals, error) {
	if opts.ShallowDepth < 0 || opts.DeepDepth < 0 {
		return Totals{}, fmt.Errorf("%w: depths must be non-negative (%d, %d)",
			ErrOptionViolation, opts.ShallowDepth, opts.DeepDepth)
	}
	if opts.Workers < 0 {
		return Totals{}, fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, opts.Workers)
	}
	if opts.Workers == 0 {
		opts.Workers = 1
	}

	engine := cost.NewEngine(keypad.NewNumeric())

	if opts.Workers == 1 {
		var totals Totals
		for _, c := range cs {
			shallow, deep, err := priceCode(engine, c, opts)
			if err != nil {
				return Totals{}, err
			}
			totals.Shallow += shallow
			totals.Deep += deep
		}
		return totals, nil
	}

	var (
		mu     sync.Mutex
		totals Totals
	)
	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for _, c := range cs {
		c := c
		g.Go(func() error {
			shallow, deep, err := priceCode(engine, c, opts)
			if err != nil {
				return err
			}
			mu.Lock()
			totals.Shallow += shallow
			totals.Deep += deep
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Totals{}, err
	}
	return totals, nil
}

// priceCode returns one code's weighted contribution at both depths.
func priceCode(e *cost.Engine, c codes.Code, opts Options) (shallow, deep int, err error) {
	seq := string(c)
	costShallow, err := e.Cost(seq, opts.ShallowDepth)
	if err != nil {
		return 0, 0, fmt.Errorf("relay: code %q: %w", c, err)
	}
	costDeep, err := e.Cost(seq, opts.DeepDepth)
	if err != nil {
		return 0, 0, fmt.Errorf("relay: code %q: %w", c, err)
	}
	value := c.NumericValue()
	return costShallow * value, costDeep * value, nil
}
