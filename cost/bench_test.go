package cost_test

import (
	"testing"

	"github.com/katalvlaran/relaypad/cost"
	"github.com/katalvlaran/relaypad/keypad"
)

// benchCodes mirrors a realistic batch.
var benchCodes = []string{"029A", "980A", "179A", "456A", "379A"}

// BenchmarkCost_DeepCold prices the whole batch at depth 26 with a fresh
// engine per iteration, so the memo is rebuilt from nothing every time.
func BenchmarkCost_DeepCold(b *testing.B) {
	layout := keypad.NewNumeric()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := cost.NewEngine(layout)
		for _, seq := range benchCodes {
			if _, err := e.Cost(seq, 26); err != nil {
				b.Fatalf("Cost(%q) failed: %v", seq, err)
			}
		}
	}
}

// BenchmarkCost_DeepWarm prices one code at depth 26 on a pre-warmed
// engine: every call is pure memo lookups.
func BenchmarkCost_DeepWarm(b *testing.B) {
	e := cost.NewEngine(keypad.NewNumeric())
	for _, seq := range benchCodes {
		if _, err := e.Cost(seq, 26); err != nil {
			b.Fatalf("setup failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Cost("379A", 26); err != nil {
			b.Fatalf("Cost failed: %v", err)
		}
	}
}
