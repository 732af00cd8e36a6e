package pathfind_test

import (
	"testing"

	"github.com/katalvlaran/relaypad/keypad"
	"github.com/katalvlaran/relaypad/pathfind"
)

// BenchmarkMinimalPaths_Cold measures exhaustive enumeration of every
// ordered pair on the numeric pad with an empty cache.
func BenchmarkMinimalPaths_Cold(b *testing.B) {
	layout := keypad.NewNumeric()
	buttons := layout.Buttons()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := pathfind.NewFinder(layout)
		for _, from := range buttons {
			for _, to := range buttons {
				if _, err := f.MinimalPaths(from, to); err != nil {
					b.Fatalf("MinimalPaths(%q,%q) failed: %v", from, to, err)
				}
			}
		}
	}
}

// BenchmarkMinimalPaths_Warm measures cache-hit lookups on a fully
// populated Finder.
func BenchmarkMinimalPaths_Warm(b *testing.B) {
	layout := keypad.NewNumeric()
	buttons := layout.Buttons()
	f := pathfind.NewFinder(layout)
	for _, from := range buttons {
		for _, to := range buttons {
			if _, err := f.MinimalPaths(from, to); err != nil {
				b.Fatalf("setup failed: %v", err)
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.MinimalPaths('A', '7'); err != nil {
			b.Fatalf("MinimalPaths failed: %v", err)
		}
	}
}
