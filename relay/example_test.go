package relay_test

import (
	"fmt"

	"github.com/katalvlaran/relaypad/codes"
	"github.com/katalvlaran/relaypad/relay"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSum
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Price a batch of five door codes at the two canonical depths. Each
//	code's press cost is weighted by its numeric value ("029A" → 29) and
//	the weighted costs accumulate into one total per depth.
func ExampleSum() {
	batch := []codes.Code{"029A", "980A", "179A", "456A", "379A"}

	totals, err := relay.Sum(batch, relay.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(totals.Shallow)
	fmt.Println(totals.Deep)
	// Output:
	// 126384
	// 154115708116294
}
