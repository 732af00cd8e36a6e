package cost_test

import (
	"fmt"

	"github.com/katalvlaran/relaypad/cost"
	"github.com/katalvlaran/relaypad/keypad"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEngine_Cost
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Price the code "029A" on the numeric keypad at growing relay depths.
//	Depth 0 is the human typing directly (one press per button); each
//	additional directional pad roughly doubles the presses at first.
func ExampleEngine_Cost() {
	e := cost.NewEngine(keypad.NewNumeric())

	for depth := 0; depth <= 3; depth++ {
		presses, err := e.Cost("029A", depth)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("depth=%d presses=%d\n", depth, presses)
	}
	// Output:
	// depth=0 presses=4
	// depth=1 presses=12
	// depth=2 presses=28
	// depth=3 presses=68
}
