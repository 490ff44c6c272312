package strategy_test

import (
	"os"

	"github.com/alestormoody/design-pattern/strategy"
)

// ExampleSorter pins the unit's sample output: both variants agree on the
// sorted order.
func ExampleSorter() {
	strategy.Demo(os.Stdout)
	// Output:
	// bubble sort: [11 12 22 25 34 64 90]
	// quick sort: [11 12 22 25 34 64 90]
}
