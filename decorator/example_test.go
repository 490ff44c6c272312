package decorator_test

import (
	"os"

	"github.com/alestormoody/design-pattern/decorator"
)

// ExampleWithMilk pins the unit's sample output.
func ExampleWithMilk() {
	decorator.Demo(os.Stdout)
	// Output:
	// espresso, con latte, con zucchero
	// cost: 13
}
