package builder_test

import (
	"os"

	"github.com/alestormoody/design-pattern/builder"
)

// ExampleDirector_Construct pins the unit's sample output.
func ExampleDirector_Construct() {
	builder.Demo(os.Stdout)
	// Output:
	// parts: [part A part B]
}
