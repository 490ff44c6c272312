package singleton_test

import (
	"os"

	"github.com/alestormoody/design-pattern/singleton"
)

// ExampleInstance pins the unit's sample output: a value written through the
// first handle is read back through the second, and both are one object.
func ExampleInstance() {
	singleton.Demo(os.Stdout)
	// Output:
	// locale: it_IT
	// same instance: true
}
