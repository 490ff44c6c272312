package catalog_test

import (
	"fmt"
	"os"

	"github.com/alestormoody/design-pattern/catalog"
)

// ExampleLookup runs one unit's demo through the index.
func ExampleLookup() {
	u, err := catalog.Lookup("decorator")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	u.Demo(os.Stdout)
	// Output:
	// espresso, con latte, con zucchero
	// cost: 13
}

// ExampleUnits prints the catalog index.
func ExampleUnits() {
	for _, u := range catalog.Units() {
		fmt.Printf("%s - %s\n", u.Name, u.Summary)
	}
	// Output:
	// singleton - one lazily constructed process-wide instance
	// factory - type tag to fresh variant of a shared capability
	// observer - ordered subscriber list notified on every publish
	// strategy - interchangeable algorithm behind one context
	// decorator - stackable layers augmenting a wrapped base
	// adapter - one interface over incompatible lower-level players
	// command - request as an object, triggered by an invoker
	// proxy - stand-in deferring and caching an expensive load
	// facade - one operation sequencing independent subsystems
	// composite - leaves and containers behind one recursive operation
	// builder - director-driven step construction of a product
}
