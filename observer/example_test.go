package observer_test

import (
	"os"

	"github.com/alestormoody/design-pattern/observer"
)

// ExamplePublisher_Publish pins the unit's sample output: both displays see
// the update, first-attached first.
func ExamplePublisher_Publish() {
	observer.Demo(os.Stdout)
	// Output:
	// display-1 received: breaking news
	// display-2 received: breaking news
}
