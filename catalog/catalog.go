package catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alestormoody/design-pattern/adapter"
	"github.com/alestormoody/design-pattern/builder"
	"github.com/alestormoody/design-pattern/command"
	"github.com/alestormoody/design-pattern/composite"
	"github.com/alestormoody/design-pattern/decorator"
	"github.com/alestormoody/design-pattern/facade"
	"github.com/alestormoody/design-pattern/factory"
	"github.com/alestormoody/design-pattern/observer"
	"github.com/alestormoody/design-pattern/proxy"
	"github.com/alestormoody/design-pattern/singleton"
	"github.com/alestormoody/design-pattern/strategy"
)

// ErrUnknownPattern is returned by Lookup for names outside the catalog.
var ErrUnknownPattern = errors.New("catalog: unknown pattern")

// Unit is one pattern entry: its name, a one-line summary, and the demo that
// writes its usage transcript.
type Unit struct {
	Name    string         `yaml:"name"`
	Summary string         `yaml:"summary"`
	Demo    func(io.Writer) `yaml:"-"`
}

// units is the catalog in canonical order.
var units = []Unit{
	{"singleton", "one lazily constructed process-wide instance", singleton.Demo},
	{"factory", "type tag to fresh variant of a shared capability", factory.Demo},
	{"observer", "ordered subscriber list notified on every publish", observer.Demo},
	{"strategy", "interchangeable algorithm behind one context", strategy.Demo},
	{"decorator", "stackable layers augmenting a wrapped base", decorator.Demo},
	{"adapter", "one interface over incompatible lower-level players", adapter.Demo},
	{"command", "request as an object, triggered by an invoker", command.Demo},
	{"proxy", "stand-in deferring and caching an expensive load", proxy.Demo},
	{"facade", "one operation sequencing independent subsystems", facade.Demo},
	{"composite", "leaves and containers behind one recursive operation", composite.Demo},
	{"builder", "director-driven step construction of a product", builder.Demo},
}

// Units returns every pattern unit in canonical catalog order.
func Units() []Unit {
	return append([]Unit(nil), units...)
}

// Lookup finds the unit named name, case-insensitively.
// Unknown names return ErrUnknownPattern wrapped with the offending name.
func Lookup(name string) (Unit, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, u := range units {
		if u.Name == want {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

// MarshalIndex serializes the catalog index (names and summaries) as YAML.
func MarshalIndex() ([]byte, error) {
	return yaml.Marshal(units)
}
