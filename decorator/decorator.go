package decorator

import (
	"fmt"
	"io"
)

// Cost increments, in the catalog's toy currency.
const (
	espressoCost = 10
	milkCost     = 2
	sugarCost    = 1
)

// Beverage is the capability both the base and every layer implement.
type Beverage interface {
	Cost() int
	Description() string
}

// Espresso is the undecorated base beverage.
type Espresso struct{}

// Cost of the plain shot.
func (Espresso) Cost() int { return espressoCost }

// Description of the plain shot.
func (Espresso) Description() string { return "espresso" }

type milk struct {
	inner Beverage
}

func (m milk) Cost() int           { return m.inner.Cost() + milkCost }
func (m milk) Description() string { return m.inner.Description() + ", con latte" }

// WithMilk wraps b, adding 2 to the cost and ", con latte" to the
// description.
func WithMilk(b Beverage) Beverage { return milk{inner: b} }

type sugar struct {
	inner Beverage
}

func (s sugar) Cost() int           { return s.inner.Cost() + sugarCost }
func (s sugar) Description() string { return s.inner.Description() + ", con zucchero" }

// WithSugar wraps b, adding 1 to the cost and ", con zucchero" to the
// description.
func WithSugar(b Beverage) Beverage { return sugar{inner: b} }

// Demo writes the unit's usage transcript: an espresso picks up milk and
// sugar one layer at a time.
func Demo(w io.Writer) {
	order := WithSugar(WithMilk(Espresso{}))

	fmt.Fprintln(w, order.Description())
	fmt.Fprintln(w, "cost:", order.Cost())
}
