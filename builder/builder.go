package builder

import (
	"fmt"
	"io"
)

// Product is the multi-part result of a directed build.
// It reports its parts in the order the steps produced them.
type Product struct {
	parts []string
}

// Parts returns the product's parts in build order.
func (p Product) Parts() []string { return p.parts }

// Builder splits product construction into discrete step operations.
// Step order is the Director's concern, not the builder's.
type Builder interface {
	BuildPartA()
	BuildPartB()
	// Product returns the value assembled by the steps run so far.
	Product() Product
}

// PartsBuilder is the concrete Builder: each step appends one named part.
type PartsBuilder struct {
	product Product
}

// NewPartsBuilder returns an empty PartsBuilder.
func NewPartsBuilder() *PartsBuilder { return &PartsBuilder{} }

// BuildPartA appends the "part A" component.
func (b *PartsBuilder) BuildPartA() {
	b.product.parts = append(b.product.parts, "part A")
}

// BuildPartB appends the "part B" component.
func (b *PartsBuilder) BuildPartB() {
	b.product.parts = append(b.product.parts, "part B")
}

// Product returns the assembled product.
func (b *PartsBuilder) Product() Product { return b.product }

// Director drives a Builder through the construction steps in fixed order,
// decoupling sequencing from representation.
type Director struct {
	builder Builder
}

// NewDirector returns a Director bound to b.
func NewDirector(b Builder) *Director { return &Director{builder: b} }

// Construct runs the build steps in the fixed A-then-B order.
func (d *Director) Construct() {
	d.builder.BuildPartA()
	d.builder.BuildPartB()
}

// Demo writes the unit's usage transcript: a director assembles a two-part
// product through a PartsBuilder.
func Demo(w io.Writer) {
	b := NewPartsBuilder()
	NewDirector(b).Construct()

	fmt.Fprintln(w, "parts:", b.Product().Parts())
}
