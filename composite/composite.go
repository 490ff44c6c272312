package composite

import (
	"fmt"
	"io"
	"strings"
)

// Node is the capability shared by leaves and containers.
type Node interface {
	Operation() string
}

// Leaf is a terminal node.
type Leaf struct {
	name string
}

// NewLeaf returns a leaf named name.
func NewLeaf(name string) *Leaf { return &Leaf{name: name} }

// Operation renders the leaf as Leaf(<name>).
func (l *Leaf) Operation() string {
	return "Leaf(" + l.name + ")"
}

// Composite is a container node holding children in insertion order.
type Composite struct {
	name     string
	children []Node
}

// NewComposite returns an empty container named name.
func NewComposite(name string) *Composite {
	return &Composite{name: name}
}

// Add appends child to the container.
func (c *Composite) Add(child Node) {
	c.children = append(c.children, child)
}

// Operation recursively invokes Operation on every child and aggregates the
// results as <name>(<child>, <child>, ...).
func (c *Composite) Operation() string {
	parts := make([]string, len(c.children))
	for i, child := range c.children {
		parts[i] = child.Operation()
	}
	return c.name + "(" + strings.Join(parts, ", ") + ")"
}

// Demo writes the unit's usage transcript: a branch of two leaves nested
// inside a root that also holds a third leaf.
func Demo(w io.Writer) {
	branch := NewComposite("branch")
	branch.Add(NewLeaf("A"))
	branch.Add(NewLeaf("B"))

	root := NewComposite("root")
	root.Add(branch)
	root.Add(NewLeaf("C"))

	fmt.Fprintln(w, root.Operation())
}
