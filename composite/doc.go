// Package composite demonstrates the Composite pattern: leaves and containers
// share one capability, and invoking it on a container recurses over every
// child.
//
// What
//
//   - Node is the capability: Operation() string.
//   - Leaf renders as Leaf(<name>).
//   - Composite renders as <name>(<child>, <child>, ...), recursing over its
//     children in insertion order. Composites nest arbitrarily.
//
// Trade-offs
//
//	Pro: callers treat a single leaf and a whole subtree identically.
//	Con: the uniform interface hides structure — operations that only make
//	     sense on containers (Add) either leak into Leaf or force type
//	     assertions on callers.
//
// Usage
//
//	branch := composite.NewComposite("branch")
//	branch.Add(composite.NewLeaf("A"))
//	branch.Operation() // "branch(Leaf(A))"
package composite
