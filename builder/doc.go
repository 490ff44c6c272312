// Package builder demonstrates the Builder pattern: construction of a
// multi-part product is split into discrete step operations invoked in a
// fixed order by a separate Director.
//
// What
//
//   - Builder exposes one operation per construction step (BuildPartA,
//     BuildPartB) plus Product() to collect the result.
//   - Director owns the step sequencing; builders own the representation.
//   - PartsBuilder is the concrete builder: each step appends one named part.
//
// Trade-offs
//
//	Pro: the same Director sequence can drive any builder; the product's
//	     internal representation is free to change without touching callers.
//	Con: ceremony — three collaborating types to construct one small value;
//	     overkill when a struct literal would do.
//
// Usage
//
//	b := builder.NewPartsBuilder()
//	builder.NewDirector(b).Construct()
//	p := b.Product() // parts: [part A part B]
package builder
