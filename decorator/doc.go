// Package decorator demonstrates the Decorator pattern: a base capability is
// wrapped by any number of layers, each forwarding to the wrapped object and
// augmenting the result.
//
// What
//
//   - Beverage is the capability: Cost() and Description().
//   - Espresso is the base: cost 10, described "espresso".
//   - WithMilk (+2, ", con latte") and WithSugar (+1, ", con zucchero") are
//     the layers. Layering order is suffix order.
//
// Trade-offs
//
//	Pro: augmentations combine freely at runtime — no subclass per
//	     combination; each layer stays tiny and single-purpose.
//	Con: a deeply wrapped object is opaque — unwrapping to ask "is there
//	     milk in this?" defeats the pattern; many small allocations.
//
// Usage
//
//	order := decorator.WithSugar(decorator.WithMilk(decorator.Espresso{}))
//	order.Description() // "espresso, con latte, con zucchero"
//	order.Cost()        // 13
package decorator
