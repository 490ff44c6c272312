// Package factory demonstrates the Factory pattern: a creation function maps
// a discrete type tag to a freshly constructed variant of a shared capability.
//
// What
//
//   - New(kind) returns a Vehicle whose Drive() behavior depends on kind.
//   - Known kinds: KindCar, KindMotorcycle. Each call constructs a new value.
//   - Unrecognized kinds fail with ErrUnknownVehicle, wrapped with the tag.
//
// Why
//
//   - Callers depend on the Vehicle capability, never on a concrete type.
//   - Adding a variant touches one switch arm, not every construction site.
//
// Trade-offs
//
//	Pro: construction logic in one place; concrete types stay unexported.
//	Con: the tag set is stringly typed; the switch must grow with every
//	     variant; compile-time exhaustiveness is lost.
//
// Usage
//
//	v, err := factory.New(factory.KindCar)
//	if err != nil {
//	    // errors.Is(err, factory.ErrUnknownVehicle)
//	}
//	fmt.Println(v.Drive())
//
// Errors
//
//   - ErrUnknownVehicle — the tag matches no known variant. This is the only
//     defined failure in the whole catalog.
package factory
