// Package command demonstrates the Command pattern: a request is wrapped in
// an object with a single Execute operation, and an invoker triggers whatever
// command it currently holds without knowing the receiver's concrete type.
//
// The Remote is the invoker, a Light is the receiver, and TurnOn/TurnOff are
// the encapsulated requests. Binding a different command changes what the
// button does; the Remote itself never changes.
//
// The costs are the usual ones: one small type per request, and the call path
// from button to receiver is two hops instead of none.
package command
