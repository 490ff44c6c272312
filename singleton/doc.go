// Package singleton demonstrates the Singleton pattern: exactly one instance
// of a resource-holding object exists process-wide, and construction is
// deferred until the first request for it.
//
// What
//
//   - Instance() returns the process-wide *Registry, creating it on first call.
//   - Every subsequent call returns the same pointer; settings written through
//     one handle are visible through every other.
//
// Why
//
//   - Centralizes access to a shared resource (configuration, a connection,
//     a cache) behind a single accessor.
//   - Defers the construction cost until the resource is actually needed.
//
// Trade-offs
//
//	Pro: one well-known access point; lazy construction; trivially cheap reads.
//	Con: hidden coupling — everything that calls Instance() shares state;
//	     tests must account for values left behind by earlier callers;
//	     the lifetime is the process, there is no teardown.
//
// The Go rendition keeps the instance package-scoped rather than an exported
// mutable global, and spells "construct once" with sync.Once. That is the
// idiomatic phrasing of deferred one-time construction, not a claim that the
// Registry itself is safe for concurrent mutation.
//
// Usage
//
//	reg := singleton.Instance()
//	reg.Set("locale", "it_IT")
//	singleton.Instance().Get("locale") // "it_IT", same underlying object
package singleton
