// Package facade demonstrates the Facade pattern: one entry object owns
// several independent subsystems and exposes a single simplified operation
// that sequences calls across all of them.
//
// The Computer facade owns a cpu, a memory, and a disk. Start() runs the boot
// sequence — freeze, load, read, execute — and returns the aggregated step
// log. Callers who want the one-line version never learn the subsystems
// exist; callers who need fine control have lost nothing, the subsystems are
// still there behind the facade.
//
// The trade-off is that the facade's convenience method hardens into an API:
// every variation of the sequence eventually wants its own method.
package facade
