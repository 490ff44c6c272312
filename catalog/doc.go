// Package catalog indexes the eleven pattern units by name.
//
// Each Unit carries the pattern's name, a one-line summary, and the demo
// function that writes its usage transcript. Units() returns the catalog in
// its canonical order; Lookup finds one unit case-insensitively and fails
// with ErrUnknownPattern otherwise; MarshalIndex serializes the index (names
// and summaries, not the demos) as YAML for machine consumption.
//
// The catalog is the only place the units meet — the pattern packages remain
// fully independent of each other and of this index.
package catalog
