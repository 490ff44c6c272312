// Package designpattern is a teaching catalog of eleven classic
// object-oriented design patterns, each rendered as a small, self-contained
// Go package with a runnable demo and a pinned sample output.
//
// 🚀 What is in the catalog?
//
//	One package per pattern, nothing shared between them:
//		• Creational: Singleton, Factory, Builder
//		• Structural: Decorator, Adapter, Proxy, Facade, Composite
//		• Behavioral: Observer, Strategy, Command
//
// ✨ How each unit is organized
//
//   - doc.go – the pattern's intent and its trade-offs, in prose
//   - one implementation file – the canonical textbook rendition, kept small
//   - example_test.go – the usage transcript, pinned with an Output block
//   - a _test.go file asserting the unit's defining property
//
// Every unit exports Demo(w io.Writer), which writes the same transcript the
// example pins. The catalog package indexes all units by name, and
// cmd/patterns wraps them in a CLI:
//
//	patterns list           # the index
//	patterns run decorator  # one unit's transcript
//	patterns run --all      # the whole catalog
//
// This is teaching material: the units are intentionally minimal, hold no
// state beyond their own demonstration, and are not meant for reuse as
// library code.
package designpattern
