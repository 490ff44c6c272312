// Package strategy demonstrates the Strategy pattern: a context object holds
// one interchangeable algorithm and delegates a single operation to it.
//
// What
//
//   - SortStrategy is the algorithm capability: Name() and Sort([]int).
//   - Bubble and Quick are the two variants; both return a sorted copy and
//     leave the input untouched.
//   - Sorter is the context: Sort delegates to whichever strategy it holds,
//     and Use swaps the strategy with no other code change.
//
// Trade-offs
//
//	Pro: algorithms vary independently of the code that calls them; swapping
//	     is a one-line change at runtime.
//	Con: one more indirection for readers to follow; with only one variant
//	     the pattern is pure overhead.
//
// The sorts are deliberately textbook — the unit is about the swap, not
// about sorting.
//
// Usage
//
//	s := strategy.NewSorter(strategy.Bubble{})
//	s.Sort(nums)
//	s.Use(strategy.Quick{}) // same call sites, different algorithm
package strategy
