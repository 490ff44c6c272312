package strategy

import (
	"fmt"
	"io"
)

// SortStrategy is the interchangeable algorithm capability.
// Sort returns a sorted copy; implementations must not mutate the input.
type SortStrategy interface {
	Name() string
	Sort(nums []int) []int
}

// Bubble sorts by repeatedly swapping adjacent out-of-order elements.
type Bubble struct{}

// Name identifies the variant.
func (Bubble) Name() string { return "bubble sort" }

// Sort returns a sorted copy of nums.
func (Bubble) Sort(nums []int) []int {
	out := append([]int(nil), nums...)
	for i := 0; i < len(out); i++ {
		for j := 0; j < len(out)-i-1; j++ {
			if out[j] > out[j+1] {
				out[j], out[j+1] = out[j+1], out[j]
			}
		}
	}
	return out
}

// Quick sorts by partitioning around a pivot and recursing.
type Quick struct{}

// Name identifies the variant.
func (Quick) Name() string { return "quick sort" }

// Sort returns a sorted copy of nums.
func (Quick) Sort(nums []int) []int {
	out := append([]int(nil), nums...)
	quicksort(out, 0, len(out)-1)
	return out
}

func quicksort(a []int, lo, hi int) {
	if lo >= hi {
		return
	}
	// Lomuto partition, last element as pivot
	pivot, i := a[hi], lo
	for j := lo; j < hi; j++ {
		if a[j] < pivot {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[hi] = a[hi], a[i]
	quicksort(a, lo, i-1)
	quicksort(a, i+1, hi)
}

// Sorter is the context: it holds one SortStrategy and delegates Sort to it.
type Sorter struct {
	strategy SortStrategy
}

// NewSorter returns a Sorter holding s.
func NewSorter(s SortStrategy) *Sorter { return &Sorter{strategy: s} }

// Use swaps the held strategy; existing call sites are unaffected.
func (s *Sorter) Use(st SortStrategy) { s.strategy = st }

// Strategy returns the currently held strategy.
func (s *Sorter) Strategy() SortStrategy { return s.strategy }

// Sort delegates to the held strategy.
func (s *Sorter) Sort(nums []int) []int { return s.strategy.Sort(nums) }

// Demo writes the unit's usage transcript: the same context sorts the same
// input under both variants.
func Demo(w io.Writer) {
	nums := []int{64, 34, 25, 12, 22, 11, 90}

	s := NewSorter(Bubble{})
	fmt.Fprintf(w, "%s: %v\n", s.Strategy().Name(), s.Sort(nums))

	s.Use(Quick{})
	fmt.Fprintf(w, "%s: %v\n", s.Strategy().Name(), s.Sort(nums))
}
