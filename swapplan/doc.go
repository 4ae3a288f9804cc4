// Package swapplan plans the swaps that rearrange one array into another
// when every move has to pass through a single empty slot.
//
// 🚀 What is a swap plan?
//
//	Picture a parking lot with exactly one free space. Cars may only move
//	into the free space, so reordering them is a sequence of pairwise swaps
//	where one side of every swap is the empty slot. swapplan takes the
//	current layout (source), the wanted layout (destination) and the value
//	that marks the empty slot (sentinel), and returns the ordered list of
//	index pairs to swap.
//
// ✨ Key features:
//   - evacuate-then-fill scan: at most 2 swaps per index, ≤ 2·(n−1) in total
//   - deterministic: identical input ⇒ identical Plan
//   - two lookup strategies (LinearScan, ReverseIndex) with identical output
//   - OnStep hook for tracing intermediate states without touching the core
//   - eager validation: malformed input never produces a partial plan
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/swaptrace/swapplan"
//
//	src := []int{1, 2, 3, -1, 4, 5}
//	dst := []int{5, 1, -1, 3, 2, 4}
//
//	plan, err := swapplan.Trace(src, dst, -1, swapplan.WithLookup(swapplan.ReverseIndex))
//	if errors.Is(err, swapplan.ErrInvalidInput) {
//	  // lengths, values or sentinel count do not line up
//	}
//	out, _ := plan.Apply(src) // out equals dst
//
// Algorithm:
//
//	For i = 0..n-1:
//	  1. working[i] == dst[i]        → nothing to do
//	  2. e = pos(sentinel), e != i   → Step(i, e)   (evacuate i)
//	  3. v = pos(dst[i]),   v != i   → Step(i, v)   (fill i)
//
// Performance:
//
//   - Time:   O(n²) (LinearScan) or O(n) (ReverseIndex)
//   - Memory: O(n) for the working copy, plus O(n) for the reverse index
package swapplan
