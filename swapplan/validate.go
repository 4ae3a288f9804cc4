// Package swapplan - input validation shared by Trace and callers that want
// to pre-check their arrays.
//
// Checks run in a fixed order so the reported reason is deterministic:
//  1. length equality,
//  2. exactly one sentinel in source, then in destination,
//  3. no repeated non-sentinel value in source, then in destination,
//  4. every destination value present in source.
//
// With equal lengths, one sentinel each and no repeats, (4) implies the two
// value sets are equal.
package swapplan

import "fmt"

// Validate reports whether (src, dst) is a valid planning input for the given
// sentinel. It never mutates its arguments.
//
// Complexity: O(n) time, O(n) extra space.
func Validate(src, dst []int, sentinel int) error {
	if len(src) != len(dst) {
		return fmt.Errorf("%w: len(source)=%d, len(destination)=%d", ErrLengthMismatch, len(src), len(dst))
	}

	if c := countSentinel(src, sentinel); c != 1 {
		return fmt.Errorf("%w: source holds %d", ErrSentinelCount, c)
	}
	if c := countSentinel(dst, sentinel); c != 1 {
		return fmt.Errorf("%w: destination holds %d", ErrSentinelCount, c)
	}

	seen := make(map[int]struct{}, len(src))
	var (
		i  int
		v  int
		ok bool
	)
	for i, v = range src {
		if v == sentinel {
			continue
		}
		if _, ok = seen[v]; ok {
			return fmt.Errorf("%w: source[%d]=%d", ErrDuplicateValue, i, v)
		}
		seen[v] = struct{}{}
	}

	placed := make(map[int]struct{}, len(dst))
	for i, v = range dst {
		if v == sentinel {
			continue
		}
		if _, ok = placed[v]; ok {
			return fmt.Errorf("%w: destination[%d]=%d", ErrDuplicateValue, i, v)
		}
		placed[v] = struct{}{}
		if _, ok = seen[v]; !ok {
			return fmt.Errorf("%w: destination[%d]=%d is absent from source", ErrValueMismatch, i, v)
		}
	}

	return nil
}

// countSentinel returns how many times sentinel occurs in a.
func countSentinel(a []int, sentinel int) int {
	var c int
	for _, v := range a {
		if v == sentinel {
			c++
		}
	}

	return c
}
