// SPDX-License-Identifier: MIT

package seq

import "github.com/katalvlaran/matchers/core"

// clone detaches the matcher from the caller's backing array.
func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)

	return out
}

// windowEqual reports whether s[at:at+len(w)] equals w element-wise.
// The caller guarantees the window is in range.
func windowEqual[T any](s []T, at int, w []T) bool {
	for j := range w {
		if !core.Equal(s[at+j], w[j]) {
			return false
		}
	}

	return true
}

// indexOfWindow returns the first index at which w occurs contiguously in s,
// or -1. An empty w occurs at 0.
//
// Implementation:
//   - Slide a window of len(w) over s and compare element-wise with
//     core.Equal, stopping at the first full match.
//
// Complexity:
//   - Time O(len(s)·len(w)), Space O(1).
func indexOfWindow[T any](s, w []T) int {
	for i := 0; i+len(w) <= len(s); i++ {
		if windowEqual(s, i, w) {
			return i
		}
	}

	return -1
}

// isSubsequence reports whether w occurs in s in order, gaps allowed.
// Greedy matching is optimal: taking the earliest match never hurts.
// Complexity: O(len(s)).
func isSubsequence[T any](s, w []T) bool {
	j := 0
	for i := 0; i < len(s) && j < len(w); i++ {
		if core.Equal(s[i], w[j]) {
			j++
		}
	}

	return j == len(w)
}

// duplicates returns the elements occurring more than once in s, each once,
// in order of first occurrence.
//
// Implementation:
//   - Stage 1: Skip e unless i is its first occurrence (IndexOf(s, e) == i).
//   - Stage 2: Report e when it occurs again in s[i+1:].
//
// Notes:
//   - Elements need not be comparable, so no map is used.
//
// Complexity:
//   - Time O(n²), Space O(d) for d duplicates.
func duplicates[T any](s []T) []T {
	var out []T
	for i, e := range s {
		if core.IndexOf(s, e) != i {
			continue
		}
		if core.IndexOf(s[i+1:], e) >= 0 {
			out = append(out, e)
		}
	}

	return out
}

// head returns at most n leading elements of s.
func head[T any](s []T, n int) []T {
	return s[:min(n, len(s))]
}

// tail returns at most n trailing elements of s.
func tail[T any](s []T, n int) []T {
	return s[len(s)-min(n, len(s)):]
}
