// SPDX-License-Identifier: MIT

// Package set provides matchers for container.Set.
//
//	set.ContainsSubSet(1, 2)     the set holds at least 1 and 2
//	set.IsSubSetOf(1, 2, 3, 4)   every element of the set is one of 1..4
//
// Missing and extra elements are reported in a deterministic order: the
// order of the given items for ContainsSubSet, the set's insertion order for
// IsSubSetOf.
package set
