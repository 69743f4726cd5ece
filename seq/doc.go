// SPDX-License-Identifier: MIT

// Package seq provides matchers for ordered sequences ([]T).
//
// ✨ Matchers:
//
//	IsEmpty, HasLength, HasLengthMatching      — size
//	Contains, ContainsMatching                  — at least one element
//	ContainsInAnyOrder                          — every item present (by presence, not count)
//	ContainsSubList                             — items as one contiguous run, same order
//	ContainsInOrder                             — items in the same relative order, gaps allowed
//	AllMatch                                    — every element satisfies a sub-matcher
//	IsSorted, IsReverseSorted (+Func variants)  — non-strict natural / custom order
//	StartsWith, EndsWith                        — prefix / suffix equality
//	IsUnique                                    — no element appears twice
//
// Element equality is core.Equal (deep equality). Lists in mismatch texts
// use the default tokens: [<1>,<2>] or ["foo","bar"].
//
// Complexity: membership-based matchers are O(n·m) because elements are only
// required to be deeply comparable, not hashable.
package seq
