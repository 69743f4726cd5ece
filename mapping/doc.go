// SPDX-License-Identifier: MIT

// Package mapping provides matchers for Go maps (map[K]V).
//
//	mapping.ContainsKeys[int, string](1, 3)       keys 1 and 3 present
//	mapping.ContainsValues[int](2, 4)             values 2 and 4 present
//	mapping.Contains(1, 2)                        entry 1=2 present
//	mapping.ContainsEntryMatching(1, m)           key 1 present, value satisfies m
//
// A present key with an unequal value ("but found value <2>") and an absent
// key ("but found no such key") produce distinct mismatch texts.
package mapping
