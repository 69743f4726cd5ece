// SPDX-License-Identifier: MIT

package container

import (
	"fmt"
	"strings"
)

// Set is an insertion-ordered set. Iteration order is the order in which
// elements were first added, which keeps mismatch texts deterministic.
type Set[T comparable] struct {
	index map[T]int
	items []T
}

// NewSet returns a Set holding the distinct elements of items.
func NewSet[T comparable](items ...T) Set[T] {
	s := Set[T]{index: make(map[T]int, len(items))}
	for _, it := range items {
		s.insert(it)
	}

	return s
}

// Add returns a new Set with v appended when absent; s is left untouched.
// Complexity: O(Len) for the copy.
func (s Set[T]) Add(v T) Set[T] {
	if s.Contains(v) {
		return s
	}

	return NewSet(append(s.Items(), v)...)
}

// insert appends v in place; only used while building a fresh Set.
func (s *Set[T]) insert(v T) {
	if _, ok := s.index[v]; ok {
		return
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
}

// Contains reports membership.
func (s Set[T]) Contains(v T) bool {
	_, ok := s.index[v]

	return ok
}

// Len returns the number of elements.
func (s Set[T]) Len() int { return len(s.items) }

// Items returns a copy of the elements in insertion order.
func (s Set[T]) Items() []T {
	cp := make([]T, len(s.items))
	copy(cp, s.items)

	return cp
}

// String renders Set(a, b).
func (s Set[T]) String() string {
	parts := make([]string, len(s.items))
	for i, v := range s.items {
		parts[i] = fmt.Sprint(v)
	}

	return "Set(" + strings.Join(parts, ", ") + ")"
}
