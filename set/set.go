// SPDX-License-Identifier: MIT

package set

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/matchers/container"
	"github.com/katalvlaran/matchers/core"
)

// missingFrom returns the items not contained in s, in items order.
func missingFrom[T comparable](s container.Set[T], items []T) []T {
	var out []T
	for _, it := range items {
		if !s.Contains(it) && !slices.Contains(out, it) {
			out = append(out, it)
		}
	}

	return out
}

// extraIn returns the elements of s that are not among items, in s order.
func extraIn[T comparable](s container.Set[T], items []T) []T {
	var out []T
	for _, e := range s.Items() {
		if !slices.Contains(items, e) {
			out = append(out, e)
		}
	}

	return out
}

// ContainsSubSet matches a set that is a superset of items.
//
//	mismatch:  Expected a Set containing all of [<1>,<2>,<3>] but is missing [<3>]
func ContainsSubSet[T comparable](items ...T) core.Matcher[container.Set[T]] {
	items = slices.Clone(items)
	describe := func(d core.Description) {
		core.AppendValues(d.AppendText("Expected a Set containing all of "), items)
	}

	return core.Build(
		func(s container.Set[T]) bool { return len(missingFrom(s, items)) == 0 },
		describe,
		func(s container.Set[T], d core.Description) {
			describe(d)
			core.AppendValues(d.AppendText(" but is missing "), missingFrom(s, items))
		},
	)
}

// IsSubSetOf matches a set all of whose elements are among items.
//
//	mismatch:  Expected a Set being a subset of [<1>,<2>,<3>] but contained also [<4>]
func IsSubSetOf[T comparable](items ...T) core.Matcher[container.Set[T]] {
	items = slices.Clone(items)
	describe := func(d core.Description) {
		core.AppendValues(d.AppendText("Expected a Set being a subset of "), items)
	}

	return core.Build(
		func(s container.Set[T]) bool { return len(extraIn(s, items)) == 0 },
		describe,
		func(s container.Set[T], d core.Description) {
			describe(d)
			core.AppendValues(d.AppendText(" but contained also "), extraIn(s, items))
		},
	)
}

// IsEmpty matches a set without elements.
//
//	mismatch:  Expected an empty value but found <Set(1, 2)>
func IsEmpty[T comparable]() core.Matcher[container.Set[T]] {
	return core.Build(
		func(s container.Set[T]) bool { return s.Len() == 0 },
		func(d core.Description) { d.AppendText("an empty value") },
		func(s container.Set[T], d core.Description) {
			d.AppendText("Expected an empty value but found ").AppendValue(s)
		},
	)
}

// HasSize matches a set of exactly n elements.
//
//	mismatch:  Expected a Set to have size <2> but has size <3>
func HasSize[T comparable](n int) core.Matcher[container.Set[T]] {
	describe := func(d core.Description) {
		d.AppendText("Expected a Set to have size ").AppendValue(n)
	}

	return core.Build(
		func(s container.Set[T]) bool { return s.Len() == n },
		describe,
		func(s container.Set[T], d core.Description) {
			describe(d)
			d.AppendText(" but has size ").AppendValue(s.Len())
		},
	)
}
