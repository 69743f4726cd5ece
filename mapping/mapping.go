// SPDX-License-Identifier: MIT

package mapping

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/matchers/core"
)

// ContainsKeys matches a map holding every given key. Membership is the
// map's own lookup (==), the same one Contains uses. Missing keys are
// reported in the order given.
//
//	mismatch:  Expected a Map containing the following keys [<1>,<2>] but is missing [<2>]
//
// Complexity: O(len(keys)).
func ContainsKeys[K comparable, V any](keys ...K) core.Matcher[map[K]V] {
	keys = slices.Clone(keys)
	missing := func(m map[K]V) []K {
		var out []K
		for _, k := range keys {
			if _, ok := m[k]; !ok {
				out = append(out, k)
			}
		}

		return out
	}
	describe := func(d core.Description) {
		core.AppendValues(d.AppendText("Expected a Map containing the following keys "), keys)
	}

	return core.Build(
		func(m map[K]V) bool { return len(missing(m)) == 0 },
		describe,
		func(m map[K]V, d core.Description) {
			describe(d)
			core.AppendValues(d.AppendText(" but is missing "), missing(m))
		},
	)
}

// ContainsValues matches a map holding every given value (deep equality).
//
//	mismatch:  Expected a Map containing the following values [<1>,<2>] but is missing [<1>]
func ContainsValues[K comparable, V any](values ...V) core.Matcher[map[K]V] {
	values = slices.Clone(values)
	missing := func(m map[K]V) []V {
		return core.Missing(values, maps.Values(m))
	}
	describe := func(d core.Description) {
		core.AppendValues(d.AppendText("Expected a Map containing the following values "), values)
	}

	return core.Build(
		func(m map[K]V) bool { return len(missing(m)) == 0 },
		describe,
		func(m map[K]V, d core.Description) {
			describe(d)
			core.AppendValues(d.AppendText(" but is missing "), missing(m))
		},
	)
}

// Contains matches a map holding the entry key=value.
//
//	mismatch:  Expected a Map containing an entry <1>=<3> but found value <2>
//	           Expected a Map containing an entry <1>=<3> but found no such key
func Contains[K comparable, V any](key K, value V) core.Matcher[map[K]V] {
	describe := func(d core.Description) {
		d.AppendText("Expected a Map containing an entry ").AppendValue(key).AppendText("=").AppendValue(value)
	}

	return core.Build(
		func(m map[K]V) bool {
			v, ok := m[key]

			return ok && core.Equal(v, value)
		},
		describe,
		func(m map[K]V, d core.Description) {
			describe(d)
			v, ok := m[key]
			if !ok {
				d.AppendText(" but found no such key")

				return
			}
			d.AppendText(" but found value ").AppendValue(v)
		},
	)
}

// ContainsEntryMatching matches a map holding key with a value satisfying m.
//
//	describe:  Expected a Map containing key <1> with value matching <desc of m>
//	mismatch:  ... but found no such key
//	           ... but <mismatch of m on the stored value>
func ContainsEntryMatching[K comparable, V any](key K, m core.Matcher[V]) core.Matcher[map[K]V] {
	core.MustMatcher(m, "mapping", "ContainsEntryMatching")
	describe := func(d core.Description) {
		d.AppendText("Expected a Map containing key ").AppendValue(key).
			AppendText(" with value matching ").AppendDescriptionOf(m)
	}

	return core.Build(
		func(mp map[K]V) bool {
			v, ok := mp[key]

			return ok && m.Matches(v)
		},
		describe,
		func(mp map[K]V, d core.Description) {
			describe(d)
			v, ok := mp[key]
			if !ok {
				d.AppendText(" but found no such key")

				return
			}
			d.AppendText(" but ")
			m.DescribeMismatch(v, d)
		},
	)
}
