// SPDX-License-Identifier: MIT
// Package mapping_test verifies the map matchers.
//
// Purpose:
//   - Keep key membership on the map's own lookup, values on deep equality.
//   - Distinguish "found value" from "no such key" in entry mismatches.

package mapping_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/matchers/core"
	"github.com/katalvlaran/matchers/mapping"
)

// pairs is the {1:2, 3:4} fixture used throughout.
var pairs = map[int]int{1: 2, 3: 4}

// TestContainsKeys covers key-set membership.
func TestContainsKeys(t *testing.T) {
	assert.True(t, mapping.ContainsKeys[int, int](1, 3).Matches(pairs))
	assert.False(t, mapping.ContainsKeys[int, int](1, 2).Matches(pairs))
	assert.False(t, mapping.ContainsKeys[int, int](1).Matches(nil))

	assert.Equal(t, "Expected a Map containing the following keys [<1>,<2>] but is missing [<2>]",
		core.Mismatch(mapping.ContainsKeys[int, int](1, 2), pairs))
}

// TestContainsKeysUsesLookup checks that pointer keys are found by identity,
// never by the value they point to.
func TestContainsKeysUsesLookup(t *testing.T) {
	a, b := 1, 1
	m := map[*int]string{&b: "x"}

	assert.False(t, mapping.ContainsKeys[*int, string](&a).Matches(m))
	assert.True(t, mapping.ContainsKeys[*int, string](&b).Matches(m))
	assert.True(t, strings.HasSuffix(core.Mismatch(mapping.Contains(&a, "x"), m), "but found no such key"))

	assert.Contains(t, core.Mismatch(mapping.ContainsKeys[*int, string](&a), m), "but is missing [")
}

// TestContainsValues covers value-set membership.
func TestContainsValues(t *testing.T) {
	assert.True(t, mapping.ContainsValues[int](2, 4).Matches(pairs))
	assert.False(t, mapping.ContainsValues[int](2, 3).Matches(pairs))

	assert.Equal(t, "Expected a Map containing the following values [<1>,<2>] but is missing [<1>]",
		core.Mismatch(mapping.ContainsValues[int](1, 2), pairs))
}

// TestContains distinguishes a wrong value from an absent key.
func TestContains(t *testing.T) {
	assert.True(t, mapping.Contains(1, 2).Matches(pairs))
	assert.True(t, mapping.Contains(3, 4).Matches(pairs))
	assert.False(t, mapping.Contains(1, 3).Matches(pairs))

	assert.Equal(t, "Expected a Map containing an entry <1>=<3> but found value <2>",
		core.Mismatch(mapping.Contains(1, 3), pairs))
	assert.Equal(t, "Expected a Map containing an entry <5>=<3> but found no such key",
		core.Mismatch(mapping.Contains(5, 3), pairs))
	assert.Equal(t, `Expected a Map containing an entry "a"=<1> but found no such key`,
		core.Mismatch(mapping.Contains("a", 1), map[string]int{}))
}

// TestContainsEntryMatching embeds the sub-matcher's mismatch.
func TestContainsEntryMatching(t *testing.T) {
	m := mapping.ContainsEntryMatching(1, core.GreaterThan(5))

	assert.False(t, m.Matches(pairs))
	assert.True(t, mapping.ContainsEntryMatching(3, core.GreaterThan(3)).Matches(pairs))
	assert.Equal(t, "Expected a Map containing key <1> with value matching a value greater than <5> but <2> was less than <5>",
		core.Mismatch(m, pairs))
	assert.Equal(t, "Expected a Map containing key <1> with value matching a value greater than <5> but found no such key",
		core.Mismatch(m, map[int]int{}))
}
