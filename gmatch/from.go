// SPDX-License-Identifier: MIT

package gmatch

import (
	"strings"

	"github.com/onsi/gomega/types"

	"github.com/katalvlaran/matchers/core"
)

// FromGomega lets a Gomega matcher serve as a core.Matcher, typically as the
// sub-matcher of a container matcher:
//
//	option.IsDefinedMatching(gmatch.FromGomega[string](HavePrefix("foo")))
//
// A Match error counts as a non-match and becomes the mismatch text.
// Panics on nil.
//
// Notes:
//   - Gomega matchers only describe themselves against an actual value, so
//     the expectation names the matcher type instead of embedding a
//     description: "a value satisfying *matchers.HavePrefixMatcher". The
//     mismatch text is Gomega's own FailureMessage and carries the detail.
func FromGomega[T any](gm types.GomegaMatcher) core.Matcher[T] {
	if gm == nil {
		panic("gmatch: FromGomega(nil matcher)")
	}

	return core.Build(
		func(actual T) bool {
			ok, err := gm.Match(actual)

			return err == nil && ok
		},
		func(d core.Description) {
			d.AppendText("a value satisfying ").AppendText(core.TypeName(gm))
		},
		func(actual T, d core.Description) {
			if _, err := gm.Match(actual); err != nil {
				d.AppendText(err.Error())

				return
			}
			d.AppendText(strings.TrimSpace(gm.FailureMessage(actual)))
		},
	)
}
