// SPDX-License-Identifier: MIT

package option

import (
	"github.com/katalvlaran/matchers/container"
	"github.com/katalvlaran/matchers/core"
)

// IsDefined matches any Some.
func IsDefined[T any]() core.Matcher[container.Option[T]] {
	return IsDefinedMatching(core.Anything[T]())
}

// IsDefinedMatching matches a Some whose value satisfies m.
//
//	describe:  Value that contains value matching <desc of m>
//	mismatch:  No value defined                  (None)
//	           <mismatch of m on the value>      (Some)
func IsDefinedMatching[T any](m core.Matcher[T]) core.Matcher[container.Option[T]] {
	core.MustMatcher(m, "option", "IsDefinedMatching")

	return core.Build(
		func(o container.Option[T]) bool {
			v, ok := o.Get()

			return ok && m.Matches(v)
		},
		func(d core.Description) {
			d.AppendText("Value that contains value matching ").AppendDescriptionOf(m)
		},
		func(o container.Option[T], d core.Description) {
			v, ok := o.Get()
			if !ok {
				d.AppendText("No value defined")

				return
			}
			m.DescribeMismatch(v, d)
		},
	)
}

// IsEmpty matches None.
//
//	mismatch:  Expected an empty value but found <1337>
func IsEmpty[T any]() core.Matcher[container.Option[T]] {
	return core.Build(
		container.Option[T].IsEmpty,
		func(d core.Description) { d.AppendText("an empty value") },
		func(o container.Option[T], d core.Description) {
			v, _ := o.Get()
			d.AppendText("Expected an empty value but found ").AppendValue(v)
		},
	)
}
