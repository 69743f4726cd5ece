// SPDX-License-Identifier: MIT

package gmatch_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/matchers/container"
	"github.com/katalvlaran/matchers/core"
	"github.com/katalvlaran/matchers/either"
	"github.com/katalvlaran/matchers/future"
	"github.com/katalvlaran/matchers/gmatch"
	"github.com/katalvlaran/matchers/option"
	"github.com/katalvlaran/matchers/seq"
	"github.com/katalvlaran/matchers/try"
)

var _ = Describe("Adapt", func() {
	It("matches container values inside Expect", func() {
		Expect(container.Some(1)).To(gmatch.Adapt(option.IsDefinedMatching(core.IsValue(1))))
		Expect(container.None[int]()).To(gmatch.Adapt(option.IsEmpty[int]()))
		Expect(container.Right[string](36)).NotTo(gmatch.Adapt(either.IsLeft[string, int]()))
		Expect([]int{1, 2, 3}).To(gmatch.Adapt(seq.IsSorted[int]()))
	})

	It("renders the description and mismatch in the failure message", func() {
		m := gmatch.Adapt(core.IsValue(1))

		ok, err := m.Match(2)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())

		msg := m.FailureMessage(2)
		Expect(msg).To(HavePrefix("Expected\n    <int>: 2"))
		Expect(msg).To(ContainSubstring("to satisfy\n    is <1>"))
		Expect(msg).To(HaveSuffix("but\n    was <2>"))

		Expect(m.NegatedFailureMessage(1)).To(ContainSubstring("not to satisfy\n    is <1>"))
	})

	It("reports a type mismatch as an error", func() {
		m := gmatch.Adapt(core.IsValue(1))

		ok, err := m.Match("1")
		Expect(ok).To(BeFalse())
		Expect(errors.Is(err, core.ErrTypeMismatch)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("expected int, got string"))
		Expect(m.FailureMessage("1")).To(ContainSubstring(`was a string ("1")`))
		Expect(m.MatchMayChangeInTheFuture("1")).To(BeFalse())
		Expect(m.MatchMayChangeInTheFuture(1)).To(BeTrue())
	})

	It("accepts nil for nilable types", func() {
		m := gmatch.Adapt(core.Satisfies("a nil error", func(err error) bool { return err == nil }))

		Expect(m.Match(nil)).To(BeTrue())
	})

	It("panics on a nil matcher", func() {
		Expect(func() { gmatch.Adapt[int](nil) }).To(PanicWith("gmatch: Adapt(nil matcher)"))
	})

	It("works with Eventually on a future", func() {
		f := container.Go(context.Background(), func(context.Context) (int, error) {
			time.Sleep(10 * time.Millisecond)

			return 7, nil
		})

		Eventually(func() *container.Future[int] { return f }).
			Within(time.Second).
			Should(gmatch.Adapt(future.IsCompletedMatching(core.IsValue(7))))
	})
})

var _ = Describe("FromGomega", func() {
	It("acts as a sub-matcher", func() {
		m := option.IsDefinedMatching(gmatch.FromGomega[string](HavePrefix("foo")))

		Expect(m.Matches(container.Some("foobar"))).To(BeTrue())
		Expect(m.Matches(container.Some("bar"))).To(BeFalse())
		Expect(core.Mismatch(m, container.Some("bar"))).To(ContainSubstring("to have prefix"))
	})

	It("treats a Match error as a non-match", func() {
		m := try.IsSuccessMatching(gmatch.FromGomega[int](HaveLen(1)))

		ok, text := core.Evaluate(m, container.Success(3))
		Expect(ok).To(BeFalse())
		Expect(text).To(ContainSubstring("HaveLen matcher expects"))
	})

	It("describes itself by the Gomega matcher type", func() {
		Expect(core.Describe(gmatch.FromGomega[int](Equal(1)))).To(Equal("a value satisfying *matchers.EqualMatcher"))
	})
})
