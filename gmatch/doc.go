// SPDX-License-Identifier: MIT

// Package gmatch bridges matchers and Gomega.
//
// Adapt turns a core.Matcher into a types.GomegaMatcher, so every container
// matcher works inside Expect/Eventually:
//
//	Expect(container.Some(1)).To(gmatch.Adapt(option.IsDefinedMatching(core.IsValue(1))))
//
// FromGomega goes the other way and lets a Gomega matcher act as a
// sub-matcher of a container matcher.
//
// A value of the wrong Go type is reported as a Match error wrapping
// core.ErrTypeMismatch, which Gomega surfaces as a failure.
package gmatch
