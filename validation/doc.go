// SPDX-License-Identifier: MIT

// Package validation provides matchers for container.Validation.
//
// The errors of an invalid Validation are matched as a whole slice, so any
// seq matcher composes with IsInvalidMatching:
//
//	validation.IsInvalidMatching[User](seq.Contains("name is empty"))
package validation
