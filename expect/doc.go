// SPDX-License-Identifier: MIT

// Package expect connects matchers to Go tests.
//
// That reports a failed match through testify's assert.Fail and lets the test
// continue; Must reports through require.FailNow and stops it. Both render
// the hamcrest-style block:
//
//	Expected: Value that contains value matching is <1>
//	     but: was <2>
//
// Evaluation follows core.Evaluate: the predicate runs once, and the
// mismatch description is produced only on failure.
package expect
