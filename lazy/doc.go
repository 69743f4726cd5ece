// SPDX-License-Identifier: MIT

// Package lazy provides matchers for container.Lazy.
//
// Matching never forces evaluation: only the current state is observed, so
// asserting on a Lazy cannot change what the code under test sees.
package lazy
