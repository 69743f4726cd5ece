// SPDX-License-Identifier: MIT

// Package either provides matchers for container.Either.
//
// The side check never trusts the other side to be populated: the payload
// printed on a mismatch comes from the guarded projection, and a zero
// Either renders as <Either()>.
package either
