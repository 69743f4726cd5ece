// SPDX-License-Identifier: MIT

// Package tuple provides matchers for container.Tuple: arity checks and
// positional element checks.
package tuple
