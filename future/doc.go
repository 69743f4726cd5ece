// SPDX-License-Identifier: MIT

// Package future provides matchers for container.Future.
//
// Every matcher here probes the Future's current state; none of them waits
// for completion. A pending Future simply does not match IsCompleted.
package future
