// SPDX-License-Identifier: MIT

// Package option provides matchers for container.Option.
//
//	option.IsDefined[string]()                   Some(_)
//	option.IsDefinedMatching(core.LessThan(36))  Some(v) with v < 36
//	option.IsEmpty[int]()                        None
package option
