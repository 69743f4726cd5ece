// SPDX-License-Identifier: MIT

package core

import "errors"

// ErrTypeMismatch is reported by untyped bridges (see Erase and the gmatch
// package) when the actual value is not an instance of the matcher's type.
// Typed callers never see it: the compiler rules the case out.
var ErrTypeMismatch = errors.New("core: actual value has incompatible type")
