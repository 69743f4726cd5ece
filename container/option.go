// SPDX-License-Identifier: MIT

package container

import "fmt"

// Option holds either one value (Some) or nothing (None).
// The zero Option is None.
type Option[T any] struct {
	value   T
	defined bool
}

// Some returns a defined Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, defined: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf lifts the comma-ok idiom: OptionOf(m[k]) style lookups.
func OptionOf[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}

	return Some(v)
}

// Get returns the value and whether it is defined.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.defined
}

// IsDefined reports whether o holds a value.
func (o Option[T]) IsDefined() bool { return o.defined }

// IsEmpty reports whether o holds nothing.
func (o Option[T]) IsEmpty() bool { return !o.defined }

// String renders Some(v) or None.
func (o Option[T]) String() string {
	if !o.defined {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
