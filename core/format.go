// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Formatting tokens for scalar values.
const (
	valueOpen  = "<"
	valueClose = ">"
	nilText    = "nil"
	elemSep    = ", "
)

// FormatValue renders a single value with the canonical rules:
//
//	nil / typed nil pointer → nil      (checked first, Stringers included)
//	string                  → Go-quoted
//	fmt.Stringer, error     → <String()>
//	slice or array          → <[e1, e2]>   (elements via %v)
//	anything else           → <%v>
//
// fmt is always the one calling String/Error so a panicking Stringer (nil
// receiver) degrades to fmt's own placeholder instead of escaping.
// Complexity: O(size of the printed value).
func FormatValue(v any) string {
	if v == nil {
		return nilText
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nilText
	}

	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case fmt.Stringer, error:
		return valueOpen + fmt.Sprint(x) + valueClose
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			break // []byte keeps fmt's own rendering
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(rv.Index(i).Interface())
		}

		return valueOpen + "[" + strings.Join(parts, elemSep) + "]" + valueClose
	}

	return valueOpen + fmt.Sprint(v) + valueClose
}

// Values converts a typed slice into the []any expected by
// Description.AppendValueList.
func Values[T any](items []T) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = it
	}

	return out
}

// TypeName returns the Go type name of v as %T prints it, "nil" for nil.
func TypeName(v any) string {
	if v == nil {
		return nilText
	}

	return fmt.Sprintf("%T", v)
}

// TypeNameOf returns the name of the static type T, including interface
// types that TypeName cannot see through a nil value.
func TypeNameOf[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
