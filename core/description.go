// SPDX-License-Identifier: MIT

package core

import "strings"

// StringDescription is the default Description: an in-memory text builder.
// It is not safe for concurrent use; create one per evaluation.
type StringDescription struct {
	buf strings.Builder
	cfg descriptionConfig
}

// NewStringDescription returns an empty description configured by opts.
func NewStringDescription(opts ...DescriptionOption) *StringDescription {
	return &StringDescription{cfg: newDescriptionConfig(opts...)}
}

// AppendText implements Description.
func (s *StringDescription) AppendText(text string) Description {
	s.buf.WriteString(text)

	return s
}

// AppendValue implements Description.
func (s *StringDescription) AppendValue(value any) Description {
	s.buf.WriteString(s.cfg.formatValue(value))

	return s
}

// AppendValueList implements Description.
func (s *StringDescription) AppendValueList(open, sep, close string, values []any) Description {
	s.buf.WriteString(open)
	for i, v := range values {
		if i > 0 {
			s.buf.WriteString(sep)
		}
		s.buf.WriteString(s.cfg.formatValue(v))
	}
	s.buf.WriteString(close)

	return s
}

// AppendDescriptionOf implements Description.
func (s *StringDescription) AppendDescriptionOf(sd SelfDescribing) Description {
	sd.DescribeTo(s)

	return s
}

// AppendList implements Description.
func (s *StringDescription) AppendList(open, sep, close string, items []SelfDescribing) Description {
	s.buf.WriteString(open)
	for i, it := range items {
		if i > 0 {
			s.buf.WriteString(sep)
		}
		it.DescribeTo(s)
	}
	s.buf.WriteString(close)

	return s
}

// String implements Description and fmt.Stringer.
func (s *StringDescription) String() string {
	return s.buf.String()
}

// AppendValues is the typed shortcut for the default list tokens:
// AppendValueList("[", ",", "]", items).
func AppendValues[T any](d Description, items []T) Description {
	return d.AppendValueList(ListOpen, ListSeparator, ListClose, Values(items))
}
