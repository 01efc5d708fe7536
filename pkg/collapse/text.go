// ABOUTME: Text is a UTF-16 code unit sequence; offsets throughout the engine index into it
// ABOUTME: Conversion helpers plus surrogate-pair guards used when cutting at a line end

package collapse

import (
	"slices"
	"unicode/utf16"
)

// Text is an immutable sequence of UTF-16 code units.
type Text []uint16

// FromString encodes s as UTF-16.
func FromString(s string) Text {
	if s == "" {
		return Text{}
	}
	return Text(utf16.Encode([]rune(s)))
}

// String decodes t. Unpaired surrogates decode to U+FFFD.
func (t Text) String() string {
	return string(utf16.Decode(t))
}

// Len returns the number of code units.
func (t Text) Len() int {
	return len(t)
}

// Slice returns t[start:end] clamped to the valid range.
func (t Text) Slice(start, end int) Text {
	start = max(start, 0)
	end = min(end, len(t))
	if start >= end {
		return Text{}
	}
	return t[start:end]
}

// Equal reports whether t and o hold the same code units.
func (t Text) Equal(o Text) bool {
	return slices.Equal(t, o)
}

// Concat joins parts into a new Text.
func Concat(parts ...Text) Text {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make(Text, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// IsHighSurrogate reports whether u is the leading half of a surrogate pair.
func IsHighSurrogate(u uint16) bool {
	return u >= 0xD800 && u <= 0xDBFF
}

// IsLowSurrogate reports whether u is the trailing half of a surrogate pair.
func IsLowSurrogate(u uint16) bool {
	return u >= 0xDC00 && u <= 0xDFFF
}

// HasDanglingHighSurrogate reports whether t ends in a leading surrogate whose
// partner was cut off.
func HasDanglingHighSurrogate(t Text) bool {
	return len(t) > 0 && IsHighSurrogate(t[len(t)-1])
}

// TrimDanglingHighSurrogate drops a trailing leading-surrogate unit, if any.
func TrimDanglingHighSurrogate(t Text) Text {
	if HasDanglingHighSurrogate(t) {
		return t[:len(t)-1]
	}
	return t
}
