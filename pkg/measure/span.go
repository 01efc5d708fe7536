// ABOUTME: Maps a UTF-16 range onto a UTF-8 string so uniseg can segment it
// ABOUTME: units[b] is the code unit offset of byte b; unpaired surrogates become U+FFFD

package measure

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/mauromedda/collapsetext/pkg/collapse"
)

type span struct {
	s     string
	units []int
	base  int
}

// newSpan converts t[start:end]. Offsets reported by the span are absolute.
func newSpan(t collapse.Text, start, end int) span {
	start = max(start, 0)
	end = min(end, len(t))
	if start >= end {
		return span{units: []int{start}, base: start}
	}

	buf := make([]byte, 0, (end-start)*2)
	units := make([]int, 0, (end-start)*2+1)
	for i := start; i < end; {
		r, n := decodeUnit(t, i, end)
		before := len(buf)
		buf = utf8.AppendRune(buf, r)
		for range len(buf) - before {
			units = append(units, i)
		}
		i += n
	}
	units = append(units, end)
	return span{s: string(buf), units: units, base: start}
}

// decodeUnit decodes the rune at t[i], reporting how many code units it used.
func decodeUnit(t collapse.Text, i, end int) (rune, int) {
	u := t[i]
	if collapse.IsHighSurrogate(u) && i+1 < end && collapse.IsLowSurrogate(t[i+1]) {
		return utf16.DecodeRune(rune(u), rune(t[i+1])), 2
	}
	if utf16.IsSurrogate(rune(u)) {
		return utf8.RuneError, 1
	}
	return rune(u), 1
}

// unit returns the absolute code unit offset of byte offset b.
func (sp span) unit(b int) int {
	return sp.units[b]
}
