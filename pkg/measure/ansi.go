// ABOUTME: ANSI escape sequence scanning for styled terminal text
// ABOUTME: Sequences measure zero columns and are kept whole; ActiveSGR tracks open styling

package measure

import (
	"strings"

	"github.com/mauromedda/collapsetext/pkg/collapse"
)

const esc = '\x1b'

// sgrReset clears all SGR styling.
const sgrReset = "\x1b[0m"

// StripANSI removes all ANSI escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, esc) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == esc {
			i = skipANSISequence(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// skipANSISequence returns the index just past the escape sequence at s[i].
func skipANSISequence(s string, i int) int {
	if i >= len(s) || s[i] != esc {
		return i
	}
	i++
	if i >= len(s) {
		return i
	}

	switch s[i] {
	case '[':
		// CSI: parameters then a final byte in 0x40-0x7E.
		for i++; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
		}
		return i
	case ']':
		// OSC: ends at BEL or ST.
		for i++; i < len(s); i++ {
			if s[i] == '\x07' {
				return i + 1
			}
			if isST(s, i) {
				return i + 2
			}
		}
		return i
	case '_', 'P', '^':
		for i++; i < len(s); i++ {
			if isST(s, i) {
				return i + 2
			}
		}
		return i
	case '(':
		return min(i+2, len(s))
	default:
		return i + 1
	}
}

func isST(s string, i int) bool {
	return s[i] == esc && i+1 < len(s) && s[i+1] == '\\'
}

// ActiveSGR tracks SGR styling left open at some point in styled text.
type ActiveSGR struct {
	codes []string
}

// Scan applies every SGR sequence in s.
func (a *ActiveSGR) Scan(s string) {
	for i := 0; i < len(s); {
		if s[i] != esc {
			i++
			continue
		}
		end := skipANSISequence(s, i)
		a.Apply(s[i:end])
		i = end
	}
}

// Apply records one sequence; resets clear the state, non-SGR sequences are ignored.
func (a *ActiveSGR) Apply(seq string) {
	if !strings.HasPrefix(seq, "\x1b[") || !strings.HasSuffix(seq, "m") {
		return
	}
	if seq == sgrReset || seq == "\x1b[m" {
		a.codes = a.codes[:0]
		return
	}
	a.codes = append(a.codes, seq)
}

// Open reports whether styling is still active.
func (a *ActiveSGR) Open() bool {
	return len(a.codes) > 0
}

// String returns the sequences needed to restore the active styling.
func (a *ActiveSGR) String() string {
	return strings.Join(a.codes, "")
}

// CloseStyling inserts a reset where the source text ends in r when styling
// is still open there, so the ellipsis and suffix are drawn unstyled. The
// suffix span is shifted to match. cfg must be the config r was produced with.
func CloseStyling(r collapse.Result, cfg collapse.Config) collapse.Result {
	end := len(r.Text)
	switch {
	case r.Truncated:
		end = r.SuffixStart - len(collapse.FromString(cfg.Ellipsis+collapse.SuffixSeparator))
	case r.HasSuffix():
		end = r.SuffixStart - len(collapse.FromString(collapse.SuffixSeparator))
	}
	end = min(max(end, 0), len(r.Text))

	var sgr ActiveSGR
	sgr.Scan(r.Text[:end].String())
	if !sgr.Open() {
		return r
	}

	reset := collapse.FromString(sgrReset)
	r.Text = collapse.Concat(r.Text[:end], reset, r.Text[end:])
	if r.HasSuffix() {
		r.SuffixStart += len(reset)
		r.SuffixEnd += len(reset)
	}
	return r
}
