// ABOUTME: Splits a span into grapheme clusters and escape sequences with break info
// ABOUTME: Line-break opportunities come from uniseg (UAX #14); widths from the backend

package measure

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

type tokenKind uint8

const (
	tokenGlyph tokenKind = iota
	tokenSpace
	tokenNewline
	tokenEscape
)

// token is one unbreakable unit of a span, with byte offsets into span.s.
type token struct {
	start, end int
	width      float64
	kind       tokenKind
	// canBreak reports a line-break opportunity after the token.
	canBreak bool
}

// clusterWidth returns the width of one grapheme cluster.
type clusterWidth func(cluster string) float64

// tokenize segments s. Escape sequences split the text into runs that are
// segmented independently, so they never end up inside a cluster.
func tokenize(s string, width clusterWidth) []token {
	toks := make([]token, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] == esc {
			end := skipANSISequence(s, i)
			toks = append(toks, token{start: i, end: end, kind: tokenEscape})
			i = end
			continue
		}
		next := strings.IndexByte(s[i:], esc)
		runEnd := len(s)
		if next >= 0 {
			runEnd = i + next
		}
		toks = appendRun(toks, s, i, runEnd, width)
		i = runEnd
	}
	return toks
}

func appendRun(toks []token, s string, from, to int, width clusterWidth) []token {
	run := s[from:to]
	state := -1
	pos := from
	for len(run) > 0 {
		cluster, rest, boundaries, newState := uniseg.StepString(run, state)
		tok := token{start: pos, end: pos + len(cluster), width: width(cluster)}
		brk := boundaries & uniseg.MaskLine
		switch {
		case isNewline(cluster):
			tok.kind = tokenNewline
			tok.width = 0
			tok.canBreak = true
		case isSpace(cluster):
			tok.kind = tokenSpace
			tok.canBreak = true
		default:
			// The end of a run is only the end of text when no escape follows;
			// uniseg reports a mandatory break there either way.
			tok.canBreak = brk == uniseg.LineCanBreak || (brk == uniseg.LineMustBreak && len(rest) > 0)
		}
		toks = append(toks, tok)
		pos += len(cluster)
		run = rest
		state = newState
	}
	return toks
}

func isNewline(cluster string) bool {
	switch cluster {
	case "\n", "\r\n", "\r", "\u2028", "\u2029", "\u0085":
		return true
	}
	return false
}

func isSpace(cluster string) bool {
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return cluster != ""
}
