// ABOUTME: Greedy line breaker and width/breakText primitives shared by all backends
// ABOUTME: Breaks at UAX #14 opportunities, falls back to clusters for overlong words

package measure

import "github.com/mauromedda/collapsetext/pkg/collapse"

// metrics implements collapse.Measurer given a per-cluster width.
type metrics struct {
	cluster    clusterWidth
	lineHeight float64
}

func (m metrics) tokens(t collapse.Text, start, end int) (span, []token) {
	sp := newSpan(t, start, end)
	return sp, tokenize(sp.s, m.cluster)
}

// Layout breaks t into lines no wider than width. Whitespace at the end of a
// line may hang past width and is excluded from the visible end.
func (m metrics) Layout(t collapse.Text, width float64, spacing collapse.Spacing) collapse.LineMetrics {
	sp, toks := m.tokens(t, 0, len(t))
	b := lineBuilder{sp: sp, toks: toks}
	b.open(0)

	for i := 0; i < len(toks); {
		tok := toks[i]
		switch {
		case tok.kind == tokenNewline:
			b.extend(i)
			b.close()
			b.open(i + 1)
			i++
			continue
		case tok.kind == tokenGlyph && tok.width > 0 && b.width+tok.width > width && b.hasContent():
			if b.lastBreak >= b.first {
				next := b.lastBreak + 1
				b.truncateTo(b.lastBreak)
				b.close()
				b.open(next)
				i = next
				continue
			}
			b.close()
			b.open(i)
		}
		b.add(i)
		i++
	}
	if b.pending() || len(b.lines) == 0 {
		b.close()
	}

	lh := m.lineHeight*multiplier(spacing) + spacing.Extra
	return collapse.LineMetrics{
		Lines:  b.lines,
		Height: lh * float64(len(b.lines)),
	}
}

func multiplier(s collapse.Spacing) float64 {
	if s.Multiplier <= 0 {
		return 1
	}
	return s.Multiplier
}

// Width returns the summed cluster width of t[start:end].
func (m metrics) Width(t collapse.Text, start, end int) float64 {
	_, toks := m.tokens(t, start, end)
	var w float64
	for _, tok := range toks {
		w += tok.width
	}
	return w
}

// BreakText returns how many code units of t[start:end] fit in maxWidth.
func (m metrics) BreakText(t collapse.Text, start, end int, forwards bool, maxWidth float64) int {
	sp, toks := m.tokens(t, start, end)
	if len(toks) == 0 {
		return 0
	}
	var w float64
	if forwards {
		fit := sp.base
		for _, tok := range toks {
			w += tok.width
			if w > maxWidth {
				break
			}
			fit = sp.unit(tok.end)
		}
		return fit - sp.base
	}
	last := sp.unit(len(sp.s))
	fit := last
	for i := len(toks) - 1; i >= 0; i-- {
		w += toks[i].width
		if w > maxWidth {
			break
		}
		fit = sp.unit(toks[i].start)
	}
	return last - fit
}

// lineBuilder accumulates tokens for the line being built.
type lineBuilder struct {
	sp    span
	toks  []token
	lines []collapse.Line

	first     int // first token of the open line
	last      int // last token added, first-1 when empty
	lastBreak int // last token with a break opportunity, first-1 when none
	width     float64
}

func (b *lineBuilder) open(first int) {
	b.first = first
	b.last = first - 1
	b.lastBreak = first - 1
	b.width = 0
}

func (b *lineBuilder) pending() bool {
	return b.last >= b.first || b.first < len(b.toks) || b.endsWithNewline()
}

func (b *lineBuilder) endsWithNewline() bool {
	n := len(b.toks)
	return n > 0 && b.first == n && b.toks[n-1].kind == tokenNewline
}

func (b *lineBuilder) hasContent() bool {
	for i := b.first; i <= b.last; i++ {
		if b.toks[i].kind == tokenGlyph {
			return true
		}
	}
	return false
}

func (b *lineBuilder) add(i int) {
	b.last = i
	b.width += b.toks[i].width
	if b.toks[i].canBreak {
		b.lastBreak = i
	}
}

// extend adds a token without width accounting (line terminators).
func (b *lineBuilder) extend(i int) {
	b.last = i
}

func (b *lineBuilder) truncateTo(i int) {
	b.last = i
}

func (b *lineBuilder) close() {
	start := b.sp.unit(b.offset(b.first))
	end := start
	visible := start
	for i := b.first; i <= b.last; i++ {
		tok := b.toks[i]
		end = b.sp.unit(tok.end)
		if tok.kind == tokenGlyph || tok.kind == tokenEscape {
			visible = end
		}
	}
	b.lines = append(b.lines, collapse.Line{Start: start, VisibleEnd: visible, End: end})
}

// offset returns the byte offset where token i starts, or the end of text.
func (b *lineBuilder) offset(i int) int {
	if i < len(b.toks) {
		return b.toks[i].start
	}
	return len(b.sp.s)
}
