// ABOUTME: Engine computes collapsed or expanded display text against a Measurer
// ABOUTME: Single-entry cache keyed by text, width and cut-relevant config skips re-layout

package collapse

import "fmt"

// Engine truncates text to a line budget. An Engine is not safe for
// concurrent use; give each goroutine (or widget) its own.
type Engine struct {
	measurer Measurer
	spacing  Spacing
	cache    *cutEntry
}

// cutEntry remembers where the last collapsed pass cut the text.
type cutEntry struct {
	text      Text
	width     float64
	key       cacheKey
	lineCount int
	// cut is the body length in code units; -1 when the text fit.
	cut int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSpacing sets the line spacing passed to Layout.
func WithSpacing(s Spacing) Option {
	return func(e *Engine) { e.spacing = s }
}

// NewEngine returns an Engine measuring with m. It panics if m is nil.
func NewEngine(m Measurer, opts ...Option) *Engine {
	if m == nil {
		panic("collapse: nil Measurer")
	}
	e := &Engine{measurer: m, spacing: DefaultSpacing}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reset drops the cached layout so the next collapsed pass re-measures.
func (e *Engine) Reset() {
	e.cache = nil
}

// Truncate produces the text to display for the given width and state.
//
// Collapsed text longer than cfg.LimitLines is cut at the visible end of
// line cfg.CollapsedLines, shortened further until ellipsis and expand
// suffix fit, and never ends in half a surrogate pair. Expanded text is
// always followed by the collapse suffix.
//
// width must be positive; callers without a known width should wait. A
// suffix about as wide as width leaves no room on the last line, so the
// result may render on CollapsedLines+1 lines.
func (e *Engine) Truncate(text Text, width float64, cfg Config, expanded bool) Result {
	if len(text) == 0 {
		return Result{Text: Text{}, Expanded: expanded}
	}
	if expanded {
		return e.expandedResult(text, cfg)
	}
	if width <= 0 {
		panic(fmt.Sprintf("collapse: Truncate called with width %v", width))
	}

	entry := e.lookup(text, width, cfg)
	if entry == nil {
		entry = e.measure(text, width, cfg)
		e.cache = entry
	}
	if entry.cut < 0 {
		return Result{Text: text, LineCount: entry.lineCount}
	}

	body := text[:entry.cut]
	display := Concat(body, FromString(cfg.Ellipsis+SuffixSeparator))
	start := len(display)
	display = append(display, FromString(cfg.ExpandText)...)
	return Result{
		Text:        display,
		SuffixStart: start,
		SuffixEnd:   len(display),
		Truncated:   true,
		Clickable:   cfg.ExpandEnabled,
		LineCount:   entry.lineCount,
	}
}

func (e *Engine) expandedResult(text Text, cfg Config) Result {
	display := Concat(text, FromString(SuffixSeparator))
	start := len(display)
	display = append(display, FromString(cfg.CollapseText)...)
	return Result{
		Text:        display,
		SuffixStart: start,
		SuffixEnd:   len(display),
		Expanded:    true,
		Clickable:   cfg.ExpandEnabled,
	}
}

func (e *Engine) lookup(text Text, width float64, cfg Config) *cutEntry {
	c := e.cache
	if c == nil || c.width != width || c.key != cfg.key() || !c.text.Equal(text) {
		return nil
	}
	return c
}

// measure lays text out and finds the cut offset.
func (e *Engine) measure(text Text, width float64, cfg Config) *cutEntry {
	metrics := e.measurer.Layout(text, width, e.spacing)
	count := metrics.LineCount()
	if count == 0 {
		panic("collapse: Measurer returned no lines for non-empty text")
	}

	entry := &cutEntry{
		text:      append(Text(nil), text...),
		width:     width,
		key:       cfg.key(),
		lineCount: count,
		cut:       -1,
	}
	if count <= cfg.LimitLines {
		return entry
	}

	idx := cfg.CollapsedLines - 1
	if idx < 0 || idx >= count {
		panic(fmt.Sprintf("collapse: collapsed line %d outside %d measured lines", cfg.CollapsedLines, count))
	}
	line := metrics.Lines[idx]
	start, end := line.Start, line.VisibleEnd

	suffix := FromString(cfg.Ellipsis + SuffixSeparator + cfg.ExpandText)
	suffixWidth := e.measurer.Width(suffix, 0, len(suffix))
	lastLineWidth := e.measurer.Width(text, start, end)
	if lastLineWidth+suffixWidth > width {
		fit := e.measurer.BreakText(text, start, end, true, width-suffixWidth)
		end = start + max(fit, 0)
	}

	entry.cut = len(TrimDanglingHighSurrogate(text[:end]))
	return entry
}
