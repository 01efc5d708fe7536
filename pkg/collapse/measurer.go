// ABOUTME: Measurer is the host text-measurement capability the engine consumes
// ABOUTME: LineMetrics carries per-line start and visible-end offsets from one layout pass

package collapse

// Spacing is the line spacing applied by Layout. It affects line height only.
type Spacing struct {
	Multiplier float64
	Extra      float64
}

// DefaultSpacing is single spacing with no extra leading.
var DefaultSpacing = Spacing{Multiplier: 1}

// Line is one laid-out line. Offsets are UTF-16 code units into the source Text.
// VisibleEnd excludes trailing whitespace; End includes it.
type Line struct {
	Start      int
	VisibleEnd int
	End        int
}

// LineMetrics is the result of laying out a Text at a fixed width.
type LineMetrics struct {
	Lines  []Line
	Height float64
}

// LineCount returns the number of laid-out lines.
func (m LineMetrics) LineCount() int {
	return len(m.Lines)
}

// Measurer lays out and measures text. Implementations decide the unit
// (terminal cells, pixels); the engine only compares widths.
type Measurer interface {
	// Layout breaks t into lines no wider than width.
	Layout(t Text, width float64, spacing Spacing) LineMetrics
	// Width returns the rendered width of t[start:end].
	Width(t Text, start, end int) float64
	// BreakText returns how many code units of t[start:end] fit in maxWidth,
	// counted from start when forwards is true and from end otherwise.
	// It never splits a grapheme cluster.
	BreakText(t Text, start, end int, forwards bool, maxWidth float64) int
}
