// ABOUTME: Result is the display text of one truncation pass plus its suffix span
// ABOUTME: Suffix offsets are UTF-16 code units into Result.Text

package collapse

// Result is produced fresh by every Truncate call.
type Result struct {
	Text        Text
	SuffixStart int
	SuffixEnd   int
	Truncated   bool
	Expanded    bool
	// Clickable is false when the suffix is decoration only.
	Clickable bool
	// LineCount is the measured line count of the source text; zero when
	// no layout was needed.
	LineCount int
}

// String returns the display text.
func (r Result) String() string {
	return r.Text.String()
}

// HasSuffix reports whether a suffix link was appended.
func (r Result) HasSuffix() bool {
	return r.SuffixEnd > r.SuffixStart
}

// Body returns the display text before the suffix span.
func (r Result) Body() Text {
	if !r.HasSuffix() {
		return r.Text
	}
	return r.Text.Slice(0, r.SuffixStart)
}

// Suffix returns the suffix span, or an empty Text.
func (r Result) Suffix() Text {
	return r.Text.Slice(r.SuffixStart, r.SuffixEnd)
}

// InSuffix reports whether offset falls inside the suffix span.
func (r Result) InSuffix(offset int) bool {
	return r.HasSuffix() && offset >= r.SuffixStart && offset < r.SuffixEnd
}
