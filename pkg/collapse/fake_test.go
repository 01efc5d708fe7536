// ABOUTME: Fixed-pitch fake Measurer for engine tests: every code unit is unitWidth wide
// ABOUTME: Wraps at unit boundaries and counts Layout calls; may split surrogate pairs

package collapse

import "math"

type fakeMeasurer struct {
	unitWidth float64
	layouts   int
}

func newFake() *fakeMeasurer {
	return &fakeMeasurer{unitWidth: 10}
}

func (f *fakeMeasurer) Layout(t Text, width float64, spacing Spacing) LineMetrics {
	f.layouts++
	perLine := max(int(math.Floor(width/f.unitWidth)), 1)
	var lines []Line
	start := 0
	for i := 0; i <= len(t); i++ {
		atEnd := i == len(t)
		if !atEnd && t[i] != '\n' && i-start < perLine {
			continue
		}
		end := i
		if !atEnd && t[i] == '\n' {
			end = i + 1
		}
		lines = append(lines, Line{Start: start, VisibleEnd: trimSpaces(t, start, i), End: end})
		if atEnd {
			break
		}
		start = end
		if t[i] != '\n' {
			// i starts the next line; re-examine it.
			i--
		}
	}
	return LineMetrics{Lines: lines, Height: float64(len(lines)) * spacing.Multiplier}
}

func trimSpaces(t Text, start, end int) int {
	for end > start && t[end-1] == ' ' {
		end--
	}
	return end
}

func (f *fakeMeasurer) Width(t Text, start, end int) float64 {
	return float64(max(end-start, 0)) * f.unitWidth
}

func (f *fakeMeasurer) BreakText(t Text, start, end int, forwards bool, maxWidth float64) int {
	n := int(math.Floor(maxWidth / f.unitWidth))
	return min(max(n, 0), end-start)
}
