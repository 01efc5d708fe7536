// ABOUTME: Markdown input rendered through glamour into styled terminal text
// ABOUTME: Word wrap is off so the truncation engine alone decides line breaks

package source

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/collapsetext/pkg/measure"
)

// DefaultMarkdownStyle picks dark or light from the terminal, notty when
// stdout is not a terminal.
const DefaultMarkdownStyle = "auto"

func markdownToText(raw, style string) (string, error) {
	if style == "" {
		style = DefaultMarkdownStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return "", fmt.Errorf("markdown style %q: %w", style, err)
	}
	rendered, err := r.Render(raw)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return dedent(blankStyledLines(rendered)), nil
}

// blankStyledLines empties lines that draw nothing but styling and padding,
// so paragraph splitting sees glamour's block gaps as blank lines.
func blankStyledLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if strings.TrimSpace(measure.StripANSI(l)) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// dedent removes the document margin shared by every non-blank line.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	margin := -1
	for _, l := range lines {
		if l == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " "))
		if margin < 0 || n < margin {
			margin = n
		}
	}
	if margin <= 0 {
		return strings.Trim(s, "\n")
	}
	for i, l := range lines {
		if l != "" {
			lines[i] = l[margin:]
		}
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}
