// ABOUTME: Lipgloss styles for the interactive list: link suffix, marker, prompt, status
// ABOUTME: Link colors are lipgloss colors from settings (ANSI index or hex)

package interactive

import "github.com/charmbracelet/lipgloss"

type styles struct {
	link         lipgloss.Style
	inactiveLink lipgloss.Style
	marker       lipgloss.Style
	prompt       lipgloss.Style
	status       lipgloss.Style
}

// newStyles builds the styles on r so the color profile follows its output.
func newStyles(r *lipgloss.Renderer, fg, bg string) styles {
	link := r.NewStyle()
	if fg != "" {
		link = link.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		link = link.Background(lipgloss.Color(bg))
	}
	return styles{
		link:         link.Underline(true),
		inactiveLink: link,
		marker:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		prompt:       r.NewStyle().Foreground(lipgloss.Color("6")),
		status:       r.NewStyle().Faint(true),
	}
}
