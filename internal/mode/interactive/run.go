// ABOUTME: Entry point for the interactive Bubble Tea viewer
// ABOUTME: Reads keys from the controlling terminal so paragraphs may come from stdin

package interactive

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the viewer and blocks until the user quits.
func Run(paragraphs []string, opts Options) error {
	p := tea.NewProgram(
		NewModel(paragraphs, opts),
		tea.WithAltScreen(),
		tea.WithInputTTY(),
		tea.WithOutput(os.Stderr),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
