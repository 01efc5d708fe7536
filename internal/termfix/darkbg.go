// ABOUTME: Fixes the lipgloss background before Bubble Tea starts so no OSC 11 query is sent
// ABOUTME: Import with _ ahead of any package that imports bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// An unanswered OSC 11 reply arrives late on the terminal input and is
	// read as keystrokes by the filter prompt.
	lipgloss.SetHasDarkBackground(true)
}
