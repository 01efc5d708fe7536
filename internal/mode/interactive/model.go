// ABOUTME: Bubble Tea model listing collapsible paragraphs measured in terminal cells
// ABOUTME: WindowSizeMsg resolves the pending width; enter toggles, / filters with sahilm/fuzzy

package interactive

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/collapsetext/internal/keybindings"
	"github.com/mauromedda/collapsetext/internal/log"
	"github.com/mauromedda/collapsetext/pkg/collapse"
	"github.com/mauromedda/collapsetext/pkg/measure"
	"github.com/sahilm/fuzzy"
)

// gutter is the column width reserved for the selection marker.
const gutter = 2

// Options configures the model.
type Options struct {
	Collapse  collapse.Config
	Spacing   collapse.Spacing
	Expanded  bool
	LinkColor string
	LinkBg    string
	Keys      *keybindings.Manager // nil = defaults
}

// Model is a filterable list of collapsible paragraphs.
// Views are shared pointers; the model itself has value semantics.
type Model struct {
	views     []*collapse.View
	keys      *keybindings.Manager
	cells     *measure.Cells
	spacing   collapse.Spacing
	visible   []int
	selected  int
	filter    string
	filtering bool
	width     int
	height    int
	styles    styles
}

// NewModel creates a model with one View per paragraph. Nothing is
// truncated until the terminal size is known.
func NewModel(paragraphs []string, opts Options) Model {
	cells := measure.NewCells()
	keys := opts.Keys
	if keys == nil {
		keys = keybindings.Default()
	}
	m := Model{
		keys:    keys,
		cells:   cells,
		spacing: opts.Spacing,
		styles:  newStyles(lipgloss.DefaultRenderer(), opts.LinkColor, opts.LinkBg),
	}
	for i, p := range paragraphs {
		v := collapse.NewView(cells,
			collapse.WithConfig(opts.Collapse),
			collapse.WithViewSpacing(opts.Spacing),
			collapse.WithListener(func(expanded bool) {
				log.Debug("paragraph %d expanded=%v", i, expanded)
			}),
		)
		v.SetText(p)
		v.SetExpanded(opts.Expanded)
		m.views = append(m.views, v)
	}
	m.applyFilter()
	return m
}

// Init returns nil; the first WindowSizeMsg drives layout.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key and window-size messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg), nil
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	tw := float64(max(w-gutter, 0))
	for _, v := range m.views {
		v.SetWidth(tw)
	}
	log.Debug("window %dx%d, text width %v", w, h, tw)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.ActionFor(msg.String()) {
	case keybindings.ActionQuit:
		return m, tea.Quit
	case keybindings.ActionUp:
		if m.selected > 0 {
			m.selected--
		}
	case keybindings.ActionDown:
		if m.selected < len(m.visible)-1 {
			m.selected++
		}
	case keybindings.ActionToggle:
		if v := m.SelectedView(); v != nil && !v.Toggle() {
			log.Debug("toggle ignored: expanding disabled")
		}
	case keybindings.ActionFilter:
		m.filtering = true
	case keybindings.ActionClear:
		m = m.SetFilter("")
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		return m.SetFilter("")
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyBackspace:
		if r := []rune(m.filter); len(r) > 0 {
			return m.SetFilter(string(r[:len(r)-1]))
		}
	case tea.KeyRunes, tea.KeySpace:
		return m.SetFilter(m.filter + string(msg.Runes))
	}
	return m
}

// SetFilter sets the fuzzy filter and resets the selection. Returns a new model.
func (m Model) SetFilter(f string) Model {
	m.filter = f
	m.selected = 0
	m.applyFilter()
	return m
}

// Filtering reports whether the filter prompt has focus.
func (m Model) Filtering() bool { return m.filtering }

// Visible returns the indices of the paragraphs matching the filter.
func (m Model) Visible() []int { return m.visible }

// SelectedView returns the selected paragraph's view, or nil.
func (m Model) SelectedView() *collapse.View {
	if len(m.visible) == 0 {
		return nil
	}
	return m.views[m.visible[m.selected]]
}

// paragraphSource adapts the views to fuzzy.Source.
type paragraphSource []*collapse.View

func (s paragraphSource) String(i int) string { return s[i].Text().String() }
func (s paragraphSource) Len() int            { return len(s) }

func (m *Model) applyFilter() {
	m.visible = nil
	if m.filter == "" {
		for i := range m.views {
			m.visible = append(m.visible, i)
		}
		return
	}
	for _, match := range fuzzy.FindFrom(m.filter, paragraphSource(m.views)) {
		m.visible = append(m.visible, match.Index)
	}
}

// View renders the paragraphs around the selection plus a status line.
func (m Model) View() string {
	if m.width <= gutter {
		return "waiting for terminal size...\n"
	}

	var lines []string
	selStart, selEnd := 0, 0
	for i, idx := range m.visible {
		if i > 0 {
			lines = append(lines, "")
		}
		if i == m.selected {
			selStart = len(lines)
		}
		lines = append(lines, m.renderParagraph(m.views[idx], i == m.selected)...)
		if i == m.selected {
			selEnd = len(lines)
		}
	}

	body := max(m.height-1, 1)
	start := 0
	if selEnd > body {
		start = selEnd - body
	}
	if selStart < start {
		start = selStart
	}
	end := min(start+body, len(lines))

	var b strings.Builder
	for _, l := range lines[start:end] {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) statusLine() string {
	if m.filtering {
		return m.styles.prompt.Render("/" + m.filter)
	}
	s := fmt.Sprintf("%d/%d paragraphs  %s toggle  %s filter  %s quit", len(m.visible), len(m.views),
		m.firstKey(keybindings.ActionToggle), m.firstKey(keybindings.ActionFilter), m.firstKey(keybindings.ActionQuit))
	if m.filter != "" {
		s = fmt.Sprintf("filter %q  ", m.filter) + s
	}
	return m.styles.status.Render(s)
}

func (m Model) firstKey(a keybindings.Action) string {
	keys := m.keys.Keys(a)
	switch {
	case len(keys) == 0:
		return "-"
	case keys[0] == " ":
		return "space"
	}
	return keys[0]
}

// renderParagraph wraps the rendered result the same way it was measured and
// styles the suffix span as a link. Styling left open in the body is reset
// before the ellipsis.
func (m Model) renderParagraph(v *collapse.View, selected bool) []string {
	marker := strings.Repeat(" ", gutter)
	if selected {
		marker = m.styles.marker.Render(">") + " "
	}

	r, ok := v.Render()
	if !ok {
		return []string{marker + "..."}
	}

	r = measure.CloseStyling(r, v.Config())
	link := m.styles.link
	if !r.Clickable {
		link = m.styles.inactiveLink
	}

	metrics := m.cells.Layout(r.Text, v.Width(), m.spacing)
	out := make([]string, 0, metrics.LineCount())
	for i, line := range metrics.Lines {
		var b strings.Builder
		if i == 0 {
			b.WriteString(marker)
		} else {
			b.WriteString(strings.Repeat(" ", gutter))
		}
		end := line.VisibleEnd
		if !r.HasSuffix() || end <= r.SuffixStart {
			b.WriteString(r.Text.Slice(line.Start, end).String())
			out = append(out, b.String())
			continue
		}
		b.WriteString(r.Text.Slice(line.Start, max(line.Start, r.SuffixStart)).String())
		b.WriteString(link.Render(r.Text.Slice(max(line.Start, r.SuffixStart), end).String()))
		out = append(out, b.String())
	}
	return out
}
