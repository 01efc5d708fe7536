// ABOUTME: View is the stateful host adapter around Engine: text, width, state, listener
// ABOUTME: Defers work until a width is known and resets the cache when inputs change

package collapse

// Listener is told the new state after the suffix is activated.
type Listener func(expanded bool)

// View keeps the state a collapsible text widget needs between renders.
// It is meant to be driven from a single UI goroutine.
type View struct {
	engine   *Engine
	cfg      Config
	text     Text
	width    float64
	expanded bool
	listener Listener
	last     *Result
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithConfig sets the initial configuration. It is normalized.
func WithConfig(cfg Config) ViewOption {
	return func(v *View) { v.cfg = cfg.Normalize() }
}

// WithListener sets the toggle listener.
func WithListener(l Listener) ViewOption {
	return func(v *View) { v.listener = l }
}

// WithViewSpacing sets the line spacing used by the underlying engine.
func WithViewSpacing(s Spacing) ViewOption {
	return func(v *View) { v.engine.spacing = s }
}

// NewView returns a collapsed, width-less View measuring with m.
func NewView(m Measurer, opts ...ViewOption) *View {
	v := &View{
		engine: NewEngine(m),
		cfg:    DefaultConfig(),
		text:   Text{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Config returns the current configuration.
func (v *View) Config() Config { return v.cfg }

// Text returns the original, untruncated text.
func (v *View) Text() Text { return v.text }

// Width returns the current width; zero while pending.
func (v *View) Width() float64 { return v.width }

// Expanded reports whether the view shows the full text.
func (v *View) Expanded() bool { return v.expanded }

// Ready reports whether a width is known and collapsed text can be computed.
func (v *View) Ready() bool { return v.width > 0 }

// SetText replaces the original text. Setting the same text keeps the cache.
func (v *View) SetText(s string) {
	t := FromString(s)
	if t.Equal(v.text) {
		return
	}
	v.text = t
	v.invalidate()
}

// SetWidth sets the available width. A width <= 0 leaves the view pending.
func (v *View) SetWidth(w float64) {
	if w == v.width {
		return
	}
	v.width = max(w, 0)
	v.invalidate()
}

// SetLines sets the line budget; see Config.WithLines for clamping.
func (v *View) SetLines(limit, collapsed int) {
	v.cfg = v.cfg.WithLines(limit, collapsed)
	v.invalidate()
}

// SetExpandText sets the suffix shown on collapsed text. Empty restores the default.
func (v *View) SetExpandText(s string) {
	v.cfg.ExpandText = s
	v.cfg = v.cfg.Normalize()
	v.invalidate()
}

// SetCollapseText sets the suffix shown on expanded text. Empty restores the default.
func (v *View) SetCollapseText(s string) {
	v.cfg.CollapseText = s
	v.cfg = v.cfg.Normalize()
	v.last = nil
}

// SetExpandEnabled controls whether activating the suffix toggles the view.
func (v *View) SetExpandEnabled(enabled bool) {
	v.cfg.ExpandEnabled = enabled
	v.last = nil
}

// SetCollapseEnabled switches collapsing on or off. Off means passthrough.
func (v *View) SetCollapseEnabled(enabled bool) {
	v.cfg.CollapseEnabled = enabled
	v.last = nil
}

// SetExpanded sets the presentation state without notifying the listener.
func (v *View) SetExpanded(expanded bool) {
	if v.expanded == expanded {
		return
	}
	v.expanded = expanded
	v.last = nil
}

// SetListener replaces the toggle listener.
func (v *View) SetListener(l Listener) {
	v.listener = l
}

// Render returns the display result. It reports false while the view is
// collapsed and still waiting for a width.
func (v *View) Render() (Result, bool) {
	if !v.cfg.CollapseEnabled || len(v.text) == 0 {
		r := Result{Text: v.text}
		v.last = &r
		return r, true
	}
	if !v.expanded && !v.Ready() {
		return Result{}, false
	}
	r := v.engine.Truncate(v.text, v.width, v.cfg, v.expanded)
	v.last = &r
	return r, true
}

// Toggle flips between collapsed and expanded and notifies the listener.
// It does nothing, and returns false, when expanding is disabled.
func (v *View) Toggle() bool {
	if !v.cfg.ExpandEnabled || !v.cfg.CollapseEnabled {
		return false
	}
	v.expanded = !v.expanded
	v.last = nil
	if v.listener != nil {
		v.listener(v.expanded)
	}
	return true
}

// Click toggles the view when offset hits the clickable suffix of the last
// rendered result.
func (v *View) Click(offset int) bool {
	if v.last == nil {
		if _, ok := v.Render(); !ok {
			return false
		}
	}
	if !v.last.Clickable || !v.last.InSuffix(offset) {
		return false
	}
	return v.Toggle()
}

func (v *View) invalidate() {
	v.engine.Reset()
	v.last = nil
}
