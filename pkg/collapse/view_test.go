// ABOUTME: Tests for View: deferred width, cache reset rules, toggling and hit testing
// ABOUTME: Drives the same fake measurer as the engine tests

package collapse

import (
	"strings"
	"testing"
)

func TestView_PendingUntilWidth(t *testing.T) {
	t.Parallel()

	v := NewView(newFake())
	v.SetText(lines(40, 10))
	if _, ok := v.Render(); ok {
		t.Fatal("Render() ok before a width is known")
	}
	if v.Ready() {
		t.Error("Ready() = true with zero width")
	}

	v.SetWidth(100)
	r, ok := v.Render()
	if !ok || !r.Truncated {
		t.Fatalf("Render() = %+v, %v; want truncated result", r, ok)
	}
}

func TestView_ExpandedRendersWithoutWidth(t *testing.T) {
	t.Parallel()

	v := NewView(newFake())
	v.SetText("Hi")
	v.SetExpanded(true)
	r, ok := v.Render()
	if !ok || r.String() != "Hi Collapse" {
		t.Errorf("Render() = %q, %v; want %q", r, ok, "Hi Collapse")
	}
}

func TestView_ToggleNotifiesListener(t *testing.T) {
	t.Parallel()

	var got []bool
	v := NewView(newFake(), WithListener(func(expanded bool) { got = append(got, expanded) }))
	v.SetText(lines(40, 10))
	v.SetWidth(100)

	collapsed, _ := v.Render()
	if !v.Toggle() {
		t.Fatal("Toggle() = false")
	}
	expanded, _ := v.Render()
	if !strings.HasSuffix(expanded.String(), " Collapse") {
		t.Errorf("expanded = %q", expanded)
	}
	v.Toggle()
	again, _ := v.Render()

	if !collapsed.Text.Equal(again.Text) {
		t.Errorf("collapse -> expand -> collapse changed text")
	}
	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("listener calls = %v; want [true false]", got)
	}
}

func TestView_ClickHitsSuffixOnly(t *testing.T) {
	t.Parallel()

	v := NewView(newFake())
	v.SetText(lines(40, 10))
	v.SetWidth(100)
	r, _ := v.Render()

	if v.Click(0) {
		t.Error("Click on body toggled the view")
	}
	if v.Click(r.SuffixEnd) {
		t.Error("Click past the suffix toggled the view")
	}
	if !v.Click(r.SuffixStart) {
		t.Fatal("Click on suffix did not toggle")
	}
	if !v.Expanded() {
		t.Error("Expanded() = false after suffix click")
	}
}

func TestView_ExpandDisabled(t *testing.T) {
	t.Parallel()

	v := NewView(newFake())
	v.SetText(lines(40, 10))
	v.SetWidth(100)
	v.SetExpandEnabled(false)

	r, _ := v.Render()
	if !r.Truncated || r.Clickable {
		t.Errorf("Truncated=%v Clickable=%v; want true,false", r.Truncated, r.Clickable)
	}
	if v.Toggle() || v.Click(r.SuffixStart) {
		t.Error("view toggled with expand disabled")
	}
}

func TestView_CollapseDisabledPassesThrough(t *testing.T) {
	t.Parallel()

	text := lines(40, 10)
	v := NewView(newFake())
	v.SetText(text)
	v.SetCollapseEnabled(false)

	r, ok := v.Render()
	if !ok || r.String() != text || r.HasSuffix() {
		t.Errorf("Render() = %q, %v; want passthrough", r, ok)
	}
}

func TestView_CacheResetRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(v *View)
		layouts int
	}{
		{name: "same text", mutate: func(v *View) { v.SetText(lines(40, 10)) }, layouts: 1},
		{name: "same width", mutate: func(v *View) { v.SetWidth(100) }, layouts: 1},
		{name: "collapse text", mutate: func(v *View) { v.SetCollapseText("Less") }, layouts: 1},
		{name: "new text", mutate: func(v *View) { v.SetText(lines(41, 10)) }, layouts: 2},
		{name: "new width", mutate: func(v *View) { v.SetWidth(120) }, layouts: 2},
		{name: "lines", mutate: func(v *View) { v.SetLines(20, 4) }, layouts: 2},
		{name: "expand text", mutate: func(v *View) { v.SetExpandText("More") }, layouts: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newFake()
			v := NewView(m)
			v.SetText(lines(40, 10))
			v.SetWidth(100)
			v.Render()
			tt.mutate(v)
			v.Render()
			if m.layouts != tt.layouts {
				t.Errorf("layouts = %d; want %d", m.layouts, tt.layouts)
			}
		})
	}
}

func TestView_SetExpandTextEmptyRestoresDefault(t *testing.T) {
	t.Parallel()

	v := NewView(newFake(), WithConfig(DefaultConfig()))
	v.SetExpandText("More")
	v.SetExpandText("")
	if got := v.Config().ExpandText; got != DefaultExpandText {
		t.Errorf("ExpandText = %q; want %q", got, DefaultExpandText)
	}
}

func TestView_WithConfigNormalizes(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.LimitLines, cfg.CollapsedLines = 2, 5
	v := NewView(newFake(), WithConfig(cfg))
	if c := v.Config(); c.LimitLines != 5 || c.CollapsedLines != 5 {
		t.Errorf("lines = %d/%d; want 5/5", c.LimitLines, c.CollapsedLines)
	}
}
