// ABOUTME: Tests for Config defaults, line clamping and suffix normalization
// ABOUTME: Mirrors the clamp rules: collapsed <= limit, both >= 1

package collapse

import "testing"

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	c := DefaultConfig()
	if c.LimitLines != 15 || c.CollapsedLines != 10 {
		t.Errorf("lines = %d/%d; want 15/10", c.LimitLines, c.CollapsedLines)
	}
	if c.Ellipsis != "..." {
		t.Errorf("Ellipsis = %q", c.Ellipsis)
	}
	if !c.ExpandEnabled || !c.CollapseEnabled {
		t.Error("expected expand and collapse enabled by default")
	}
}

func TestConfig_WithLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                     string
		limit, collapsed         int
		wantLimit, wantCollapsed int
	}{
		{name: "valid", limit: 8, collapsed: 3, wantLimit: 8, wantCollapsed: 3},
		{name: "equal", limit: 4, collapsed: 4, wantLimit: 4, wantCollapsed: 4},
		{name: "limit below collapsed", limit: 2, collapsed: 6, wantLimit: 6, wantCollapsed: 6},
		{name: "zeros", limit: 0, collapsed: 0, wantLimit: 1, wantCollapsed: 1},
		{name: "negative collapsed", limit: 5, collapsed: -3, wantLimit: 5, wantCollapsed: 1},
		{name: "both negative", limit: -1, collapsed: -7, wantLimit: 1, wantCollapsed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := DefaultConfig().WithLines(tt.limit, tt.collapsed)
			if c.LimitLines != tt.wantLimit || c.CollapsedLines != tt.wantCollapsed {
				t.Errorf("WithLines(%d, %d) = %d/%d; want %d/%d",
					tt.limit, tt.collapsed, c.LimitLines, c.CollapsedLines, tt.wantLimit, tt.wantCollapsed)
			}
			if c.CollapsedLines > c.LimitLines {
				t.Errorf("collapsed %d exceeds limit %d", c.CollapsedLines, c.LimitLines)
			}
		})
	}
}

func TestConfig_NormalizeFillsSuffixes(t *testing.T) {
	t.Parallel()

	c := Config{LimitLines: 1, CollapsedLines: 3}.Normalize()
	if c.ExpandText != DefaultExpandText || c.CollapseText != DefaultCollapseText {
		t.Errorf("suffixes = %q/%q", c.ExpandText, c.CollapseText)
	}
	if c.LimitLines != 3 {
		t.Errorf("LimitLines = %d; want 3", c.LimitLines)
	}
	if c.Ellipsis != "" {
		t.Errorf("Ellipsis = %q; want empty kept", c.Ellipsis)
	}
}
