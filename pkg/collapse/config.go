// ABOUTME: Config holds line budgets and suffix strings for a truncation pass
// ABOUTME: WithLines clamps both counts to >= 1 and keeps collapsed <= limit

package collapse

const (
	// DefaultLimitLines is the line count above which text is collapsed.
	DefaultLimitLines = 15
	// DefaultCollapsedLines is the number of lines kept when collapsed.
	DefaultCollapsedLines = 10
	// DefaultEllipsis marks omitted text.
	DefaultEllipsis = "..."
	// DefaultExpandText is the suffix offered on collapsed text.
	DefaultExpandText = "Expand"
	// DefaultCollapseText is the suffix offered on expanded text.
	DefaultCollapseText = "Collapse"
)

// SuffixSeparator sits between the body (or ellipsis) and the suffix link.
const SuffixSeparator = " "

// Config controls when and how text is collapsed.
// Build it with DefaultConfig and WithLines so the line invariants hold.
type Config struct {
	LimitLines     int
	CollapsedLines int
	Ellipsis       string
	ExpandText     string
	CollapseText   string

	// ExpandEnabled makes the suffix a toggle. When false the suffix is
	// still shown but activating it does nothing.
	ExpandEnabled bool
	// CollapseEnabled turns the whole feature on. When false text is
	// passed through without a suffix.
	CollapseEnabled bool
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		LimitLines:      DefaultLimitLines,
		CollapsedLines:  DefaultCollapsedLines,
		Ellipsis:        DefaultEllipsis,
		ExpandText:      DefaultExpandText,
		CollapseText:    DefaultCollapseText,
		ExpandEnabled:   true,
		CollapseEnabled: true,
	}
}

// WithLines returns a copy of c with clamped line counts.
// A limit below collapsed is raised to collapsed; both are at least 1.
func (c Config) WithLines(limit, collapsed int) Config {
	if limit < collapsed {
		limit = collapsed
	}
	c.LimitLines = max(limit, 1)
	c.CollapsedLines = max(collapsed, 1)
	return c
}

// Normalize re-applies the line clamp and fills empty suffix strings with
// the defaults. An empty ellipsis is kept as is.
func (c Config) Normalize() Config {
	c = c.WithLines(c.LimitLines, c.CollapsedLines)
	if c.ExpandText == "" {
		c.ExpandText = DefaultExpandText
	}
	if c.CollapseText == "" {
		c.CollapseText = DefaultCollapseText
	}
	return c
}

// cacheKey is the part of Config that changes where text is cut.
type cacheKey struct {
	limit      int
	collapsed  int
	ellipsis   string
	expandText string
}

func (c Config) key() cacheKey {
	return cacheKey{
		limit:      c.LimitLines,
		collapsed:  c.CollapsedLines,
		ellipsis:   c.Ellipsis,
		expandText: c.ExpandText,
	}
}
