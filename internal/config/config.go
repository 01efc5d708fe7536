// ABOUTME: Settings loading with global + project YAML config deep merge
// ABOUTME: Project values override global ones; CLI overrides are applied last

package config

import (
	"errors"
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/collapsetext/pkg/collapse"
)

// Measure backends selectable from config.
const (
	MeasureCells = "cells"
	MeasureGo    = "go"
	MeasureBasic = "basic"
)

// ErrUnknownMeasure is returned for a measure backend name that does not exist.
var ErrUnknownMeasure = errors.New("unknown measure backend")

// Spacing mirrors collapse.Spacing in YAML.
type Spacing struct {
	Multiplier float64 `yaml:"multiplier,omitempty"`
	Extra      float64 `yaml:"extra,omitempty"`
}

// Settings holds the merged configuration.
type Settings struct {
	LimitLines      int      `yaml:"limit_lines,omitempty"`
	CollapsedLines  int      `yaml:"collapsed_lines,omitempty"`
	Ellipsis        *string  `yaml:"ellipsis,omitempty"`
	ExpandText      string   `yaml:"expand_text,omitempty"`
	CollapseText    string   `yaml:"collapse_text,omitempty"`
	ExpandEnabled   *bool    `yaml:"expand_enabled,omitempty"`
	CollapseEnabled *bool    `yaml:"collapse_enabled,omitempty"`
	Expanded        *bool    `yaml:"expanded,omitempty"`
	Width           float64  `yaml:"width,omitempty"`
	Measure         string   `yaml:"measure,omitempty"`
	FontSize        float64  `yaml:"font_size,omitempty"`
	DPI             float64  `yaml:"dpi,omitempty"`
	LineSpacing     *Spacing `yaml:"line_spacing,omitempty"`
	LinkColor       string   `yaml:"link_color,omitempty"`
	LinkBgColor     string   `yaml:"link_bg_color,omitempty"`
	Format          string   `yaml:"format,omitempty"`
	MarkdownStyle   string   `yaml:"markdown_style,omitempty"`
	Output          string   `yaml:"output,omitempty"`
	Workers         int      `yaml:"workers,omitempty"`

	// Keybindings maps an interactive action name to its keys.
	Keybindings map[string][]string `yaml:"keybindings,omitempty"`
}

// Defaults returns the built-in settings every layer is merged onto.
func Defaults() *Settings {
	return &Settings{
		LimitLines:     collapse.DefaultLimitLines,
		CollapsedLines: collapse.DefaultCollapsedLines,
		Measure:        MeasureCells,
		FontSize:       14,
		DPI:            72,
		LinkColor:      "12",
		Format:         "plain",
		MarkdownStyle:  "auto",
		Output:         "text",
	}
}

// Load reads and merges built-in, global and project-local settings.
func Load(projectRoot string) (*Settings, error) {
	return LoadAll(projectRoot, nil)
}

// LoadAll is Load with CLI overrides merged last.
func LoadAll(projectRoot string, overrides *Settings) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(merge(merge(Defaults(), global), project), overrides)
	ResolveEnvVars(merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge deep-merges over onto base. Non-zero values in over win.
func merge(base, over *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if over == nil {
		return base
	}

	result := *base

	if over.LimitLines != 0 {
		result.LimitLines = over.LimitLines
	}
	if over.CollapsedLines != 0 {
		result.CollapsedLines = over.CollapsedLines
	}
	if over.Ellipsis != nil {
		result.Ellipsis = over.Ellipsis
	}
	if over.ExpandText != "" {
		result.ExpandText = over.ExpandText
	}
	if over.CollapseText != "" {
		result.CollapseText = over.CollapseText
	}
	if over.ExpandEnabled != nil {
		result.ExpandEnabled = over.ExpandEnabled
	}
	if over.CollapseEnabled != nil {
		result.CollapseEnabled = over.CollapseEnabled
	}
	if over.Expanded != nil {
		result.Expanded = over.Expanded
	}
	if over.Width != 0 {
		result.Width = over.Width
	}
	if over.Measure != "" {
		result.Measure = over.Measure
	}
	if over.FontSize != 0 {
		result.FontSize = over.FontSize
	}
	if over.DPI != 0 {
		result.DPI = over.DPI
	}
	if over.LineSpacing != nil {
		sp := *over.LineSpacing
		result.LineSpacing = &sp
	}
	if over.LinkColor != "" {
		result.LinkColor = over.LinkColor
	}
	if over.LinkBgColor != "" {
		result.LinkBgColor = over.LinkBgColor
	}
	if over.Format != "" {
		result.Format = over.Format
	}
	if over.MarkdownStyle != "" {
		result.MarkdownStyle = over.MarkdownStyle
	}
	if over.Output != "" {
		result.Output = over.Output
	}
	if over.Workers != 0 {
		result.Workers = over.Workers
	}
	if len(over.Keybindings) > 0 {
		kb := maps.Clone(base.Keybindings)
		if kb == nil {
			kb = make(map[string][]string, len(over.Keybindings))
		}
		maps.Copy(kb, over.Keybindings)
		result.Keybindings = kb
	}

	return &result
}

// Validate reports settings no component can act on.
func (s *Settings) Validate() error {
	switch s.Measure {
	case MeasureCells, MeasureGo, MeasureBasic:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMeasure, s.Measure)
	}
	if s.Width < 0 {
		return fmt.Errorf("width must not be negative, got %v", s.Width)
	}
	if s.Measure == MeasureGo && (s.FontSize <= 0 || s.DPI <= 0) {
		return fmt.Errorf("font_size and dpi must be positive for the go face")
	}
	return nil
}

// CollapseConfig converts the settings into a clamped collapse.Config.
func (s *Settings) CollapseConfig() collapse.Config {
	c := collapse.DefaultConfig()
	c.ExpandText = s.ExpandText
	c.CollapseText = s.CollapseText
	if s.Ellipsis != nil {
		c.Ellipsis = *s.Ellipsis
	}
	if s.ExpandEnabled != nil {
		c.ExpandEnabled = *s.ExpandEnabled
	}
	if s.CollapseEnabled != nil {
		c.CollapseEnabled = *s.CollapseEnabled
	}
	return c.WithLines(s.LimitLines, s.CollapsedLines).Normalize()
}

// StartExpanded reports whether paragraphs start expanded.
func (s *Settings) StartExpanded() bool {
	return s.Expanded != nil && *s.Expanded
}

// Spacing returns the configured line spacing.
func (s *Settings) Spacing() collapse.Spacing {
	if s.LineSpacing == nil {
		return collapse.DefaultSpacing
	}
	return collapse.Spacing{Multiplier: s.LineSpacing.Multiplier, Extra: s.LineSpacing.Extra}
}
