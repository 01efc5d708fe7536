// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Only flags given on the command line become config overrides

package main

import (
	"flag"
	"io"

	"github.com/mauromedda/collapsetext/internal/config"
)

type cliArgs struct {
	width        float64
	limit        int
	collapsed    int
	expanded     bool
	noExpand     bool
	noCollapse   bool
	ellipsis     string
	expandText   string
	collapseText string
	measure      string
	fontSize     float64
	format       string
	mdStyle      string
	output       string
	workers      int
	interactive  bool
	keys         bool
	verbose      bool
	version      bool

	set   map[string]bool
	files []string
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs
	fs := flag.NewFlagSet("collapsetext", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Float64Var(&args.width, "width", 0, "Available width (columns for cells, pixels for faces); 0 = terminal width")
	fs.IntVar(&args.limit, "limit", 0, "Maximum lines shown before truncating")
	fs.IntVar(&args.collapsed, "collapsed", 0, "Lines kept when truncated")
	fs.BoolVar(&args.expanded, "expanded", false, "Render paragraphs expanded")
	fs.BoolVar(&args.noExpand, "no-expand", false, "Render the expand suffix as plain text, not a link")
	fs.BoolVar(&args.noCollapse, "no-collapse", false, "Disable truncation entirely")
	fs.StringVar(&args.ellipsis, "ellipsis", "", "Text placed before the expand suffix")
	fs.StringVar(&args.expandText, "expand-text", "", "Suffix shown on collapsed text")
	fs.StringVar(&args.collapseText, "collapse-text", "", "Suffix shown on expanded text")
	fs.StringVar(&args.measure, "measure", "", "Measure backend: cells, go, basic")
	fs.Float64Var(&args.fontSize, "font-size", 0, "Font size in points for the go face")
	fs.StringVar(&args.format, "format", "", "Input format: plain, html, markdown, utf16")
	fs.StringVar(&args.mdStyle, "markdown-style", "", "Glamour style for markdown input: auto, notty, dark, light, ascii")
	fs.StringVar(&args.output, "output", "", "Output format: text, json, stream-json")
	fs.IntVar(&args.workers, "workers", 0, "Paragraphs truncated concurrently")
	fs.BoolVar(&args.interactive, "interactive", false, "Browse paragraphs in a terminal UI")
	fs.BoolVar(&args.keys, "keys", false, "Show interactive keybindings and exit")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	args.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { args.set[f.Name] = true })
	args.files = fs.Args()
	return args, nil
}

// overrides converts explicitly set flags into a config layer.
func (a cliArgs) overrides() *config.Settings {
	s := &config.Settings{
		Width:          a.width,
		LimitLines:     a.limit,
		CollapsedLines: a.collapsed,
		ExpandText:     a.expandText,
		CollapseText:   a.collapseText,
		Measure:        a.measure,
		FontSize:       a.fontSize,
		Format:         a.format,
		MarkdownStyle:  a.mdStyle,
		Output:         a.output,
		Workers:        a.workers,
	}
	if a.set["expanded"] {
		e := a.expanded
		s.Expanded = &e
	}
	if a.set["ellipsis"] {
		e := a.ellipsis
		s.Ellipsis = &e
	}
	if a.set["no-expand"] {
		enabled := !a.noExpand
		s.ExpandEnabled = &enabled
	}
	if a.set["no-collapse"] {
		enabled := !a.noCollapse
		s.CollapseEnabled = &enabled
	}
	return s
}
