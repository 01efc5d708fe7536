// ABOUTME: CLI entry point for collapsetext
// ABOUTME: Loads config and input paragraphs, then dispatches to print or interactive mode

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/collapsetext/internal/termfix"

	"github.com/mauromedda/collapsetext/internal/config"
	"github.com/mauromedda/collapsetext/internal/keybindings"
	"github.com/mauromedda/collapsetext/internal/log"
	"github.com/mauromedda/collapsetext/internal/mode/interactive"
	"github.com/mauromedda/collapsetext/internal/mode/print"
	"github.com/mauromedda/collapsetext/internal/source"
	"golang.org/x/term"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const (
	fallbackColumns = 80
	// fallbackPixels is 80 columns of the 7px basic face.
	fallbackPixels = 560
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("collapsetext %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads settings and input, then dispatches to the selected mode.
func run(args cliArgs) error {
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	settings, err := config.LoadAll(cwd, args.overrides())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	keys, err := keybindings.New(settings.Keybindings)
	if err != nil {
		return fmt.Errorf("loading keybindings: %w", err)
	}
	for _, c := range keys.Conflicts() {
		log.Warn("key %q is bound to %v; using %s", c.Key, c.Actions, keys.ActionFor(c.Key))
	}
	if args.keys {
		fmt.Print(keys.FormatAll())
		return nil
	}

	format, err := source.ParseFormat(settings.Format)
	if err != nil {
		return err
	}
	paragraphs, err := readParagraphs(args.files, format, settings.MarkdownStyle)
	if err != nil {
		return err
	}
	log.Debug("loaded %d paragraphs (%s)", len(paragraphs), format)

	if args.interactive {
		if settings.Measure != config.MeasureCells {
			log.Warn("interactive mode measures in cells; ignoring measure %q", settings.Measure)
		}
		return interactive.Run(paragraphs, interactive.Options{
			Collapse:  settings.CollapseConfig(),
			Spacing:   settings.Spacing(),
			Expanded:  settings.StartExpanded(),
			LinkColor: settings.LinkColor,
			LinkBg:    settings.LinkBgColor,
			Keys:      keys,
		})
	}

	m, err := settings.Measurer()
	if err != nil {
		return err
	}
	if c, ok := m.(io.Closer); ok {
		defer c.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return print.Run(ctx, print.Config{
		Output:   settings.Output,
		Width:    resolveWidth(settings),
		Expanded: settings.StartExpanded(),
		Workers:  settings.Workers,
		Collapse: settings.CollapseConfig(),
		Spacing:  settings.Spacing(),
	}, m, paragraphs, os.Stdout)
}

// resolveWidth picks the configured width, else the terminal width for
// cells, else a fallback in the backend's unit.
func resolveWidth(s *config.Settings) float64 {
	if s.Width > 0 {
		return s.Width
	}
	if s.Measure != config.MeasureCells {
		return fallbackPixels
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return float64(w)
		}
	}
	return fallbackColumns
}

// readParagraphs loads every file (stdin when none) and splits paragraphs.
func readParagraphs(files []string, format source.Format, mdStyle string) ([]string, error) {
	style := source.WithMarkdownStyle(mdStyle)
	if len(files) == 0 {
		text, err := source.Load(os.Stdin, format, style)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return source.Paragraphs(text), nil
	}

	var out []string
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		text, err := source.Load(f, format, style)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		out = append(out, source.Paragraphs(text)...)
	}
	return out, nil
}
