// ABOUTME: Tests for CLI flag parsing and conversion into config overrides
// ABOUTME: Verifies unset flags stay zero so lower config layers win

package main

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/mauromedda/collapsetext/internal/config"
)

func TestParseFlags_Overrides(t *testing.T) {
	t.Parallel()

	args, err := parseFlags([]string{
		"--width", "40", "--limit", "4", "--collapsed", "2",
		"--ellipsis", "", "--no-expand", "--measure", "basic", "a.txt", "b.txt",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if len(args.files) != 2 || args.files[1] != "b.txt" {
		t.Errorf("files = %v; want [a.txt b.txt]", args.files)
	}

	o := args.overrides()
	if o.Width != 40 || o.LimitLines != 4 || o.CollapsedLines != 2 || o.Measure != config.MeasureBasic {
		t.Errorf("overrides = %+v", o)
	}
	if o.Ellipsis == nil || *o.Ellipsis != "" {
		t.Errorf("Ellipsis = %v; want explicit empty string", o.Ellipsis)
	}
	if o.ExpandEnabled == nil || *o.ExpandEnabled {
		t.Errorf("ExpandEnabled = %v; want false", o.ExpandEnabled)
	}
	if o.CollapseEnabled != nil {
		t.Errorf("CollapseEnabled = %v; want nil when flag unset", *o.CollapseEnabled)
	}
}

func TestParseFlags_Unset(t *testing.T) {
	t.Parallel()

	args, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	o := args.overrides()
	if o.Ellipsis != nil || o.ExpandEnabled != nil || o.Width != 0 || o.Output != "" {
		t.Errorf("unset flags leaked into overrides: %+v", o)
	}
}

func TestParseFlags_Expanded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		argv []string
		want *bool
	}{
		{argv: nil, want: nil},
		{argv: []string{"--expanded"}, want: boolPtr(true)},
		{argv: []string{"--expanded=false"}, want: boolPtr(false)},
	}
	for _, tt := range tests {
		args, err := parseFlags(tt.argv, io.Discard)
		if err != nil {
			t.Fatalf("parseFlags(%v): %v", tt.argv, err)
		}
		got := args.overrides().Expanded
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("%v: Expanded = %v; want nil", tt.argv, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Errorf("%v: Expanded = %v; want %v", tt.argv, got, *tt.want)
		}
	}
}

func TestParseFlags_MarkdownStyle(t *testing.T) {
	t.Parallel()

	args, err := parseFlags([]string{"--format", "markdown", "--markdown-style", "notty"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if o := args.overrides(); o.Format != "markdown" || o.MarkdownStyle != "notty" {
		t.Errorf("Format, MarkdownStyle = %q, %q; want markdown, notty", o.Format, o.MarkdownStyle)
	}
}

func boolPtr(b bool) *bool { return &b }

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	if _, err := parseFlags([]string{"--width", "wide"}, io.Discard); err == nil {
		t.Error("expected error for a non-numeric width")
	}
	if _, err := parseFlags([]string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h err = %v; want flag.ErrHelp", err)
	}
}

func TestResolveWidth(t *testing.T) {
	t.Parallel()

	s := config.Defaults()
	s.Width = 33
	if got := resolveWidth(s); got != 33 {
		t.Errorf("resolveWidth(configured) = %v; want 33", got)
	}

	s = config.Defaults()
	s.Measure = config.MeasureGo
	if got := resolveWidth(s); got != fallbackPixels {
		t.Errorf("resolveWidth(go face) = %v; want %d", got, fallbackPixels)
	}
}
