// ABOUTME: Tests for the shared line breaker, Width and BreakText via the Cells backend
// ABOUTME: Covers word breaks, hanging spaces, hard newlines, CJK, escapes and surrogates

package measure

import (
	"reflect"
	"testing"

	"github.com/mauromedda/collapsetext/pkg/collapse"
)

func TestLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		width float64
		want  []collapse.Line
	}{
		{
			name:  "fits",
			input: "hello",
			width: 10,
			want:  []collapse.Line{{Start: 0, VisibleEnd: 5, End: 5}},
		},
		{
			name:  "word break with hanging space",
			input: "hello world foo",
			width: 11,
			want: []collapse.Line{
				{Start: 0, VisibleEnd: 11, End: 12},
				{Start: 12, VisibleEnd: 15, End: 15},
			},
		},
		{
			name:  "hard newline",
			input: "ab\ncd",
			width: 10,
			want: []collapse.Line{
				{Start: 0, VisibleEnd: 2, End: 3},
				{Start: 3, VisibleEnd: 5, End: 5},
			},
		},
		{
			name:  "trailing newline adds empty line",
			input: "ab\n",
			width: 10,
			want: []collapse.Line{
				{Start: 0, VisibleEnd: 2, End: 3},
				{Start: 3, VisibleEnd: 3, End: 3},
			},
		},
		{
			name:  "overlong word breaks by cluster",
			input: "abcdefghij",
			width: 4,
			want: []collapse.Line{
				{Start: 0, VisibleEnd: 4, End: 4},
				{Start: 4, VisibleEnd: 8, End: 8},
				{Start: 8, VisibleEnd: 10, End: 10},
			},
		},
		{
			name:  "cjk breaks between ideographs",
			input: "你好世界",
			width: 5,
			want: []collapse.Line{
				{Start: 0, VisibleEnd: 2, End: 2},
				{Start: 2, VisibleEnd: 4, End: 4},
			},
		},
		{
			name:  "emoji offsets in code units",
			input: "\U0001F600\U0001F600\U0001F600",
			width: 4,
			want: []collapse.Line{
				{Start: 0, VisibleEnd: 4, End: 4},
				{Start: 4, VisibleEnd: 6, End: 6},
			},
		},
		{
			name:  "empty",
			input: "",
			width: 10,
			want:  []collapse.Line{{Start: 0, VisibleEnd: 0, End: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NewCells().Layout(collapse.FromString(tt.input), tt.width, collapse.DefaultSpacing)
			if !reflect.DeepEqual(got.Lines, tt.want) {
				t.Errorf("Layout(%q, %v) = %+v; want %+v", tt.input, tt.width, got.Lines, tt.want)
			}
			if got.Height != float64(len(tt.want)) {
				t.Errorf("Height = %v; want %d", got.Height, len(tt.want))
			}
		})
	}
}

func TestLayout_EscapesAreZeroWidth(t *testing.T) {
	t.Parallel()

	in := collapse.FromString("\x1b[31mred\x1b[0m text")
	got := NewCells().Layout(in, 8, collapse.DefaultSpacing)
	if got.LineCount() != 1 {
		t.Fatalf("LineCount() = %d; want 1", got.LineCount())
	}
	if got.Lines[0].VisibleEnd != in.Len() {
		t.Errorf("VisibleEnd = %d; want %d", got.Lines[0].VisibleEnd, in.Len())
	}
}

func TestLayout_Spacing(t *testing.T) {
	t.Parallel()

	got := NewCells().Layout(collapse.FromString("a\nb"), 10, collapse.Spacing{Multiplier: 2, Extra: 1})
	if got.Height != 6 {
		t.Errorf("Height = %v; want 6", got.Height)
	}
}

func TestWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "ascii", input: "hello", want: 5},
		{name: "spaces count", input: "... Expand", want: 10},
		{name: "ansi colored", input: "\x1b[31mred\x1b[0m", want: 3},
		{name: "cjk", input: "你好", want: 4},
		{name: "emoji", input: "\U0001F44B", want: 2},
		{name: "combining mark", input: "e\u0301", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := collapse.FromString(tt.input)
			if got := NewCells().Width(in, 0, in.Len()); got != tt.want {
				t.Errorf("Width(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBreakText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		forwards bool
		max      float64
		want     int
	}{
		{name: "forwards ascii", input: "abcdef", forwards: true, max: 3, want: 3},
		{name: "backwards ascii", input: "abcdef", forwards: false, max: 2, want: 2},
		{name: "all fits", input: "abc", forwards: true, max: 10, want: 3},
		{name: "nothing fits", input: "abc", forwards: true, max: 0.5, want: 0},
		{name: "negative width", input: "abc", forwards: true, max: -4, want: 0},
		{name: "never splits pair", input: "a\U0001F600b", forwards: true, max: 2, want: 1},
		{name: "pair counts two units", input: "a\U0001F600b", forwards: true, max: 3, want: 3},
		{name: "backwards pair", input: "a\U0001F600", forwards: false, max: 2, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := collapse.FromString(tt.input)
			if got := NewCells().BreakText(in, 0, in.Len(), tt.forwards, tt.max); got != tt.want {
				t.Errorf("BreakText(%q, %v, %v) = %d; want %d", tt.input, tt.forwards, tt.max, got, tt.want)
			}
		})
	}
}

func TestBreakText_SubRange(t *testing.T) {
	t.Parallel()

	in := collapse.FromString("xx\U0001F600abc")
	// Range starts at the emoji (units 2-3).
	if got := NewCells().BreakText(in, 2, in.Len(), true, 3); got != 3 {
		t.Errorf("BreakText = %d; want 3", got)
	}
}
