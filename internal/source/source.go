// ABOUTME: Loads input text as plain UTF-8, HTML (readable text), markdown or BOM-aware UTF-16
// ABOUTME: Normalizes to NFC and splits blank-line separated paragraphs

package source

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Format names an input encoding.
type Format string

// Supported input formats.
const (
	FormatPlain    Format = "plain"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatUTF16    Format = "utf16"
)

// ErrUnknownFormat is returned for an unsupported input format.
var ErrUnknownFormat = errors.New("unknown input format")

// ParseFormat validates a format name. Empty means plain.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatPlain:
		return FormatPlain, nil
	case FormatHTML, FormatMarkdown, FormatUTF16:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

type options struct {
	markdownStyle string
}

// Option configures Load.
type Option func(*options)

// WithMarkdownStyle sets the glamour style used for markdown input.
// Empty keeps DefaultMarkdownStyle.
func WithMarkdownStyle(style string) Option {
	return func(o *options) {
		if style != "" {
			o.markdownStyle = style
		}
	}
}

// Load reads r completely and returns its text in NFC.
func Load(r io.Reader, format Format, opts ...Option) (string, error) {
	o := options{markdownStyle: DefaultMarkdownStyle}
	for _, opt := range opts {
		opt(&o)
	}

	if format == FormatUTF16 {
		// Little endian unless a BOM says otherwise.
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		r = transform.NewReader(r, unicode.BOMOverride(dec))
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	text := string(data)
	switch format {
	case FormatPlain, FormatUTF16, "":
		text = strings.TrimPrefix(text, "\uFEFF")
	case FormatHTML:
		text, err = htmlToText(text)
		if err != nil {
			return "", err
		}
	case FormatMarkdown:
		text, err = markdownToText(strings.TrimPrefix(text, "\uFEFF"), o.markdownStyle)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return Normalize(text), nil
}

// Normalize converts s to NFC so combining sequences measure as one cluster.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Paragraphs splits s on blank lines. Paragraphs are trimmed; empty ones dropped.
func Paragraphs(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var out []string
	var cur []string
	flush := func() {
		if p := strings.TrimSpace(strings.Join(cur, "\n")); p != "" {
			out = append(out, p)
		}
		cur = cur[:0]
	}
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return out
}
