// ABOUTME: Output formatters for print mode: plain text, one JSON document, JSON lines
// ABOUTME: Records are encoded by hand with jwriter to avoid reflection

package print

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/mailru/easyjson/jwriter"
	"github.com/mauromedda/collapsetext/pkg/collapse"
)

// formatter abstracts output formatting.
type formatter interface {
	start(width float64)
	paragraph(index int, r collapse.Result)
	end() error
}

// ErrUnknownOutput is returned for an unsupported output format.
var ErrUnknownOutput = errors.New("unknown output format")

func newFormatter(format string, w io.Writer) (formatter, error) {
	switch format {
	case "", OutputText:
		return &textFormatter{w: bufio.NewWriter(w)}, nil
	case OutputJSON:
		return &jsonFormatter{out: w}, nil
	case OutputStreamJSON:
		return &streamJSONFormatter{w: bufio.NewWriter(w)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutput, format)
	}
}

// textFormatter writes display strings separated by blank lines.
type textFormatter struct {
	w *bufio.Writer
	n int
}

func (f *textFormatter) start(float64) {}

func (f *textFormatter) paragraph(_ int, r collapse.Result) {
	if f.n > 0 {
		f.w.WriteString("\n")
	}
	f.w.WriteString(r.String())
	f.w.WriteString("\n")
	f.n++
}

func (f *textFormatter) end() error { return f.w.Flush() }

// record is one truncated paragraph. Offsets are UTF-16 code units.
type record struct {
	Index       int
	Text        string
	Suffix      string
	SuffixStart int
	SuffixEnd   int
	Truncated   bool
	Expanded    bool
	Clickable   bool
	LineCount   int
}

func newRecord(index int, r collapse.Result) record {
	return record{
		Index:       index,
		Text:        r.String(),
		Suffix:      r.Suffix().String(),
		SuffixStart: r.SuffixStart,
		SuffixEnd:   r.SuffixEnd,
		Truncated:   r.Truncated,
		Expanded:    r.Expanded,
		Clickable:   r.Clickable,
		LineCount:   r.LineCount,
	}
}

// MarshalEasyJSON writes the record as a JSON object.
func (rec record) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	rec.writeFields(w)
	w.RawByte('}')
}

func (rec record) writeFields(w *jwriter.Writer) {
	w.RawString(`"index":`)
	w.Int(rec.Index)
	w.RawString(`,"text":`)
	w.String(rec.Text)
	if rec.Suffix != "" {
		w.RawString(`,"suffix":`)
		w.String(rec.Suffix)
		w.RawString(`,"suffix_start":`)
		w.Int(rec.SuffixStart)
		w.RawString(`,"suffix_end":`)
		w.Int(rec.SuffixEnd)
	}
	w.RawString(`,"truncated":`)
	w.Bool(rec.Truncated)
	w.RawString(`,"expanded":`)
	w.Bool(rec.Expanded)
	w.RawString(`,"clickable":`)
	w.Bool(rec.Clickable)
	if rec.LineCount > 0 {
		w.RawString(`,"line_count":`)
		w.Int(rec.LineCount)
	}
}

// jsonFormatter collects all records and writes a single JSON object at the end.
type jsonFormatter struct {
	out     io.Writer
	width   float64
	records []record
}

func (f *jsonFormatter) start(width float64) { f.width = width }

func (f *jsonFormatter) paragraph(index int, r collapse.Result) {
	f.records = append(f.records, newRecord(index, r))
}

func (f *jsonFormatter) end() error {
	w := &jwriter.Writer{}
	w.RawString(`{"width":`)
	w.Float64(f.width)
	w.RawString(`,"paragraphs":[`)
	for i, rec := range f.records {
		if i > 0 {
			w.RawByte(',')
		}
		rec.MarshalEasyJSON(w)
	}
	w.RawString("]}\n")
	if w.Error != nil {
		return fmt.Errorf("encoding json: %w", w.Error)
	}
	if _, err := w.DumpTo(f.out); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}

// streamJSONFormatter writes one JSON line per event.
type streamJSONFormatter struct {
	w     *bufio.Writer
	count int
	err   error
}

func (f *streamJSONFormatter) start(width float64) {
	w := &jwriter.Writer{}
	w.RawString(`{"type":"start","width":`)
	w.Float64(width)
	w.RawByte('}')
	f.emit(w)
}

func (f *streamJSONFormatter) paragraph(index int, r collapse.Result) {
	w := &jwriter.Writer{}
	w.RawString(`{"type":"paragraph",`)
	newRecord(index, r).writeFields(w)
	w.RawByte('}')
	f.emit(w)
	f.count++
}

func (f *streamJSONFormatter) end() error {
	w := &jwriter.Writer{}
	w.RawString(`{"type":"end","count":`)
	w.Int(f.count)
	w.RawByte('}')
	f.emit(w)
	if f.err != nil {
		return fmt.Errorf("writing stream-json: %w", f.err)
	}
	return f.w.Flush()
}

func (f *streamJSONFormatter) emit(w *jwriter.Writer) {
	if f.err != nil {
		return
	}
	w.RawByte('\n')
	if w.Error != nil {
		f.err = w.Error
		return
	}
	_, f.err = w.DumpTo(f.w)
}
