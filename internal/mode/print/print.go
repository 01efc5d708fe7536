// ABOUTME: Batch print mode: truncates paragraphs concurrently and writes them in input order
// ABOUTME: Text, JSON and stream-JSON formatters; JSON is written with easyjson's jwriter

package print

import (
	"context"
	"fmt"
	"io"

	"github.com/mauromedda/collapsetext/internal/log"
	"github.com/mauromedda/collapsetext/pkg/collapse"
	"github.com/mauromedda/collapsetext/pkg/measure"
	"golang.org/x/sync/errgroup"
)

// Output formats.
const (
	OutputText       = "text"
	OutputJSON       = "json"
	OutputStreamJSON = "stream-json"
)

const defaultWorkers = 4

// Config configures a batch run.
type Config struct {
	Output   string          // "text" (default), "json", "stream-json"
	Width    float64         // available width in measurer units; must be positive
	Expanded bool            // render every paragraph expanded
	Workers  int             // 0 = defaultWorkers
	Collapse collapse.Config // truncation settings
	Spacing  collapse.Spacing
}

// Run truncates each paragraph with its own View and writes the results to w.
// The measurer is shared, so it must be safe for concurrent use.
func Run(ctx context.Context, cfg Config, m collapse.Measurer, paragraphs []string, w io.Writer) error {
	if cfg.Width <= 0 {
		return fmt.Errorf("width must be positive, got %v", cfg.Width)
	}
	f, err := newFormatter(cfg.Output, w)
	if err != nil {
		return err
	}

	results, err := truncateAll(ctx, cfg, m, paragraphs)
	if err != nil {
		return err
	}

	f.start(cfg.Width)
	for i, r := range results {
		f.paragraph(i, r)
	}
	return f.end()
}

func truncateAll(ctx context.Context, cfg Config, m collapse.Measurer, paragraphs []string) ([]collapse.Result, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	results := make([]collapse.Result, len(paragraphs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range paragraphs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			v := collapse.NewView(m,
				collapse.WithConfig(cfg.Collapse),
				collapse.WithViewSpacing(cfg.Spacing),
			)
			v.SetText(p)
			v.SetWidth(cfg.Width)
			v.SetExpanded(cfg.Expanded)
			r, ok := v.Render()
			if !ok {
				return fmt.Errorf("paragraph %d: view not ready", i)
			}
			log.Debug("paragraph %d: %d units, truncated=%v", i, len(r.Text), r.Truncated)
			results[i] = measure.CloseStyling(r, v.Config())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("truncating paragraphs: %w", err)
	}
	return results, nil
}
