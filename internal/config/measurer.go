// ABOUTME: Builds the collapse.Measurer selected by the measure setting
// ABOUTME: Returned measurers are safe to share between goroutines

package config

import (
	"fmt"

	"github.com/mauromedda/collapsetext/pkg/collapse"
	"github.com/mauromedda/collapsetext/pkg/measure"
)

// Measurer returns the measurement backend for s.Measure.
func (s *Settings) Measurer() (collapse.Measurer, error) {
	switch s.Measure {
	case MeasureCells, "":
		return measure.NewCells(), nil
	case MeasureBasic:
		return measure.NewBasicFace(), nil
	case MeasureGo:
		f, err := measure.NewGoFace(s.FontSize, s.DPI)
		if err != nil {
			return nil, fmt.Errorf("loading go face: %w", err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMeasure, s.Measure)
	}
}
