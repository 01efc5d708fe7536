// ABOUTME: Face measures text in pixels with a golang.org/x/image/font face
// ABOUTME: Go Regular via opentype or the fixed 7x13 bitmap face; cluster widths memoized

package measure

import (
	"fmt"
	"sync"

	"github.com/mauromedda/collapsetext/pkg/collapse"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const faceCacheSize = 2048

// Face is a collapse.Measurer whose unit is one pixel. Kerning between
// clusters is ignored, so widths can differ from a shaped run by a few pixels.
type Face struct {
	metrics

	// font.Face implementations are not safe for concurrent use.
	mu    sync.Mutex
	face  font.Face
	cache *lru[float64]
}

var _ collapse.Measurer = (*Face)(nil)

// NewFace wraps an existing font face.
func NewFace(face font.Face) *Face {
	f := &Face{face: face, cache: newLRU[float64](faceCacheSize)}
	f.metrics = metrics{cluster: f.clusterWidth, lineHeight: toFloat(face.Metrics().Height)}
	return f
}

// NewGoFace returns a measurer for Go Regular at size points and dpi.
func NewGoFace(size, dpi float64) (*Face, error) {
	if size <= 0 || dpi <= 0 {
		return nil, fmt.Errorf("invalid font size %v at %v dpi", size, dpi)
	}
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing Go Regular: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}
	return NewFace(face), nil
}

// NewBasicFace returns a measurer for the 7x13 fixed bitmap face.
func NewBasicFace() *Face {
	return NewFace(basicfont.Face7x13)
}

// Close releases the underlying face.
func (f *Face) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.face.Close()
}

func (f *Face) clusterWidth(cluster string) float64 {
	if w, ok := f.cache.get(cluster); ok {
		return w
	}
	f.mu.Lock()
	adv := font.MeasureString(f.face, cluster)
	f.mu.Unlock()
	w := toFloat(adv)
	f.cache.put(cluster, w)
	return w
}

func toFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
