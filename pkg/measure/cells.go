// ABOUTME: Cells measures text in terminal columns for TUI hosts
// ABOUTME: Grapheme widths via go-runewidth; escape sequences are zero width

package measure

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/mauromedda/collapsetext/pkg/collapse"
)

const cellCacheSize = 512

// Cells is a collapse.Measurer whose unit is one terminal column and whose
// lines are one row high.
type Cells struct {
	metrics
	cache *lru[float64]
}

var _ collapse.Measurer = (*Cells)(nil)

// NewCells returns a terminal-column measurer.
func NewCells() *Cells {
	c := &Cells{cache: newLRU[float64](cellCacheSize)}
	c.metrics = metrics{cluster: c.clusterWidth, lineHeight: 1}
	return c
}

// StringWidth returns the column width of s, ignoring escape sequences.
func (c *Cells) StringWidth(s string) int {
	t := collapse.FromString(s)
	return int(c.Width(t, 0, len(t)))
}

func (c *Cells) clusterWidth(cluster string) float64 {
	if len(cluster) == 1 {
		if cluster[0] < 0x20 || cluster[0] == 0x7F {
			return 0
		}
		return 1
	}
	if w, ok := c.cache.get(cluster); ok {
		return w
	}
	// The first rune decides: combining marks and variation selectors ride along.
	r, _ := utf8.DecodeRuneInString(cluster)
	w := float64(runewidth.RuneWidth(r))
	c.cache.put(cluster, w)
	return w
}
