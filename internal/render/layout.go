package render

import (
	"math"

	"github.com/waykey/waykey/internal/config"
	"github.com/waykey/waykey/internal/menu"
)

// Measurer reports the rendered size of a text run in logical pixels.
type Measurer interface {
	TextSize(text string) (w, h float64)
}

// Fragment is one positioned text run.
type Fragment struct {
	Text string
	X, Y float64
}

// Layout is the measured geometry of a page: the surface size and every
// text fragment to draw. Chord labels are right-aligned per column,
// descriptions left-aligned after the separator.
type Layout struct {
	Width, Height int
	Fragments     []Fragment
}

// ComputeLayout lays out a page under the given configuration. Entries
// fill columns top to bottom, RowsPerColumn rows each (zero means one
// column holds everything).
func ComputeLayout(page menu.Page, cfg *config.Config, m Measurer) Layout {
	if len(page) == 0 {
		inset := cfg.Padding() + cfg.BorderWidth
		return Layout{Width: ceil(2 * inset), Height: ceil(2 * inset)}
	}

	rowsPerCol := cfg.RowsPerColumn
	if rowsPerCol <= 0 || rowsPerCol > len(page) {
		rowsPerCol = len(page)
	}
	numCols := (len(page) + rowsPerCol - 1) / rowsPerCol

	sepW, lineH := m.TextSize(cfg.Separator)

	type column struct {
		entries     menu.Page
		keyW, descW float64
	}
	cols := make([]column, 0, numCols)
	for start := 0; start < len(page); start += rowsPerCol {
		end := min(start+rowsPerCol, len(page))
		col := column{entries: page[start:end]}
		for _, entry := range col.entries {
			kw, kh := m.TextSize(entry.Chord.String())
			dw, dh := m.TextSize(entry.Label())
			col.keyW = math.Max(col.keyW, kw)
			col.descW = math.Max(col.descW, dw)
			lineH = math.Max(lineH, math.Max(kh, dh))
		}
		cols = append(cols, col)
	}

	inset := cfg.Padding() + cfg.BorderWidth
	colPad := cfg.ColumnPadding()

	var frags []Fragment
	x := inset
	contentH := 0.0
	for i, col := range cols {
		if i > 0 {
			x += colPad
		}
		y := inset
		for _, entry := range col.entries {
			kw, _ := m.TextSize(entry.Chord.String())
			frags = append(frags,
				Fragment{Text: entry.Chord.String(), X: x + col.keyW - kw, Y: y},
				Fragment{Text: cfg.Separator, X: x + col.keyW, Y: y},
				Fragment{Text: entry.Label(), X: x + col.keyW + sepW, Y: y},
			)
			y += lineH
		}
		contentH = math.Max(contentH, y-inset)
		x += col.keyW + sepW + col.descW
	}

	return Layout{
		Width:     ceil(x + inset),
		Height:    ceil(contentH + 2*inset),
		Fragments: frags,
	}
}

func ceil(v float64) int {
	return int(math.Ceil(v))
}
