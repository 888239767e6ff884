package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waykey/waykey/internal/config"
	"github.com/waykey/waykey/internal/keys"
	"github.com/waykey/waykey/internal/menu"
)

// charCells measures every rune as a fixed-size cell, like a terminal.
type charCells struct {
	w, h float64
}

func (c charCells) TextSize(text string) (float64, float64) {
	n := 0
	for range text {
		n++
	}
	return float64(n) * c.w, c.h
}

func testPage(t *testing.T, tokens ...string) menu.Page {
	t.Helper()
	page := make(menu.Page, 0, len(tokens))
	for _, tok := range tokens {
		chord, err := keys.Parse(tok)
		require.NoError(t, err)
		page = append(page, &menu.Entry{Chord: chord, Desc: "run " + tok, Cmd: "true"})
	}
	return page
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Separator = " > "
	cfg.BorderWidth = 2
	padding := 10.0
	cfg.PaddingOpt = &padding
	return cfg
}

func TestComputeLayout_SingleColumn(t *testing.T) {
	cfg := testConfig()
	page := testPage(t, "a", "bb")
	m := charCells{w: 8, h: 16}

	layout := ComputeLayout(page, cfg, m)

	// keyW = 2 cells ("bb"), sep = 3 cells, descW = 6 cells ("run bb").
	inset := 10.0 + 2.0
	wantW := int(2*inset + (2+3+6)*8)
	wantH := int(2*inset + 2*16)
	assert.Equal(t, wantW, layout.Width)
	assert.Equal(t, wantH, layout.Height)

	require.Len(t, layout.Fragments, 6)
	// Chord labels are right-aligned within the key column.
	assert.Equal(t, inset+8, layout.Fragments[0].X) // "a" indented one cell
	assert.Equal(t, inset, layout.Fragments[3].X)   // "bb" flush left
	// Rows advance by the line height.
	assert.Equal(t, inset, layout.Fragments[0].Y)
	assert.Equal(t, inset+16, layout.Fragments[3].Y)
	// Descriptions start after key column and separator.
	assert.Equal(t, inset+(2+3)*8, layout.Fragments[2].X)
}

func TestComputeLayout_Columns(t *testing.T) {
	cfg := testConfig()
	cfg.RowsPerColumn = 2
	colPad := 12.0
	cfg.ColumnPaddingOpt = &colPad
	page := testPage(t, "a", "b", "c")
	m := charCells{w: 8, h: 16}

	layout := ComputeLayout(page, cfg, m)

	// Two columns: [a b] and [c]; each 1+3+5 cells wide.
	inset := 12.0
	colW := (1 + 3 + 5) * 8.0
	assert.Equal(t, int(2*inset+2*colW+colPad), layout.Width)
	// Height follows the tallest column, two rows.
	assert.Equal(t, int(2*inset+2*16), layout.Height)

	require.Len(t, layout.Fragments, 9)
	// Third entry sits in the second column at the top row.
	third := layout.Fragments[6]
	assert.Equal(t, "c", third.Text)
	assert.Equal(t, inset, third.Y)
	assert.Equal(t, inset+colW+colPad, third.X)
}

func TestComputeLayout_EmptyPage(t *testing.T) {
	cfg := testConfig()
	layout := ComputeLayout(nil, cfg, charCells{w: 8, h: 16})
	assert.Equal(t, 24, layout.Width)
	assert.Equal(t, 24, layout.Height)
	assert.Empty(t, layout.Fragments)
}

func TestComputeLayout_SubmenuLabel(t *testing.T) {
	cfg := testConfig()
	chord, err := keys.Parse("p")
	require.NoError(t, err)
	page := menu.Page{{Chord: chord, Desc: "power", Submenu: testPage(t, "s")}}

	layout := ComputeLayout(page, cfg, charCells{w: 8, h: 16})
	require.Len(t, layout.Fragments, 3)
	assert.Equal(t, "+power", layout.Fragments[2].Text)
}
