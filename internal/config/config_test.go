package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waykey/waykey/internal/keys"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultFont, cfg.Font)
	assert.Equal(t, DefaultSeparator, cfg.Separator)
	assert.Equal(t, DefaultBorderWidth, cfg.BorderWidth)
	assert.Equal(t, DefaultCornerR, cfg.CornerR)
	assert.Equal(t, AnchorCenter, cfg.Anchor)
	assert.True(t, cfg.CloseOnEscape)
	assert.False(t, cfg.InhibitCompositorKeyboardShortcuts)

	// Padding defaults to the corner radius, column padding to padding.
	assert.Equal(t, cfg.CornerR, cfg.Padding())
	assert.Equal(t, cfg.Padding(), cfg.ColumnPadding())
}

func TestParse_Full(t *testing.T) {
	cfg, err := Parse([]byte(`
background: "#1d2021"
color: "#ebdbb2"
border: "0x8ec07cff"
anchor: top-right
margin_top: 10
margin_right: 20
font: "JetBrainsMono 12"
separator: " -> "
border_width: 2
corner_r: 8
padding: 12
rows_per_column: 4
column_padding: 24
inhibit_compositor_keyboard_shortcuts: true
menu:
  - key: p
    desc: Power
    submenu:
      - key: s
        desc: Suspend
        cmd: systemctl suspend
      - key: [r, "ctrl+r"]
        desc: Reboot
        cmd: systemctl reboot
  - key: l
    desc: Lock
    cmd: swaylock
    keep_open: true
`))
	require.NoError(t, err)

	assert.Equal(t, Anchor("top-right"), cfg.Anchor)
	assert.Equal(t, 10, cfg.MarginTop)
	assert.Equal(t, 20, cfg.MarginRight)
	assert.Equal(t, "JetBrainsMono 12", cfg.Font)
	assert.Equal(t, " -> ", cfg.Separator)
	assert.Equal(t, 12.0, cfg.Padding())
	assert.Equal(t, 24.0, cfg.ColumnPadding())
	assert.Equal(t, 4, cfg.RowsPerColumn)
	assert.True(t, cfg.InhibitCompositorKeyboardShortcuts)
	assert.InDelta(t, float64(0x1d)/255, cfg.Background.R, 1e-9)
	assert.InDelta(t, 1.0, cfg.Background.A, 1e-9)

	page := cfg.MenuPage()
	require.Len(t, page, 2)
	assert.True(t, page[0].IsSubmenu())
	require.Len(t, page[0].Submenu, 2)
	assert.Equal(t, "systemctl suspend", page[0].Submenu[0].Cmd)
	assert.True(t, page[0].Submenu[1].Chord.Matches('r', keys.ModifierState{Ctrl: true}))
	assert.True(t, page[1].KeepOpen)
	assert.False(t, cfg.Menu.Legacy)
}

func TestParse_LegacyFormat(t *testing.T) {
	cfg, err := Parse([]byte(`
menu:
  p:
    desc: Power
    submenu:
      s:
        desc: Suspend
        cmd: systemctl suspend
  l:
    desc: Lock
    cmd: swaylock
`))
	require.NoError(t, err)
	assert.True(t, cfg.Menu.Legacy)

	page := cfg.MenuPage()
	require.Len(t, page, 2)
	assert.Equal(t, "p", page[0].Chord.String())
	require.Len(t, page[0].Submenu, 1)
	assert.Equal(t, "systemctl suspend", page[0].Submenu[0].Cmd)
	assert.Equal(t, "swaylock", page[1].Cmd)
}

func TestParse_Errors(t *testing.T) {
	// Chord parse failure is a load error.
	_, err := Parse([]byte("menu:\n  - key: bogus-key\n    desc: x\n    cmd: \"true\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key")

	// Unknown modifier fails too.
	_, err = Parse([]byte("menu:\n  - key: hyper+a\n    desc: x\n    cmd: \"true\"\n"))
	require.Error(t, err)

	// Unknown top-level field is rejected.
	_, err = Parse([]byte("no_such_field: 1\n"))
	require.Error(t, err)

	// Entry must be exactly one of command or sub-menu.
	_, err = Parse([]byte("menu:\n  - key: a\n    desc: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither cmd nor submenu")

	_, err = Parse([]byte(`
menu:
  - key: a
    desc: x
    cmd: "true"
    submenu:
      - key: b
        desc: y
        cmd: "false"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both cmd and submenu")

	// Invalid color.
	_, err = Parse([]byte("background: \"#12\"\n"))
	require.Error(t, err)

	// Invalid anchor.
	_, err = Parse([]byte("anchor: middle\n"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("menu:\n  - key: a\n    desc: x\n    cmd: \"true\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.MenuPage(), 1)

	// Extension is optional.
	cfg, err = Load(path[:len(path)-len(".yaml")])
	require.NoError(t, err)
	assert.Len(t, cfg.MenuPage(), 1)

	_, err = Load(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConfigPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := ConfigPath("config")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/waykey/config.yaml", path)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0080")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 0.0, c.G, 1e-9)
	assert.InDelta(t, float64(0x80)/255, c.B, 1e-9)
	assert.InDelta(t, 1.0, c.A, 1e-9)

	c, err = ParseColor("0x00000080")
	require.NoError(t, err)
	assert.InDelta(t, float64(0x80)/255, c.A, 1e-9)

	_, err = ParseColor("red")
	require.Error(t, err)
}
