// Package config handles configuration file loading and parsing.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/waykey/waykey/internal/menu"
)

// Default values matching the reference configuration.
const (
	DefaultFont        = "monospace 10"
	DefaultSeparator   = " ➜ "
	DefaultBorderWidth = 4.0
	DefaultCornerR     = 20.0
)

// Config is the waykey configuration.
type Config struct {
	Background Color `yaml:"background"`
	Color      Color `yaml:"color"`
	Border     Color `yaml:"border"`

	Anchor       Anchor `yaml:"anchor"`
	MarginTop    int    `yaml:"margin_top"`
	MarginRight  int    `yaml:"margin_right"`
	MarginBottom int    `yaml:"margin_bottom"`
	MarginLeft   int    `yaml:"margin_left"`

	// Font is a pango font description string, e.g. "monospace 10".
	Font        string   `yaml:"font"`
	Separator   string   `yaml:"separator"`
	BorderWidth float64  `yaml:"border_width"`
	CornerR     float64  `yaml:"corner_r"`
	PaddingOpt  *float64 `yaml:"padding"`
	// RowsPerColumn limits column height; 0 means a single column.
	RowsPerColumn    int      `yaml:"rows_per_column"`
	ColumnPaddingOpt *float64 `yaml:"column_padding"`

	InhibitCompositorKeyboardShortcuts bool `yaml:"inhibit_compositor_keyboard_shortcuts"`
	CloseOnEscape                      bool `yaml:"close_on_escape"`

	Menu Entries `yaml:"menu"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Background:    MustColor("#282828ff"),
		Color:         MustColor("#fbf1c7ff"),
		Border:        MustColor("#8ec07cff"),
		Anchor:        AnchorCenter,
		Font:          DefaultFont,
		Separator:     DefaultSeparator,
		BorderWidth:   DefaultBorderWidth,
		CornerR:       DefaultCornerR,
		CloseOnEscape: true,
	}
}

// Padding returns the panel padding, defaulting to the corner radius.
func (c *Config) Padding() float64 {
	if c.PaddingOpt != nil {
		return *c.PaddingOpt
	}
	return c.CornerR
}

// ColumnPadding returns the inter-column padding, defaulting to the
// panel padding.
func (c *Config) ColumnPadding() float64 {
	if c.ColumnPaddingOpt != nil {
		return *c.ColumnPaddingOpt
	}
	return c.Padding()
}

// ConfigPath resolves a config name to a file path. Absolute paths are
// used as-is; bare names resolve inside $XDG_CONFIG_HOME/waykey (or
// ~/.config/waykey). The ".yaml" extension is optional either way.
func ConfigPath(name string) (string, error) {
	path := name
	if !filepath.IsAbs(path) {
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("could not find config directory: %w", err)
			}
			configHome = filepath.Join(home, ".config")
		}
		path = filepath.Join(configHome, "waykey", name)
	}
	if filepath.Ext(path) == "" {
		path += ".yaml"
	}
	return path, nil
}

// Load reads and validates the named configuration. A missing file, an
// unknown field, an invalid chord token, or a malformed entry all fail
// the load; nothing is deferred to match time.
func Load(name string) (*Config, error) {
	path, err := ConfigPath(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates configuration bytes.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.Menu.validate(); err != nil {
		return nil, err
	}
	if cfg.Menu.Legacy {
		slog.Warn("menu uses the deprecated mapping format; switch to a list of entries with a \"key\" field")
	}
	return cfg, nil
}

// MenuPage returns the configured entries as an immutable menu page.
func (c *Config) MenuPage() menu.Page {
	return c.Menu.page()
}
