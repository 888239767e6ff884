package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Transparent is fully transparent black, used to clear the canvas.
var Transparent = Color{}

// ParseColor parses "#rrggbb", "#rrggbbaa", with an optional "0x"
// prefix instead of "#". Alpha defaults to opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// MustColor parses a color literal and panics on failure. For use with
// built-in defaults only.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// UnmarshalYAML decodes a color from its string form.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
