package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Anchor names the screen edge or corner the popup sticks to. The zero
// value centers the popup.
type Anchor string

// Accepted anchor values.
const (
	AnchorCenter      Anchor = "center"
	AnchorTop         Anchor = "top"
	AnchorBottom      Anchor = "bottom"
	AnchorLeft        Anchor = "left"
	AnchorRight       Anchor = "right"
	AnchorTopLeft     Anchor = "top-left"
	AnchorTopRight    Anchor = "top-right"
	AnchorBottomLeft  Anchor = "bottom-left"
	AnchorBottomRight Anchor = "bottom-right"
)

// Edges reports which screen edges the anchor pins.
func (a Anchor) Edges() (top, bottom, left, right bool) {
	switch a {
	case AnchorTop:
		return true, false, false, false
	case AnchorBottom:
		return false, true, false, false
	case AnchorLeft:
		return false, false, true, false
	case AnchorRight:
		return false, false, false, true
	case AnchorTopLeft:
		return true, false, true, false
	case AnchorTopRight:
		return true, false, false, true
	case AnchorBottomLeft:
		return false, true, true, false
	case AnchorBottomRight:
		return false, true, false, true
	default:
		return false, false, false, false
	}
}

// UnmarshalYAML validates the anchor value at load time.
func (a *Anchor) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch Anchor(s) {
	case AnchorCenter, AnchorTop, AnchorBottom, AnchorLeft, AnchorRight,
		AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight:
		*a = Anchor(s)
		return nil
	default:
		return fmt.Errorf("invalid anchor %q", s)
	}
}
