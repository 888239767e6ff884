package keys

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ModifierState is the exact set of held modifiers required by a chord.
// Matching compares the whole set: a chord requiring only Ctrl does not
// match Ctrl+Alt held.
type ModifierState struct {
	Ctrl  bool
	Alt   bool
	Super bool
}

// SingleChord is one parsed key-plus-modifiers combination.
type SingleChord struct {
	Sym  Keysym
	Repr string
	Mods ModifierState
}

// Chord is an ordered list of accepted alternatives. It matches an
// observed (keysym, modifiers) pair if any alternative equals it.
type Chord struct {
	anyOf []SingleChord
}

// ParseSingle parses a "+"-joined token string into a SingleChord. The
// final token is the base key; preceding tokens are modifier names
// (case-insensitive; "logo" and "mod4" are synonyms). The literal token
// "+" means the plus key with no modifiers.
func ParseSingle(s string) (SingleChord, error) {
	if s == "+" {
		return SingleChord{Sym: KeysymPlus, Repr: "+"}, nil
	}

	parts := strings.Split(s, "+")
	base := parts[len(parts)-1]

	var sym Keysym
	if utf8.RuneCountInString(base) == 1 {
		r, _ := utf8.DecodeRuneInString(base)
		sym = NormalizeKeysym(KeysymFromRune(r))
	} else {
		sym = keysymFromName(base)
	}
	if sym == KeysymNone {
		return SingleChord{}, fmt.Errorf("invalid key %q", base)
	}

	var mods ModifierState
	for _, mod := range parts[:len(parts)-1] {
		switch {
		case strings.EqualFold(mod, "ctrl"):
			mods.Ctrl = true
		case strings.EqualFold(mod, "alt"):
			mods.Alt = true
		case strings.EqualFold(mod, "mod4"), strings.EqualFold(mod, "logo"):
			mods.Super = true
		default:
			return SingleChord{}, fmt.Errorf("unknown modifier %q", mod)
		}
	}

	return SingleChord{Sym: sym, Repr: s, Mods: mods}, nil
}

// Parse parses one token string into a single-alternative Chord.
func Parse(s string) (Chord, error) {
	single, err := ParseSingle(s)
	if err != nil {
		return Chord{}, err
	}
	return Chord{anyOf: []SingleChord{single}}, nil
}

// NewChord builds a Chord from pre-parsed alternatives.
func NewChord(anyOf ...SingleChord) Chord {
	return Chord{anyOf: anyOf}
}

// Matches reports whether any alternative equals the observed pair.
// The observed keysym is expected to be normalized (see NormalizeKeysym).
func (c Chord) Matches(sym Keysym, mods ModifierState) bool {
	for _, single := range c.anyOf {
		if single.Sym == sym && single.Mods == mods {
			return true
		}
	}
	return false
}

// IsZero reports whether the chord has no alternatives.
func (c Chord) IsZero() bool {
	return len(c.anyOf) == 0
}

// String joins the alternatives' display text with " | ".
func (c Chord) String() string {
	reprs := make([]string, len(c.anyOf))
	for i, single := range c.anyOf {
		reprs[i] = single.Repr
	}
	return strings.Join(reprs, " | ")
}

// UnmarshalYAML accepts either a single token string or a sequence of
// alternatives. Parse failures are load-time errors naming the token.
func (c *Chord) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		single, err := ParseSingle(s)
		if err != nil {
			return err
		}
		c.anyOf = []SingleChord{single}
		return nil

	case yaml.SequenceNode:
		var tokens []string
		if err := node.Decode(&tokens); err != nil {
			return err
		}
		anyOf := make([]SingleChord, 0, len(tokens))
		for _, tok := range tokens {
			single, err := ParseSingle(tok)
			if err != nil {
				return err
			}
			anyOf = append(anyOf, single)
		}
		c.anyOf = anyOf
		return nil

	default:
		return fmt.Errorf("line %d: key must be a string or a list of strings", node.Line)
	}
}
