package keys

// Keysym is an xkb keysym value. GDK keyvals use the same encoding, so
// values observed from the toolkit compare directly against parsed ones.
type Keysym uint32

// Keysyms referenced outside the parser.
const (
	KeysymNone   Keysym = 0
	KeysymPlus   Keysym = '+'
	KeysymEscape Keysym = 0xff1b
)

// F1..F24 occupy a contiguous keysym block.
const keysymF1 Keysym = 0xffbe

// KeysymFromRune returns the keysym for a single printable character.
// Latin-1 codepoints are their own keysym; everything else uses the
// Unicode-offset encoding.
func KeysymFromRune(r rune) Keysym {
	switch {
	case r >= 0x20 && r <= 0xff:
		return Keysym(r)
	case r > 0xff:
		return Keysym(0x01000000 + uint32(r))
	default:
		return KeysymNone
	}
}

// keysymFromName resolves multi-character key names. Only the function
// keys F1..F24 are recognized, case-insensitively and without zero
// padding.
func keysymFromName(name string) Keysym {
	if len(name) < 2 || len(name) > 3 || (name[0] != 'F' && name[0] != 'f') || name[1] == '0' {
		return KeysymNone
	}
	n := 0
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return KeysymNone
		}
		n = n*10 + int(c-'0')
	}
	if n < 1 || n > 24 {
		return KeysymNone
	}
	return keysymF1 + Keysym(n-1)
}

// NormalizeKeysym folds uppercase Latin letter keysyms to lowercase.
// Chords are stored folded and observed keysyms are folded before
// matching, so Shift never participates in chord identity.
func NormalizeKeysym(sym Keysym) Keysym {
	if (sym >= 'A' && sym <= 'Z') || (sym >= 0xc0 && sym <= 0xde && sym != 0xd7) {
		return sym + 0x20
	}
	return sym
}
