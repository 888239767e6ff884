package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseSingle_RoundTrip(t *testing.T) {
	tests := []struct {
		token string
		sym   Keysym
		mods  ModifierState
	}{
		{"a", 'a', ModifierState{}},
		{"ctrl+a", 'a', ModifierState{Ctrl: true}},
		{"alt+x", 'x', ModifierState{Alt: true}},
		{"mod4+z", 'z', ModifierState{Super: true}},
		{"logo+z", 'z', ModifierState{Super: true}},
		{"ctrl+alt+mod4+q", 'q', ModifierState{Ctrl: true, Alt: true, Super: true}},
		{"F1", keysymF1, ModifierState{}},
		{"f12", keysymF1 + 11, ModifierState{}},
		{"ctrl+F24", keysymF1 + 23, ModifierState{Ctrl: true}},
		{"+", KeysymPlus, ModifierState{}},
		{".", '.', ModifierState{}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			single, err := ParseSingle(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.sym, single.Sym)
			assert.Equal(t, tt.mods, single.Mods)
			assert.Equal(t, tt.token, single.Repr)

			// Parsing then matching against the pair it was parsed
			// from succeeds; any other modifier set fails.
			chord := NewChord(single)
			assert.True(t, chord.Matches(single.Sym, single.Mods))
			other := single.Mods
			other.Ctrl = !other.Ctrl
			assert.False(t, chord.Matches(single.Sym, other))
		})
	}
}

func TestParseSingle_Errors(t *testing.T) {
	_, err := ParseSingle("ctrl+foo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid key "foo"`)

	_, err = ParseSingle("hyper+a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown modifier "hyper"`)

	_, err = ParseSingle("F25")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key")

	_, err = ParseSingle("F0")
	require.Error(t, err)

	// Zero-padded function keys are not aliases.
	_, err = ParseSingle("F01")
	require.Error(t, err)

	_, err = ParseSingle("f09")
	require.Error(t, err)
}

func TestParseSingle_CaseInsensitive(t *testing.T) {
	lower, err := ParseSingle("ctrl+a")
	require.NoError(t, err)
	upper, err := ParseSingle("Ctrl+A")
	require.NoError(t, err)

	assert.Equal(t, lower.Sym, upper.Sym)
	assert.Equal(t, lower.Mods, upper.Mods)
}

func TestChord_Alternatives(t *testing.T) {
	a, err := ParseSingle("a")
	require.NoError(t, err)
	b, err := ParseSingle("b")
	require.NoError(t, err)
	chord := NewChord(a, b)

	assert.True(t, chord.Matches('b', ModifierState{}))
	assert.False(t, chord.Matches('a', ModifierState{Ctrl: true}))
	assert.Equal(t, "a | b", chord.String())
}

func TestChord_UnmarshalYAML(t *testing.T) {
	var scalar Chord
	require.NoError(t, yaml.Unmarshal([]byte(`"ctrl+a"`), &scalar))
	assert.True(t, scalar.Matches('a', ModifierState{Ctrl: true}))

	var list Chord
	require.NoError(t, yaml.Unmarshal([]byte(`["a", "b"]`), &list))
	assert.True(t, list.Matches('a', ModifierState{}))
	assert.True(t, list.Matches('b', ModifierState{}))

	var bad Chord
	err := yaml.Unmarshal([]byte(`"ctrl+bogus"`), &bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key")
}

func TestNormalizeKeysym(t *testing.T) {
	assert.Equal(t, Keysym('a'), NormalizeKeysym('A'))
	assert.Equal(t, Keysym('a'), NormalizeKeysym('a'))
	assert.Equal(t, Keysym('1'), NormalizeKeysym('1'))
	assert.Equal(t, KeysymEscape, NormalizeKeysym(KeysymEscape))
}

func TestKeysymFromRune(t *testing.T) {
	assert.Equal(t, Keysym('a'), KeysymFromRune('a'))
	assert.Equal(t, Keysym(0xe9), KeysymFromRune('é'))
	assert.Equal(t, Keysym(0x01000000+0x0436), KeysymFromRune('ж'))
}
