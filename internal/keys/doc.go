// Package keys models key chords: a keysym plus an exact set of held
// modifiers, parsed from "+"-joined token strings such as "ctrl+x" or
// "logo+F2". A chord may carry several alternatives, any of which is
// accepted during matching.
package keys
