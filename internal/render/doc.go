// Package render measures and paints menu pages. Layout math is pure
// and toolkit-free; painting goes through cairo and pango onto a canvas
// owned by the session.
package render
