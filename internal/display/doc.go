// Package display is the GTK4 backend behind the session state
// machine. It creates the one layer-shell popup window, translates
// toolkit signals into session events, and presents drawn canvases.
package display
