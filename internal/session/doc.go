// Package session drives the popup surface through its lifecycle:
// configure handshake, damage-gated redraw paced by frame callbacks,
// scale-aware buffer allocation, per-seat keyboard and
// shortcut-inhibitor resources, and key dispatch into the menu.
//
// The session is single-threaded by construction: the display backend
// delivers events one at a time on its main loop and Dispatch handles
// each to completion. No locks, no background goroutines.
package session
