package session

import "github.com/waykey/waykey/internal/keys"

// SeatID identifies a seat for the lifetime of the connection. The
// value is opaque; the backend guarantees stability between the add and
// remove events of the same seat.
type SeatID string

// Event is one compositor-originated occurrence delivered to Dispatch.
type Event interface {
	isEvent()
}

// Configure carries the authoritative surface size. The first Configure
// completes the handshake and permits drawing.
type Configure struct {
	Width, Height int
}

// Closed reports that the surface was closed by the compositor.
type Closed struct{}

// Frame is the compositor's display-tick callback, previously requested
// after a draw.
type Frame struct{}

// Scale reports a change of the output scale factor. Logical size is
// unaffected; backing buffers grow by the factor.
type Scale struct {
	Factor int
}

// SeatAdded reports a newly present seat.
type SeatAdded struct {
	Seat SeatID
}

// SeatRemoved reports a seat going away.
type SeatRemoved struct {
	Seat SeatID
}

// KeyboardCapability reports a seat gaining or losing its keyboard.
type KeyboardCapability struct {
	Seat    SeatID
	Present bool
}

// Modifiers is the most recent modifier update. It applies to the key
// presses that follow it.
type Modifiers struct {
	State keys.ModifierState
}

// KeyPress is a key-press event. Releases are never delivered.
type KeyPress struct {
	Sym keys.Keysym
}

func (Configure) isEvent()          {}
func (Closed) isEvent()             {}
func (Frame) isEvent()              {}
func (Scale) isEvent()              {}
func (SeatAdded) isEvent()          {}
func (SeatRemoved) isEvent()        {}
func (KeyboardCapability) isEvent() {}
func (Modifiers) isEvent()          {}
func (KeyPress) isEvent()           {}
