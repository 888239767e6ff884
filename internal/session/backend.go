package session

import "github.com/waykey/waykey/internal/menu"

// Canvas is a backing pixel buffer. Its size is in physical pixels
// (logical size multiplied by the output scale).
type Canvas interface {
	Size() (w, h int)
}

// CanvasFactory allocates canvases. The display backend provides one
// backed by image surfaces; tests provide fakes.
type CanvasFactory interface {
	NewCanvas(w, h int) (Canvas, error)
}

// Inhibitor is a held keyboard-shortcuts inhibitor, scoped to one
// (surface, seat) pair.
type Inhibitor interface {
	Release()
}

// Keyboard is a bound keyboard input handle.
type Keyboard interface {
	Release()
}

// Backend is the session's view of the display surface. All calls are
// made from the event-handling path.
type Backend interface {
	// RequestSize proposes a new logical surface size and commits,
	// starting a configure round-trip.
	RequestSize(w, h int)
	// RequestFrame asks for exactly one Frame event at the next
	// compositor display tick.
	RequestFrame()
	// Present attaches the drawn canvas to the surface and commits.
	Present(c Canvas, scale int)
	// InhibitShortcuts acquires a shortcut inhibitor for the seat.
	InhibitShortcuts(seat SeatID) (Inhibitor, error)
	// BindKeyboard binds the seat's keyboard.
	BindKeyboard(seat SeatID) (Keyboard, error)
	// Quit stops event delivery. The main loop is not re-entered after
	// the current event completes.
	Quit()
}

// Renderer measures and paints pages.
type Renderer interface {
	// Measure returns the logical surface size the page needs.
	Measure(page menu.Page) (w, h int)
	// Render draws the page onto the canvas at the given scale.
	Render(page menu.Page, c Canvas, scale int) error
}

// Spawner starts a detached child process for a shell command. The
// child must outlive this process and inherit no stdio.
type Spawner interface {
	Spawn(command string) error
}
