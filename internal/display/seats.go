package display

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"

	"github.com/waykey/waykey/internal/session"
)

// seatAdded registers a seat with the session and reports its current
// keyboard capability.
func (a *App) seatAdded(seat gdk.Seater) {
	if _, known := a.seats[seat]; known {
		return
	}
	a.nextSeat++
	id := session.SeatID(fmt.Sprintf("seat-%d", a.nextSeat))
	a.seats[seat] = id
	a.dispatch(session.SeatAdded{Seat: id})

	base := gdk.BaseSeat(seat)
	hasKeyboard := base.Capabilities()&gdk.SeatCapabilityKeyboard != 0
	a.dispatch(session.KeyboardCapability{Seat: id, Present: hasKeyboard})
}

func (a *App) seatRemoved(seat gdk.Seater) {
	id, known := a.seats[seat]
	if !known {
		return
	}
	delete(a.seats, seat)
	a.dispatch(session.KeyboardCapability{Seat: id, Present: false})
	a.dispatch(session.SeatRemoved{Seat: id})
}

// inhibitHandle is one session-held reference to the toplevel's
// system-shortcuts inhibition. GDK inhibits per toplevel rather than
// per seat, so references are counted and the inhibition is restored
// when the last one is released.
type inhibitHandle struct {
	app      *App
	released bool
}

func (h *inhibitHandle) Release() {
	if h.released {
		return
	}
	h.released = true
	h.app.inhibited--
	if h.app.inhibited == 0 {
		if toplevel := h.app.toplevel(); toplevel != nil {
			toplevel.RestoreSystemShortcuts()
		}
	}
}

// InhibitShortcuts asks the compositor to deliver shortcuts such as
// Alt+Tab to the popup instead of handling them itself.
func (a *App) InhibitShortcuts(seat session.SeatID) (session.Inhibitor, error) {
	toplevel := a.toplevel()
	if toplevel == nil {
		return nil, fmt.Errorf("window has no toplevel surface yet")
	}
	if a.inhibited == 0 {
		toplevel.InhibitSystemShortcuts(nil)
	}
	a.inhibited++
	return &inhibitHandle{app: a}, nil
}

// keyboardHandle exists for session bookkeeping only. GTK routes key
// events through the window's event controller, so there is no device
// resource to hold.
type keyboardHandle struct{}

func (keyboardHandle) Release() {}

// BindKeyboard acknowledges the seat's keyboard. Key events arrive via
// the window's key event controller regardless.
func (a *App) BindKeyboard(seat session.SeatID) (session.Keyboard, error) {
	return keyboardHandle{}, nil
}

func (a *App) toplevel() gdk.Topleveller {
	if a.win == nil {
		return nil
	}
	surface := a.win.Surface()
	if surface == nil {
		return nil
	}
	toplevel, ok := surface.(gdk.Topleveller)
	if !ok {
		return nil
	}
	return toplevel
}
