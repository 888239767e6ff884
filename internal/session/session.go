package session

import (
	"log/slog"

	"github.com/waykey/waykey/internal/keys"
	"github.com/waykey/waykey/internal/menu"
)

// Options configures a Session.
type Options struct {
	Backend  Backend
	Renderer Renderer
	Canvases CanvasFactory
	Nav      *menu.Nav
	Spawner  Spawner // defaults to DetachedSpawner
	Logger   *slog.Logger

	// InhibitShortcuts acquires a per-seat keyboard-shortcuts
	// inhibitor while the popup is up.
	InhibitShortcuts bool
	// CloseOnEscape treats Escape as an implicit quit chord.
	CloseOnEscape bool
}

// Session owns the popup surface state: the configure handshake, the
// damage flag, the buffer pool, per-seat resources, and the navigation
// cursor. It is mutated only from Dispatch.
type Session struct {
	backend  Backend
	renderer Renderer
	pool     *Pool
	nav      *menu.Nav
	spawner  Spawner
	logger   *slog.Logger

	inhibitShortcuts bool
	closeOnEscape    bool

	width, height int
	scale         int
	configured    bool
	damaged       bool
	exit          bool
	err           error

	mods    keys.ModifierState
	current Canvas

	inhibitors map[SeatID]Inhibitor
	keyboard   Keyboard
}

// New creates a session positioned at the navigation cursor's current
// page. The surface starts unconfigured and damaged.
func New(opts Options) *Session {
	spawner := opts.Spawner
	if spawner == nil {
		spawner = DetachedSpawner{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		backend:          opts.Backend,
		renderer:         opts.Renderer,
		pool:             NewPool(opts.Canvases),
		nav:              opts.Nav,
		spawner:          spawner,
		logger:           logger,
		inhibitShortcuts: opts.InhibitShortcuts,
		closeOnEscape:    opts.CloseOnEscape,
		scale:            1,
		damaged:          true,
		inhibitors:       make(map[SeatID]Inhibitor),
	}
}

// InitialSize measures the starting page. The backend requests this
// size when creating the surface, before the first configure.
func (s *Session) InitialSize() (w, h int) {
	return s.renderer.Measure(s.nav.Page())
}

// Exiting reports whether the event loop should stop.
func (s *Session) Exiting() bool {
	return s.exit
}

// Err returns the fatal error that ended the session, if any.
func (s *Session) Err() error {
	return s.err
}

// Dispatch handles one event to completion. It is the only mutation
// path; the backend calls it serially from its main loop.
func (s *Session) Dispatch(ev Event) {
	if s.exit {
		return
	}

	switch ev := ev.(type) {
	case Configure:
		s.width, s.height = ev.Width, ev.Height
		s.configured = true
		s.draw()

	case Closed:
		s.quit()

	case Frame:
		s.draw()

	case Scale:
		if ev.Factor != s.scale && ev.Factor > 0 {
			s.scale = ev.Factor
			s.damaged = true
			s.backend.RequestFrame()
		}

	case SeatAdded:
		s.addSeat(ev.Seat)

	case SeatRemoved:
		s.removeSeat(ev.Seat)

	case KeyboardCapability:
		s.keyboardCapability(ev)

	case Modifiers:
		s.mods = ev.State

	case KeyPress:
		s.keyPress(ev.Sym)
	}
}

// draw paints the current page. It is a no-op before the first
// configure and whenever the surface is clean; after painting it clears
// the damage flag and requests the next frame callback, so redraws are
// paced to compositor display ticks.
func (s *Session) draw() {
	if !s.configured || !s.damaged {
		return
	}

	canvas, err := s.pool.Acquire(s.width*s.scale, s.height*s.scale)
	if err != nil {
		s.fail(err)
		return
	}
	if err := s.renderer.Render(s.nav.Page(), canvas, s.scale); err != nil {
		s.fail(err)
		return
	}

	s.damaged = false
	s.backend.RequestFrame()
	s.backend.Present(canvas, s.scale)

	if s.current != nil {
		s.pool.Release(s.current)
	}
	s.current = canvas
}

func (s *Session) keyPress(sym keys.Keysym) {
	sym = keys.NormalizeKeysym(sym)

	if s.closeOnEscape && sym == keys.KeysymEscape {
		s.quit()
		return
	}

	action := menu.Resolve(s.nav.Page(), sym, s.mods)
	if action == nil {
		// Unmatched presses are not errors.
		return
	}
	s.handleAction(action)
}

func (s *Session) handleAction(action menu.Action) {
	switch action := action.(type) {
	case menu.Quit:
		s.quit()

	case menu.Exec:
		s.logger.Debug("spawning command", "cmd", action.Cmd, "keep_open", action.KeepOpen)
		if err := s.spawner.Spawn(action.Cmd); err != nil {
			s.fail(err)
			return
		}
		if !action.KeepOpen {
			s.quit()
		}

	case menu.Submenu:
		s.nav.Enter(action.Page)
		w, h := s.renderer.Measure(action.Page)
		s.width, s.height = w, h
		s.damaged = true
		s.backend.RequestSize(w, h)
		// A same-size page produces no configure, so the repaint must
		// be paced off a frame callback instead.
		s.backend.RequestFrame()
	}
}

func (s *Session) addSeat(seat SeatID) {
	if !s.inhibitShortcuts {
		return
	}
	if _, held := s.inhibitors[seat]; held {
		return
	}
	inhibitor, err := s.backend.InhibitShortcuts(seat)
	if err != nil {
		s.logger.Warn("failed to inhibit compositor shortcuts", "seat", seat, "error", err)
		return
	}
	s.inhibitors[seat] = inhibitor
}

func (s *Session) removeSeat(seat SeatID) {
	if inhibitor, held := s.inhibitors[seat]; held {
		inhibitor.Release()
		delete(s.inhibitors, seat)
	}
}

// keyboardCapability tracks at most one keyboard handle. A single modal
// popup only ever has one focused keyboard.
func (s *Session) keyboardCapability(ev KeyboardCapability) {
	if ev.Present {
		if s.keyboard != nil {
			return
		}
		keyboard, err := s.backend.BindKeyboard(ev.Seat)
		if err != nil {
			s.logger.Warn("failed to bind keyboard", "seat", ev.Seat, "error", err)
			return
		}
		s.keyboard = keyboard
		return
	}
	if s.keyboard != nil {
		s.keyboard.Release()
		s.keyboard = nil
	}
}

func (s *Session) quit() {
	s.exit = true
	s.releaseSeats()
	s.backend.Quit()
}

func (s *Session) fail(err error) {
	s.logger.Error("session error", "error", err)
	s.err = err
	s.exit = true
	s.releaseSeats()
	s.backend.Quit()
}

func (s *Session) releaseSeats() {
	for seat, inhibitor := range s.inhibitors {
		inhibitor.Release()
		delete(s.inhibitors, seat)
	}
	if s.keyboard != nil {
		s.keyboard.Release()
		s.keyboard = nil
	}
}
