package display

import (
	"fmt"
	"log/slog"

	"github.com/diamondburned/gotk4/pkg/cairo"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	layershell "github.com/diamondburned/gotk4-layer-shell/pkg/gtk4layershell"

	"github.com/waykey/waykey/internal/config"
	"github.com/waykey/waykey/internal/keys"
	"github.com/waykey/waykey/internal/menu"
	"github.com/waykey/waykey/internal/render"
	"github.com/waykey/waykey/internal/session"
)

const appID = "io.github.waykey.waykey"

// The window must not paint its themed background: the renderer owns
// every pixel, including the transparent rounded corners.
const baseCSS = `window { background: transparent; }`

// App owns the GTK application and the single popup window. It
// implements session.Backend; every signal handler runs on the GTK main
// loop, so session dispatch is strictly serial.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	app  *gtk.Application
	win  *gtk.Window
	area *gtk.DrawingArea
	sess *session.Session
	nav  *menu.Nav

	current      *render.Canvas
	currentScale int
	lastScale    int

	seats    map[gdk.Seater]session.SeatID
	nextSeat int

	inhibited int
	quitting  bool
	startErr  error
}

// New creates the backend for a validated configuration.
func New(cfg *config.Config, nav *menu.Nav, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		cfg:       cfg,
		logger:    logger,
		nav:       nav,
		lastScale: 1,
		seats:     make(map[gdk.Seater]session.SeatID),
	}
}

// Run blocks on the GTK main loop until the session terminates and
// returns the session's terminal status.
func (a *App) Run() error {
	a.app = gtk.NewApplication(appID, 0)
	a.app.ConnectActivate(a.activate)

	// Arguments were already handled by the CLI layer.
	a.app.Run(nil)

	if a.startErr != nil {
		return a.startErr
	}
	if a.sess != nil {
		return a.sess.Err()
	}
	return nil
}

func (a *App) activate() {
	if !layershell.IsSupported() {
		a.fail(fmt.Errorf("wlr-layer-shell is not supported by this compositor"))
		return
	}

	display := gdk.DisplayGetDefault()
	if display == nil {
		a.fail(fmt.Errorf("no display available"))
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(baseCSS)
	gtk.StyleContextAddProviderForDisplay(display, provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)

	a.sess = session.New(session.Options{
		Backend:          a,
		Renderer:         render.NewRenderer(a.cfg),
		Canvases:         render.CanvasFactory{},
		Nav:              a.nav,
		Logger:           a.logger,
		InhibitShortcuts: a.cfg.InhibitCompositorKeyboardShortcuts,
		CloseOnEscape:    a.cfg.CloseOnEscape,
	})
	width, height := a.sess.InitialSize()

	a.win = gtk.NewWindow()
	a.win.SetApplication(a.app)
	a.win.SetDecorated(false)
	a.win.SetResizable(false)
	a.win.SetDefaultSize(width, height)

	layershell.InitForWindow(a.win)
	layershell.SetLayer(a.win, layershell.LayerShellLayerOverlay)
	layershell.SetNamespace(a.win, "waykey")
	layershell.SetKeyboardMode(a.win, layershell.LayerShellKeyboardModeExclusive)
	layershell.SetExclusiveZone(a.win, 0)
	a.applyAnchor()

	a.area = gtk.NewDrawingArea()
	a.area.SetContentWidth(width)
	a.area.SetContentHeight(height)
	a.area.SetDrawFunc(a.draw)
	a.win.SetChild(a.area)

	// The drawing area's allocation is the authoritative surface size.
	a.area.ConnectResize(func(w, h int) {
		a.dispatch(session.Configure{Width: w, Height: h})
	})

	a.win.ConnectCloseRequest(func() bool {
		a.dispatch(session.Closed{})
		return false
	})

	keyCtrl := gtk.NewEventControllerKey()
	keyCtrl.ConnectKeyPressed(func(keyval, keycode uint, state gdk.ModifierType) bool {
		// Modifier state always precedes the press that uses it.
		a.dispatch(session.Modifiers{State: modifierState(state)})
		a.dispatch(session.KeyPress{Sym: keys.Keysym(keyval)})
		return true
	})
	a.win.AddController(keyCtrl)

	a.win.NotifyProperty("scale-factor", func() {
		a.notifyScale()
	})

	for _, seat := range display.ListSeats() {
		a.seatAdded(seat)
	}
	display.ConnectSeatAdded(a.seatAdded)
	display.ConnectSeatRemoved(a.seatRemoved)

	a.win.Present()
	a.notifyScale()
}

// dispatch feeds one event into the session and quits the main loop
// once the session flags exit.
func (a *App) dispatch(ev session.Event) {
	if a.quitting || a.sess == nil {
		return
	}
	a.sess.Dispatch(ev)
}

func (a *App) notifyScale() {
	scale := a.win.ScaleFactor()
	if scale < 1 {
		scale = 1
	}
	if scale != a.lastScale {
		a.lastScale = scale
		a.dispatch(session.Scale{Factor: scale})
	}
}

func (a *App) applyAnchor() {
	top, bottom, left, right := a.cfg.Anchor.Edges()
	layershell.SetAnchor(a.win, layershell.LayerShellEdgeTop, top)
	layershell.SetAnchor(a.win, layershell.LayerShellEdgeBottom, bottom)
	layershell.SetAnchor(a.win, layershell.LayerShellEdgeLeft, left)
	layershell.SetAnchor(a.win, layershell.LayerShellEdgeRight, right)
	layershell.SetMargin(a.win, layershell.LayerShellEdgeTop, a.cfg.MarginTop)
	layershell.SetMargin(a.win, layershell.LayerShellEdgeBottom, a.cfg.MarginBottom)
	layershell.SetMargin(a.win, layershell.LayerShellEdgeLeft, a.cfg.MarginLeft)
	layershell.SetMargin(a.win, layershell.LayerShellEdgeRight, a.cfg.MarginRight)
}

// draw blits the last presented canvas onto the widget. The canvas is
// in physical pixels while the widget context is logical, hence the
// inverse scale.
func (a *App) draw(area *gtk.DrawingArea, cr *cairo.Context, w, h int) {
	if a.current == nil {
		return
	}
	cr.Save()
	if a.currentScale > 1 {
		inv := 1.0 / float64(a.currentScale)
		cr.Scale(inv, inv)
	}
	cr.SetSourceSurface(a.current.Surface(), 0, 0)
	cr.Paint()
	cr.Restore()
}

func (a *App) fail(err error) {
	a.logger.Error("startup failed", "error", err)
	a.startErr = err
	a.quitting = true
	a.app.Quit()
}

// RequestSize proposes a new logical size; the compositor answers with
// a resize, which arrives as a Configure event.
func (a *App) RequestSize(w, h int) {
	a.win.SetDefaultSize(w, h)
	a.area.SetContentWidth(w)
	a.area.SetContentHeight(h)
}

// RequestFrame delivers exactly one Frame event on the next frame-clock
// tick.
func (a *App) RequestFrame() {
	a.win.AddTickCallback(func(widget gtk.Widgetter, clock gdk.FrameClocker) bool {
		a.dispatch(session.Frame{})
		return false
	})
}

// Present stores the drawn canvas and schedules a widget redraw.
func (a *App) Present(c session.Canvas, scale int) {
	canvas, ok := c.(*render.Canvas)
	if !ok {
		a.logger.Error("present: unexpected canvas type", "type", fmt.Sprintf("%T", c))
		return
	}
	a.current = canvas
	a.currentScale = scale
	a.area.QueueDraw()
}

// Quit stops the main loop. Events already queued behind the current
// one are dropped by the dispatch guard.
func (a *App) Quit() {
	if a.quitting {
		return
	}
	a.quitting = true
	a.app.Quit()
}

func modifierState(state gdk.ModifierType) keys.ModifierState {
	return keys.ModifierState{
		Ctrl:  state&gdk.ControlMask != 0,
		Alt:   state&gdk.AltMask != 0,
		Super: state&gdk.SuperMask != 0,
	}
}
