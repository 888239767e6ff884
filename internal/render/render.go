package render

import (
	"fmt"
	"math"

	"github.com/diamondburned/gotk4/pkg/cairo"
	"github.com/diamondburned/gotk4/pkg/pango"
	"github.com/diamondburned/gotk4/pkg/pangocairo"

	"github.com/waykey/waykey/internal/config"
	"github.com/waykey/waykey/internal/menu"
	"github.com/waykey/waykey/internal/session"
)

// Canvas is a cairo image surface sized in physical pixels. It
// satisfies session.Canvas.
type Canvas struct {
	surface *cairo.Surface
	w, h    int
}

// Size returns the canvas size in physical pixels.
func (c *Canvas) Size() (int, int) {
	return c.w, c.h
}

// Surface exposes the backing surface for presentation.
func (c *Canvas) Surface() *cairo.Surface {
	return c.surface
}

// CanvasFactory allocates ARGB image surfaces.
type CanvasFactory struct{}

// NewCanvas allocates a canvas of w by h physical pixels.
func (CanvasFactory) NewCanvas(w, h int) (session.Canvas, error) {
	surface := cairo.CreateImageSurface(cairo.FormatARGB32, w, h)
	if surface == nil {
		return nil, fmt.Errorf("could not allocate %dx%d image surface", w, h)
	}
	return &Canvas{surface: surface, w: w, h: h}, nil
}

// Renderer paints menu pages: transparent base, rounded panel with a
// border, and per-entry chord, separator, and description text.
type Renderer struct {
	cfg     *config.Config
	font    *pango.FontDescription
	scratch *measureContext
}

// measureContext holds a throwaway surface whose pango layout is used
// for text measurement only.
type measureContext struct {
	layout *pango.Layout
}

func (m *measureContext) TextSize(text string) (float64, float64) {
	m.layout.SetText(text, -1)
	w, h := m.layout.PixelSize()
	return float64(w), float64(h)
}

// NewRenderer builds a renderer for the given configuration.
func NewRenderer(cfg *config.Config) *Renderer {
	font := pango.FontDescriptionFromString(cfg.Font)

	scratchSurface := cairo.CreateImageSurface(cairo.FormatARGB32, 1, 1)
	scratchCr := cairo.Create(scratchSurface)
	layout := pangocairo.CreateLayout(scratchCr)
	layout.SetFontDescription(font)

	return &Renderer{
		cfg:     cfg,
		font:    font,
		scratch: &measureContext{layout: layout},
	}
}

// Measure returns the logical size the page needs.
func (r *Renderer) Measure(page menu.Page) (int, int) {
	layout := ComputeLayout(page, r.cfg, r.scratch)
	return layout.Width, layout.Height
}

// Render paints the page onto the canvas. The canvas holds physical
// pixels; all drawing happens in logical coordinates under a scale
// transform.
func (r *Renderer) Render(page menu.Page, c session.Canvas, scale int) error {
	canvas, ok := c.(*Canvas)
	if !ok {
		return fmt.Errorf("render: unexpected canvas type %T", c)
	}

	layout := ComputeLayout(page, r.cfg, r.scratch)
	width := float64(layout.Width)
	height := float64(layout.Height)

	cr := cairo.Create(canvas.surface)
	cr.Scale(float64(scale), float64(scale))

	// Clear to fully transparent so the compositor blends the rounded
	// corners.
	cr.Save()
	cr.SetOperator(cairo.OperatorSource)
	setColor(cr, config.Transparent)
	cr.Paint()
	cr.Restore()

	r.panelPath(cr, width, height)
	setColor(cr, r.cfg.Background)
	cr.FillPreserve()
	setColor(cr, r.cfg.Border)
	cr.SetLineWidth(r.cfg.BorderWidth)
	cr.Stroke()

	textLayout := pangocairo.CreateLayout(cr)
	textLayout.SetFontDescription(r.font)
	setColor(cr, r.cfg.Color)
	for _, frag := range layout.Fragments {
		cr.MoveTo(frag.X, frag.Y)
		textLayout.SetText(frag.Text, -1)
		pangocairo.ShowLayout(cr, textLayout)
	}

	return nil
}

// panelPath traces the rounded panel outline. The border is stroked
// centered on the path, so the path is inset by half the border width.
func (r *Renderer) panelPath(cr *cairo.Context, width, height float64) {
	halfBorder := r.cfg.BorderWidth * 0.5
	radius := r.cfg.CornerR

	cr.NewPath()
	cr.Arc(radius+halfBorder, radius+halfBorder, radius, math.Pi, 1.5*math.Pi)
	cr.Arc(width-radius-halfBorder, radius+halfBorder, radius, 1.5*math.Pi, 2*math.Pi)
	cr.Arc(width-radius-halfBorder, height-radius-halfBorder, radius, 0, 0.5*math.Pi)
	cr.Arc(radius+halfBorder, height-radius-halfBorder, radius, 0.5*math.Pi, math.Pi)
	cr.ClosePath()
}

func setColor(cr *cairo.Context, c config.Color) {
	cr.SetSourceRGBA(c.R, c.G, c.B, c.A)
}
