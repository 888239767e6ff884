package session

// Pool reuses canvases between draws. A canvas is reused only when its
// size matches the request exactly; resize and scale changes drop the
// cached buffer and allocate a fresh one.
type Pool struct {
	factory CanvasFactory
	free    []Canvas
}

// NewPool returns a pool allocating through the factory.
func NewPool(factory CanvasFactory) *Pool {
	return &Pool{factory: factory}
}

// Acquire returns a canvas of exactly w by h physical pixels.
func (p *Pool) Acquire(w, h int) (Canvas, error) {
	for i, c := range p.free {
		cw, ch := c.Size()
		if cw == w && ch == h {
			p.free = append(p.free[:i], p.free[i+1:]...)
			return c, nil
		}
	}
	return p.factory.NewCanvas(w, h)
}

// Release returns a canvas to the pool. Stale sizes are kept until the
// next mismatching Acquire cycle discards them.
func (p *Pool) Release(c Canvas) {
	if c == nil {
		return
	}
	// One spare per size class is enough for a single surface.
	for i, old := range p.free {
		ow, oh := old.Size()
		cw, ch := c.Size()
		if ow == cw && oh == ch {
			p.free[i] = c
			return
		}
	}
	p.free = append(p.free, c)
}
