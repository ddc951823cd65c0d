package starfield

// Viewport reports the host window. DocumentHeight is the full scrollable
// height, which is usually larger than the visible window.
type Viewport interface {
	ViewportWidth() float64
	DocumentHeight() float64
}

// Canvas is the element that owns a Surface's drawing dimensions.
type Canvas interface {
	SetSize(b Bounds)
	// Context returns the drawing surface, or false when the host cannot
	// provide one.
	Context() (Surface, bool)
}

// Sizer keeps a canvas as wide as the viewport and as tall as the document,
// so the field also covers content below the fold.
type Sizer struct {
	Viewport Viewport
	Canvas   Canvas
}

func (z Sizer) Resize() {
	z.Canvas.SetSize(Bounds{
		Width:  z.Viewport.ViewportWidth(),
		Height: z.Viewport.DocumentHeight(),
	})
}
