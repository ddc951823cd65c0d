package starfield

// Surface is a 2D raster target. Alpha arguments are in [0, 1].
type Surface interface {
	// Size reports the current drawing dimensions.
	Size() Bounds
	// Clear wipes the previous frame.
	Clear()
	FillCircle(center Vec2, radius float64, c Color, alpha float64)
	// FillGlow paints a radial gradient from alpha at center to fully
	// transparent at radius.
	FillGlow(center Vec2, radius float64, c Color, alpha float64)
	StrokeLine(from, to Vec2, width float64, c Color, alpha float64)
}

// Flusher is implemented by surfaces that buffer a frame and need an explicit
// present step, such as terminal screens.
type Flusher interface {
	Flush()
}

// Draw clears s and paints every particle body, adding a glow to particles
// larger than cfg.GlowThreshold.
func Draw(particles []Particle, s Surface, cfg Config) {
	s.Clear()
	for i := range particles {
		p := &particles[i]
		s.FillCircle(p.Pos, p.Radius, cfg.StarColor, p.Opacity)
		if p.Radius > cfg.GlowThreshold {
			s.FillGlow(p.Pos, p.Radius*cfg.GlowSpread, cfg.GlowColor, p.Opacity*cfg.GlowAlpha)
		}
	}
}

// RenderFrame draws one complete frame: bodies and glows first, links on top.
func RenderFrame(particles []Particle, s Surface, cfg Config) {
	Draw(particles, s, cfg)
	DrawLinks(particles, s, cfg)
	if f, ok := s.(Flusher); ok {
		f.Flush()
	}
}
