// Package raster renders the galaxy field into an offscreen image.
package raster

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/nxc/galaxy-portfolio/internal/starfield"
)

// Surface is both the starfield.Canvas and its drawing context. Clear paints
// the backdrop gradient, so encoded stills look like the live page.
type Surface struct {
	dc           *gg.Context
	inner, outer starfield.Color
}

func New(width, height int, inner, outer starfield.Color) *Surface {
	return &Surface{
		dc:    gg.NewContext(max(width, 1), max(height, 1)),
		inner: inner,
		outer: outer,
	}
}

func (s *Surface) SetSize(b starfield.Bounds) {
	w, h := int(math.Ceil(b.Width)), int(math.Ceil(b.Height))
	w, h = max(w, 1), max(h, 1)
	if w == s.dc.Width() && h == s.dc.Height() {
		return
	}
	s.dc = gg.NewContext(w, h)
}

func (s *Surface) Context() (starfield.Surface, bool) {
	return s, true
}

func (s *Surface) Size() starfield.Bounds {
	return starfield.Bounds{Width: float64(s.dc.Width()), Height: float64(s.dc.Height())}
}

// Clear paints an ellipse-at-bottom style gradient from inner to outer.
func (s *Surface) Clear() {
	w, h := float64(s.dc.Width()), float64(s.dc.Height())
	grad := gg.NewRadialGradient(w/2, h, 0, w/2, h, math.Max(w, h))
	grad.AddColorStop(0, nrgba(s.inner, 1))
	grad.AddColorStop(1, nrgba(s.outer, 1))
	s.dc.SetFillStyle(grad)
	s.dc.DrawRectangle(0, 0, w, h)
	s.dc.Fill()
}

func (s *Surface) FillCircle(center starfield.Vec2, radius float64, c starfield.Color, alpha float64) {
	s.dc.SetColor(nrgba(c, alpha))
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.dc.Fill()
}

func (s *Surface) FillGlow(center starfield.Vec2, radius float64, c starfield.Color, alpha float64) {
	grad := gg.NewRadialGradient(center.X, center.Y, 0, center.X, center.Y, radius)
	grad.AddColorStop(0, nrgba(c, alpha))
	grad.AddColorStop(1, nrgba(c, 0))
	s.dc.SetFillStyle(grad)
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.dc.Fill()
}

func (s *Surface) StrokeLine(from, to starfield.Vec2, width float64, c starfield.Color, alpha float64) {
	s.dc.SetColor(nrgba(c, alpha))
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	s.dc.Stroke()
}

func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

func nrgba(c starfield.Color, alpha float64) color.NRGBA {
	a := math.Round(math.Max(0, math.Min(1, alpha)) * 255)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// Still seeds a field on a width×height surface, advances it frames times
// and draws the result.
func Still(width, height, frames int, cfg starfield.Config, rng starfield.Rand) *Surface {
	s := New(width, height, cfg.BackgroundInner, cfg.BackgroundOuter)
	bounds := s.Size()
	particles := starfield.Initialize(cfg.Count, bounds, cfg, rng)
	for i := 0; i < frames; i++ {
		starfield.Advance(particles, bounds, cfg)
	}
	starfield.RenderFrame(particles, s, cfg)
	return s
}
