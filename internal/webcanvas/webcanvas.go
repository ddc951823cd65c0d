//go:build js && wasm

// Package webcanvas runs the galaxy field in a browser: an HTML canvas 2D
// context as the Surface, the window as the Host and requestAnimationFrame
// as the FrameDriver.
package webcanvas

import (
	"fmt"
	"math"
	"syscall/js"

	"github.com/nxc/galaxy-portfolio/internal/starfield"
)

func rgba(c starfield.Color, alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.4f)", c.R, c.G, c.B, alpha)
}

// Surface draws through a CanvasRenderingContext2D.
type Surface struct {
	el  js.Value
	ctx js.Value
}

func (s *Surface) Size() starfield.Bounds {
	return starfield.Bounds{
		Width:  s.el.Get("width").Float(),
		Height: s.el.Get("height").Float(),
	}
}

func (s *Surface) Clear() {
	b := s.Size()
	s.ctx.Call("clearRect", 0, 0, b.Width, b.Height)
}

func (s *Surface) FillCircle(center starfield.Vec2, radius float64, c starfield.Color, alpha float64) {
	s.ctx.Call("beginPath")
	s.ctx.Call("arc", center.X, center.Y, radius, 0, 2*math.Pi)
	s.ctx.Set("fillStyle", rgba(c, alpha))
	s.ctx.Call("fill")
}

func (s *Surface) FillGlow(center starfield.Vec2, radius float64, c starfield.Color, alpha float64) {
	grad := s.ctx.Call("createRadialGradient", center.X, center.Y, 0, center.X, center.Y, radius)
	grad.Call("addColorStop", 0, rgba(c, alpha))
	grad.Call("addColorStop", 1, rgba(c, 0))
	s.ctx.Call("beginPath")
	s.ctx.Call("arc", center.X, center.Y, radius, 0, 2*math.Pi)
	s.ctx.Set("fillStyle", grad)
	s.ctx.Call("fill")
}

func (s *Surface) StrokeLine(from, to starfield.Vec2, width float64, c starfield.Color, alpha float64) {
	s.ctx.Call("beginPath")
	s.ctx.Call("moveTo", from.X, from.Y)
	s.ctx.Call("lineTo", to.X, to.Y)
	s.ctx.Set("strokeStyle", rgba(c, alpha))
	s.ctx.Set("lineWidth", width)
	s.ctx.Call("stroke")
}

// Canvas wraps an HTMLCanvasElement.
type Canvas struct {
	el js.Value
}

func (c *Canvas) SetSize(b starfield.Bounds) {
	c.el.Set("width", int(math.Ceil(b.Width)))
	c.el.Set("height", int(math.Ceil(b.Height)))
}

func (c *Canvas) Context() (starfield.Surface, bool) {
	ctx := c.el.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, false
	}
	return &Surface{el: c.el, ctx: ctx}, true
}

// Host is the browser window with the canvas element named by ID.
type Host struct {
	ID string
}

func (h Host) ViewportWidth() float64 {
	return js.Global().Get("innerWidth").Float()
}

// DocumentHeight is the full scroll height so the field covers content
// below the fold.
func (h Host) DocumentHeight() float64 {
	return js.Global().Get("document").Get("documentElement").Get("scrollHeight").Float()
}

func (h Host) Canvas() (starfield.Canvas, bool) {
	el := js.Global().Get("document").Call("getElementById", h.ID)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return &Canvas{el: el}, true
}

func (h Host) OnResize(fn func()) func() {
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	window := js.Global()
	window.Call("addEventListener", "resize", cb)
	return func() {
		window.Call("removeEventListener", "resize", cb)
		cb.Release()
	}
}
