package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxc/galaxy-portfolio/internal/starfield"
)

var white = starfield.Color{R: 255, G: 255, B: 255}

func TestFillCircleLightsCenter(t *testing.T) {
	cfg := starfield.DefaultConfig()
	s := New(32, 32, cfg.BackgroundInner, cfg.BackgroundOuter)
	s.Clear()

	cornerR, _, _, _ := s.Image().At(0, 0).RGBA()
	s.FillCircle(starfield.Vec2{X: 16, Y: 16}, 4, white, 1)
	r, g, b, _ := s.Image().At(16, 16).RGBA()

	assert.Greater(t, r>>8, uint32(240))
	assert.Greater(t, g>>8, uint32(240))
	assert.Greater(t, b>>8, uint32(240))
	assert.Less(t, cornerR>>8, uint32(64), "backdrop stays dark")
}

func TestSetSizeResizesImage(t *testing.T) {
	s := New(10, 10, white, white)
	s.SetSize(starfield.Bounds{Width: 120.2, Height: 80})
	assert.Equal(t, starfield.Bounds{Width: 121, Height: 80}, s.Size())

	s.SetSize(starfield.Bounds{})
	assert.Equal(t, starfield.Bounds{Width: 1, Height: 1}, s.Size())
}

func TestStillEncodesPNG(t *testing.T) {
	cfg := starfield.DefaultConfig()
	cfg.Count = 50
	s := Still(200, 150, 10, cfg, starfield.NewRand(11))

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestStillIsDeterministic(t *testing.T) {
	cfg := starfield.DefaultConfig()
	cfg.Count = 30

	var a, b bytes.Buffer
	require.NoError(t, Still(64, 64, 5, cfg, starfield.NewRand(2)).EncodePNG(&a))
	require.NoError(t, Still(64, 64, 5, cfg, starfield.NewRand(2)).EncodePNG(&b))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestSurfaceDrivesRenderer(t *testing.T) {
	s := New(1, 1, white, white)
	host := &stillHost{canvas: s, width: 300, height: 900}
	r := starfield.NewRenderer(host, &starfield.TickerDriver{}, starfield.DefaultConfig(), starfield.NewRand(1))

	require.NoError(t, r.Mount())
	defer r.Unmount()
	assert.Equal(t, starfield.Bounds{Width: 300, Height: 900}, s.Size())
}

type stillHost struct {
	canvas        *Surface
	width, height float64
}

func (h *stillHost) ViewportWidth() float64           { return h.width }
func (h *stillHost) DocumentHeight() float64          { return h.height }
func (h *stillHost) Canvas() (starfield.Canvas, bool) { return h.canvas, true }
func (h *stillHost) OnResize(func()) (remove func())  { return func() {} }
