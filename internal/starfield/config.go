package starfield

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque RGB triple; alpha travels separately on every draw call.
type Color struct {
	R, G, B uint8
}

// ParseColor accepts "#rrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Config tunes the particle field. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// Count is the number of particles seeded at mount.
	Count int
	// MaxCount caps Count. The link pass is quadratic in the particle count.
	MaxCount int

	// Speed bounds each velocity component to [-Speed, Speed).
	Speed float64
	// MinRadius and MaxRadius bound the uniformly drawn radius.
	MinRadius float64
	MaxRadius float64

	OpacityStep    float64
	OpacityFloor   float64
	OpacityCeiling float64

	// Particles with a radius above GlowThreshold get a glow that fades to
	// transparent at GlowSpread times their radius.
	GlowThreshold float64
	GlowSpread    float64
	GlowAlpha     float64

	LinkDistance float64
	LinkAlpha    float64
	LinkWidth    float64

	StarColor Color
	GlowColor Color
	LinkColor Color

	// Background gradient, center to edge. Only surfaces that paint their
	// own background use it.
	BackgroundInner Color
	BackgroundOuter Color
}

// DefaultConfig matches the galaxy backdrop shipped with the site.
func DefaultConfig() Config {
	blue := Color{R: 147, G: 197, B: 253}
	return Config{
		Count:           200,
		MaxCount:        1000,
		Speed:           0.1,
		MinRadius:       0.5,
		MaxRadius:       2.0,
		OpacityStep:     0.01,
		OpacityFloor:    0.2,
		OpacityCeiling:  1.0,
		GlowThreshold:   1.0,
		GlowSpread:      3,
		GlowAlpha:       0.3,
		LinkDistance:    100,
		LinkAlpha:       0.1,
		LinkWidth:       0.5,
		StarColor:       Color{R: 255, G: 255, B: 255},
		GlowColor:       blue,
		LinkColor:       blue,
		BackgroundInner: Color{R: 0x1b, G: 0x27, B: 0x35},
		BackgroundOuter: Color{R: 0x09, G: 0x0a, B: 0x0f},
	}
}

var errInvalidConfig = errors.New("invalid starfield config")

// Validate reports the first setting that would break the field's invariants.
func (c Config) Validate() error {
	switch {
	case c.MaxCount <= 0:
		return fmt.Errorf("%w: max count %d must be positive", errInvalidConfig, c.MaxCount)
	case c.Count < 0 || c.Count > c.MaxCount:
		return fmt.Errorf("%w: count %d outside [0, %d]", errInvalidConfig, c.Count, c.MaxCount)
	case c.Speed < 0:
		return fmt.Errorf("%w: negative speed %g", errInvalidConfig, c.Speed)
	case c.MinRadius <= 0 || c.MaxRadius < c.MinRadius:
		return fmt.Errorf("%w: radius range [%g, %g)", errInvalidConfig, c.MinRadius, c.MaxRadius)
	case c.OpacityStep <= 0:
		return fmt.Errorf("%w: opacity step %g must be positive", errInvalidConfig, c.OpacityStep)
	case c.OpacityFloor < 0 || c.OpacityCeiling > 1 || c.OpacityFloor >= c.OpacityCeiling:
		return fmt.Errorf("%w: opacity range [%g, %g] must lie in [0, 1]", errInvalidConfig, c.OpacityFloor, c.OpacityCeiling)
	case c.GlowSpread < 1:
		return fmt.Errorf("%w: glow spread %g below 1", errInvalidConfig, c.GlowSpread)
	case c.LinkDistance <= 0:
		return fmt.Errorf("%w: link distance %g must be positive", errInvalidConfig, c.LinkDistance)
	case c.LinkAlpha < 0 || c.LinkAlpha > 1 || c.GlowAlpha < 0 || c.GlowAlpha > 1:
		return fmt.Errorf("%w: alpha values must lie in [0, 1]", errInvalidConfig)
	case c.LinkWidth <= 0:
		return fmt.Errorf("%w: link width %g must be positive", errInvalidConfig, c.LinkWidth)
	}
	return nil
}
