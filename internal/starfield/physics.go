package starfield

import "math"

// Advance moves every particle one frame forward in place.
//
// Positions wrap toroidally into [0, bound). Opacity walks a triangle wave:
// the step reverses once opacity reaches the floor while falling or the
// ceiling while rising. The flip bounds the wave; the final clamp only trims
// the last step past 0 or 1, since seeded opacities are not step-aligned.
func Advance(particles []Particle, b Bounds, cfg Config) {
	for i := range particles {
		p := &particles[i]

		p.Pos.X = wrap(p.Pos.X+p.Vel.X, b.Width)
		p.Pos.Y = wrap(p.Pos.Y+p.Vel.Y, b.Height)

		p.Opacity += p.OpacityStep
		if (p.OpacityStep < 0 && p.Opacity <= cfg.OpacityFloor) ||
			(p.OpacityStep > 0 && p.Opacity >= cfg.OpacityCeiling) {
			p.OpacityStep = -p.OpacityStep
		}
		p.Opacity = clamp(p.Opacity, 0, 1)
	}
}

// wrap maps v into [0, bound). A value equal to bound wraps to 0.
func wrap(v, bound float64) float64 {
	if bound <= 0 {
		return 0
	}
	if v >= 0 && v < bound {
		return v
	}
	v = math.Mod(v, bound)
	if v < 0 {
		v += bound
	}
	// -tiny + bound can round up to bound
	if v >= bound {
		v = 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
