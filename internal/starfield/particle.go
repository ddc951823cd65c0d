// Package starfield implements the animated galaxy backdrop: a fixed set of
// drifting, twinkling particles joined by faint proximity links.
//
// The physics and drawing passes are plain functions over a particle slice.
// Scheduling lives behind FrameDriver and the display behind Surface, so the
// same field runs in a browser canvas, a terminal, or an offscreen image.
package starfield

import (
	"math/rand/v2"
)

type Vec2 struct {
	X, Y float64
}

// Bounds is the drawing surface size in surface units (pixels for canvases).
type Bounds struct {
	Width, Height float64
}

type Particle struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64

	Opacity float64
	// OpacityStep is added to Opacity every frame. Its sign flips at the
	// configured floor and ceiling.
	OpacityStep float64
}

// Rand is the single random source used to seed a field.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Initialize seeds count particles uniformly across b. The same rng state
// always produces the same layout. Count is capped at cfg.MaxCount.
func Initialize(count int, b Bounds, cfg Config, rng Rand) []Particle {
	if count < 0 {
		count = 0
	}
	if cfg.MaxCount > 0 && count > cfg.MaxCount {
		count = cfg.MaxCount
	}

	particles := make([]Particle, count)
	for i := range particles {
		p := &particles[i]
		p.Pos.X = rng.Float64() * b.Width
		p.Pos.Y = rng.Float64() * b.Height
		p.Radius = cfg.MinRadius + rng.Float64()*(cfg.MaxRadius-cfg.MinRadius)
		p.Vel.X = (rng.Float64()*2 - 1) * cfg.Speed
		p.Vel.Y = (rng.Float64()*2 - 1) * cfg.Speed
		p.Opacity = rng.Float64()
		if rng.Float64() > 0.5 {
			p.OpacityStep = cfg.OpacityStep
		} else {
			p.OpacityStep = -cfg.OpacityStep
		}
	}
	return particles
}
