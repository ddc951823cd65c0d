package starfield

import "math"

// LinkAlpha returns the stroke alpha for two particles distance apart, and
// false when they are too far apart to be linked.
func LinkAlpha(distance float64, cfg Config) (float64, bool) {
	if cfg.LinkDistance <= 0 || distance >= cfg.LinkDistance {
		return 0, false
	}
	return cfg.LinkAlpha * (1 - distance/cfg.LinkDistance), true
}

// DrawLinks strokes a line between every unordered pair closer than
// cfg.LinkDistance. Quadratic in len(particles); Config.MaxCount bounds it.
func DrawLinks(particles []Particle, s Surface, cfg Config) {
	limit := cfg.LinkDistance * cfg.LinkDistance
	for i := 0; i < len(particles); i++ {
		a := particles[i].Pos
		for j := i + 1; j < len(particles); j++ {
			b := particles[j].Pos
			dx, dy := a.X-b.X, a.Y-b.Y
			sq := dx*dx + dy*dy
			if sq >= limit {
				continue
			}
			alpha, ok := LinkAlpha(math.Sqrt(sq), cfg)
			if !ok {
				continue
			}
			s.StrokeLine(a, b, cfg.LinkWidth, cfg.LinkColor, alpha)
		}
	}
}
