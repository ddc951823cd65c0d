// Package termfield runs the galaxy field on a terminal through tcell.
//
// The field keeps working in pixel units; each terminal cell stands for a
// CellWidth×CellHeight block of them.
package termfield

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/nxc/galaxy-portfolio/internal/starfield"
)

const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

type cell struct {
	r    rune
	fg   [3]float64
	bg   [3]float64
	star bool
}

// Surface buffers a frame of cells and presents it on Flush.
type Surface struct {
	screen       tcell.Screen
	cellW, cellH float64
	cols, rows   int
	cells        []cell
}

func NewSurface(screen tcell.Screen, cellW, cellH float64) *Surface {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	s := &Surface{screen: screen, cellW: cellW, cellH: cellH}
	cols, rows := screen.Size()
	s.resizeCells(cols, rows)
	return s
}

func (s *Surface) resizeCells(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	s.cells = make([]cell, s.cols*s.rows)
}

func (s *Surface) SetSize(b starfield.Bounds) {
	cols := int(math.Round(b.Width / s.cellW))
	rows := int(math.Round(b.Height / s.cellH))
	if cols == s.cols && rows == s.rows {
		return
	}
	s.resizeCells(cols, rows)
}

func (s *Surface) Context() (starfield.Surface, bool) {
	return s, true
}

func (s *Surface) Size() starfield.Bounds {
	return starfield.Bounds{Width: float64(s.cols) * s.cellW, Height: float64(s.rows) * s.cellH}
}

func (s *Surface) Clear() {
	clear(s.cells)
}

func (s *Surface) at(p starfield.Vec2) (*cell, bool) {
	col, row := int(p.X/s.cellW), int(p.Y/s.cellH)
	if p.X < 0 || p.Y < 0 || col >= s.cols || row >= s.rows {
		return nil, false
	}
	return &s.cells[row*s.cols+col], true
}

func (s *Surface) FillCircle(center starfield.Vec2, radius float64, c starfield.Color, alpha float64) {
	ce, ok := s.at(center)
	if !ok {
		return
	}
	// several stars can share a cell; the brighter one wins
	lum := alpha * float64(int(c.R)+int(c.G)+int(c.B)) / 3
	if ce.star && lum <= (ce.fg[0]+ce.fg[1]+ce.fg[2])/3 {
		return
	}
	ce.star = true
	ce.r = starGlyph(radius)
	ce.fg = scale(c, alpha)
}

func starGlyph(radius float64) rune {
	switch {
	case radius < 1:
		return '·'
	case radius < 1.5:
		return '•'
	default:
		return '✦'
	}
}

// FillGlow tints the background of every cell whose center lies inside the
// glow, weighted by distance from the center.
func (s *Surface) FillGlow(center starfield.Vec2, radius float64, c starfield.Color, alpha float64) {
	if radius <= 0 {
		return
	}
	home := -1
	if _, ok := s.at(center); ok {
		home = int(center.Y/s.cellH)*s.cols + int(center.X/s.cellW)
	}
	c0 := max(int((center.X-radius)/s.cellW), 0)
	c1 := min(int((center.X+radius)/s.cellW), s.cols-1)
	r0 := max(int((center.Y-radius)/s.cellH), 0)
	r1 := min(int((center.Y+radius)/s.cellH), s.rows-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			idx := row*s.cols + col
			cx := (float64(col) + 0.5) * s.cellW
			cy := (float64(row) + 0.5) * s.cellH
			falloff := 1 - math.Hypot(cx-center.X, cy-center.Y)/radius
			if falloff <= 0 {
				if idx != home {
					continue
				}
				// glows are smaller than a cell; the star's own cell still shows one
				falloff = 0.5
			}
			blend(&s.cells[idx].bg, scale(c, alpha*falloff))
		}
	}
}

// StrokeLine walks the cells between both ends. Link cells never replace a
// star.
func (s *Surface) StrokeLine(from, to starfield.Vec2, _ float64, c starfield.Color, alpha float64) {
	x0, y0 := int(from.X/s.cellW), int(from.Y/s.cellH)
	x1, y1 := int(to.X/s.cellW), int(to.Y/s.cellH)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	fg := scale(c, alpha)
	for {
		if x0 >= 0 && y0 >= 0 && x0 < s.cols && y0 < s.rows {
			ce := &s.cells[y0*s.cols+x0]
			if !ce.star {
				ce.r = '.'
				blend(&ce.fg, fg)
			}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Flush writes the buffered frame to the screen and shows it.
func (s *Surface) Flush() {
	s.screen.Clear()
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			ce := s.cells[row*s.cols+col]
			if ce.r == 0 && ce.bg == [3]float64{} {
				continue
			}
			r := ce.r
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(rgb(ce.fg)).Background(rgb(ce.bg))
			s.screen.SetContent(col, row, r, nil, style)
		}
	}
	s.screen.Show()
}

func scale(c starfield.Color, alpha float64) [3]float64 {
	return [3]float64{float64(c.R) * alpha, float64(c.G) * alpha, float64(c.B) * alpha}
}

func blend(dst *[3]float64, add [3]float64) {
	for i := range dst {
		dst[i] = math.Min(255, dst[i]+add[i])
	}
}

func rgb(v [3]float64) tcell.Color {
	return tcell.NewRGBColor(int32(v[0]), int32(v[1]), int32(v[2]))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
