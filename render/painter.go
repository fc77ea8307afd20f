package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Painter draws world-space primitives onto a Surface through a Camera.
type Painter struct {
	surface Surface
	camera  *Camera
}

// NewPainter binds a surface and camera for one frame.
func NewPainter(surface Surface, camera *Camera) *Painter {
	return &Painter{surface: surface, camera: camera}
}

func (p *Painter) set(x, y int, ch rune, style tcell.Style) {
	w, h := p.surface.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	p.surface.SetContent(x, y, ch, nil, style)
}

// StrokeLine draws a world-space segment, interpolating cells between the
// projected endpoints.
func (p *Painter) StrokeLine(x1, y1, x2, y2 float64, ch rune, style tcell.Style) {
	ax, ay := p.camera.Cell(x1, y1)
	bx, by := p.camera.Cell(x2, y2)
	p.strokeCells(ax, ay, bx, by, ch, style)
}

// strokeCells is Bresenham's line over cell coordinates.
func (p *Painter) strokeCells(x1, y1, x2, y2 int, ch rune, style tcell.Style) {
	dx, dy := abs(x2-x1), -abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		p.set(x1, y1, ch, style)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// FillCircle rasterizes a filled world-space circle. On screen the circle is
// an ellipse in cell coordinates (aspect correction), so cells are tested
// against normalized elliptical containment. Circles smaller than one cell
// still paint their center cell.
func (p *Painter) FillCircle(cx, cy, r float64, ch rune, style tcell.Style) {
	k := p.camera.CellsPerUnit()
	rx := r * k
	ry := r * k * cellAspect
	centerX, centerY := p.camera.Cell(cx, cy)
	if rx < 0.5 || ry < 0.5 {
		p.set(centerX, centerY, ch, style)
		return
	}
	for dy := -int(math.Ceil(ry)); dy <= int(math.Ceil(ry)); dy++ {
		for dx := -int(math.Ceil(rx)); dx <= int(math.Ceil(rx)); dx++ {
			fx := float64(dx) / rx
			fy := float64(dy) / ry
			if fx*fx+fy*fy <= 1.0 {
				p.set(centerX+dx, centerY+dy, ch, style)
			}
		}
	}
}

// StrokeArrow draws a world-space arrow from (x, y) along the given angle:
// a shaft plus two head barbs.
func (p *Painter) StrokeArrow(x, y, angle, length, headSize float64, ch rune, style tcell.Style) {
	dirX, dirY := math.Cos(angle), math.Sin(angle)
	tipX := x + length*dirX
	tipY := y + length*dirY
	p.StrokeLine(x, y, tipX, tipY, ch, style)

	// barbs swept back from the tip, half a head-size to each side
	baseX := tipX - headSize*dirX
	baseY := tipY - headSize*dirY
	perpX, perpY := -dirY*headSize/2, dirX*headSize/2
	p.StrokeLine(tipX, tipY, baseX+perpX, baseY+perpY, ch, style)
	p.StrokeLine(tipX, tipY, baseX-perpX, baseY-perpY, ch, style)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
