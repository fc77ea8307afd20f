package render

import "math"

// cellAspect compensates for terminal character cells being roughly twice
// as tall as they are wide: world y is compressed by this factor so circles
// come out circular on screen.
const cellAspect = 0.5

// Camera maps world coordinates onto terminal cells. The world origin lands
// on the viewport center, and `scale` world units span the smaller viewport
// dimension.
type Camera struct {
	width, height int
	scale         float64

	// world-space point the camera follows instead of the origin
	followX, followY float64
}

// NewCamera creates a camera for a viewport of the given cell dimensions.
func NewCamera(width, height int, scale float64) *Camera {
	return &Camera{width: width, height: height, scale: scale}
}

// Follow recenters the camera on the given world point.
func (c *Camera) Follow(x, y float64) {
	c.followX, c.followY = x, y
}

// CellsPerUnit returns horizontal cells per world unit. The vertical extent
// counts double, since a cell covers twice as much height as width.
func (c *Camera) CellsPerUnit() float64 {
	if c.scale <= 0 || c.width <= 0 || c.height <= 0 {
		return 0
	}
	minDim := float64(c.width)
	if h := float64(c.height) / cellAspect; h < minDim {
		minDim = h
	}
	return minDim / c.scale
}

// Cell projects a world point to cell coordinates.
func (c *Camera) Cell(x, y float64) (int, int) {
	k := c.CellsPerUnit()
	sx := float64(c.width)/2 + (x-c.followX)*k
	sy := float64(c.height)/2 + (y-c.followY)*k*cellAspect
	return int(math.Round(sx)), int(math.Round(sy))
}
