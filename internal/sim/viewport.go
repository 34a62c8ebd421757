package sim

import (
	"math"

	"github.com/vovakirdan/raycast-arena/internal/core"
	"github.com/vovakirdan/raycast-arena/internal/geom"
)

// Terminal cells are roughly twice as tall as they are wide, so a fitted
// arena spends two world units per row.
const unitsPerRow = 2

// Viewport maps arena world coordinates (y up) onto a block of screen cells
// (y down).
type Viewport struct {
	Origin geom.Point // world point shown at the bottom-left cell
	W, H   float64    // world extent
	Area   core.Rect  // screen cells
}

// FitViewport returns the viewport covering area with one world unit per
// column and unitsPerRow per row.
func FitViewport(origin geom.Point, area core.Rect) Viewport {
	return Viewport{
		Origin: origin,
		W:      float64(area.W),
		H:      float64(area.H * unitsPerRow),
		Area:   area,
	}
}

// ToScreen returns the cell containing p. Points outside the arena map
// outside Area.
func (v Viewport) ToScreen(p geom.Point) (int, int) {
	fx := (p.X - v.Origin.X) / v.W * float64(v.Area.W)
	fy := (p.Y - v.Origin.Y) / v.H * float64(v.Area.H)
	col := v.Area.X + int(math.Floor(fx))
	row := v.Area.Bottom() - 1 - int(math.Floor(fy))
	return col, row
}

// ToWorld returns the world point at the center of cell (col, row).
func (v Viewport) ToWorld(col, row int) geom.Point {
	fx := float64(col-v.Area.X) + 0.5
	fy := float64(v.Area.Bottom()-1-row) + 0.5
	return geom.Pt(
		v.Origin.X+fx*v.W/float64(v.Area.W),
		v.Origin.Y+fy*v.H/float64(v.Area.H),
	)
}

// PixelViewport maps world coordinates onto a pixel canvas at one world
// unit per pixel, with the origin on the bottom row.
type PixelViewport struct {
	Origin geom.Point
	W, H   int
}

// ToScreen returns the pixel position of p.
func (v PixelViewport) ToScreen(p geom.Point) (float32, float32) {
	x := p.X - v.Origin.X
	y := float64(v.H-1) - (p.Y - v.Origin.Y)
	return float32(x), float32(y)
}

// ToWorld returns the world point under pixel (x, y).
func (v PixelViewport) ToWorld(x, y int) geom.Point {
	return geom.Pt(v.Origin.X+float64(x), v.Origin.Y+float64(v.H-1-y))
}
