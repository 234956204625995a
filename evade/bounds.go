package evade

import (
	"math"

	"github.com/lixenwraith/evasive/vmath"
)

// Walls is a bitmask of viewport sides the element box is touching
type Walls uint8

const (
	WallLeft Walls = 1 << iota
	WallRight
	WallTop
	WallBottom

	WallNone Walls = 0
)

// Has reports whether every side in w2 is set in w
func (w Walls) Has(w2 Walls) bool {
	return w&w2 == w2
}

// Cornered reports touching a horizontal and a vertical wall at once
func (w Walls) Cornered() bool {
	return w&(WallLeft|WallRight) != 0 && w&(WallTop|WallBottom) != 0
}

// String returns human-readable side list
func (w Walls) String() string {
	if w == WallNone {
		return "None"
	}
	s := ""
	names := [...]string{"Left", "Right", "Top", "Bottom"}
	for i, name := range names {
		if w&(1<<i) != 0 {
			if s != "" {
				s += "|"
			}
			s += name
		}
	}
	return s
}

// ComputeBounds insets the viewport by padding on each side
// An axis whose inset span would fall below minSpan gives up padding until the span
// reaches minSpan, or the whole viewport span if that is smaller
// Returns false for an unmeasurable viewport
func ComputeBounds(viewport vmath.Rect, padding, minSpan float64) (vmath.Bounds, bool) {
	if viewport.Empty() {
		return vmath.Bounds{}, false
	}
	minX, maxX := insetAxis(viewport.X, viewport.Width, padding, minSpan)
	minY, maxY := insetAxis(viewport.Y, viewport.Height, padding, minSpan)
	return vmath.Bounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}, true
}

func insetAxis(lo, size, padding, minSpan float64) (float64, float64) {
	pad := padding
	if size-2*pad < minSpan {
		pad = math.Max(0, (size-minSpan)/2)
	}
	return lo + pad, lo + size - pad
}

// TouchingWalls classifies each side of r against b with a hysteresis margin
func TouchingWalls(r vmath.Rect, b vmath.Bounds, margin float64) Walls {
	w := WallNone
	if r.Left() <= b.MinX+margin {
		w |= WallLeft
	}
	if r.Right() >= b.MaxX-margin {
		w |= WallRight
	}
	if r.Top() <= b.MinY+margin {
		w |= WallTop
	}
	if r.Bottom() >= b.MaxY-margin {
		w |= WallBottom
	}
	return w
}
