package vmath

// Rect is an axis aligned box in viewport pixel space
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rect
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Empty reports a rect with no measurable area
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns r moved by d
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, Width: r.Width, Height: r.Height}
}

// Contains checks if point is within the rect, right/bottom edges exclusive
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Bounds is the rectangle, in edge form, the element box must stay inside
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Overflow returns the translation that brings r inside b
// Each axis corrects the low edge last so an oversized box stays pinned to MinX/MinY
func (b Bounds) Overflow(r Rect) Vec2 {
	var d Vec2
	if r.Right() > b.MaxX {
		d.X = b.MaxX - r.Right()
	}
	if r.Left()+d.X < b.MinX {
		d.X = b.MinX - r.Left()
	}
	if r.Bottom() > b.MaxY {
		d.Y = b.MaxY - r.Bottom()
	}
	if r.Top()+d.Y < b.MinY {
		d.Y = b.MinY - r.Top()
	}
	return d
}

// ContainsRect reports whether r lies inside b within tol
func (b Bounds) ContainsRect(r Rect, tol float64) bool {
	return r.Left() >= b.MinX-tol && r.Right() <= b.MaxX+tol &&
		r.Top() >= b.MinY-tol && r.Bottom() <= b.MaxY+tol
}

// Clamp restricts a value to be within [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
