package evade

import "github.com/lixenwraith/evasive/vmath"

// FallbackDirection is used when the pointer sits exactly on the element center: straight up
var FallbackDirection = vmath.Vec2{X: 0, Y: -1}

// EscapeVector returns the unit direction from pointer through center
// Coincident points yield fallback
func EscapeVector(center, pointer, fallback vmath.Vec2) vmath.Vec2 {
	return vmath.V2NormalizeOr(vmath.V2Sub(center, pointer), fallback)
}

// SteerAlongWalls zeroes every component of dir that points into a touched wall
// Result is not renormalized; a wall slide moves at the remaining component's speed
func SteerAlongWalls(dir vmath.Vec2, walls Walls) vmath.Vec2 {
	if dir.X < 0 && walls.Has(WallLeft) || dir.X > 0 && walls.Has(WallRight) {
		dir.X = 0
	}
	if dir.Y < 0 && walls.Has(WallTop) || dir.Y > 0 && walls.Has(WallBottom) {
		dir.Y = 0
	}
	return dir
}

// WallKickDirection picks a unit direction that detaches r from the touched walls
// Each touched axis points away from its wall; an axis with no touched wall points
// toward whichever side has more room, so a single-wall kick runs diagonally
// An axis pinned on both sides (box as wide as the bounds) contributes nothing
func WallKickDirection(walls Walls, r vmath.Rect, b vmath.Bounds, fallback vmath.Vec2) vmath.Vec2 {
	var d vmath.Vec2

	switch {
	case walls.Has(WallLeft) && !walls.Has(WallRight):
		d.X = 1
	case walls.Has(WallRight) && !walls.Has(WallLeft):
		d.X = -1
	case !walls.Has(WallLeft) && !walls.Has(WallRight):
		d.X = roomier(r.Left()-b.MinX, b.MaxX-r.Right())
	}

	switch {
	case walls.Has(WallTop) && !walls.Has(WallBottom):
		d.Y = 1
	case walls.Has(WallBottom) && !walls.Has(WallTop):
		d.Y = -1
	case !walls.Has(WallTop) && !walls.Has(WallBottom):
		d.Y = roomier(r.Top()-b.MinY, b.MaxY-r.Bottom())
	}

	return vmath.V2NormalizeOr(d, fallback)
}

// roomier returns -1 toward the low side or +1 toward the high side, ties go low
func roomier(lowRoom, highRoom float64) float64 {
	if lowRoom >= highRoom {
		return -1
	}
	return 1
}
