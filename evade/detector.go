package evade

import "github.com/lixenwraith/evasive/vmath"

// Chaser is the side of the controller the detector drives
type Chaser interface {
	Rect() (vmath.Rect, bool)
	TrackPointer(p vmath.Vec2)
	StartChase()
	StopChase()
}

// Detector turns pointer motion into chase start/stop requests
type Detector struct {
	chaser Chaser
	radius float64
}

// NewDetector creates a detector with the given chase radius (px)
func NewDetector(chaser Chaser, radius float64) *Detector {
	return &Detector{chaser: chaser, radius: radius}
}

// OnPointerMove records the pointer and starts or stops the chase by distance to the element center
// Both requests are idempotent, so continued proximity keeps the running session
func (d *Detector) OnPointerMove(x, y float64) {
	p := vmath.Vec2{X: x, Y: y}
	d.chaser.TrackPointer(p)
	if d.Near(p) {
		d.chaser.StartChase()
	} else {
		d.chaser.StopChase()
	}
}

// OnPointerLeave stops the chase when the pointer leaves the viewport
func (d *Detector) OnPointerLeave() {
	d.chaser.StopChase()
}

// Near reports whether p is inside the chase radius, unmeasurable element counts as far
func (d *Detector) Near(p vmath.Vec2) bool {
	r, ok := d.chaser.Rect()
	if !ok {
		return false
	}
	return vmath.V2Dist(p, r.Center()) < d.radius
}

// Radius returns the chase radius (px)
func (d *Detector) Radius() float64 {
	return d.radius
}
