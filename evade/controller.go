package evade

import (
	"time"

	"github.com/lixenwraith/evasive/engine"
	"github.com/lixenwraith/evasive/parameter"
	"github.com/lixenwraith/evasive/vmath"
)

// maxIntervalSteps bounds catch-up steps of the interval revision in one frame
const maxIntervalSteps = 4

// State is the controller's motion state
type State uint8

const (
	// StateIdle has no frame loop; offset frozen
	StateIdle State = iota
	// StateChasing runs one update per frame callback
	StateChasing
)

// String returns human-readable state name
func (s State) String() string {
	if s == StateChasing {
		return "Chasing"
	}
	return "Idle"
}

// Surface supplies live geometry from the host layout
type Surface interface {
	// ElementRect returns the element box at its layout position with no offset, false when not mounted
	ElementRect() (vmath.Rect, bool)
	// Viewport returns the visible viewport, false when unavailable
	Viewport() (vmath.Rect, bool)
}

// chaseSession exists only while Chasing
type chaseSession struct {
	frame     engine.FrameID
	lastFrame time.Time
	seeded    bool
	carry     time.Duration // Interval revision remainder
}

// Stats counts controller activity since creation
type Stats struct {
	Sessions  int
	Frames    int
	WallKicks int
	Clamps    int
}

// Controller owns the element offset and runs the escape loop while chasing
// Not safe for concurrent use: every method must be called from the goroutine that ticks the FrameScheduler
type Controller struct {
	surface Surface
	frames  engine.FrameScheduler
	clock   engine.TimeProvider
	opts    Options

	state   State
	session chaseSession

	pointer    vmath.Vec2
	offset     vmath.Vec2
	anchor     vmath.Rect // Layout rect captured on first chase
	hasRunAway bool       // One-way, set on first chase
	lastStop   time.Time
	closed     bool

	stats Stats
}

// NewController creates an idle controller
func NewController(surface Surface, frames engine.FrameScheduler, clock engine.TimeProvider, opts Options) *Controller {
	return &Controller{
		surface: surface,
		frames:  frames,
		clock:   clock,
		opts:    opts.withDefaults(),
	}
}

func (c *Controller) State() State         { return c.state }
func (c *Controller) Offset() vmath.Vec2   { return c.offset }
func (c *Controller) Pointer() vmath.Vec2  { return c.pointer }
func (c *Controller) HasRunAway() bool     { return c.hasRunAway }
func (c *Controller) LastStop() time.Time  { return c.lastStop }
func (c *Controller) Stats() Stats         { return c.stats }
func (c *Controller) Options() Options     { return c.opts }
func (c *Controller) Anchor() vmath.Rect   { return c.anchor }
func (c *Controller) Closed() bool         { return c.closed }
func (c *Controller) Revision() Revision   { return c.opts.Revision }
func (c *Controller) ChaseRadius() float64 { return c.opts.ChaseRadius }

// Rect returns the current element box: layout position, or the first-chase anchor, plus offset
func (c *Controller) Rect() (vmath.Rect, bool) {
	var base vmath.Rect
	if c.hasRunAway {
		base = c.anchor
	} else {
		r, ok := c.surface.ElementRect()
		if !ok || r.Empty() {
			return vmath.Rect{}, false
		}
		base = r
	}
	return base.Translate(c.offset), true
}

// Bounds returns the padded viewport bounds, derived fresh on every call
func (c *Controller) Bounds() (vmath.Bounds, bool) {
	_, b, ok := c.viewportBounds()
	return b, ok
}

func (c *Controller) viewportBounds() (vmath.Rect, vmath.Bounds, bool) {
	vp, ok := c.surface.Viewport()
	if !ok {
		return vmath.Rect{}, vmath.Bounds{}, false
	}
	b, ok := ComputeBounds(vp, c.opts.Padding, c.opts.MinSpan)
	return vp, b, ok
}

// TrackPointer records the latest pointer position
func (c *Controller) TrackPointer(p vmath.Vec2) {
	c.pointer = p
}

// Engage starts a chase from direct interaction with the element, regardless of radius
func (c *Controller) Engage(p vmath.Vec2) {
	c.pointer = p
	c.StartChase()
}

// StartChase transitions Idle to Chasing, no-op while already chasing
func (c *Controller) StartChase() {
	if c.closed || c.state == StateChasing {
		return
	}

	if !c.hasRunAway {
		r, ok := c.surface.ElementRect()
		if !ok || r.Empty() {
			return
		}
		c.anchor = r
		c.offset = vmath.Vec2{}
		c.hasRunAway = true
		c.applyInitialKick()
	}

	c.state = StateChasing
	c.session = chaseSession{}
	c.session.frame = c.frames.RequestFrame(c.onFrame)
	c.stats.Sessions++
	c.opts.Logger.Printf("evade: chase start #%d pointer=(%.1f,%.1f) offset=(%.1f,%.1f)",
		c.stats.Sessions, c.pointer.X, c.pointer.Y, c.offset.X, c.offset.Y)
}

// StopChase transitions Chasing to Idle and cancels the pending frame, no-op while idle
func (c *Controller) StopChase() {
	if c.state != StateChasing {
		return
	}
	c.frames.CancelFrame(c.session.frame)
	c.session = chaseSession{}
	c.state = StateIdle
	c.lastStop = c.clock.Now()
	c.opts.Logger.Printf("evade: chase stop offset=(%.1f,%.1f)", c.offset.X, c.offset.Y)
}

// Reconcile pulls an already displaced element back inside bounds after a viewport change
// Single clamp iteration, no motion step
func (c *Controller) Reconcile() {
	if c.closed || !c.hasRunAway {
		return
	}
	if c.clampPass(1) {
		c.opts.Logger.Printf("evade: reconciled offset=(%.1f,%.1f)", c.offset.X, c.offset.Y)
	}
}

// Close cancels any pending frame; the controller ignores every later transition
func (c *Controller) Close() {
	if c.closed {
		return
	}
	if c.state == StateChasing {
		c.frames.CancelFrame(c.session.frame)
		c.session = chaseSession{}
		c.state = StateIdle
	}
	c.closed = true
}

func (c *Controller) applyInitialKick() {
	if c.opts.InitialKick == 0 {
		return
	}
	r, _ := c.Rect()
	dir := EscapeVector(r.Center(), c.pointer, c.opts.Fallback)
	c.offset = vmath.V2Add(c.offset, vmath.V2Scale(dir, c.opts.InitialKick))
	c.clampPass(c.opts.ClampIterations)
}

// onFrame is the display-synchronized update, re-requests itself while chasing
func (c *Controller) onFrame(now time.Time) {
	if c.state != StateChasing {
		return
	}
	c.session.frame = 0

	// First frame of a session only seeds the timing anchor
	if c.session.seeded {
		if dt := now.Sub(c.session.lastFrame); dt > 0 {
			c.advance(dt)
		}
	}
	c.session.seeded = true
	c.session.lastFrame = now
	c.stats.Frames++

	c.session.frame = c.frames.RequestFrame(c.onFrame)
}

func (c *Controller) advance(dt time.Duration) {
	if dt > c.opts.MaxFrameDelta {
		dt = c.opts.MaxFrameDelta
	}

	switch c.opts.Revision {
	case RevisionInterval:
		c.session.carry += dt
		for n := 0; c.session.carry >= c.opts.IntervalTick && n < maxIntervalSteps; n++ {
			c.session.carry -= c.opts.IntervalTick
			c.moveAway(c.opts.IntervalStep, false)
			c.clampPass(1)
		}
		c.session.carry %= c.opts.IntervalTick

	case RevisionFrame:
		c.moveAway(c.opts.Speed*dt.Seconds(), false)
		c.clampPass(c.opts.ClampIterations)

	default:
		c.moveAway(c.opts.Speed*dt.Seconds(), true)
		c.clampPass(c.opts.ClampIterations)
	}
}

// moveAway applies one escape step of the given length
// With steer set, components pressing into touched walls are dropped and a stalled
// direction becomes a wall-kick of fixed magnitude
func (c *Controller) moveAway(step float64, steer bool) {
	r, ok := c.Rect()
	if !ok {
		return
	}
	dir := EscapeVector(r.Center(), c.pointer, c.opts.Fallback)

	kicked := false
	walls := WallNone
	if steer {
		if vp, b, ok := c.viewportBounds(); ok {
			walls = TouchingWalls(r, b, c.opts.WallMargin)
			dir = SteerAlongWalls(dir, walls)
			if vmath.V2IsZero(dir, parameter.SteerZeroTolerance) {
				dir = WallKickDirection(walls, r, b, c.opts.Fallback)
				step = c.opts.wallKickFor(vp.Width)
				kicked = true
			}
		}
	}

	c.offset = vmath.V2Add(c.offset, vmath.V2Scale(dir, step))

	if kicked {
		c.stats.WallKicks++
		if c.opts.OnWallKick != nil {
			c.opts.OnWallKick(walls)
		}
	}
}

// clampPass pushes the offset inward by the measured overflow, re-measuring each iteration
// Returns true if the offset changed
func (c *Controller) clampPass(iterations int) bool {
	moved := false
	for i := 0; i < iterations; i++ {
		r, ok := c.Rect()
		if !ok {
			return moved
		}
		b, ok := c.Bounds()
		if !ok {
			return moved
		}
		d := b.Overflow(r)
		if d.X == 0 && d.Y == 0 {
			return moved
		}
		c.offset = vmath.V2Add(c.offset, d)
		c.stats.Clamps++
		moved = true
	}
	return moved
}
