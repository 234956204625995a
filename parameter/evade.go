package parameter

import "time"

// Proximity
const (
	// ChaseRadius is the pointer-to-center distance (px) that starts evasion
	ChaseRadius = 80.0
)

// Motion
const (
	// SpeedPerSecond is the escape speed (px/s); per-frame step scales with frame time
	SpeedPerSecond = 900.0

	// InitialKick is the displacement (px) applied at first chase before any frame renders
	InitialKick = 48.0

	// MaxFrameDelta caps a single frame's delta so a stalled loop does not teleport the element
	MaxFrameDelta = 100 * time.Millisecond

	// IntervalStep is the fixed displacement (px) per tick of the interval revision
	IntervalStep = 80.0

	// IntervalTick is the cadence of the interval revision
	IntervalTick = 30 * time.Millisecond
)

// Viewport & Walls
const (
	// ViewportPadding insets the viewport (px) to form the bounds the element stays inside
	ViewportPadding = 16.0

	// MinBoundsSpan is the floor (px) for the usable span on each axis
	MinBoundsSpan = 50.0

	// WallMargin is the hysteresis (px) for classifying a side as touching a wall
	WallMargin = 2.0

	// WallKick is the one-shot detach distance (px) when steering stalls against walls
	WallKick = 120.0

	// WallKickNarrow is WallKick for narrow (mobile-class) viewports
	WallKickNarrow = 60.0

	// NarrowWidth is the viewport width (px) below which WallKickNarrow applies
	NarrowWidth = 640.0

	// SteerZeroTolerance is the vector length below which steering counts as stalled
	SteerZeroTolerance = 1e-3

	// ClampIterations bounds the inward correction loop
	ClampIterations = 4
)

// Acceptance
const (
	// AcceptCooldown suppresses accept right after a chase stop (drag release)
	AcceptCooldown = 350 * time.Millisecond
)

// Host
const (
	// CellWidth and CellHeight map one terminal cell onto viewport pixels
	CellWidth  = 8.0
	CellHeight = 16.0

	// FramesPerSecond is the display refresh rate emulated by the host
	FramesPerSecond = 60
)
