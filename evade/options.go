package evade

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lixenwraith/evasive/parameter"
	"github.com/lixenwraith/evasive/vmath"
)

// Revision selects the motion model driving each frame
type Revision uint8

const (
	// RevisionWallAware integrates against frame time with wall steering and wall-kicks
	RevisionWallAware Revision = iota
	// RevisionFrame integrates against frame time, clamp only
	RevisionFrame
	// RevisionInterval moves a fixed step per elapsed interval with a single clamp pass
	RevisionInterval
)

// String returns the revision name as used in config files and flags
func (r Revision) String() string {
	switch r {
	case RevisionFrame:
		return "frame"
	case RevisionInterval:
		return "interval"
	default:
		return "wall-aware"
	}
}

// ParseRevision maps a name back to a Revision
func ParseRevision(s string) (Revision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wall-aware", "wallaware", "wall":
		return RevisionWallAware, nil
	case "frame":
		return RevisionFrame, nil
	case "interval":
		return RevisionInterval, nil
	default:
		return RevisionWallAware, fmt.Errorf("unknown revision %q", s)
	}
}

// Options tunes a Controller, start from DefaultOptions
// NewController replaces out-of-range fields with defaults; zero InitialKick, Padding
// and AcceptCooldown are honored as disabled
type Options struct {
	ChaseRadius float64 // px
	Speed       float64 // px/s
	InitialKick float64 // px

	Padding         float64 // px, viewport inset
	MinSpan         float64 // px, usable span floor per axis
	WallMargin      float64 // px, wall touch hysteresis
	WallKick        float64 // px
	WallKickNarrow  float64 // px, used below NarrowWidth
	NarrowWidth     float64 // px
	ClampIterations int

	MaxFrameDelta time.Duration
	IntervalStep  float64 // px per IntervalTick, interval revision only
	IntervalTick  time.Duration

	AcceptCooldown time.Duration

	Revision Revision

	// Fallback escape direction when pointer and center coincide
	Fallback vmath.Vec2

	Logger *log.Logger

	// OnWallKick is called after a wall-kick step is applied
	OnWallKick func(walls Walls)
}

// DefaultOptions returns the tuned parameter set
func DefaultOptions() Options {
	return Options{
		ChaseRadius:     parameter.ChaseRadius,
		Speed:           parameter.SpeedPerSecond,
		InitialKick:     parameter.InitialKick,
		Padding:         parameter.ViewportPadding,
		MinSpan:         parameter.MinBoundsSpan,
		WallMargin:      parameter.WallMargin,
		WallKick:        parameter.WallKick,
		WallKickNarrow:  parameter.WallKickNarrow,
		NarrowWidth:     parameter.NarrowWidth,
		ClampIterations: parameter.ClampIterations,
		MaxFrameDelta:   parameter.MaxFrameDelta,
		IntervalStep:    parameter.IntervalStep,
		IntervalTick:    parameter.IntervalTick,
		AcceptCooldown:  parameter.AcceptCooldown,
		Revision:        RevisionWallAware,
		Fallback:        FallbackDirection,
	}
}

// withDefaults fills zero fields from DefaultOptions
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ChaseRadius <= 0 {
		o.ChaseRadius = d.ChaseRadius
	}
	if o.Speed <= 0 {
		o.Speed = d.Speed
	}
	if o.InitialKick < 0 {
		o.InitialKick = d.InitialKick
	}
	if o.Padding < 0 {
		o.Padding = d.Padding
	}
	if o.MinSpan <= 0 {
		o.MinSpan = d.MinSpan
	}
	if o.WallMargin <= 0 {
		o.WallMargin = d.WallMargin
	}
	if o.WallKick <= 0 {
		o.WallKick = d.WallKick
	}
	if o.WallKickNarrow <= 0 {
		o.WallKickNarrow = d.WallKickNarrow
	}
	if o.NarrowWidth <= 0 {
		o.NarrowWidth = d.NarrowWidth
	}
	if o.ClampIterations <= 0 {
		o.ClampIterations = d.ClampIterations
	}
	if o.MaxFrameDelta <= 0 {
		o.MaxFrameDelta = d.MaxFrameDelta
	}
	if o.IntervalStep <= 0 {
		o.IntervalStep = d.IntervalStep
	}
	if o.IntervalTick <= 0 {
		o.IntervalTick = d.IntervalTick
	}
	if o.AcceptCooldown < 0 {
		o.AcceptCooldown = d.AcceptCooldown
	}
	if vmath.V2IsZero(o.Fallback, vmath.Epsilon) {
		o.Fallback = d.Fallback
	} else {
		o.Fallback = vmath.V2Normalize(o.Fallback)
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// wallKickFor returns the kick magnitude for the viewport width class
func (o Options) wallKickFor(viewportWidth float64) float64 {
	if viewportWidth < o.NarrowWidth {
		return o.WallKickNarrow
	}
	return o.WallKick
}
