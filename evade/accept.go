package evade

import (
	"time"

	"github.com/lixenwraith/evasive/engine"
)

// Signals are the outbound notifications consumed by the host page
type Signals struct {
	Accept func() // Companion control activated
	Reject func() // Evading element actually clicked
}

// StopClock reports when the last chase ended, zero if never
type StopClock interface {
	LastStop() time.Time
}

// AcceptGate fires the accept signal unless a chase stopped within the cooldown window
// Keeps a drag released over the companion control from counting as acceptance
type AcceptGate struct {
	stops    StopClock
	clock    engine.TimeProvider
	cooldown time.Duration
	onAccept func()

	suppressed int
}

// NewAcceptGate creates a gate; onAccept may be nil
func NewAcceptGate(stops StopClock, clock engine.TimeProvider, cooldown time.Duration, onAccept func()) *AcceptGate {
	return &AcceptGate{
		stops:    stops,
		clock:    clock,
		cooldown: cooldown,
		onAccept: onAccept,
	}
}

// Accept fires the signal and returns true when outside the cooldown window
func (g *AcceptGate) Accept() bool {
	if last := g.stops.LastStop(); !last.IsZero() && g.clock.Now().Sub(last) <= g.cooldown {
		g.suppressed++
		return false
	}
	if g.onAccept != nil {
		g.onAccept()
	}
	return true
}

// Suppressed returns how many activations fell inside the cooldown
func (g *AcceptGate) Suppressed() int {
	return g.suppressed
}
