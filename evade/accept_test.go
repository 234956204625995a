package evade

import (
	"testing"
	"time"

	"github.com/lixenwraith/evasive/vmath"
)

func TestAcceptGate_NoChaseEver(t *testing.T) {
	h := newHarness(t, testOptions())
	fired := 0
	g := NewAcceptGate(h.ctrl, h.clock, 350*time.Millisecond, func() { fired++ })

	if !g.Accept() {
		t.Error("Expected accept without any prior chase")
	}
	if fired != 1 {
		t.Errorf("Expected accept signal once, got %d", fired)
	}
}

func TestAcceptGate_Cooldown(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    bool
	}{
		{"immediately after drag release", 0, false},
		{"inside window", 200 * time.Millisecond, false},
		{"exactly at window", 350 * time.Millisecond, false},
		{"past window", 351 * time.Millisecond, true},
		{"much later", 5 * time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, testOptions())
			fired := 0
			g := NewAcceptGate(h.ctrl, h.clock, 350*time.Millisecond, func() { fired++ })

			// Press-drag on the element then release
			h.ctrl.Engage(vmath.Vec2{X: 400, Y: 300})
			h.frames(3)
			h.ctrl.StopChase()

			h.clock.Advance(tt.elapsed)
			got := g.Accept()
			if got != tt.want {
				t.Errorf("Expected Accept()=%v after %v, got %v", tt.want, tt.elapsed, got)
			}
			wantFired := 0
			if tt.want {
				wantFired = 1
			}
			if fired != wantFired {
				t.Errorf("Expected %d signals, got %d", wantFired, fired)
			}
			if !tt.want && g.Suppressed() != 1 {
				t.Errorf("Expected suppressed count 1, got %d", g.Suppressed())
			}
		})
	}
}

func TestAcceptGate_NilCallback(t *testing.T) {
	h := newHarness(t, testOptions())
	g := NewAcceptGate(h.ctrl, h.clock, 0, nil)
	if !g.Accept() {
		t.Error("Expected accept with nil callback")
	}
}
