package evade

import (
	"io"
	"log"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lixenwraith/evasive/engine"
	"github.com/lixenwraith/evasive/vmath"
)

const frameInterval = 16 * time.Millisecond

var approx = cmpopts.EquateApprox(0, 1e-9)

// fakeSurface is a static layout with a mutable viewport
type fakeSurface struct {
	elem       vmath.Rect
	viewport   vmath.Rect
	unmounted  bool
	noViewport bool
	measured   int
}

func (s *fakeSurface) ElementRect() (vmath.Rect, bool) {
	s.measured++
	if s.unmounted {
		return vmath.Rect{}, false
	}
	return s.elem, true
}

func (s *fakeSurface) Viewport() (vmath.Rect, bool) {
	if s.noViewport {
		return vmath.Rect{}, false
	}
	return s.viewport, true
}

type harness struct {
	surface *fakeSurface
	loop    *engine.FrameLoop
	clock   *engine.MockTimeProvider
	ctrl    *Controller
}

// testOptions disables the initial kick so frame math is isolated
func testOptions() Options {
	opts := DefaultOptions()
	opts.InitialKick = 0
	opts.Logger = log.New(io.Discard, "", 0)
	return opts
}

// newHarness places an 80x32 element centered in an 800x600 viewport
func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	surface := &fakeSurface{
		elem:     vmath.Rect{X: 360, Y: 284, Width: 80, Height: 32},
		viewport: vmath.Rect{Width: 800, Height: 600},
	}
	loop := engine.NewFrameLoop()
	clock := engine.NewMockTimeProvider(time.Date(2025, 2, 14, 12, 0, 0, 0, time.UTC))
	return &harness{
		surface: surface,
		loop:    loop,
		clock:   clock,
		ctrl:    NewController(surface, loop, clock, opts),
	}
}

// frames ticks n frames at the default interval
func (h *harness) frames(n int) {
	h.clock.StepFrames(h.loop, frameInterval, n)
}

func (h *harness) center(t *testing.T) vmath.Vec2 {
	t.Helper()
	r, ok := h.ctrl.Rect()
	if !ok {
		t.Fatal("Expected measurable element")
	}
	return r.Center()
}

func assertVec(t *testing.T, label string, want, got vmath.Vec2) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", label, diff)
	}
}

func assertNear(t *testing.T, label string, want, got float64) {
	t.Helper()
	if math.Abs(want-got) > 1e-6 {
		t.Errorf("%s: expected %.6f, got %.6f", label, want, got)
	}
}
