package evade

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/evasive/vmath"
)

func TestComputeBounds(t *testing.T) {
	tests := []struct {
		name     string
		viewport vmath.Rect
		padding  float64
		want     vmath.Bounds
		ok       bool
	}{
		{
			name:     "desktop",
			viewport: vmath.Rect{Width: 800, Height: 600},
			padding:  16,
			want:     vmath.Bounds{MinX: 16, MaxX: 784, MinY: 16, MaxY: 584},
			ok:       true,
		},
		{
			name:     "offset viewport",
			viewport: vmath.Rect{X: 0, Y: 100, Width: 400, Height: 300},
			padding:  10,
			want:     vmath.Bounds{MinX: 10, MaxX: 390, MinY: 110, MaxY: 390},
			ok:       true,
		},
		{
			name:     "padding shrinks to keep min span",
			viewport: vmath.Rect{Width: 60, Height: 600},
			padding:  16,
			want:     vmath.Bounds{MinX: 5, MaxX: 55, MinY: 16, MaxY: 584},
			ok:       true,
		},
		{
			name:     "viewport narrower than min span",
			viewport: vmath.Rect{Width: 40, Height: 600},
			padding:  16,
			want:     vmath.Bounds{MinX: 0, MaxX: 40, MinY: 16, MaxY: 584},
			ok:       true,
		},
		{
			name:     "empty viewport",
			viewport: vmath.Rect{Width: 0, Height: 600},
			padding:  16,
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComputeBounds(tt.viewport, tt.padding, 50)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Bounds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTouchingWalls(t *testing.T) {
	b := vmath.Bounds{MinX: 16, MaxX: 784, MinY: 16, MaxY: 584}

	tests := []struct {
		name string
		rect vmath.Rect
		want Walls
	}{
		{"free", vmath.Rect{X: 300, Y: 300, Width: 80, Height: 32}, WallNone},
		{"left exact", vmath.Rect{X: 16, Y: 300, Width: 80, Height: 32}, WallLeft},
		{"left within margin", vmath.Rect{X: 17.5, Y: 300, Width: 80, Height: 32}, WallLeft},
		{"left outside margin", vmath.Rect{X: 18.5, Y: 300, Width: 80, Height: 32}, WallNone},
		{"right", vmath.Rect{X: 704, Y: 300, Width: 80, Height: 32}, WallRight},
		{"top left corner", vmath.Rect{X: 16, Y: 16, Width: 80, Height: 32}, WallLeft | WallTop},
		{"bottom right corner", vmath.Rect{X: 704, Y: 552, Width: 80, Height: 32}, WallRight | WallBottom},
		{"spans width", vmath.Rect{X: 16, Y: 300, Width: 768, Height: 32}, WallLeft | WallRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TouchingWalls(tt.rect, b, 2)
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestWalls_Cornered(t *testing.T) {
	if !(WallLeft | WallBottom).Cornered() {
		t.Error("Expected left+bottom to be cornered")
	}
	if (WallLeft | WallRight).Cornered() {
		t.Error("Expected left+right not to be cornered")
	}
	if WallTop.Cornered() {
		t.Error("Expected single wall not to be cornered")
	}
}

func TestBounds_OverflowOnlyInward(t *testing.T) {
	b := vmath.Bounds{MinX: 16, MaxX: 784, MinY: 16, MaxY: 584}

	tests := []struct {
		name string
		rect vmath.Rect
		want vmath.Vec2
	}{
		{"inside", vmath.Rect{X: 100, Y: 100, Width: 80, Height: 32}, vmath.Vec2{}},
		{"past left", vmath.Rect{X: -20, Y: 100, Width: 80, Height: 32}, vmath.Vec2{X: 36}},
		{"past right and bottom", vmath.Rect{X: 720, Y: 570, Width: 80, Height: 32}, vmath.Vec2{X: -16, Y: -18}},
		{"wider than bounds pins low edge", vmath.Rect{X: 0, Y: 100, Width: 900, Height: 32}, vmath.Vec2{X: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Overflow(tt.rect)
			assertVec(t, "overflow", tt.want, got)
		})
	}
}

func TestEscapeVector(t *testing.T) {
	center := vmath.Vec2{X: 400, Y: 300}

	got := EscapeVector(center, vmath.Vec2{X: 370, Y: 260}, FallbackDirection)
	assertVec(t, "away from pointer", vmath.Vec2{X: 0.6, Y: 0.8}, got)

	got = EscapeVector(center, center, FallbackDirection)
	assertVec(t, "coincident fallback", vmath.Vec2{X: 0, Y: -1}, got)
}

func TestSteerAlongWalls(t *testing.T) {
	tests := []struct {
		name  string
		dir   vmath.Vec2
		walls Walls
		want  vmath.Vec2
	}{
		{"free", vmath.Vec2{X: -0.6, Y: 0.8}, WallNone, vmath.Vec2{X: -0.6, Y: 0.8}},
		{"into left", vmath.Vec2{X: -1, Y: 0}, WallLeft, vmath.Vec2{}},
		{"slide along left", vmath.Vec2{X: -0.6, Y: -0.8}, WallLeft, vmath.Vec2{X: 0, Y: -0.8}},
		{"away from left kept", vmath.Vec2{X: 0.6, Y: 0.8}, WallLeft, vmath.Vec2{X: 0.6, Y: 0.8}},
		{"into corner", vmath.Vec2{X: 0.6, Y: 0.8}, WallRight | WallBottom, vmath.Vec2{}},
		{"slide along top", vmath.Vec2{X: 0.6, Y: -0.8}, WallTop, vmath.Vec2{X: 0.6, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, "steered", tt.want, SteerAlongWalls(tt.dir, tt.walls))
		})
	}
}

func TestWallKickDirection(t *testing.T) {
	b := vmath.Bounds{MinX: 16, MaxX: 784, MinY: 16, MaxY: 584}
	d := 1 / math.Sqrt2

	tests := []struct {
		name  string
		walls Walls
		rect  vmath.Rect
		want  vmath.Vec2
	}{
		{"top left corner", WallLeft | WallTop, vmath.Rect{X: 16, Y: 16, Width: 80, Height: 32}, vmath.Vec2{X: d, Y: d}},
		{"bottom right corner", WallRight | WallBottom, vmath.Rect{X: 704, Y: 552, Width: 80, Height: 32}, vmath.Vec2{X: -d, Y: -d}},
		{"left wall more room below", WallLeft, vmath.Rect{X: 16, Y: 100, Width: 80, Height: 32}, vmath.Vec2{X: d, Y: d}},
		{"left wall more room above", WallLeft, vmath.Rect{X: 16, Y: 500, Width: 80, Height: 32}, vmath.Vec2{X: d, Y: -d}},
		{"spans width on top", WallLeft | WallRight | WallTop, vmath.Rect{X: 16, Y: 16, Width: 768, Height: 32}, vmath.Vec2{X: 0, Y: 1}},
		{"fills bounds", WallLeft | WallRight | WallTop | WallBottom, vmath.Rect{X: 16, Y: 16, Width: 768, Height: 568}, FallbackDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WallKickDirection(tt.walls, tt.rect, b, FallbackDirection)
			assertVec(t, "kick", tt.want, got)
		})
	}
}
