package page

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/evasive/vmath"
)

const (
	buttonHeight  = 3 // Border, label, border
	buttonPadding = 2 // Cells each side of the label
	buttonGap     = 2
	messageRow    = -4 // Rows relative to the vertical center
	quoteRow      = -2
	minRows       = 9
)

// cellRect is a rectangle in terminal cells
type cellRect struct {
	X, Y, W, H int
}

func (r cellRect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// layout is the flow position of every page element for one screen size
type layout struct {
	width, height int
	centerY       int
	yes           cellRect
	no            cellRect // Flow position of the evading button, meaningless once it has run away
	mounted       bool
}

// computeLayout places the buttons side by side under the text
// Once the evading button has run away it leaves the flow and the accept button
// widens to the whole row
func computeLayout(width, height int, acceptLabel, rejectLabel string, runAway bool) layout {
	l := layout{width: width, height: height, centerY: height / 2}

	yw := runewidth.StringWidth(acceptLabel) + 2*buttonPadding
	nw := runewidth.StringWidth(rejectLabel) + 2*buttonPadding
	row := yw + buttonGap + nw
	x0 := (width - row) / 2

	l.no = cellRect{X: x0 + yw + buttonGap, Y: l.centerY, W: nw, H: buttonHeight}
	l.mounted = width >= row && height >= minRows

	if runAway {
		l.yes = cellRect{X: x0, Y: l.centerY, W: row, H: buttonHeight}
	} else {
		l.yes = cellRect{X: x0, Y: l.centerY, W: yw, H: buttonHeight}
	}
	return l
}

// metrics converts between terminal cells and viewport pixels
type metrics struct {
	cellW, cellH float64
}

// toPixels maps a cell rect onto viewport pixels
func (m metrics) toPixels(r cellRect) vmath.Rect {
	return vmath.Rect{
		X:      float64(r.X) * m.cellW,
		Y:      float64(r.Y) * m.cellH,
		Width:  float64(r.W) * m.cellW,
		Height: float64(r.H) * m.cellH,
	}
}

// toCells maps a pixel rect to the nearest cell rect, size preserved
func (m metrics) toCells(r vmath.Rect) cellRect {
	return cellRect{
		X: int(math.Round(r.X / m.cellW)),
		Y: int(math.Round(r.Y / m.cellH)),
		W: int(math.Round(r.Width / m.cellW)),
		H: int(math.Round(r.Height / m.cellH)),
	}
}

// pointer returns the pixel at the center of a cell
func (m metrics) pointer(x, y int) vmath.Vec2 {
	return vmath.Vec2{X: (float64(x) + 0.5) * m.cellW, Y: (float64(y) + 0.5) * m.cellH}
}
