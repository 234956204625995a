package page

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	styleBackground = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 240, 245)).Foreground(tcell.NewRGBColor(90, 20, 40))
	styleMessage    = styleBackground.Bold(true)
	styleQuote      = styleBackground.Foreground(tcell.NewRGBColor(200, 40, 90)).Italic(true)
	styleAccept     = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 77, 136)).Foreground(tcell.ColorWhite).Bold(true)
	styleReject     = tcell.StyleDefault.Background(tcell.NewRGBColor(170, 170, 170)).Foreground(tcell.NewRGBColor(40, 40, 40))
	styleStatus     = tcell.StyleDefault.Background(tcell.NewRGBColor(60, 60, 60)).Foreground(tcell.NewRGBColor(220, 220, 220))
)

// Draw renders the whole page
func (p *Page) Draw() {
	s := p.screen
	s.SetStyle(styleBackground)
	s.Clear()

	l := p.layout()
	p.drawCentered(l.centerY+messageRow, p.cfg.Display.Message, styleMessage)
	p.drawCentered(l.centerY+quoteRow, p.cfg.Display.Quote, styleQuote)

	if !l.mounted {
		p.drawCentered(l.centerY, "window too small", styleQuote)
		s.Show()
		return
	}

	p.drawButton(l.yes, p.cfg.Display.AcceptLabel, styleAccept)

	// Drawn last so it stays visible over the widened accept button
	no := l.no
	if p.ctrl.HasRunAway() {
		if r, ok := p.ctrl.Rect(); ok {
			no = p.metrics.toCells(r)
		}
	}
	p.drawButton(no, p.cfg.Display.RejectLabel, styleReject)

	if p.deps.ShowStatus {
		p.drawStatus(l)
	}
	s.Show()
}

func (p *Page) drawStatus(l layout) {
	off := p.ctrl.Offset()
	stats := p.ctrl.Stats()
	text := fmt.Sprintf(" %s | %s | offset %.0f,%.0f | kicks %d | clamps %d ",
		p.ctrl.Revision(), p.ctrl.State(), off.X, off.Y, stats.WallKicks, stats.Clamps)
	for x := 0; x < l.width; x++ {
		p.screen.SetContent(x, l.height-1, ' ', nil, styleStatus)
	}
	p.drawText(0, l.height-1, text, styleStatus)
}

func (p *Page) drawCentered(y int, text string, style tcell.Style) {
	w, _ := p.screen.Size()
	x := (w - runewidth.StringWidth(text)) / 2
	p.drawText(x, y, text, style)
}

// drawText writes text from (x, y), clipped to the screen
func (p *Page) drawText(x, y int, text string, style tcell.Style) {
	w, h := p.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= 0 && x+rw <= w {
			p.screen.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
}

func (p *Page) drawButton(r cellRect, label string, style tcell.Style) {
	w, h := p.screen.Size()
	put := func(x, y int, c rune) {
		if x >= 0 && x < w && y >= 0 && y < h {
			p.screen.SetContent(x, y, c, nil, style)
		}
	}

	right := r.X + r.W - 1
	bottom := r.Y + r.H - 1
	for y := r.Y; y <= bottom; y++ {
		for x := r.X; x <= right; x++ {
			c := ' '
			switch {
			case y == r.Y && x == r.X:
				c = '╭'
			case y == r.Y && x == right:
				c = '╮'
			case y == bottom && x == r.X:
				c = '╰'
			case y == bottom && x == right:
				c = '╯'
			case y == r.Y || y == bottom:
				c = '─'
			case x == r.X || x == right:
				c = '│'
			}
			put(x, y, c)
		}
	}

	lx := r.X + (r.W-runewidth.StringWidth(label))/2
	p.drawText(lx, r.Y+r.H/2, label, style)
}
