package page

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/evasive/vmath"
)

// HandleEvent dispatches one terminal event
func (p *Page) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		p.handleMouse(ev)

	case *tcell.EventResize:
		// Terminal resize plays the part of the visual viewport changing under a mobile keyboard
		p.screen.Sync()
		p.ctrl.Reconcile()
		p.Draw()

	case *tcell.EventFocus:
		p.focused = ev.Focused
		if !ev.Focused {
			p.hover = false
			p.detector.OnPointerLeave()
		}

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			p.finish(Result{Outcome: OutcomeQuit})
		}
	}
}

func (p *Page) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	ptr := p.metrics.pointer(x, y)
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && p.pressed == pressNone:
		p.press(x, y, ptr)
	case !down && p.pressed != pressNone:
		p.release(x, y, ptr)
	default:
		p.move(ptr)
	}
}

// overReject hit-tests the evading button at its rendered position
func (p *Page) overReject(ptr vmath.Vec2) bool {
	r, ok := p.ctrl.Rect()
	return ok && r.Contains(ptr)
}

func (p *Page) press(x, y int, ptr vmath.Vec2) {
	switch {
	case p.overReject(ptr):
		// Pressing the element itself always engages, a pointer jump cannot catch it
		p.pressed = pressReject
		p.ctrl.Engage(ptr)
	case p.layout().yes.contains(x, y):
		p.pressed = pressAccept
		p.detector.OnPointerMove(ptr.X, ptr.Y)
	default:
		p.pressed = pressElsewhere
		p.detector.OnPointerMove(ptr.X, ptr.Y)
	}
}

func (p *Page) release(x, y int, ptr vmath.Vec2) {
	target := p.pressed
	p.pressed = pressNone

	switch target {
	case pressReject:
		over := p.overReject(ptr)
		p.ctrl.StopChase()
		if over {
			p.signals.Reject()
			return
		}
	case pressAccept:
		if p.layout().yes.contains(x, y) {
			p.gate.Accept()
		}
	}
	p.move(ptr)
}

// move handles plain motion; while the evading button is held the pointer is captured
func (p *Page) move(ptr vmath.Vec2) {
	if p.pressed == pressReject {
		p.ctrl.TrackPointer(ptr)
		return
	}

	p.hover = p.overReject(ptr)
	if p.hover {
		p.ctrl.Engage(ptr)
		return
	}
	p.detector.OnPointerMove(ptr.X, ptr.Y)
}
