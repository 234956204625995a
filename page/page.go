// Package page hosts the evasive button in a terminal.
//
// The page owns the tcell screen, lays out the text and both buttons, maps mouse
// cells onto viewport pixels for the evade package, and turns the accept and
// reject signals into a session Result.
package page

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/evasive/config"
	"github.com/lixenwraith/evasive/engine"
	"github.com/lixenwraith/evasive/evade"
	"github.com/lixenwraith/evasive/vmath"
)

// Outcome is how a session ended
type Outcome uint8

const (
	OutcomeQuit Outcome = iota
	OutcomeAccepted
	OutcomeRejected
)

// String returns human-readable outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	default:
		return "quit"
	}
}

// Result is returned from Run
type Result struct {
	Outcome     Outcome
	Destination string // Set when accepted
}

// Cues receives audio notifications, audio.SoundManager satisfies it
type Cues interface {
	PlayKick()
	PlayAccept()
	PlayReject()
}

type silentCues struct{}

func (silentCues) PlayKick()   {}
func (silentCues) PlayAccept() {}
func (silentCues) PlayReject() {}

// Deps are the collaborators a Page needs besides the screen, zero fields get defaults
type Deps struct {
	Clock      engine.TimeProvider
	Cues       Cues
	Rand       *rand.Rand
	Logger     *log.Logger
	ShowStatus bool
}

// pressTarget records which control a held button went down on
type pressTarget uint8

const (
	pressNone pressTarget = iota
	pressAccept
	pressReject
	pressElsewhere
)

// Page is the terminal host of one evasive widget
type Page struct {
	screen  tcell.Screen
	cfg     config.Config
	metrics metrics
	deps    Deps

	loop     *engine.FrameLoop
	ctrl     *evade.Controller
	detector *evade.Detector
	gate     *evade.AcceptGate
	signals  evade.Signals

	pressed pressTarget
	hover   bool // Pointer over the evading button
	focused bool

	done   bool
	result Result
}

// New builds a page on an initialized screen
func New(screen tcell.Screen, cfg config.Config, deps Deps) (*Page, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	if deps.Clock == nil {
		deps.Clock = engine.NewMonotonicTimeProvider()
	}
	if deps.Cues == nil {
		deps.Cues = silentCues{}
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}

	p := &Page{
		screen:  screen,
		cfg:     cfg,
		metrics: metrics{cellW: cfg.Display.CellWidth, cellH: cfg.Display.CellHeight},
		deps:    deps,
		loop:    engine.NewFrameLoop(),
		focused: true,
	}

	opts.Logger = deps.Logger
	opts.OnWallKick = func(evade.Walls) { p.deps.Cues.PlayKick() }
	p.ctrl = evade.NewController(p, p.loop, deps.Clock, opts)
	p.detector = evade.NewDetector(p.ctrl, opts.ChaseRadius)
	p.signals = evade.Signals{Accept: p.onAccept, Reject: p.onReject}
	p.gate = evade.NewAcceptGate(p.ctrl, deps.Clock, opts.AcceptCooldown, p.signals.Accept)

	return p, nil
}

// ElementRect implements evade.Surface with the evading button's flow position
func (p *Page) ElementRect() (vmath.Rect, bool) {
	l := p.layout()
	if !l.mounted {
		return vmath.Rect{}, false
	}
	return p.metrics.toPixels(l.no), true
}

// Viewport implements evade.Surface with the whole screen
func (p *Page) Viewport() (vmath.Rect, bool) {
	w, h := p.screen.Size()
	if w <= 0 || h <= 0 {
		return vmath.Rect{}, false
	}
	return vmath.Rect{Width: float64(w) * p.metrics.cellW, Height: float64(h) * p.metrics.cellH}, true
}

func (p *Page) layout() layout {
	w, h := p.screen.Size()
	return computeLayout(w, h, p.cfg.Display.AcceptLabel, p.cfg.Display.RejectLabel, p.ctrl != nil && p.ctrl.HasRunAway())
}

// Controller exposes the motion controller for inspection
func (p *Page) Controller() *evade.Controller {
	return p.ctrl
}

// Done reports whether the session has ended
func (p *Page) Done() bool {
	return p.done
}

// Result returns the session outcome, meaningful once Done
func (p *Page) Result() Result {
	return p.result
}

func (p *Page) onAccept() {
	dests := p.cfg.Accept.Destinations
	dest := dests[p.deps.Rand.IntN(len(dests))]
	p.deps.Logger.Printf("page: accepted, destination %s", dest)
	p.deps.Cues.PlayAccept()
	p.finish(Result{Outcome: OutcomeAccepted, Destination: dest})
}

func (p *Page) onReject() {
	p.deps.Logger.Printf("page: rejected")
	p.deps.Cues.PlayReject()
	p.finish(Result{Outcome: OutcomeRejected})
}

func (p *Page) finish(r Result) {
	if p.done {
		return
	}
	p.done = true
	p.result = r
}

// Tick runs one display frame: pending controller callbacks, then a redraw
func (p *Page) Tick(now time.Time) {
	p.loop.Tick(now)
	p.Draw()
}

// Close tears the widget down, cancelling any pending frame
func (p *Page) Close() {
	p.ctrl.Close()
	p.loop.Clear()
}

// Run drives the page until a signal ends the session, the user quits, or ctx is cancelled
// Input polling runs on its own goroutine; every state change happens on the caller's goroutine
func (p *Page) Run(ctx context.Context) (Result, error) {
	defer p.Close()

	p.screen.EnableMouse(tcell.MouseMotionEvents)
	p.screen.EnableFocus()
	p.screen.HideCursor()
	defer p.screen.DisableMouse()

	events := make(chan tcell.Event, 256)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := p.screen.PollEvent()
			// Nil after screen finalization
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	ticker := time.NewTicker(p.cfg.FrameInterval())
	defer ticker.Stop()

	p.Draw()
	for !p.done {
		select {
		case <-ctx.Done():
			return p.result, ctx.Err()
		case ev := <-events:
			p.HandleEvent(ev)
		case <-ticker.C:
			p.Tick(p.deps.Clock.Now())
		}
	}
	return p.result, nil
}
