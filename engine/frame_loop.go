package engine

import "time"

// FrameID identifies a pending frame request, zero is never issued
type FrameID uint64

// FrameCallback receives the timestamp of the frame it runs in
type FrameCallback func(now time.Time)

// FrameScheduler is the display-synchronized callback primitive
// RequestFrame queues fn for the next frame; CancelFrame drops a queued request
type FrameScheduler interface {
	RequestFrame(fn FrameCallback) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn FrameCallback
}

// FrameLoop runs frame callbacks once per Tick
// Requests made while a tick is running are deferred to the following tick so a
// callback that re-requests itself never runs twice in one frame
// Not safe for concurrent use, owned by the goroutine running the main select loop
type FrameLoop struct {
	nextID    FrameID
	pending   []frameRequest
	running   []frameRequest
	cancelled map[FrameID]struct{}
	cursor    int // Index of the callback currently running
	frame     uint64
}

// NewFrameLoop creates an empty frame loop
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{
		pending:   make([]frameRequest, 0, 4),
		running:   make([]frameRequest, 0, 4),
		cancelled: make(map[FrameID]struct{}),
	}
}

// RequestFrame queues fn for the next Tick
func (l *FrameLoop) RequestFrame(fn FrameCallback) FrameID {
	l.nextID++
	l.pending = append(l.pending, frameRequest{id: l.nextID, fn: fn})
	return l.nextID
}

// CancelFrame removes a pending request, unknown or already-run ids are ignored
func (l *FrameLoop) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	for i, req := range l.pending {
		if req.id == id {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
	// Cancelled from inside a callback of the current tick, only later entries still matter
	for i := l.cursor + 1; i < len(l.running); i++ {
		if l.running[i].id == id {
			l.cancelled[id] = struct{}{}
			return
		}
	}
}

// Tick runs every callback requested before this call
func (l *FrameLoop) Tick(now time.Time) {
	l.frame++
	l.running, l.pending = l.pending, l.running[:0]
	for i, req := range l.running {
		l.cursor = i
		if _, ok := l.cancelled[req.id]; ok {
			delete(l.cancelled, req.id)
			continue
		}
		req.fn(now)
	}
	l.running = l.running[:0]
	l.cursor = 0
}

// Pending returns the number of queued requests
func (l *FrameLoop) Pending() int {
	return len(l.pending)
}

// FrameNumber returns the count of ticks run so far
func (l *FrameLoop) FrameNumber() uint64 {
	return l.frame
}

// Clear drops every pending request
func (l *FrameLoop) Clear() {
	l.pending = l.pending[:0]
}
