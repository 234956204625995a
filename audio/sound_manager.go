package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays short cues for widget events
// Every Play method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      int
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences cues without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Played returns the number of cues handed to the mixer
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// PlayKick plays the short swoosh of a wall-kick
func (sm *SoundManager) PlayKick() {
	sm.add(beep.Take(sampleRate.N(time.Millisecond*120), NewSwooshGenerator(sampleRate, 220, 660, 120*time.Millisecond)))
}

// PlayAccept plays a rising two-note chime
func (sm *SoundManager) PlayAccept() {
	first, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return
	}
	second, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	sm.add(beep.Seq(
		fade(beep.Take(sampleRate.N(time.Millisecond*90), first), 0.2),
		fade(beep.Take(sampleRate.N(time.Millisecond*160), second), 0.2),
	))
}

// PlayReject plays a short low buzz
func (sm *SoundManager) PlayReject() {
	sm.add(beep.Take(sampleRate.N(time.Millisecond*150), NewBuzzGenerator(sampleRate, 120)))
}

func (sm *SoundManager) add(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}

// fade scales a streamer by a constant gain
func fade(s beep.Streamer, gain float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		return n, ok
	})
}

// SwooshGenerator sweeps a sine from one frequency to another over a fixed duration
type SwooshGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSwooshGenerator creates a sweep generator
func NewSwooshGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SwooshGenerator {
	return &SwooshGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(d),
	}
}

func (g *SwooshGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		// Triangle envelope peaking mid-sweep
		envelope := 1 - math.Abs(2*progress-1)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *SwooshGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics
		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
