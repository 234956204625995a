// Package config loads tuning and page settings for the evasive widget.
//
// Configuration is loaded from a single YAML file specified by:
//   - EVASIVE_CONFIG environment variable, or
//   - --config flag passed to the command
//
// The file is decoded on top of Default, so any field left out keeps its tuned
// value. With no file at all the defaults are used unchanged.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/evasive/evade"
	"github.com/lixenwraith/evasive/parameter"
)

// EnvVar names the environment variable holding the config path
const EnvVar = "EVASIVE_CONFIG"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the master configuration.
type Config struct {
	// Motion tunes the escape trajectory.
	Motion MotionConfig `yaml:"motion"`

	// Viewport tunes bounds, walls and clamping.
	Viewport ViewportConfig `yaml:"viewport"`

	// Accept configures the companion control.
	Accept AcceptConfig `yaml:"accept"`

	// Display configures the terminal page.
	Display DisplayConfig `yaml:"display"`
}

// MotionConfig tunes the escape trajectory.
type MotionConfig struct {
	// Revision selects the motion model: wall-aware, frame or interval.
	// Default: wall-aware
	Revision string `yaml:"revision"`

	// ChaseRadius is the pointer distance (px) from the element center that starts evasion.
	ChaseRadius float64 `yaml:"chase_radius"`

	// Speed is the escape speed in px per second.
	Speed float64 `yaml:"speed"`

	// InitialKick is the jump (px) applied on the first chase. Zero disables it.
	InitialKick float64 `yaml:"initial_kick"`

	// MaxFrameDelta caps one frame's elapsed time.
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"`

	// IntervalStep and IntervalTick drive the interval revision only.
	IntervalStep float64       `yaml:"interval_step"`
	IntervalTick time.Duration `yaml:"interval_tick"`
}

// ViewportConfig tunes bounds, walls and clamping.
type ViewportConfig struct {
	// Padding insets the viewport (px).
	Padding float64 `yaml:"padding"`

	// MinSpan is the smallest usable span (px) per axis before padding gives way.
	MinSpan float64 `yaml:"min_span"`

	// WallMargin is the wall touch hysteresis (px).
	WallMargin float64 `yaml:"wall_margin"`

	// WallKick is the detach distance (px) on wide viewports.
	WallKick float64 `yaml:"wall_kick"`

	// WallKickNarrow is the detach distance (px) on viewports narrower than NarrowWidth.
	WallKickNarrow float64 `yaml:"wall_kick_narrow"`

	// NarrowWidth separates mobile-class from desktop-class viewports (px).
	NarrowWidth float64 `yaml:"narrow_width"`

	// ClampIterations bounds the inward correction loop.
	ClampIterations int `yaml:"clamp_iterations"`
}

// AcceptConfig configures the companion control.
type AcceptConfig struct {
	// Cooldown suppresses acceptance right after a chase stop.
	Cooldown time.Duration `yaml:"cooldown"`

	// Destinations are the outbound links, one picked uniformly at random on accept.
	Destinations []string `yaml:"destinations"`
}

// DisplayConfig configures the terminal page.
type DisplayConfig struct {
	// CellWidth and CellHeight map one terminal cell to viewport pixels.
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`

	// FPS is the emulated display refresh rate.
	FPS int `yaml:"fps"`

	// Sound enables audio cues.
	Sound bool `yaml:"sound"`

	// Page text.
	Message     string `yaml:"message"`
	Quote       string `yaml:"quote"`
	AcceptLabel string `yaml:"accept_label"`
	RejectLabel string `yaml:"reject_label"`
}

// Default returns the tuned configuration
func Default() Config {
	opts := evade.DefaultOptions()
	return Config{
		Motion: MotionConfig{
			Revision:      opts.Revision.String(),
			ChaseRadius:   opts.ChaseRadius,
			Speed:         opts.Speed,
			InitialKick:   opts.InitialKick,
			MaxFrameDelta: opts.MaxFrameDelta,
			IntervalStep:  opts.IntervalStep,
			IntervalTick:  opts.IntervalTick,
		},
		Viewport: ViewportConfig{
			Padding:         opts.Padding,
			MinSpan:         opts.MinSpan,
			WallMargin:      opts.WallMargin,
			WallKick:        opts.WallKick,
			WallKickNarrow:  opts.WallKickNarrow,
			NarrowWidth:     opts.NarrowWidth,
			ClampIterations: opts.ClampIterations,
		},
		Accept: AcceptConfig{
			Cooldown: opts.AcceptCooldown,
			Destinations: []string{
				"https://example.com/chocolate/dark",
				"https://example.com/chocolate/milk",
				"https://example.com/chocolate/white",
			},
		},
		Display: DisplayConfig{
			CellWidth:   parameter.CellWidth,
			CellHeight:  parameter.CellHeight,
			FPS:         parameter.FramesPerSecond,
			Sound:       true,
			Message:     "♥ You received a Valentine's letter ♥",
			Quote:       "Babe, buy me chocolate?",
			AcceptLabel: "Yes! ♥",
			RejectLabel: "No",
		},
	}
}

// Path resolves the config path from an explicit flag value or the environment
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvVar)
}

// Load reads the YAML file at path on top of Default; empty path returns Default
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML onto cfg and validates the result
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing yaml: %w", err)
	}
	return cfg.Validate()
}

// Validate rejects values the widget cannot run with
func (c *Config) Validate() error {
	if _, err := evade.ParseRevision(c.Motion.Revision); err != nil {
		return fmt.Errorf("%w: motion.revision: %v", ErrInvalid, err)
	}
	if c.Motion.ChaseRadius <= 0 {
		return fmt.Errorf("%w: motion.chase_radius must be positive, got %v", ErrInvalid, c.Motion.ChaseRadius)
	}
	if c.Motion.Speed <= 0 {
		return fmt.Errorf("%w: motion.speed must be positive, got %v", ErrInvalid, c.Motion.Speed)
	}
	if c.Motion.InitialKick < 0 {
		return fmt.Errorf("%w: motion.initial_kick must not be negative, got %v", ErrInvalid, c.Motion.InitialKick)
	}
	if c.Viewport.Padding < 0 {
		return fmt.Errorf("%w: viewport.padding must not be negative, got %v", ErrInvalid, c.Viewport.Padding)
	}
	if c.Viewport.ClampIterations < 1 {
		return fmt.Errorf("%w: viewport.clamp_iterations must be at least 1, got %d", ErrInvalid, c.Viewport.ClampIterations)
	}
	if c.Accept.Cooldown < 0 {
		return fmt.Errorf("%w: accept.cooldown must not be negative, got %v", ErrInvalid, c.Accept.Cooldown)
	}
	if len(c.Accept.Destinations) == 0 {
		return fmt.Errorf("%w: accept.destinations must list at least one URL", ErrInvalid)
	}
	for _, d := range c.Accept.Destinations {
		u, err := url.Parse(d)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: accept.destinations: %q is not an absolute URL", ErrInvalid, d)
		}
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return fmt.Errorf("%w: display cell size must be positive, got %vx%v", ErrInvalid, c.Display.CellWidth, c.Display.CellHeight)
	}
	if c.Display.FPS <= 0 || c.Display.FPS > 240 {
		return fmt.Errorf("%w: display.fps must be within 1..240, got %d", ErrInvalid, c.Display.FPS)
	}
	return nil
}

// Options converts the motion and viewport sections into controller options
func (c *Config) Options() (evade.Options, error) {
	rev, err := evade.ParseRevision(c.Motion.Revision)
	if err != nil {
		return evade.Options{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	opts := evade.DefaultOptions()
	opts.Revision = rev
	opts.ChaseRadius = c.Motion.ChaseRadius
	opts.Speed = c.Motion.Speed
	opts.InitialKick = c.Motion.InitialKick
	opts.MaxFrameDelta = c.Motion.MaxFrameDelta
	opts.IntervalStep = c.Motion.IntervalStep
	opts.IntervalTick = c.Motion.IntervalTick
	opts.Padding = c.Viewport.Padding
	opts.MinSpan = c.Viewport.MinSpan
	opts.WallMargin = c.Viewport.WallMargin
	opts.WallKick = c.Viewport.WallKick
	opts.WallKickNarrow = c.Viewport.WallKickNarrow
	opts.NarrowWidth = c.Viewport.NarrowWidth
	opts.ClampIterations = c.Viewport.ClampIterations
	opts.AcceptCooldown = c.Accept.Cooldown
	return opts, nil
}

// FrameInterval returns the frame period for the configured FPS
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Display.FPS)
}
