// evasive shows a terminal Valentine's card whose "No" button runs away
// from the mouse. Clicking "Yes" ends the session with a randomly chosen
// destination link printed to stdout.
//
// Settings come from a YAML file (--config or EVASIVE_CONFIG) layered over
// the built-in defaults; a few common knobs have flags of their own.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/evasive/audio"
	"github.com/lixenwraith/evasive/config"
	"github.com/lixenwraith/evasive/evade"
	"github.com/lixenwraith/evasive/page"
)

// options collects parsed command-line flags
type options struct {
	configPath string
	revision   string
	fps        int
	debug      bool
	mute       bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "evasive: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var o options
	flagSet := pflag.NewFlagSet("evasive", pflag.ContinueOnError)
	flagSet.StringVarP(&o.configPath, "config", "c", "", "path to YAML config (default: $"+config.EnvVar+")")
	flagSet.StringVarP(&o.revision, "revision", "r", "", "motion model: wall-aware, frame or interval (overrides config)")
	flagSet.IntVar(&o.fps, "fps", 0, "display refresh rate (overrides config)")
	flagSet.BoolVarP(&o.debug, "debug", "d", false, "write logs to logs/evasive.log and show the status line")
	flagSet.BoolVar(&o.mute, "mute", false, "disable sound cues")
	flagSet.SetOutput(os.Stderr)

	if err := flagSet.Parse(args); err != nil {
		return o, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return o, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	return o, nil
}

// loadConfig resolves the config file and applies flag overrides
func loadConfig(o options) (config.Config, error) {
	cfg, err := config.Load(config.Path(o.configPath))
	if err != nil {
		return config.Config{}, err
	}
	if o.revision != "" {
		if _, err := evade.ParseRevision(o.revision); err != nil {
			return config.Config{}, fmt.Errorf("%w: --revision: %v", config.ErrInvalid, err)
		}
		cfg.Motion.Revision = o.revision
	}
	if o.fps != 0 {
		cfg.Display.FPS = o.fps
	}
	if o.mute {
		cfg.Display.Sound = false
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(args []string) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	if f := setupLogging(o.debug); f != nil {
		defer f.Close()
	}

	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	log.Printf("evasive: revision=%s fps=%d sound=%v", cfg.Motion.Revision, cfg.Display.FPS, cfg.Display.Sound)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}

	// Panic recovery: restore the terminal before printing so the trace stays readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mEVASIVE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	deps := page.Deps{
		Logger:     log.Default(),
		ShowStatus: o.debug,
	}
	if cfg.Display.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("evasive: audio unavailable, continuing without sound: %v", err)
		} else {
			defer sm.Cleanup()
			deps.Cues = sm
		}
	}

	p, err := page.New(screen, cfg, deps)
	if err != nil {
		screen.Fini()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := p.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Printf("evasive: session ended: %s", res.Outcome)
	switch res.Outcome {
	case page.OutcomeAccepted:
		fmt.Println(res.Destination)
	case page.OutcomeRejected:
		fmt.Println("closed")
	}
	return nil
}
