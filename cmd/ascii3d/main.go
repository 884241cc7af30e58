package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/ascii3d/audio"
	"github.com/lixenwraith/ascii3d/config"
	"github.com/lixenwraith/ascii3d/engine"
	"github.com/lixenwraith/ascii3d/shape"
	"github.com/lixenwraith/ascii3d/terminal"
)

var (
	configFlag  = flag.String("config", "", "TOML config file (defaults and ASCII3D_* env apply without one)")
	backendFlag = flag.String("backend", "", "Terminal backend: tcell or ansi (overrides config)")
	shapeFlag   = flag.String("shape", "", "Skip the menu and start with cube, sphere or pyramid (or 1-3)")
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/ascii3d.log")
	fpsFlag     = flag.Int("fps", 0, "Target frames per second (overrides frame.interval)")
	muteFlag    = flag.Bool("mute", false, "Disable audio feedback")
	noHelpFlag  = flag.Bool("no-help", false, "Hide the controls text below the frame")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if rendering crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mASCII3D CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ascii3d: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Program exited.")
}

func run() error {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *backendFlag != "" {
		cfg.Terminal.Backend = *backendFlag
	}
	if *fpsFlag > 0 {
		cfg.Frame.Interval = time.Second / time.Duration(*fpsFlag)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	log.Printf("config: file=%q backend=%s grid=%dx%d interval=%s",
		*configFlag, cfg.Terminal.Backend, cfg.Screen.Width, cfg.Screen.Height, cfg.Frame.Interval)

	initial := engine.RenderState{Shape: cfg.StartShape(), Speed: cfg.Rotation.Speed}
	status := engine.StateMenu
	if *shapeFlag != "" {
		k, err := shape.ParseKind(*shapeFlag)
		if err != nil {
			return err
		}
		initial.Shape = k
		status = engine.StateRendering
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}
	samplers, err := shape.NewSet(cfg.ShapeOptions())
	if err != nil {
		return err
	}
	renderer := engine.NewRenderer(cfg.Pipeline(), cfg.Background(), samplers)

	term, err := terminal.Open(cfg.Terminal.Backend)
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup; Fini is idempotent
	defer term.Fini()

	var feedback engine.Feedback
	if cfg.Audio.Enabled {
		acfg := audio.DefaultConfig()
		acfg.Volume = cfg.Audio.Volume
		sm := audio.NewSoundManager(acfg)
		if err := sm.Initialize(); err != nil {
			log.Printf("audio: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			feedback = sm
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := engine.NewApp(term, keys, renderer, feedback, initial, status, engine.SessionConfig{
		Interval:  cfg.Frame.Interval,
		SpeedStep: cfg.Rotation.SpeedStep,
		ShowHelp:  !*noHelpFlag,
	})
	app.Run(ctx)

	term.Fini()
	return nil
}
