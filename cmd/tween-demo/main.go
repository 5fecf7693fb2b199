package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tween/audio"
	"github.com/lixenwraith/tween/config"
	"github.com/lixenwraith/tween/core"
)

var (
	configFlag   = flag.String("config", "", "Path to a TOML or YAML config file")
	curveFlag    = flag.String("curve", "", "Initial curve name")
	durationFlag = flag.Duration("duration", 0, "Initial phase duration")
	debugFlag    = flag.Bool("debug", false, "Write debug logs to the log directory")
	soundFlag    = flag.Bool("sound", false, "Start with sound enabled")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the demo crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.LoadAuto(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile := setupLogging(cfg.Log.Dir, cfg.Log.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Sound is optional; the demo runs silently when no output device opens
	sound := audio.NewSoundManager(logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable", "err", err)
	} else {
		defer sound.Cleanup()
	}

	d := newDemo(screen, cfg, sound, logger)
	d.run()
}

// applyFlags overlays explicitly set command-line flags on cfg
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "curve":
			cfg.Demo.Curve = *curveFlag
		case "duration":
			cfg.Demo.Duration = config.D(*durationFlag)
		case "debug":
			cfg.Log.Debug = *debugFlag
		case "sound":
			cfg.Demo.Sound = *soundFlag
		}
	})
}

// frameInterval converts the configured FPS into a redraw period
func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = config.Default().Demo.FPS
	}
	return time.Second / time.Duration(fps)
}
