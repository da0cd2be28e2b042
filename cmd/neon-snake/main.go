package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"golang.org/x/term"

	"github.com/lixenwraith/neon-snake/audio"
	"github.com/lixenwraith/neon-snake/config"
	"github.com/lixenwraith/neon-snake/engine"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "neon-snake: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts := newOptions("neon-snake", os.Stderr)
	if err := opts.parse(args); err != nil {
		return err
	}
	cfg, err := opts.load(os.Getenv)
	if err != nil {
		return errors.Wrap(err, "config")
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	logger, logFile := setupLogging(cfg.LogDir, cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	applyColorMode(cfg.ColorMode)
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initialize screen")
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			crashReport(screen.Fini, r)
			os.Exit(1)
		}
	}()

	screen.HideCursor()
	screen.Clear()

	sound := initSound(cfg, logger)
	if sm, ok := sound.(*audio.SoundManager); ok {
		defer sm.Cleanup()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.WithFields(logrus.Fields{
		"seed":   seed,
		"timing": cfg.Timing,
		"skin":   cfg.Skin,
	}).Info("starting")

	ctrl := engine.NewController(engine.ControllerConfig{
		Clock:     engine.NewMonotonicTimeProvider(),
		Rand:      rand.New(rand.NewSource(seed)),
		Timing:    cfg.TimingPolicy(),
		SkinIndex: cfg.SkinIndex(),
		Sound:     sound,
		Logger:    logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := newGame(screen, ctrl, logger)
	err = g.run(ctx)
	logger.WithFields(g.stats.Fields()).Info("exiting")
	return err
}

// initSound returns a ready sound player, or nil when audio is disabled or unavailable
func initSound(cfg *config.Config, logger logrus.FieldLogger) engine.SoundPlayer {
	if !cfg.Audio.Enabled {
		return nil
	}
	sm := audio.NewSoundManager(cfg.AudioConfig())
	if err := sm.Initialize(); err != nil {
		// Audio is optional; the game runs silently
		logger.WithError(err).Warn("audio unavailable")
		return nil
	}
	return sm
}

// applyColorMode steers tcell's color detection through its environment switches
func applyColorMode(mode string) {
	switch mode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}
}
