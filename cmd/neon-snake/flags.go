package main

import (
	"flag"
	"io"

	"github.com/lixenwraith/neon-snake/config"
)

// options holds command-line flags; only flags set explicitly override the config
type options struct {
	fs *flag.FlagSet

	configPath string
	color      string
	timing     string
	seed       uint64
	skin       string
	debug      bool
	mute       bool
	volume     int
}

func newOptions(name string, output io.Writer) *options {
	o := &options{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	o.fs.SetOutput(output)

	o.fs.StringVar(&o.configPath, "config", "", "Path to YAML config file")
	o.fs.StringVar(&o.color, "color", config.ColorAuto, "Color mode: auto, truecolor, 256")
	o.fs.StringVar(&o.timing, "timing", "fixed", "Tick scheduling: fixed, elapsed")
	o.fs.Uint64Var(&o.seed, "seed", 0, "Random seed (0 = time based)")
	o.fs.StringVar(&o.skin, "skin", "", "Starting skin name")
	o.fs.BoolVar(&o.debug, "debug", false, "Write debug logs to the log directory")
	o.fs.BoolVar(&o.mute, "mute", false, "Disable sound effects")
	o.fs.IntVar(&o.volume, "volume", 50, "Master volume 0-100")
	return o
}

func (o *options) parse(args []string) error {
	return o.fs.Parse(args)
}

// apply overlays the explicitly set flags onto cfg
func (o *options) apply(cfg *config.Config) {
	o.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "color":
			cfg.ColorMode = o.color
		case "timing":
			cfg.Timing = o.timing
		case "seed":
			cfg.Seed = o.seed
		case "skin":
			cfg.Skin = o.skin
		case "debug":
			cfg.Debug = o.debug
		case "mute":
			cfg.Audio.Enabled = !o.mute
		case "volume":
			cfg.Audio.Volume = o.volume
		}
	})
}

// load resolves the final configuration: defaults, file, environment, flags
func (o *options) load(getenv func(string) string) (*config.Config, error) {
	cfg, err := config.Load(o.configPath, getenv)
	if err != nil {
		return nil, err
	}
	o.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
