// Package config resolves runtime settings from defaults, an optional YAML file
// and NEON_SNAKE_* environment variables. Command-line flags are applied last by
// the caller.
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/neon-snake/audio"
	"github.com/lixenwraith/neon-snake/engine"
)

// Color modes accepted by ColorMode
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config is the complete runtime configuration
type Config struct {
	ColorMode string       `yaml:"color_mode"`
	Timing    string       `yaml:"timing"`
	Seed      uint64       `yaml:"seed"`
	Skin      string       `yaml:"skin"`
	Debug     bool         `yaml:"debug"`
	LogDir    string       `yaml:"log_dir"`
	Audio     AudioSection `yaml:"audio"`
}

// AudioSection configures sound effects
type AudioSection struct {
	Enabled bool               `yaml:"enabled"`
	Volume  int                `yaml:"volume"`
	Effects map[string]float64 `yaml:"effects"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		ColorMode: ColorAuto,
		Timing:    string(engine.TimingFixed),
		Skin:      engine.Palettes[0].Name,
		LogDir:    "logs",
		Audio: AudioSection{
			Enabled: true,
			Volume:  50,
		},
	}
}

// Load builds a config from defaults, the YAML file at path (skipped when path is
// empty) and environment variables read through getenv
func Load(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path; keys missing from the file keep their values
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// ApplyEnv overlays NEON_SNAKE_* variables; empty variables are ignored
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := getenv("NEON_SNAKE_COLOR"); v != "" {
		c.ColorMode = strings.ToLower(v)
	}
	if v := getenv("NEON_SNAKE_TIMING"); v != "" {
		c.Timing = strings.ToLower(v)
	}
	if v := getenv("NEON_SNAKE_SKIN"); v != "" {
		c.Skin = v
	}
	if v := getenv("NEON_SNAKE_LOG_DIR"); v != "" {
		c.LogDir = v
	}
	if v := getenv("NEON_SNAKE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "NEON_SNAKE_SEED")
		}
		c.Seed = seed
	}
	if v := getenv("NEON_SNAKE_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(err, "NEON_SNAKE_DEBUG")
		}
		c.Debug = debug
	}
	if v := getenv("NEON_SNAKE_AUDIO_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(err, "NEON_SNAKE_AUDIO_ENABLED")
		}
		c.Audio.Enabled = enabled
	}
	if v := getenv("NEON_SNAKE_MASTER_VOLUME"); v != "" {
		volume, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "NEON_SNAKE_MASTER_VOLUME")
		}
		c.Audio.Volume = volume
	}
	if v := getenv("NEON_SNAKE_SFX_VOLUMES"); v != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err != nil {
			return errors.Wrap(err, "NEON_SNAKE_SFX_VOLUMES")
		}
		if c.Audio.Effects == nil {
			c.Audio.Effects = make(map[string]float64, len(volumes))
		}
		for name, vol := range volumes {
			c.Audio.Effects[name] = vol
		}
	}
	return nil
}

// Validate rejects values the game can not run with
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return errors.Errorf("invalid color mode %q (want auto, truecolor or 256)", c.ColorMode)
	}

	switch engine.TimingPolicy(c.Timing) {
	case engine.TimingFixed, engine.TimingElapsed:
	default:
		return errors.Errorf("invalid timing %q (want fixed or elapsed)", c.Timing)
	}

	if _, ok := engine.PaletteByName(c.Skin); !ok {
		return errors.Errorf("unknown skin %q", c.Skin)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return errors.Errorf("audio volume %d out of range 0-100", c.Audio.Volume)
	}
	for name := range c.Audio.Effects {
		if _, ok := audio.ParseSoundType(name); !ok {
			return errors.Errorf("unknown sound effect %q", name)
		}
	}
	return nil
}

// TimingPolicy returns the scheduler policy
func (c *Config) TimingPolicy() engine.TimingPolicy {
	return engine.TimingPolicy(c.Timing)
}

// SkinIndex returns the palette index of the configured skin, 0 if unknown
func (c *Config) SkinIndex() int {
	idx, _ := engine.PaletteByName(c.Skin)
	return idx
}

// AudioConfig converts the audio section for the sound manager
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.SetMasterVolumePercent(c.Audio.Volume)
	for name, vol := range c.Audio.Effects {
		if s, ok := audio.ParseSoundType(name); ok {
			ac.EffectVolumes[s] = clampUnit(vol)
		}
	}
	return ac
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
