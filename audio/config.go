package audio

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundBell:   1.0,
			SoundCoin:   0.6,
			SoundCrash:  0.8,
			SoundClick:  0.4,
			SoundWhoosh: 0.5,
		},
		SampleRate: 44100,
	}
}

// SetMasterVolumePercent sets master volume from a 0-100 value, clamped
func (c *AudioConfig) SetMasterVolumePercent(percent int) {
	c.MasterVolume = clamp01(float64(percent) / 100.0)
}

// ApplyEffectVolumes overrides per-effect volumes from a JSON object keyed by sound name,
// e.g. {"bell":0.7,"crash":0.2}. Unknown keys are rejected.
func (c *AudioConfig) ApplyEffectVolumes(raw string) error {
	var volumes map[string]float64
	if err := json.Unmarshal([]byte(raw), &volumes); err != nil {
		return errors.Wrap(err, "parse effect volumes")
	}
	for name, vol := range volumes {
		s, ok := ParseSoundType(name)
		if !ok {
			return errors.Errorf("unknown sound effect %q", name)
		}
		c.EffectVolumes[s] = clamp01(vol)
	}
	return nil
}

// volumeFor returns the effective linear volume of a sound
func (c *AudioConfig) volumeFor(s SoundType) float64 {
	return c.EffectVolumes[s] * c.MasterVolume
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
