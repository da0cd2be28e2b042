package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundBell   SoundType = iota // Food eaten
	SoundCoin                    // Level-up
	SoundCrash                   // Session ended by collision
	SoundClick                   // Skin changed in menu
	SoundWhoosh                  // Session started
	soundTypeCount
)

// String returns the config key of the sound type
func (s SoundType) String() string {
	switch s {
	case SoundBell:
		return "bell"
	case SoundCoin:
		return "coin"
	case SoundCrash:
		return "crash"
	case SoundClick:
		return "click"
	case SoundWhoosh:
		return "whoosh"
	default:
		return "unknown"
	}
}

// ParseSoundType maps a config key back to its SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for s := SoundType(0); s < soundTypeCount; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// AudioConfig holds audio output settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}
