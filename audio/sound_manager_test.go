package audio

import "testing"

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for s := SoundType(0); s < soundTypeCount; s++ {
		sm.Play(s)
	}
	sm.Play(soundTypeCount)
	sm.ToggleMute()
	sm.Cleanup()

	if sm.IsActive() {
		t.Error("Uninitialized manager should not be active")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI/test environments without audio devices;
	// the game runs without audio in that case
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	if !sm.IsActive() {
		t.Error("Expected active manager after initialization")
	}

	// Second initialization should be a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.Play(SoundClick)
}

// TestSoundManagerDisabled verifies a disabled config never opens the device
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Errorf("Disabled manager should initialize as no-op, got %v", err)
	}
	if sm.IsActive() {
		t.Error("Disabled manager should not be active")
	}
}

// TestSoundManagerToggleMute verifies mute flips each call
func TestSoundManagerToggleMute(t *testing.T) {
	sm := NewSoundManager(nil)

	if !sm.ToggleMute() {
		t.Error("First toggle should mute")
	}
	if sm.ToggleMute() {
		t.Error("Second toggle should unmute")
	}
}
