package engine

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/neon-snake/audio"
	"github.com/lixenwraith/neon-snake/constants"
)

type controllerHarness struct {
	ctrl  *Controller
	clock *MockTimeProvider
	sound *recordingSound
}

func newHarness(timing TimingPolicy, opts ...SessionOption) *controllerHarness {
	clock := NewMockTimeProvider(testEpoch)
	sound := &recordingSound{}
	ctrl := NewController(ControllerConfig{
		Clock:          clock,
		Rand:           newTestRand(),
		Timing:         timing,
		Sound:          sound,
		SessionOptions: opts,
	})
	return &controllerHarness{ctrl: ctrl, clock: clock, sound: sound}
}

// frame advances the clock one frame interval and runs a frame
func (h *controllerHarness) frame(events ...EventType) bool {
	h.clock.Advance(constants.FrameUpdateInterval)
	evs := make([]Event, len(events))
	for i, e := range events {
		evs[i] = Event{Type: e}
	}
	return h.ctrl.Frame(evs)
}

func TestControllerStartsInMenu(t *testing.T) {
	h := newHarness(TimingFixed)

	assert.Equal(t, PhaseMainMenu, h.ctrl.Phase())
	assert.Nil(t, h.ctrl.Session())
	assert.True(t, h.frame())
	assert.Equal(t, PhaseMainMenu, h.ctrl.Phase())

	snap := h.ctrl.Snapshot()
	assert.False(t, snap.HasSession())
	assert.Nil(t, snap.LastResult)
	assert.Equal(t, Palettes[0].Name, snap.Palette.Name)
}

func TestControllerSkinCycling(t *testing.T) {
	h := newHarness(TimingFixed)

	h.frame(EventLeft)
	assert.Equal(t, len(Palettes)-1, h.ctrl.SkinIndex())
	h.frame(EventRight, EventRight)
	assert.Equal(t, 1, h.ctrl.SkinIndex())
	assert.Equal(t, 3, h.sound.count(audio.SoundClick))

	// Up/Down do nothing in the menu
	h.frame(EventUp, EventDown)
	assert.Equal(t, 1, h.ctrl.SkinIndex())
	assert.Equal(t, PhaseMainMenu, h.ctrl.Phase())
}

func TestControllerStartUsesSelectedSkin(t *testing.T) {
	h := newHarness(TimingFixed)

	h.frame(EventRight, EventStart)

	require.Equal(t, PhasePlaying, h.ctrl.Phase())
	require.NotNil(t, h.ctrl.Session())
	assert.Equal(t, Palettes[1].Name, h.ctrl.Session().Palette().Name)
	assert.Equal(t, 1, h.sound.count(audio.SoundWhoosh))
}

func TestControllerTicksOnMoveDelay(t *testing.T) {
	h := newHarness(TimingFixed, WithFood(CellAt(0, 0)))
	h.frame(EventStart)
	s := h.ctrl.Session()
	start := s.Head()

	frames := 0
	for s.Ticks() == 0 {
		h.frame()
		frames++
		require.Less(t, frames, 100)
	}
	// Nine frames of 16.666666ms fall a few ns short of 150ms
	assert.Equal(t, 10, frames)
	assert.Equal(t, start.Add(DirRight), s.Head())
}

func TestControllerInputPrecedesTickInSameFrame(t *testing.T) {
	h := newHarness(TimingFixed, WithFood(CellAt(0, 0)))
	h.frame(EventStart)
	s := h.ctrl.Session()
	start := s.Head()

	for i := 0; i < 9; i++ {
		h.frame()
	}
	require.Zero(t, s.Ticks())

	h.frame(EventDown)
	require.Equal(t, uint64(1), s.Ticks())
	assert.Equal(t, start.Add(DirDown), s.Head())
	assert.Equal(t, DirDown, h.ctrl.Snapshot().Direction)
}

func TestControllerGameOverFoldsToMenu(t *testing.T) {
	h := newHarness(TimingElapsed, WithHead(CellAt(constants.Cols-1, 10)), WithFood(CellAt(0, 0)))
	h.frame(EventStart)
	id := h.ctrl.Session().ID

	for h.ctrl.Phase() == PhasePlaying {
		h.frame()
	}
	require.Equal(t, PhaseGameOver, h.ctrl.Phase())
	assert.True(t, h.ctrl.Snapshot().HasSession(), "final state visible for one frame")
	assert.Equal(t, 1, h.sound.count(audio.SoundCrash))

	h.frame()
	assert.Equal(t, PhaseMainMenu, h.ctrl.Phase())
	assert.Nil(t, h.ctrl.Session())

	last := h.ctrl.LastResult()
	require.NotNil(t, last)
	assert.Equal(t, id, last.SessionID)
	assert.Equal(t, CauseWall, last.Cause)
	assert.Equal(t, 0, last.Score)

	snap := h.ctrl.Snapshot()
	require.NotNil(t, snap.LastResult)
	assert.Equal(t, CauseWall, snap.LastResult.Cause)

	// A new session can be started again
	h.frame(EventStart)
	assert.Equal(t, PhasePlaying, h.ctrl.Phase())
	assert.NotEqual(t, id, h.ctrl.Session().ID)
}

func TestControllerLogsPhaseDuration(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	clock := NewMockTimeProvider(testEpoch)
	ctrl := NewController(ControllerConfig{
		Clock:          clock,
		Rand:           newTestRand(),
		Timing:         TimingElapsed,
		Logger:         logger,
		SessionOptions: []SessionOption{WithHead(CellAt(constants.Cols-1, 10)), WithFood(CellAt(0, 0))},
	})

	clock.Advance(constants.FrameUpdateInterval)
	ctrl.Frame([]Event{{Type: EventStart}})
	started := clock.Now()
	for ctrl.Phase() == PhasePlaying {
		clock.Advance(constants.FrameUpdateInterval)
		ctrl.Frame(nil)
	}
	ended := clock.Now()

	var found bool
	for _, e := range hook.AllEntries() {
		if e.Message != "phase changed" || e.Data["from"] != PhasePlaying.String() {
			continue
		}
		found = true
		assert.Equal(t, PhaseGameOver.String(), e.Data["to"])
		assert.Equal(t, ended.Sub(started), e.Data["duration"])
	}
	assert.True(t, found, "no phase change logged when leaving Playing")
}

func TestControllerQuitShortCircuits(t *testing.T) {
	for _, phase := range []string{"menu", "playing"} {
		t.Run(phase, func(t *testing.T) {
			h := newHarness(TimingFixed)
			if phase == "playing" {
				h.frame(EventStart)
			}
			before := h.ctrl.Phase()
			skin := h.ctrl.SkinIndex()

			assert.False(t, h.frame(EventQuit, EventRight, EventStart))
			assert.Equal(t, before, h.ctrl.Phase())
			assert.Equal(t, skin, h.ctrl.SkinIndex())
		})
	}
}

func TestControllerEatPlaysAndSpeedsUp(t *testing.T) {
	h := newHarness(TimingFixed, WithHead(Cell{X: 300, Y: 250}), WithFood(Cell{X: 325, Y: 250}))
	h.frame(EventStart)
	s := h.ctrl.Session()

	for s.Ticks() == 0 {
		h.frame()
	}
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 1, h.sound.count(audio.SoundBell))

	snap := h.ctrl.Snapshot()
	assert.Equal(t, 1, snap.Score)
	assert.Len(t, snap.Particles, constants.BurstCount)
	assert.Len(t, snap.Snake, 4)
}

func TestControllerLevelUpUpdatesScheduler(t *testing.T) {
	h := newHarness(TimingFixed, WithFood(CellAt(0, 0)))
	h.frame(EventStart)
	s := h.ctrl.Session()

	s.score = constants.LevelUpEvery - 1
	s.food = s.Head().Add(DirRight)
	for s.Ticks() == 0 {
		h.frame()
	}

	assert.Equal(t, constants.StartLevel+1, s.Level())
	assert.Equal(t, constants.InitialMoveDelay-constants.MoveDelayStep, h.ctrl.scheduler.Interval())
	assert.Equal(t, 1, h.sound.count(audio.SoundCoin))
}

func TestControllerMuteToggle(t *testing.T) {
	h := newHarness(TimingFixed)
	h.frame(EventMute)
	assert.True(t, h.ctrl.Snapshot().Muted)
	h.frame(EventMute)
	assert.False(t, h.ctrl.Snapshot().Muted)
}

func TestControllerMutedSkipsSounds(t *testing.T) {
	h := newHarness(TimingFixed)
	h.frame(EventMute)
	h.frame(EventRight, EventStart)

	assert.Equal(t, 0, h.sound.count(audio.SoundClick))
	assert.Equal(t, 0, h.sound.count(audio.SoundWhoosh))
}

func TestControllerMuteWithoutDevice(t *testing.T) {
	ctrl := NewController(ControllerConfig{Clock: NewMockTimeProvider(testEpoch), Rand: newTestRand()})
	ctrl.Frame([]Event{{Type: EventMute}})
	assert.True(t, ctrl.Snapshot().Muted)
}

func TestSnapshotIsReadOnlyCopy(t *testing.T) {
	h := newHarness(TimingFixed, WithHead(Cell{X: 300, Y: 250}), WithFood(Cell{X: 325, Y: 250}))
	h.frame(EventStart)
	for h.ctrl.Session().Ticks() == 0 {
		h.frame()
	}

	snap := h.ctrl.Snapshot()
	snap.Snake[0] = Cell{X: -100, Y: -100}
	snap.Particles[0].Life = -1

	fresh := h.ctrl.Snapshot()
	assert.NotEqual(t, Cell{X: -100, Y: -100}, fresh.Snake[0])
	assert.Equal(t, constants.ParticleLife-constants.ParticleDecay, fresh.Particles[0].Life)
}
