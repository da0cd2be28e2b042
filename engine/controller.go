package engine

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/neon-snake/audio"
	"github.com/lixenwraith/neon-snake/constants"
)

// SoundPlayer plays one-shot effects; audio.SoundManager satisfies it
type SoundPlayer interface {
	Play(s audio.SoundType)
}

// muter is implemented by sound players that support muting
type muter interface {
	ToggleMute() bool
}

// ControllerConfig wires the collaborators of a Controller
type ControllerConfig struct {
	Clock     TimeProvider
	Rand      *rand.Rand
	Timing    TimingPolicy
	SkinIndex int
	Sound     SoundPlayer
	Logger    logrus.FieldLogger

	// SessionOptions are applied to every new session
	SessionOptions []SessionOption
}

// Controller runs the MainMenu -> Playing -> GameOver -> MainMenu loop.
// Frame is the only mutating entry point and must be called once per rendered frame.
type Controller struct {
	clock     TimeProvider
	rng       *rand.Rand
	scheduler Scheduler
	sound     SoundPlayer
	log       logrus.FieldLogger
	opts      []SessionOption

	state     *GameState
	skinIndex int
	session   *Session
	frame     uint64
	last      *Result
	muted     bool
}

// NewController creates a controller sitting in the main menu
func NewController(cfg ControllerConfig) *Controller {
	if cfg.Clock == nil {
		cfg.Clock = NewMonotonicTimeProvider()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.Logger = l
	}

	return &Controller{
		clock:     cfg.Clock,
		rng:       cfg.Rand,
		scheduler: NewScheduler(cfg.Timing, constants.InitialMoveDelay),
		sound:     cfg.Sound,
		log:       cfg.Logger,
		opts:      cfg.SessionOptions,
		state:     NewGameState(cfg.Clock.Now()),
		skinIndex: PaletteIndex(cfg.SkinIndex),
	}
}

// Frame advances one frame. Input events are applied first, then due logical
// ticks, then per-frame animation. Returns false when a quit was requested; the
// rest of that frame is skipped.
func (c *Controller) Frame(events []Event) bool {
	now := c.clock.Now()
	c.frame++

	for _, ev := range events {
		if ev.Type == EventQuit {
			c.log.WithField("phase", c.state.CurrentPhase.String()).Info("quit requested")
			return false
		}
		c.handleEvent(ev, now)
	}

	switch c.state.CurrentPhase {
	case PhasePlaying:
		c.advance(now)
	case PhaseGameOver:
		c.session = nil
		c.transition(PhaseMainMenu, now)
	}
	return true
}

func (c *Controller) handleEvent(ev Event, now time.Time) {
	if ev.Type == EventMute {
		if m, ok := c.sound.(muter); ok {
			c.muted = m.ToggleMute()
		} else {
			c.muted = !c.muted
		}
		return
	}

	switch c.state.CurrentPhase {
	case PhaseMainMenu:
		switch ev.Type {
		case EventRight:
			c.cycleSkin(1)
		case EventLeft:
			c.cycleSkin(-1)
		case EventStart:
			c.startSession(now)
		}
	case PhasePlaying:
		if d := ev.Direction(); d != DirNone {
			c.session.Steer(d)
		}
	}
}

func (c *Controller) cycleSkin(step int) {
	c.skinIndex = PaletteIndex(c.skinIndex + step)
	c.play(audio.SoundClick)
}

func (c *Controller) startSession(now time.Time) {
	if !c.transition(PhasePlaying, now) {
		return
	}
	c.session = NewSession(Palettes[c.skinIndex], c.rng, now, c.opts...)
	c.scheduler.SetInterval(c.session.MoveDelay())
	c.scheduler.Reset(now)
	c.play(audio.SoundWhoosh)
	c.log.WithFields(logrus.Fields{
		"session": c.session.ID,
		"skin":    Palettes[c.skinIndex].Name,
	}).Info("session started")
}

// advance runs due ticks, then animation if the session survived them
func (c *Controller) advance(now time.Time) {
	due := c.scheduler.Due(now)
	for i := 0; i < due; i++ {
		res := c.session.Tick(now)
		if res.Ate {
			c.play(audio.SoundBell)
		}
		if res.LeveledUp {
			c.scheduler.SetInterval(c.session.MoveDelay())
			c.play(audio.SoundCoin)
			c.log.WithFields(logrus.Fields{
				"session":    c.session.ID,
				"level":      c.session.Level(),
				"move_delay": c.session.MoveDelay(),
			}).Debug("level up")
		}
		if res.Ended {
			c.endSession(res.Cause, now)
			return
		}
	}
	c.session.Animate()
}

func (c *Controller) endSession(cause EndCause, now time.Time) {
	result := c.session.Result(cause, now)
	c.last = &result
	c.transition(PhaseGameOver, now)
	c.play(audio.SoundCrash)
	c.log.WithFields(logrus.Fields{
		"session":  result.SessionID,
		"score":    result.Score,
		"level":    result.Level,
		"length":   result.Length,
		"cause":    result.Cause.String(),
		"duration": result.Duration,
	}).Info("session ended")
}

func (c *Controller) transition(to GamePhase, now time.Time) bool {
	from := c.state.CurrentPhase
	spent := c.state.GetPhaseDuration(now)
	fields := logrus.Fields{"from": from.String(), "to": to.String()}
	if !c.state.TransitionPhase(to, now) {
		c.log.WithFields(fields).Warn("rejected phase transition")
		return false
	}
	fields["duration"] = spent
	c.log.WithFields(fields).Debug("phase changed")
	return true
}

func (c *Controller) play(s audio.SoundType) {
	if c.sound != nil && !c.muted {
		c.sound.Play(s)
	}
}

// Phase returns the current phase
func (c *Controller) Phase() GamePhase { return c.state.CurrentPhase }

// Session returns the active session, nil outside Playing/GameOver
func (c *Controller) Session() *Session { return c.session }

// SkinIndex returns the selected palette index
func (c *Controller) SkinIndex() int { return c.skinIndex }

// LastResult returns the outcome of the previous session, nil before the first one ends
func (c *Controller) LastResult() *Result { return c.last }

// Snapshot copies the state the renderer needs for the current frame
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     c.state.CurrentPhase,
		Frame:     c.frame,
		SkinIndex: c.skinIndex,
		Palette:   Palettes[c.skinIndex],
		Muted:     c.muted,
	}
	if c.last != nil {
		r := *c.last
		snap.LastResult = &r
	}
	if s := c.session; s != nil {
		snap.Palette = s.Palette()
		snap.Snake = s.Cells()
		snap.VisualHead = s.VisualHead()
		snap.Direction = s.Direction()
		snap.Food = s.Food()
		snap.Score = s.Score()
		snap.Level = s.Level()
		snap.MoveDelay = s.MoveDelay()
		snap.Particles = s.ParticleSnapshot()
		snap.Shake = s.ShakeOffset()
	}
	return snap
}
