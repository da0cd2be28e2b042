package engine

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/neon-snake/constants"
)

// EndCause identifies why a session terminated
type EndCause int

const (
	CauseNone EndCause = iota
	CauseWall
	CauseSelf
	CauseBoardFull
)

func (c EndCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board full"
	default:
		return "none"
	}
}

// TickResult reports what one logical tick did
type TickResult struct {
	Ate       bool
	LeveledUp bool
	Ended     bool
	Cause     EndCause
}

// Session is the state of one play-through, from Start until a terminal tick.
// It is owned by the controller and mutated only on the loop goroutine.
type Session struct {
	ID string

	snake     *Snake
	input     *InputBuffer
	food      Cell
	score     int
	level     int
	moveDelay time.Duration

	particles *ParticleSystem
	visual    *Interpolator
	palette   Palette
	rng       *rand.Rand

	startTime time.Time
	lastTick  time.Time
	ticks     uint64
	shake     int
	shakeOff  Vec2
	alive     bool
}

// SessionOption customizes a session at construction
type SessionOption func(*sessionSetup)

type sessionSetup struct {
	head      Cell
	dir       Direction
	length    int
	food      *Cell
	maxPart   int
	moveDelay time.Duration
}

// WithHead places the spawn head
func WithHead(c Cell) SessionOption {
	return func(s *sessionSetup) { s.head = c }
}

// WithDirection sets the initial committed direction; the body trails behind it
func WithDirection(d Direction) SessionOption {
	return func(s *sessionSetup) { s.dir = d }
}

// WithLength sets the spawn body length
func WithLength(n int) SessionOption {
	return func(s *sessionSetup) { s.length = n }
}

// WithFood places the first food item instead of sampling it
func WithFood(c Cell) SessionOption {
	return func(s *sessionSetup) { s.food = &c }
}

// WithMaxParticles overrides the particle cap
func WithMaxParticles(n int) SessionOption {
	return func(s *sessionSetup) { s.maxPart = n }
}

// WithMoveDelay overrides the starting tick interval
func WithMoveDelay(d time.Duration) SessionOption {
	return func(s *sessionSetup) { s.moveDelay = d }
}

// SpawnHead is the default head cell: the board center snapped to the grid
func SpawnHead() Cell {
	return Cell{
		X: (constants.Width / 2 / constants.Block) * constants.Block,
		Y: (constants.Height / 2 / constants.Block) * constants.Block,
	}
}

// NewSession creates a fresh session at now
func NewSession(palette Palette, rng *rand.Rand, now time.Time, opts ...SessionOption) *Session {
	setup := sessionSetup{
		head:      SpawnHead(),
		dir:       DirRight,
		length:    constants.InitialSnakeLength,
		maxPart:   constants.MaxParticles,
		moveDelay: constants.InitialMoveDelay,
	}
	for _, opt := range opts {
		opt(&setup)
	}

	s := &Session{
		ID:        uuid.NewString(),
		snake:     NewSnake(setup.head, setup.dir, setup.length),
		input:     NewInputBuffer(setup.dir),
		level:     constants.StartLevel,
		moveDelay: setup.moveDelay,
		particles: NewParticleSystem(rng, setup.maxPart),
		visual:    NewInterpolator(setup.head.Vec(), constants.HeadSmoothing),
		palette:   palette,
		rng:       rng,
		startTime: now,
		lastTick:  now,
		alive:     true,
	}

	if setup.food != nil && !s.snake.Contains(*setup.food) {
		s.food = *setup.food
	} else if !s.placeFood() {
		s.alive = false
	}
	return s
}

// Steer forwards a direction request to the input buffer
func (s *Session) Steer(d Direction) bool {
	if !s.alive {
		return false
	}
	return s.input.Submit(d)
}

// Tick runs one logical step at now. A terminal result leaves the snake as it
// was before the tick; nothing out of bounds or overlapping is ever committed.
func (s *Session) Tick(now time.Time) TickResult {
	if !s.alive {
		return TickResult{Ended: true}
	}

	dir := s.input.Consume()
	head := s.snake.Head().Add(dir)

	if !head.InBounds() {
		return s.end(CauseWall)
	}
	// The tail about to be vacated still counts as occupied
	if s.snake.Contains(head) {
		return s.end(CauseSelf)
	}

	s.snake.Push(head)
	s.ticks++
	s.lastTick = now

	var res TickResult
	if head == s.food {
		res.Ate = true
		s.score++
		s.particles.SpawnBurst(head.Center(), s.palette.Glow, constants.BurstCount)
		s.shake = constants.ShakeFrames
		if s.score%constants.LevelUpEvery == 0 {
			res.LeveledUp = true
			s.level++
			s.moveDelay = max(constants.MinMoveDelay, s.moveDelay-constants.MoveDelayStep)
		}
		if !s.placeFood() {
			res.Ended, res.Cause = true, CauseBoardFull
			s.alive = false
		}
	} else {
		s.snake.PopTail()
	}
	return res
}

func (s *Session) end(cause EndCause) TickResult {
	s.alive = false
	return TickResult{Ended: true, Cause: cause}
}

// placeFood samples a free cell uniformly. Rejection sampling is tried first;
// a crowded board falls back to picking from the enumerated free cells.
// Returns false when the snake covers the whole board.
func (s *Session) placeFood() bool {
	for i := 0; i < constants.FoodSampleAttempts; i++ {
		c := CellAt(s.rng.Intn(constants.Cols), s.rng.Intn(constants.Rows))
		if !s.snake.Contains(c) {
			s.food = c
			return true
		}
	}

	free := make([]Cell, 0, constants.Cols*constants.Rows-s.snake.Len())
	for row := 0; row < constants.Rows; row++ {
		for col := 0; col < constants.Cols; col++ {
			if c := CellAt(col, row); !s.snake.Contains(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return false
	}
	s.food = free[s.rng.Intn(len(free))]
	return true
}

// Animate runs the per-frame presentation updates: head easing, particles, shake
func (s *Session) Animate() {
	s.visual.Step(s.snake.Head().Vec())
	s.particles.Update()

	if s.shake > 0 {
		s.shake--
		amp := constants.ShakeAmplitude
		s.shakeOff = Vec2{
			X: float64(s.rng.Intn(2*amp+1) - amp),
			Y: float64(s.rng.Intn(2*amp+1) - amp),
		}
	} else {
		s.shakeOff = Vec2{}
	}
}

func (s *Session) Alive() bool              { return s.alive }
func (s *Session) Score() int               { return s.score }
func (s *Session) Level() int               { return s.level }
func (s *Session) MoveDelay() time.Duration { return s.moveDelay }
func (s *Session) Food() Cell               { return s.food }
func (s *Session) Head() Cell               { return s.snake.Head() }
func (s *Session) Len() int                 { return s.snake.Len() }
func (s *Session) Cells() []Cell            { return s.snake.Cells() }
func (s *Session) Direction() Direction     { return s.input.Committed() }
func (s *Session) VisualHead() Vec2         { return s.visual.Position() }
func (s *Session) Particles() int           { return s.particles.Len() }
func (s *Session) Ticks() uint64            { return s.ticks }
func (s *Session) Palette() Palette         { return s.palette }

// Result summarizes the session for the menu and logs
func (s *Session) Result(cause EndCause, now time.Time) Result {
	return Result{
		SessionID: s.ID,
		Score:     s.score,
		Level:     s.level,
		Length:    s.snake.Len(),
		Cause:     cause,
		Duration:  now.Sub(s.startTime),
	}
}

// Result is the outcome of a finished session
type Result struct {
	SessionID string
	Score     int
	Level     int
	Length    int
	Cause     EndCause
	Duration  time.Duration
}

// ParticleSnapshot returns a copy of the active particles
func (s *Session) ParticleSnapshot() []Particle { return s.particles.Snapshot() }

// ShakeOffset is the render offset for the current frame, zero when calm
func (s *Session) ShakeOffset() Vec2 { return s.shakeOff }
