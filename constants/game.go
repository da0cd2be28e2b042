package constants

import "time"

// Game Loop Timing Constants
const (
	// FramesPerSecond caps the render loop frequency
	FramesPerSecond = 60

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = time.Second / FramesPerSecond

	// InitialMoveDelay is the time between logical ticks at level 1
	InitialMoveDelay = 150 * time.Millisecond

	// MinMoveDelay is the floor the move delay never drops below
	MinMoveDelay = 50 * time.Millisecond

	// MoveDelayStep is subtracted from the move delay on each level-up
	MoveDelayStep = 10 * time.Millisecond

	// MaxCatchUpTicks bounds how many logical ticks a single frame may run
	MaxCatchUpTicks = 4
)

// Board Geometry (pixel units, one cell is Block pixels square)
const (
	Width  = 800
	Height = 500
	Block  = 25

	Cols = Width / Block
	Rows = Height / Block

	// InitialSnakeLength is the number of cells at spawn, head included
	InitialSnakeLength = 3
)

// Scoring
const (
	// LevelUpEvery is the score interval that triggers a level-up
	LevelUpEvery = 5

	// StartLevel is the level of a fresh session
	StartLevel = 1

	// FoodSampleAttempts bounds rejection sampling before falling back to a free-cell scan
	FoodSampleAttempts = 64
)

// Visual Interpolation
const (
	// HeadSmoothing is the per-frame easing factor of the rendered head
	HeadSmoothing = 0.2
)
