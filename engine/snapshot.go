package engine

import "time"

// Snapshot is a read-only copy of everything the renderer needs for one frame.
// Slices are copies; mutating them does not affect the simulation.
type Snapshot struct {
	Phase GamePhase
	Frame uint64

	SkinIndex int
	Palette   Palette

	// Session fields, zero when no session is active
	Snake      []Cell
	VisualHead Vec2
	Direction  Direction
	Food       Cell
	Score      int
	Level      int
	MoveDelay  time.Duration
	Particles  []Particle
	Shake      Vec2

	LastResult *Result
	Muted      bool
}

// HasSession reports whether the snapshot carries board state
func (s Snapshot) HasSession() bool {
	return len(s.Snake) > 0
}
