package engine

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/neon-snake/audio"
	"github.com/lixenwraith/neon-snake/constants"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// serpentine returns every board cell in boustrophedon order: row 0 left to
// right, row 1 right to left, and so on. Consecutive cells are always adjacent.
func serpentine() []Cell {
	path := make([]Cell, 0, constants.Cols*constants.Rows)
	for row := 0; row < constants.Rows; row++ {
		for i := 0; i < constants.Cols; i++ {
			col := i
			if row%2 == 1 {
				col = constants.Cols - 1 - i
			}
			path = append(path, CellAt(col, row))
		}
	}
	return path
}

// directionBetween returns the unit direction from a to an adjacent cell b
func directionBetween(a, b Cell) Direction {
	return Direction{DX: sign(b.X - a.X), DY: sign(b.Y - a.Y)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// recordingSound captures played effects in order
type recordingSound struct {
	played []audio.SoundType
	muted  bool
}

func (r *recordingSound) Play(s audio.SoundType) {
	r.played = append(r.played, s)
}

func (r *recordingSound) ToggleMute() bool {
	r.muted = !r.muted
	return r.muted
}

func (r *recordingSound) count(s audio.SoundType) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}
