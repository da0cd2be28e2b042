package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnakeLayout(t *testing.T) {
	s := NewSnake(Cell{X: 400, Y: 250}, DirRight, 3)

	require.Equal(t, 3, s.Len())
	assert.Equal(t, []Cell{{350, 250}, {375, 250}, {400, 250}}, s.Cells())
	assert.Equal(t, Cell{X: 400, Y: 250}, s.Head())
	assert.Equal(t, Cell{X: 350, Y: 250}, s.Tail())
}

func TestNewSnakeTrailsOppositeToDirection(t *testing.T) {
	s := NewSnake(Cell{X: 100, Y: 100}, DirUp, 3)
	assert.Equal(t, []Cell{{100, 150}, {100, 125}, {100, 100}}, s.Cells())
}

func TestSnakePushPopMaintainsIndex(t *testing.T) {
	s := NewSnake(Cell{X: 100, Y: 100}, DirRight, 3)

	s.Push(Cell{X: 125, Y: 100})
	assert.True(t, s.Contains(Cell{X: 125, Y: 100}))
	assert.Equal(t, 4, s.Len())

	tail := s.PopTail()
	assert.Equal(t, Cell{X: 50, Y: 100}, tail)
	assert.False(t, s.Contains(tail))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, Cell{X: 75, Y: 100}, s.Tail())
}

func TestSnakeCellsReturnsCopy(t *testing.T) {
	s := NewSnake(Cell{X: 100, Y: 100}, DirRight, 3)
	cells := s.Cells()
	cells[0] = Cell{X: -1, Y: -1}

	assert.Equal(t, Cell{X: 50, Y: 100}, s.Tail())
}
