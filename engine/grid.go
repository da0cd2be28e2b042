package engine

import "github.com/lixenwraith/neon-snake/constants"

// Cell is a grid coordinate in pixel units; both axes are multiples of constants.Block
type Cell struct {
	X, Y int
}

// Add returns the neighbouring cell one block away in direction d
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX*constants.Block, Y: c.Y + d.DY*constants.Block}
}

// InBounds reports whether the cell lies inside [0,Width)x[0,Height)
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < constants.Width && c.Y >= 0 && c.Y < constants.Height
}

// Center returns the continuous midpoint of the cell
func (c Cell) Center() Vec2 {
	return Vec2{X: float64(c.X + constants.Block/2), Y: float64(c.Y + constants.Block/2)}
}

// Vec returns the cell origin as a continuous position
func (c Cell) Vec() Vec2 {
	return Vec2{X: float64(c.X), Y: float64(c.Y)}
}

// Col and Row convert the pixel coordinate to cell indices
func (c Cell) Col() int { return c.X / constants.Block }
func (c Cell) Row() int { return c.Y / constants.Block }

// CellAt builds a cell from column/row indices
func CellAt(col, row int) Cell {
	return Cell{X: col * constants.Block, Y: row * constants.Block}
}

// Direction is a unit cell delta
type Direction struct {
	DX, DY int
}

var (
	DirNone  = Direction{}
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsPerpendicular reports whether d turns 90 degrees relative to o
func (d Direction) IsPerpendicular(o Direction) bool {
	if d == DirNone || o == DirNone {
		return false
	}
	return d.DX*o.DX+d.DY*o.DY == 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Vec2 is a continuous position or velocity with sub-cell precision
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }
