package engine

// Snake is the ordered body, tail first and head last.
// The occupancy index mirrors cells so membership checks stay O(1) as the body grows.
type Snake struct {
	cells    []Cell
	occupied map[Cell]struct{}
}

// NewSnake lays out length cells in a straight line ending at head, trailing opposite to dir
func NewSnake(head Cell, dir Direction, length int) *Snake {
	if length < 1 {
		length = 1
	}
	s := &Snake{
		cells:    make([]Cell, 0, length*4),
		occupied: make(map[Cell]struct{}, length*4),
	}
	back := dir.Opposite()
	tail := head
	for i := 1; i < length; i++ {
		tail = tail.Add(back)
	}
	c := tail
	for i := 0; i < length; i++ {
		s.Push(c)
		c = c.Add(dir)
	}
	return s
}

// Head returns the most recently appended cell
func (s *Snake) Head() Cell {
	return s.cells[len(s.cells)-1]
}

// Tail returns the oldest cell
func (s *Snake) Tail() Cell {
	return s.cells[0]
}

func (s *Snake) Len() int {
	return len(s.cells)
}

// Contains reports whether c is occupied by any segment, tail included
func (s *Snake) Contains(c Cell) bool {
	_, ok := s.occupied[c]
	return ok
}

// Push appends a new head
func (s *Snake) Push(c Cell) {
	s.cells = append(s.cells, c)
	s.occupied[c] = struct{}{}
}

// PopTail removes and returns the oldest cell
func (s *Snake) PopTail() Cell {
	tail := s.cells[0]
	s.cells[0] = Cell{}
	s.cells = s.cells[1:]
	delete(s.occupied, tail)
	return tail
}

// Cells returns a copy of the body, tail first
func (s *Snake) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)
	return out
}
