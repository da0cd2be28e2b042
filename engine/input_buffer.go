package engine

// InputBuffer latches the latest accepted direction between logical ticks.
// Requests are validated against the committed direction, never the buffered one,
// so a reversal can not sneak in through two quick perpendicular presses.
type InputBuffer struct {
	committed Direction
	buffered  Direction
}

// NewInputBuffer starts with initial as both committed and buffered direction
func NewInputBuffer(initial Direction) *InputBuffer {
	return &InputBuffer{committed: initial, buffered: initial}
}

// Submit buffers d if it is perpendicular to the committed direction.
// Returns false when the request was ignored.
func (b *InputBuffer) Submit(d Direction) bool {
	if !d.IsPerpendicular(b.committed) {
		return false
	}
	b.buffered = d
	return true
}

// Consume commits the buffered direction; called exactly once per logical tick
func (b *InputBuffer) Consume() Direction {
	b.committed = b.buffered
	return b.committed
}

// Committed returns the direction currently governing movement
func (b *InputBuffer) Committed() Direction {
	return b.committed
}

// pending returns the direction the next Consume will commit
func (b *InputBuffer) pending() Direction {
	return b.buffered
}
