package engine

import "time"

// TimeProvider supplies the current time to the simulation
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock. time.Now carries a monotonic
// reading, so differences between two Now values are immune to wall-clock jumps.
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

