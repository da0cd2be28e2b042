package engine

import (
	"time"

	"github.com/lixenwraith/neon-snake/constants"
)

// Scheduler decides how many logical ticks are due at a frame
type Scheduler interface {
	// Due returns the number of ticks to run now, and consumes them
	Due(now time.Time) int
	// Reset restarts timing from now, discarding pending time
	Reset(now time.Time)
	// SetInterval changes the tick period for subsequent ticks
	SetInterval(d time.Duration)
	Interval() time.Duration
}

// FixedStepScheduler accumulates elapsed frame time and releases one tick per
// full interval. At most maxCatchUp ticks run per frame; the remainder is dropped
// so a stalled terminal does not replay a burst of moves.
type FixedStepScheduler struct {
	interval    time.Duration
	accumulated time.Duration
	last        time.Time
	maxCatchUp  int
}

func NewFixedStepScheduler(interval time.Duration) *FixedStepScheduler {
	return &FixedStepScheduler{interval: interval, maxCatchUp: constants.MaxCatchUpTicks}
}

func (s *FixedStepScheduler) Due(now time.Time) int {
	if elapsed := now.Sub(s.last); elapsed > 0 {
		s.accumulated += elapsed
	}
	s.last = now

	n := 0
	for s.accumulated >= s.interval && n < s.maxCatchUp {
		s.accumulated -= s.interval
		n++
	}
	if n == s.maxCatchUp && s.accumulated >= s.interval {
		s.accumulated %= s.interval
	}
	return n
}

func (s *FixedStepScheduler) Reset(now time.Time) {
	s.last = now
	s.accumulated = 0
}

func (s *FixedStepScheduler) SetInterval(d time.Duration) {
	if d > 0 {
		s.interval = d
	}
}

func (s *FixedStepScheduler) Interval() time.Duration { return s.interval }

// ElapsedScheduler reproduces wall-clock polling: a tick is due when strictly
// more than one interval has passed since the previous tick. Time spent past the
// threshold is lost, so the effective rate drifts below 1/interval.
type ElapsedScheduler struct {
	interval time.Duration
	last     time.Time
}

func NewElapsedScheduler(interval time.Duration) *ElapsedScheduler {
	return &ElapsedScheduler{interval: interval}
}

func (s *ElapsedScheduler) Due(now time.Time) int {
	if now.Sub(s.last) > s.interval {
		s.last = now
		return 1
	}
	return 0
}

func (s *ElapsedScheduler) Reset(now time.Time) { s.last = now }

func (s *ElapsedScheduler) SetInterval(d time.Duration) {
	if d > 0 {
		s.interval = d
	}
}

func (s *ElapsedScheduler) Interval() time.Duration { return s.interval }

// TimingPolicy selects a Scheduler implementation
type TimingPolicy string

const (
	TimingFixed   TimingPolicy = "fixed"
	TimingElapsed TimingPolicy = "elapsed"
)

// NewScheduler builds the scheduler for a policy; unknown policies use fixed-step
func NewScheduler(policy TimingPolicy, interval time.Duration) Scheduler {
	if policy == TimingElapsed {
		return NewElapsedScheduler(interval)
	}
	return NewFixedStepScheduler(interval)
}
