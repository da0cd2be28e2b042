package engine

import "time"

// GamePhase is the top-level state of the loop controller
type GamePhase int

const (
	PhaseMainMenu GamePhase = iota
	PhasePlaying
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseMainMenu:
		return "MainMenu"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

var validTransitions = map[GamePhase][]GamePhase{
	PhaseMainMenu: {PhasePlaying},
	PhasePlaying:  {PhaseGameOver},
	PhaseGameOver: {PhaseMainMenu},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// GameState tracks the current phase and when it was entered
type GameState struct {
	CurrentPhase   GamePhase
	PhaseStartTime time.Time
}

// NewGameState starts in the main menu
func NewGameState(now time.Time) *GameState {
	return &GameState{CurrentPhase: PhaseMainMenu, PhaseStartTime: now}
}

// TransitionPhase moves to a new phase if the transition is valid.
// Returns false and leaves the state untouched otherwise.
func (gs *GameState) TransitionPhase(to GamePhase, now time.Time) bool {
	if !CanTransition(gs.CurrentPhase, to) {
		return false
	}
	gs.CurrentPhase = to
	gs.PhaseStartTime = now
	return true
}

// GetPhaseDuration returns how long the current phase has been active
func (gs *GameState) GetPhaseDuration(now time.Time) time.Duration {
	return now.Sub(gs.PhaseStartTime)
}
