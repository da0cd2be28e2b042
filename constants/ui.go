package constants

// UI Text
const (
	TitleText      = "NEON SNAKE"
	StartHintText  = "PRESS ENTER"
	SkinHintFormat = "< %s >"
	HUDFormat      = "SCORE: %d  LVL: %d"
	ResultFormat   = "LAST: %d pts  LVL %d  (%s)"
)

// Terminal Layout
const (
	// CellColumns is how many terminal columns one board cell spans
	CellColumns = 2

	// BoardOriginX and BoardOriginY leave room for the border and HUD row
	BoardOriginX = 1
	BoardOriginY = 2

	// MinTerminalWidth/Height are needed to draw the whole board
	MinTerminalWidth  = Cols*CellColumns + 2
	MinTerminalHeight = Rows + 3
)

// Animation Phases (per-frame multipliers and periods)
const (
	FoodPulseRate      = 0.05
	FoodPulseAmplitude = 3.0
	HeadPulseRate      = 0.1
	HeadPulseAmplitude = 4.0
	TonguePeriod       = 40
	TongueVisible      = 15
)
