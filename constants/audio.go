package constants

import "time"

// Bell Sound Timing (food eaten)
const (
	BellSoundDuration           = 300 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 250 * time.Millisecond
	BellSoundOvertoneRelease    = 120 * time.Millisecond
)

// Coin Sound Timing (level-up)
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Crash Sound Timing (game over)
const (
	CrashSoundDuration = 400 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 300 * time.Millisecond
)

// Click Sound Timing (skin change)
const (
	ClickSoundDuration = 30 * time.Millisecond
	ClickSoundAttack   = 2 * time.Millisecond
	ClickSoundRelease  = 20 * time.Millisecond
)

// Whoosh Sound Timing (session start)
const (
	WhooshSoundDuration = 300 * time.Millisecond
	WhooshSoundAttack   = 150 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)
