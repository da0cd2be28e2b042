package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/neon-snake/constants"
	"github.com/lixenwraith/neon-snake/engine"
)

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Fixed scene colors
var (
	ColorBackgroundTop    = rgb(10, 10, 30) // Deep space
	ColorBackgroundBottom = rgb(2, 2, 10)
	ColorFood             = rgb(255, 45, 85) // Neon red
	ColorEyeWhite         = rgb(230, 230, 230)
	ColorText             = rgb(255, 255, 255)
	ColorHint             = rgb(140, 140, 160)
)

// ToTcell converts a colorful color to a 24-bit tcell color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// BackgroundAt returns the vertical gradient color for row out of rows
func BackgroundAt(row, rows int) colorful.Color {
	if rows <= 1 || row <= 0 {
		return ColorBackgroundTop
	}
	if row >= rows-1 {
		return ColorBackgroundBottom
	}
	return ColorBackgroundTop.BlendRgb(ColorBackgroundBottom, float64(row)/float64(rows-1))
}

// ParticleColor fades a particle toward bg by its remaining lifetime
func ParticleColor(p engine.Particle, bg colorful.Color) colorful.Color {
	alpha := float64(p.Life) / constants.ParticleLife
	if alpha <= 0 {
		return bg
	}
	if alpha > 1 {
		alpha = 1
	}
	return bg.BlendRgb(p.Color, alpha)
}

// FoodPulse returns the breathing offset in pixels for the given frame
func FoodPulse(frame uint64) float64 {
	return math.Sin(float64(frame)*constants.FoodPulseRate) * constants.FoodPulseAmplitude
}

// HeadGlow returns the head color shifted toward the glow by the pulse phase
func HeadGlow(p engine.Palette, frame uint64) colorful.Color {
	pulse := math.Sin(float64(frame)*constants.HeadPulseRate) * constants.HeadPulseAmplitude
	// Map [-amp, amp] onto a 0.1-0.5 blend so the head never turns fully into glow
	t := 0.3 + 0.2*pulse/constants.HeadPulseAmplitude
	return p.Head.BlendRgb(p.Glow, t)
}

// TongueOut reports whether the tongue is drawn on this frame
func TongueOut(frame uint64) bool {
	return frame%constants.TonguePeriod < constants.TongueVisible
}
