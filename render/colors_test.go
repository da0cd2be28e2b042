package render

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/neon-snake/constants"
	"github.com/lixenwraith/neon-snake/engine"
)

func TestToTcell(t *testing.T) {
	tests := []struct {
		name    string
		color   colorful.Color
		r, g, b int32
	}{
		{"Black", colorful.Color{}, 0, 0, 0},
		{"Food red", ColorFood, 255, 45, 85},
		{"Out of gamut clamps", colorful.Color{R: 1.5, G: -0.2, B: 0.5}, 255, 0, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := ToTcell(tt.color).RGB()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("ToTcell() = (%d,%d,%d), want (%d,%d,%d)", r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestBackgroundGradient(t *testing.T) {
	if BackgroundAt(0, constants.Rows) != ColorBackgroundTop {
		t.Error("Top row should use the top color")
	}
	if BackgroundAt(constants.Rows-1, constants.Rows) != ColorBackgroundBottom {
		t.Error("Bottom row should use the bottom color")
	}

	// Every channel darkens monotonically from top to bottom
	prev := BackgroundAt(0, constants.Rows)
	for row := 1; row < constants.Rows; row++ {
		c := BackgroundAt(row, constants.Rows)
		if c.R > prev.R || c.G > prev.G || c.B > prev.B {
			t.Errorf("Row %d brighter than row %d", row, row-1)
		}
		prev = c
	}
}

func TestParticleColorFades(t *testing.T) {
	bg := ColorBackgroundTop
	glow := engine.Palettes[1].Glow

	full := ParticleColor(engine.Particle{Life: constants.ParticleLife, Color: glow}, bg)
	if full.DistanceRgb(glow) > 1e-9 {
		t.Errorf("Full-life particle = %v, want %v", full, glow)
	}

	dead := ParticleColor(engine.Particle{Life: 0, Color: glow}, bg)
	if dead != bg {
		t.Errorf("Dead particle = %v, want background", dead)
	}

	half := ParticleColor(engine.Particle{Life: constants.ParticleLife / 2, Color: glow}, bg)
	if d1, d2 := half.DistanceRgb(bg), half.DistanceRgb(glow); d1 == 0 || d2 == 0 {
		t.Errorf("Half-life particle should sit between background and color, got %v", half)
	}
}

func TestFoodPulse(t *testing.T) {
	if FoodPulse(0) != 0 {
		t.Errorf("FoodPulse(0) = %f, want 0", FoodPulse(0))
	}
	for frame := uint64(0); frame < 200; frame++ {
		if p := FoodPulse(frame); math.Abs(p) > constants.FoodPulseAmplitude {
			t.Fatalf("FoodPulse(%d) = %f exceeds amplitude", frame, p)
		}
	}
}

func TestHeadGlowStaysBetweenHeadAndGlow(t *testing.T) {
	p := engine.Palettes[0]
	span := p.Head.DistanceRgb(p.Glow)
	for frame := uint64(0); frame < 100; frame++ {
		c := HeadGlow(p, frame)
		if c.DistanceRgb(p.Head) > span || c.DistanceRgb(p.Glow) > span {
			t.Fatalf("Frame %d head color %v outside head/glow segment", frame, c)
		}
		if c.DistanceRgb(p.Glow) < 1e-9 {
			t.Fatalf("Frame %d head turned fully into glow", frame)
		}
	}
}

func TestTongueOut(t *testing.T) {
	tests := []struct {
		frame uint64
		want  bool
	}{
		{0, true},
		{constants.TongueVisible - 1, true},
		{constants.TongueVisible, false},
		{constants.TonguePeriod - 1, false},
		{constants.TonguePeriod, true},
	}
	for _, tt := range tests {
		if got := TongueOut(tt.frame); got != tt.want {
			t.Errorf("TongueOut(%d) = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

func TestShakeCells(t *testing.T) {
	tests := []struct {
		px   float64
		want int
	}{
		{0, 0},
		{1, 0},
		{-1, 0},
		{constants.ShakeAmplitude, 1},
		{-constants.ShakeAmplitude, -1},
		{3, 1},
	}
	for _, tt := range tests {
		if got := shakeCells(tt.px); got != tt.want {
			t.Errorf("shakeCells(%v) = %d, want %d", tt.px, got, tt.want)
		}
	}
}
