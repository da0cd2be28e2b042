package engine

import colorful "github.com/lucasb-eyer/go-colorful"

// Palette is a named color bundle for the snake
type Palette struct {
	Name   string
	Body   colorful.Color
	Head   colorful.Color
	Border colorful.Color
	Glow   colorful.Color
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Palettes is the fixed skin catalog selectable from the main menu
var Palettes = []Palette{
	{Name: "Venom Green", Body: rgb(20, 110, 60), Head: rgb(10, 80, 40), Border: rgb(0, 50, 25), Glow: rgb(0, 255, 120)},
	{Name: "Cyber Blue", Body: rgb(0, 150, 200), Head: rgb(0, 100, 150), Border: rgb(0, 60, 100), Glow: rgb(0, 255, 255)},
	{Name: "Magma Red", Body: rgb(200, 50, 50), Head: rgb(150, 0, 0), Border: rgb(100, 0, 0), Glow: rgb(255, 100, 100)},
}

// PaletteIndex wraps i into the catalog range, negative values included
func PaletteIndex(i int) int {
	n := len(Palettes)
	return ((i % n) + n) % n
}

// PaletteByName returns the index of the named palette, case-sensitive
func PaletteByName(name string) (int, bool) {
	for i, p := range Palettes {
		if p.Name == name {
			return i, true
		}
	}
	return 0, false
}
