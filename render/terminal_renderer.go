package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/neon-snake/constants"
	"github.com/lixenwraith/neon-snake/engine"
)

const tooSmallFormat = "terminal too small: need %dx%d"

// TerminalRenderer draws engine snapshots onto a tcell screen.
// Each board cell spans constants.CellColumns terminal columns and one row.
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int

	// Top-left terminal position of the framed board
	frameX int
	frameY int
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recomputes the centered board placement
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.frameX = max(0, (width-constants.MinTerminalWidth)/2)
	r.frameY = max(0, (height-constants.MinTerminalHeight)/2)
}

// Fits reports whether the whole board fits on screen
func (r *TerminalRenderer) Fits() bool {
	return r.width >= constants.MinTerminalWidth && r.height >= constants.MinTerminalHeight
}

// RenderFrame renders the entire frame for snap
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	r.screen.Clear()

	if !r.Fits() {
		msg := fmt.Sprintf(tooSmallFormat, constants.MinTerminalWidth, constants.MinTerminalHeight)
		r.drawText(0, 0, msg, tcell.StyleDefault)
		r.screen.Show()
		return
	}

	r.drawBackground()
	r.drawBorder(snap.Palette)

	switch snap.Phase {
	case engine.PhaseMainMenu:
		r.drawMenu(snap)
	default:
		if snap.HasSession() {
			r.drawBoard(snap)
		}
		r.drawHUD(snap)
	}

	r.screen.Show()
}

// boardRect returns the terminal rectangle of the board interior
func (r *TerminalRenderer) boardRect() (x0, y0, x1, y1 int) {
	x0 = r.frameX + constants.BoardOriginX
	y0 = r.frameY + constants.BoardOriginY
	return x0, y0, x0 + constants.Cols*constants.CellColumns, y0 + constants.Rows
}

// toScreen maps a board pixel position to a terminal cell
func (r *TerminalRenderer) toScreen(px, py float64) (int, int) {
	x0, y0, _, _ := r.boardRect()
	x := x0 + int(math.Floor(px*constants.CellColumns/constants.Block))
	y := y0 + int(math.Floor(py/constants.Block))
	return x, y
}

func (r *TerminalRenderer) inBoard(x, y int) bool {
	x0, y0, x1, y1 := r.boardRect()
	return x >= x0 && x < x1 && y >= y0 && y < y1
}

// bgAt returns the gradient color behind terminal row y
func (r *TerminalRenderer) bgAt(y int) colorful.Color {
	_, y0, _, _ := r.boardRect()
	return BackgroundAt(y-y0, constants.Rows)
}

func (r *TerminalRenderer) drawBackground() {
	x0, y0, x1, y1 := r.boardRect()
	for y := y0; y < y1; y++ {
		style := tcell.StyleDefault.Background(ToTcell(r.bgAt(y)))
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawBorder(p engine.Palette) {
	x0, y0, x1, y1 := r.boardRect()
	left, top, right, bottom := x0-1, y0-1, x1, y1
	style := tcell.StyleDefault.
		Foreground(ToTcell(p.Glow.BlendRgb(ColorBackgroundTop, 0.4))).
		Background(ToTcell(ColorBackgroundBottom))

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// shakeCells scales the pixel shake to whole terminal cells, at most one per axis
func shakeCells(v float64) int {
	return int(math.Round(v / constants.ShakeAmplitude))
}

func (r *TerminalRenderer) drawBoard(snap engine.Snapshot) {
	sx, sy := shakeCells(snap.Shake.X), shakeCells(snap.Shake.Y)

	// Particles under food and snake
	for _, p := range snap.Particles {
		x, y := r.toScreen(p.Pos.X, p.Pos.Y)
		x, y = x+sx, y+sy
		if !r.inBoard(x, y) {
			continue
		}
		bg := r.bgAt(y)
		style := tcell.StyleDefault.
			Foreground(ToTcell(ParticleColor(p, bg))).
			Background(ToTcell(bg))
		r.screen.SetContent(x, y, '·', nil, style)
	}

	// Food breathes between three fill levels
	pulse := FoodPulse(snap.Frame)
	foodRune := '▓'
	switch {
	case pulse > constants.FoodPulseAmplitude/3:
		foodRune = '█'
	case pulse < -constants.FoodPulseAmplitude/3:
		foodRune = '▒'
	}
	fx, fy := r.toScreen(float64(snap.Food.X), float64(snap.Food.Y))
	r.fillCell(fx+sx, fy+sy, foodRune, ColorFood)

	// Body, tail first; the logical head cell is drawn at the eased position
	for _, c := range snap.Snake[:len(snap.Snake)-1] {
		x, y := r.toScreen(float64(c.X), float64(c.Y))
		r.fillCell(x+sx, y+sy, '█', snap.Palette.Body)
	}

	r.drawHead(snap, sx, sy)
}

// fillCell paints one board cell (CellColumns wide) with rune ch
func (r *TerminalRenderer) fillCell(x, y int, ch rune, fg colorful.Color) {
	for i := 0; i < constants.CellColumns; i++ {
		if !r.inBoard(x+i, y) {
			continue
		}
		style := tcell.StyleDefault.Foreground(ToTcell(fg)).Background(ToTcell(r.bgAt(y)))
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawHead(snap engine.Snapshot, sx, sy int) {
	// Round the eased pixel position to the nearest cell so the head snaps cleanly
	vx := math.Round(snap.VisualHead.X/constants.Block) * constants.Block
	vy := math.Round(snap.VisualHead.Y/constants.Block) * constants.Block
	x, y := r.toScreen(vx, vy)
	x, y = x+sx, y+sy

	head := HeadGlow(snap.Palette, snap.Frame)
	eyes := eyeRunes(snap.Direction)
	style := tcell.StyleDefault.Foreground(ToTcell(ColorEyeWhite)).Background(ToTcell(head))
	for i := 0; i < constants.CellColumns; i++ {
		if r.inBoard(x+i, y) {
			r.screen.SetContent(x+i, y, eyes[i], nil, style)
		}
	}

	if !TongueOut(snap.Frame) {
		return
	}
	tx, ty, ch := x, y, '-'
	switch snap.Direction {
	case engine.DirRight:
		tx = x + constants.CellColumns
	case engine.DirLeft:
		tx = x - 1
	case engine.DirUp:
		ty, ch = y-1, '|'
	case engine.DirDown:
		ty, ch = y+1, '|'
	default:
		return
	}
	if r.inBoard(tx, ty) {
		style := tcell.StyleDefault.Foreground(ToTcell(ColorFood)).Background(ToTcell(r.bgAt(ty)))
		r.screen.SetContent(tx, ty, ch, nil, style)
	}
}

// eyeRunes places the eyes on the side of the head facing d
func eyeRunes(d engine.Direction) [constants.CellColumns]rune {
	switch d {
	case engine.DirRight:
		return [constants.CellColumns]rune{' ', ':'}
	case engine.DirLeft:
		return [constants.CellColumns]rune{':', ' '}
	case engine.DirUp:
		return [constants.CellColumns]rune{'\'', '\''}
	case engine.DirDown:
		return [constants.CellColumns]rune{'.', '.'}
	}
	return [constants.CellColumns]rune{'o', 'o'}
}

func (r *TerminalRenderer) drawHUD(snap engine.Snapshot) {
	style := tcell.StyleDefault.Foreground(ToTcell(ColorText))
	r.drawText(r.frameX, r.frameY, fmt.Sprintf(constants.HUDFormat, snap.Score, snap.Level), style)
	if snap.Muted {
		r.drawMuted()
	}
}

func (r *TerminalRenderer) drawMuted() {
	const label = "MUTED"
	x := r.frameX + constants.MinTerminalWidth - runewidth.StringWidth(label)
	r.drawText(x, r.frameY, label, tcell.StyleDefault.Foreground(ToTcell(ColorHint)))
}

func (r *TerminalRenderer) drawMenu(snap engine.Snapshot) {
	_, y0, _, y1 := r.boardRect()
	mid := (y0 + y1) / 2

	r.drawCentered(mid-3, constants.TitleText, ColorText, tcell.AttrBold)
	r.drawCentered(mid-1, fmt.Sprintf(constants.SkinHintFormat, snap.Palette.Name), snap.Palette.Glow, tcell.AttrNone)
	r.drawCentered(mid+1, constants.StartHintText, ColorText, tcell.AttrNone)

	if res := snap.LastResult; res != nil {
		line := fmt.Sprintf(constants.ResultFormat, res.Score, res.Level, res.Cause)
		r.drawCentered(mid+3, line, ColorHint, tcell.AttrNone)
	}
	if snap.Muted {
		r.drawMuted()
	}
}

// drawCentered draws text centered over the board on terminal row y
func (r *TerminalRenderer) drawCentered(y int, text string, fg colorful.Color, attrs tcell.AttrMask) {
	x := r.frameX + (constants.MinTerminalWidth-runewidth.StringWidth(text))/2
	style := tcell.StyleDefault.
		Foreground(ToTcell(fg)).
		Background(ToTcell(r.bgAt(y))).
		Attributes(attrs)
	r.drawText(x, y, text, style)
}

// drawText writes text starting at x, advancing by display width
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= r.width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += max(1, runewidth.RuneWidth(ch))
	}
}
