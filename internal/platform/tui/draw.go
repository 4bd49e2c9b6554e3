package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// Theme selects the bird and background colours.
type Theme struct {
	Bird       string
	Background string
}

// ThemeFromConfig copies the theme section of a config.
func ThemeFromConfig(c config.ThemeConfig) Theme {
	return Theme{Bird: c.Bird, Background: c.Background}
}

func (t Theme) birdColor() core.Color {
	switch t.Bird {
	case "blue":
		return core.ColorBrightBlue
	case "red":
		return core.ColorRed
	default:
		return core.ColorBrightYellow
	}
}

func (t Theme) night() bool {
	return t.Background == "night"
}

// HUD is the text shown under the playfield.
type HUD struct {
	HighScore int
	Speed     int
	Muted     bool
}

// viewport maps world pixels onto a block of terminal cells.
type viewport struct {
	offX, offY int
	cols, rows int
	sx, sy     float64
}

// fitViewport scales the world into the screen, keeping its aspect ratio and
// reserving the last row for the HUD.
func fitViewport(worldW, worldH float64, screenW, screenH int) viewport {
	avail := max(screenH-1, 1)
	rows := avail
	cols := int(float64(rows) * worldW / worldH * cellAspect)
	if cols > screenW {
		cols = screenW
		rows = int(float64(cols) * worldH / (worldW * cellAspect))
	}
	cols = max(cols, 1)
	rows = max(rows, 1)

	return viewport{
		offX: (screenW - cols) / 2,
		offY: (avail - rows) / 2,
		cols: cols,
		rows: rows,
		sx:   float64(cols) / worldW,
		sy:   float64(rows) / worldH,
	}
}

// rect converts a world rectangle into the cells it touches, clipped to the viewport.
func (v viewport) rect(r core.RectF) core.Rect {
	x0 := core.Clamp(int(math.Floor(r.X*v.sx)), 0, v.cols)
	x1 := core.Clamp(int(math.Ceil(r.Right()*v.sx)), 0, v.cols)
	y0 := core.Clamp(int(math.Floor(r.Y*v.sy)), 0, v.rows)
	y1 := core.Clamp(int(math.Ceil(r.Bottom()*v.sy)), 0, v.rows)
	return core.NewRect(v.offX+x0, v.offY+y0, x1-x0, y1-y0)
}

func (v viewport) row(y float64) int {
	return v.offY + core.Clamp(int(math.Floor(y*v.sy)), 0, v.rows)
}

// Draw renders a snapshot into the screen buffer.
func Draw(s *core.Screen, snap flappy.Snapshot, theme Theme, hud HUD) {
	s.Clear()
	v := fitViewport(snap.WorldW, snap.WorldH, s.Width(), s.Height())
	groundRow := v.row(snap.GroundY)

	drawSky(s, v, groundRow, theme)

	pipeColor := core.ColorGreen
	if theme.night() {
		pipeColor = core.ColorBrightGreen
	}
	s.FillRect(v.rect(snap.Top), '█', pipeColor)
	s.FillRect(v.rect(snap.Bottom), '█', pipeColor)

	soilColor := core.ColorOrange
	if theme.night() {
		soilColor = core.ColorNavy
	}
	s.DrawHLine(v.offX, groundRow, v.cols, '▀', core.ColorGreen)
	s.FillRect(core.NewRect(v.offX, groundRow+1, v.cols, v.offY+v.rows-groundRow-1), '░', soilColor)

	drawBird(s, v, snap, theme)
	drawOverlay(s, v, snap, hud)

	status := fmt.Sprintf("score: %d  high score: %d  speed: %d", snap.Score, hud.HighScore, hud.Speed)
	if hud.Muted {
		status += "  muted"
	}
	x := v.offX
	if x+len(status) > s.Width() {
		x = max(s.Width()-len(status), 0)
	}
	s.DrawTextColored(x, s.Height()-1, status, core.ColorWhite)
}

// drawSky scatters clouds by day and stars by night at fixed cells.
func drawSky(s *core.Screen, v viewport, groundRow int, theme Theme) {
	glyph, color := '~', core.ColorCyan
	if theme.night() {
		glyph, color = '.', core.ColorGray
	}
	skyRows := groundRow - v.offY
	if skyRows <= 0 {
		return
	}
	for i := 0; i < v.cols*skyRows/48; i++ {
		s.SetColored(v.offX+(i*37)%v.cols, v.offY+(i*17)%skyRows, glyph, color)
	}
}

func drawBird(s *core.Screen, v viewport, snap flappy.Snapshot, theme Theme) {
	box := v.rect(snap.Body)
	if box.W <= 0 || box.H <= 0 {
		return
	}
	s.FillRect(box, '█', theme.birdColor())
	s.SetColored(box.Right()-1, box.Y+box.H/2, headGlyph(snap.Rotation), core.ColorOrange)
}

// headGlyph tilts the beak with the rotation hint.
func headGlyph(rotation float64) rune {
	switch {
	case rotation < -0.2:
		return '▲'
	case rotation > 0.2:
		return '▼'
	default:
		return '▶'
	}
}

func drawOverlay(s *core.Screen, v viewport, snap flappy.Snapshot, hud HUD) {
	mid := v.offY + v.rows/2
	switch snap.State {
	case flappy.StatePaused:
		drawPanel(s, mid, []overlayLine{
			{"PAUSED", core.ColorYellow},
			{"", core.ColorDefault},
			{"p/enter resume", core.ColorGray},
		})
	case flappy.StateGameOver:
		drawPanel(s, mid, []overlayLine{
			{"GAME OVER", core.ColorRed},
			{"", core.ColorDefault},
			{fmt.Sprintf("score %d   best %d", snap.Score, hud.HighScore), core.ColorWhite},
			{"", core.ColorDefault},
			{"space/r restart  esc back  q quit", core.ColorGray},
		})
	}
}

type overlayLine struct {
	text  string
	color core.Color
}

// drawPanel clears a framed box centred on row mid and writes lines inside it.
func drawPanel(s *core.Screen, mid int, lines []overlayLine) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}
	box := core.NewRect((s.Width()-width-4)/2, mid-len(lines)/2-1, width+4, len(lines)+2)
	s.FillRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorGray)
	for i, l := range lines {
		s.DrawTextCentered(box.Y+1+i, l.text, l.color)
	}
}
