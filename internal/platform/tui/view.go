package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/inertia/internal/core"
	"github.com/vovakirdan/inertia/internal/engine"
)

// powerUpGlyphs maps power-up kind names to their playfield symbols.
var powerUpGlyphs = map[string]rune{
	"energy":   'E',
	"speed":    'S',
	"shield":   'H',
	"gravity":  'G',
	"time":     'T',
	"magnetic": 'M',
}

// DrawLevel renders a snapshot into the screen buffer: a bordered
// playfield with every entity scaled from world coordinates to cells.
func DrawLevel(s *core.Screen, snap engine.Snapshot) {
	s.Clear()
	s.DrawBox(0, 0, s.Width(), s.Height())

	v := viewport{
		innerW: s.Width() - 2,
		innerH: s.Height() - 2,
		worldW: snap.Width,
		worldH: snap.Height,
	}
	if v.innerW <= 0 || v.innerH <= 0 || v.worldW <= 0 || v.worldH <= 0 {
		return
	}

	// Zones first so entities draw on top of them
	for _, sf := range snap.Surfaces {
		drawZone(s, v, sf)
	}
	for _, w := range snap.Wells {
		x, y := v.cell(w.X, w.Y)
		glyph := '+'
		if w.Strength < 0 {
			glyph = '-'
		}
		s.SetColored(x, y, glyph, core.ColorGray)
	}
	for _, p := range snap.Pads {
		drawPad(s, v, p)
	}
	for _, w := range snap.Walls {
		drawRectFilled(s, v, w.X, w.Y, w.W, w.H, '█', core.ColorWhite)
	}
	for _, tp := range snap.Teleporters {
		x, y := v.cell(tp.X, tp.Y)
		glyph := 'O'
		if !tp.Entrance {
			glyph = 'o'
		}
		color := core.ColorBrightMagenta
		if tp.Cooling {
			color = core.ColorGray
		}
		s.SetColored(x, y, glyph, color)
	}
	for _, t := range snap.Targets {
		x, y := v.cell(t.X, t.Y)
		switch {
		case t.Hit:
			s.SetColored(x, y, '·', core.ColorGray)
		case t.Required:
			s.SetColored(x, y, '◎', core.ColorBrightYellow)
		default:
			s.SetColored(x, y, '○', core.ColorBrightBlue)
		}
	}
	for _, p := range snap.PowerUps {
		if p.Collected {
			continue
		}
		glyph, ok := powerUpGlyphs[p.Kind]
		if !ok {
			glyph = '?'
		}
		x, y := v.cell(p.X, p.Y)
		s.SetColored(x, y, glyph, core.ColorBrightGreen)
	}

	// Ball last
	bx, by := v.cell(snap.Ball.X, snap.Ball.Y)
	ballColor := core.ColorBrightWhite
	if snap.Ball.Shield {
		ballColor = core.ColorBrightCyan
	}
	s.SetColored(bx, by, '●', ballColor)

	drawOverlay(s, snap)
}

// viewport scales world coordinates into the screen's inner cell grid.
type viewport struct {
	innerW, innerH int
	worldW, worldH float64
}

func (v viewport) cell(x, y float64) (int, int) {
	cx := 1 + int(x/v.worldW*float64(v.innerW))
	cy := 1 + int(y/v.worldH*float64(v.innerH))
	if cx < 1 {
		cx = 1
	}
	if cx > v.innerW {
		cx = v.innerW
	}
	if cy < 1 {
		cy = 1
	}
	if cy > v.innerH {
		cy = v.innerH
	}
	return cx, cy
}

func drawRectFilled(s *core.Screen, v viewport, x, y, w, h float64, glyph rune, color core.Color) {
	x0, y0 := v.cell(x, y)
	x1, y1 := v.cell(x+w, y+h)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			s.SetColored(cx, cy, glyph, color)
		}
	}
}

func drawZone(s *core.Screen, v viewport, sf engine.SurfaceView) {
	glyph := '░'
	color := core.ColorGray
	switch {
	case sf.Deadly:
		glyph, color = '▒', core.ColorBrightRed
	case sf.Friction > 1:
		color = core.ColorGreen // Speeds the ball up
	case sf.Friction >= 0.99:
		color = core.ColorBrightCyan // Ice
	default:
		color = core.ColorOrange // Mud
	}
	drawRectFilled(s, v, sf.X, sf.Y, sf.W, sf.H, glyph, color)
}

func drawPad(s *core.Screen, v viewport, p engine.PadView) {
	glyph := '▲'
	if math.Abs(p.DirX) > math.Abs(p.DirY) {
		if p.DirX > 0 {
			glyph = '▶'
		} else {
			glyph = '◀'
		}
	} else if p.DirY > 0 {
		glyph = '▼'
	}
	drawRectFilled(s, v, p.X, p.Y, p.W, p.H, glyph, core.ColorCyan)
}

// drawOverlay prints state banners over the playfield.
func drawOverlay(s *core.Screen, snap engine.Snapshot) {
	mid := s.Height() / 2
	switch snap.State {
	case "paused":
		s.DrawTextCentered(mid, "── PAUSED ──")
		s.DrawTextCentered(mid+1, "p to resume, q to quit")
	case "complete":
		s.DrawTextCentered(mid-1, "LEVEL COMPLETE")
		s.DrawTextCentered(mid, fmt.Sprintf("score %d", snap.Score))
		s.DrawTextCentered(mid+1, "r to restart, q to quit")
	case "failed":
		s.DrawTextCentered(mid-1, "LEVEL FAILED")
		s.DrawTextCentered(mid+1, "r to retry, q to quit")
	}
}
