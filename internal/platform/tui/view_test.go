package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/inertia/internal/core"
	"github.com/vovakirdan/inertia/internal/engine"
)

func testSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Level:     "test",
		State:     "playing",
		Width:     800,
		Height:    600,
		Ball:      engine.BallView{X: 400, Y: 300, Radius: 15},
		Energy:    80,
		EnergyMax: 100,
		Walls: []engine.WallView{
			{X: 200, Y: 100, W: 30, H: 200},
		},
		Targets: []engine.TargetView{
			{X: 700, Y: 500, Radius: 12, Required: true},
			{X: 100, Y: 500, Radius: 12, Required: false, Hit: true},
		},
		PowerUps: []engine.PowerUpView{
			{X: 600, Y: 100, Kind: "shield"},
			{X: 650, Y: 100, Kind: "energy", Collected: true},
		},
		Teleporters: []engine.TeleporterView{
			{X: 60, Y: 60, Pair: 1, Entrance: true},
		},
	}
}

func TestDrawLevelGlyphs(t *testing.T) {
	s := core.NewScreen(80, 24)
	DrawLevel(s, testSnapshot())
	out := s.String()

	for _, glyph := range []string{"●", "█", "◎", "H", "O"} {
		if !strings.Contains(out, glyph) {
			t.Errorf("rendered level missing %q", glyph)
		}
	}
	// Collected power-ups are not drawn
	if strings.Contains(out, "E") {
		t.Error("collected power-up still drawn")
	}
}

func TestDrawLevelOverlays(t *testing.T) {
	s := core.NewScreen(80, 24)

	snap := testSnapshot()
	snap.State = "paused"
	DrawLevel(s, snap)
	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}

	snap.State = "failed"
	DrawLevel(s, snap)
	if !strings.Contains(s.String(), "LEVEL FAILED") {
		t.Error("failure overlay missing")
	}
}

func TestDrawLevelTinyScreen(t *testing.T) {
	// Degenerate screen sizes must not panic or write out of bounds
	for _, size := range [][2]int{{1, 1}, {2, 2}, {3, 2}} {
		s := core.NewScreen(size[0], size[1])
		DrawLevel(s, testSnapshot())
	}
}
