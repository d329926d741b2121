package game

import (
	"strings"
	"testing"

	"tui-platformer/internal/core"
)

// wideGrid is 40 tiles across so the camera has room to scroll.
var wideGrid = []string{
	"                                        ",
	"                                        ",
	"%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%%",
}

func TestCameraOffsetFollowsPlayer(t *testing.T) {
	g := newTestGame(t, map[string][]string{"main": wideGrid}, nil)
	p := g.PlayerRef()

	// Near the left edge the camera stays put
	if off := g.cameraOffset(20); off != 0 {
		t.Errorf("offset = %v at spawn, expected 0", off)
	}

	// In the middle the player is centered: offset = x - half screen
	p.SetPosition(core.Vec2{X: 320, Y: 16})
	if off := g.cameraOffset(20); off != 320-10*TileSize {
		t.Errorf("offset = %v mid-level, expected %v", off, 320-10*TileSize)
	}

	// Near the right edge the camera clamps to the level end
	p.SetPosition(core.Vec2{X: 620, Y: 16})
	want := 40*TileSize - 20*TileSize
	if off := g.cameraOffset(20); off != float64(want) {
		t.Errorf("offset = %v at the right edge, expected %v", off, want)
	}
}

func TestRenderDrawsPlayerAndFloor(t *testing.T) {
	g := newTestGame(t, map[string][]string{"main": flatGrid}, nil)
	screen := core.NewScreen(40, 10)

	g.Render(screen)
	out := screen.String()

	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player glyph missing from the rendered screen")
	}
	if !strings.ContainsRune(out, '%') {
		t.Error("floor glyphs missing from the rendered screen")
	}
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD score line missing")
	}
	if !strings.Contains(out, "main") {
		t.Error("HUD level name missing")
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g := newTestGame(t, map[string][]string{"main": flatGrid}, nil)
	screen := core.NewScreen(40, 16)

	g.Step(frame(core.ActionPause))
	g.Render(screen)

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t, map[string][]string{"main": flatGrid}, nil)
	screen := core.NewScreen(40, 16)

	g.PlayerRef().ChangeHealth(-5)
	g.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}
