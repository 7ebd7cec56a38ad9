package safari

import (
	"strings"
	"testing"

	"github.com/vovakirdan/safari-maze/internal/core"
)

func TestRenderHUDAndPlayer(t *testing.T) {
	g := newTestGame(t, "easy", "frog", 1)
	g.banner = 0
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") || !strings.Contains(screen.Row(0), "Lives: 5") {
		t.Errorf("HUD = %q", screen.Row(0))
	}
	if !strings.ContainsRune(screen.String(), '@') {
		t.Error("player glyph missing from a viewport centered on the player")
	}
}

func TestRenderWholeMazeFits(t *testing.T) {
	g := newTestGame(t, "easy", "frog", 1)
	g.banner = 0
	w := g.World()
	screen := core.NewScreen(w.Grid.W+10, w.Grid.H+hudHeight+4)
	g.Render(screen)

	walls := 0
	for y := 0; y < w.Grid.H; y++ {
		for x := 0; x < w.Grid.W; x++ {
			if w.Grid.At(x, y) == TileWall {
				walls++
			}
		}
	}
	if got := strings.Count(screen.String(), "█"); got != walls {
		t.Errorf("rendered %d walls, expected %d", got, walls)
	}
	if got := strings.Count(screen.String(), "◆"); got != 4 {
		t.Errorf("rendered %d artifacts, expected 4", got)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, "easy", "frog", 1)
	screen := core.NewScreen(80, 24)

	g.paused = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("pause overlay missing")
	}

	g.gameOver = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("game over overlay missing")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, "pro", "frog", 1)
	g.Render(core.NewScreen(5, 1)) // must not panic
}
