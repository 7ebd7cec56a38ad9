package safari

import (
	"fmt"

	"github.com/vovakirdan/safari-maze/internal/core"
)

const hudHeight = 2

// Glyphs and colors for the terminal renderer.
var (
	tileGlyphs = map[Tile]core.Cell{
		TileWall:     {Rune: '█', Color: core.ColorNavy},
		TilePath:     {Rune: ' ', Color: core.ColorDefault},
		TileGrass:    {Rune: '"', Color: core.ColorGreen},
		TileWater:    {Rune: '~', Color: core.ColorCyan},
		TileArtifact: {Rune: ' ', Color: core.ColorDefault},
	}
	predatorGlyphs = map[PredatorKind]core.Cell{
		KindHawk:   {Rune: 'H', Color: core.ColorBrightRed},
		KindFox:    {Rune: 'F', Color: core.ColorOrange},
		KindSnake:  {Rune: 'S', Color: core.ColorBrightGreen},
		KindBadger: {Rune: 'B', Color: core.ColorLavender},
	}
)

// Render draws the HUD and the part of the maze around the player.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	w := g.world
	viewW := dst.Width()
	viewH := dst.Height() - hudHeight
	if viewW <= 0 || viewH <= 0 {
		return
	}
	ox, offX := viewOrigin(CellOf(w.Player.Pos).X, w.Grid.W, viewW)
	oy, offY := viewOrigin(CellOf(w.Player.Pos).Y, w.Grid.H, viewH)
	offY += hudHeight

	put := func(c Cell, cell core.Cell) {
		sx, sy := c.X-ox+offX, c.Y-oy+offY
		if sy < hudHeight {
			return
		}
		dst.SetColored(sx, sy, cell.Rune, cell.Color)
	}

	for y := oy; y < min(w.Grid.H, oy+viewH); y++ {
		for x := ox; x < min(w.Grid.W, ox+viewW); x++ {
			c := Cell{X: x, Y: y}
			cell := tileGlyphs[w.Grid.At(x, y)]
			if w.HasPickup(c) {
				cell = core.Cell{Rune: '·', Color: core.ColorYellow}
			}
			put(c, cell)
		}
	}

	for _, a := range w.Artifacts {
		if !a.Taken {
			put(a.Cell, core.Cell{Rune: '◆', Color: core.ColorBrightCyan})
		}
	}

	for _, p := range w.Predators {
		cell := predatorGlyphs[p.Kind]
		if w.Frightened > 0 {
			cell.Color = core.ColorBrightBlue
		}
		if p.Countdown > 0 {
			cell.Rune += 'a' - 'A'
		}
		put(CellOf(p.Pos), cell)
	}

	player := core.Cell{Rune: '@', Color: core.ColorBrightYellow}
	if w.Player.AbilityActive() {
		player.Rune = '☻'
	}
	put(CellOf(w.Player.Pos), player)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d", g.score), "R restart  Q quit")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.banner > 0:
		g.renderOverlay(dst, fmt.Sprintf("Level %d", g.level), g.opts.Animal.Label)
	}
}

// viewOrigin returns the first map coordinate shown and the screen offset for
// a map of size n in a view of size view, keeping center in sight.
func viewOrigin(center, n, view int) (origin, offset int) {
	if n <= view {
		return 0, (view - n) / 2
	}
	return core.Clamp(center-view/2, 0, n-view), 0
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	hud := fmt.Sprintf(" Score: %d  Lives: %d  Level: %d  Ability CD: %.1fs  Seeds left: %d",
		g.score, g.lives, g.level, w.Player.Cooldown, w.Remaining())
	if w.Player.Shields > 0 {
		hud += fmt.Sprintf("  Shield: %d", w.Player.Shields)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	if w.Frightened > 0 {
		dst.DrawTextColored(dst.Width()-14, 0, fmt.Sprintf("Scared %.1fs", w.Frightened), core.ColorBrightBlue)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered box with one or more lines of text.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	box := dst.Bounds().Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawText(x, box.Y+1+i, l)
	}
}
