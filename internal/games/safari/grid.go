package safari

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/safari-maze/internal/core"
)

// Tile is the terrain type of a maze cell.
type Tile uint8

const (
	TileWall Tile = iota
	TilePath
	TileGrass
	TileWater
	TileArtifact // artifact slot; never holds a pickup
)

// Passable reports whether agents may stand on the tile.
func (t Tile) Passable() bool {
	return t != TileWall
}

func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TilePath:
		return "path"
	case TileGrass:
		return "grass"
	case TileWater:
		return "water"
	case TileArtifact:
		return "artifact"
	default:
		return "unknown"
	}
}

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Vec returns the cell center as a continuous position.
func (c Cell) Vec() r2.Vec {
	return r2.Vec{X: float64(c.X), Y: float64(c.Y)}
}

// CellOf returns the cell a continuous position belongs to.
func CellOf(v r2.Vec) Cell {
	return Cell{X: core.RoundHalfUp(v.X), Y: core.RoundHalfUp(v.Y)}
}

// Grid is a fixed rectangular tile map.
type Grid struct {
	W, H  int
	tiles []Tile
}

// NewGrid returns a w*h grid filled with walls.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, tiles: make([]Tile, w*h)}
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the tile at (x, y). Out-of-bounds cells read as walls.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.tiles[y*g.W+x]
}

// Set changes the tile at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[y*g.W+x] = t
}

// Passable reports whether the cell can be entered.
func (g *Grid) Passable(c Cell) bool {
	return g.At(c.X, c.Y).Passable()
}

// PassableAt reports whether a continuous position rounds to a passable cell.
func (g *Grid) PassableAt(v r2.Vec) bool {
	return g.Passable(CellOf(v))
}

// TileAt returns the tile under a continuous position.
func (g *Grid) TileAt(v r2.Vec) Tile {
	c := CellOf(v)
	return g.At(c.X, c.Y)
}

// MidRow is the row holding the wraparound corridor.
func (g *Grid) MidRow() int {
	return g.H / 2
}

// NearestPassable returns c when it is passable, otherwise the passable cell
// closest to it, scanning rows top to bottom and keeping the first minimum.
// A grid with no passable cells returns c unchanged.
func (g *Grid) NearestPassable(c Cell) Cell {
	if g.Passable(c) {
		return c
	}
	best, bestDist := c, math.Inf(1)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if !g.At(x, y).Passable() {
				continue
			}
			if d := math.Hypot(float64(x-c.X), float64(y-c.Y)); d < bestDist {
				best, bestDist = Cell{X: x, Y: y}, d
			}
		}
	}
	return best
}

// Neighbors returns the passable cells one step away, including the
// wraparound link on the middle row.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range stepOrder {
		n := Cell{X: c.X + int(d.X), Y: c.Y + int(d.Y)}
		if n.Y == g.MidRow() {
			switch {
			case n.X < 0:
				n.X = g.W - 1
			case n.X >= g.W:
				n.X = 0
			}
		}
		if g.Passable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, tiles: make([]Tile, len(g.tiles))}
	copy(c.tiles, g.tiles)
	return c
}

// stepOrder is the fixed order in which unit steps are evaluated:
// right, left, down, up.
var stepOrder = [4]r2.Vec{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}
