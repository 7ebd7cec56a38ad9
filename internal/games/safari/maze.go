package safari

import (
	"math"
)

// Maze is a generated level layout.
type Maze struct {
	Grid      *Grid
	Artifacts []Cell // in quadrant order: top-left, top-right, bottom-left, bottom-right
	Seed      uint32
}

// carveDirs are the two-step moves between rooms, before shuffling.
var carveDirs = [4]Cell{
	{X: 0, Y: -2},
	{X: 2, Y: 0},
	{X: 0, Y: 2},
	{X: -2, Y: 0},
}

// mazeSize forces a dimension odd and floors it at MinMazeSize.
func mazeSize(n int) int {
	if n%2 == 0 {
		n--
	}
	if n < MinMazeSize {
		n = MinMazeSize
	}
	return n
}

// GenerateMaze builds a perfect maze with a recursive backtracker, sprinkles
// grass and water, places four artifacts and opens the wraparound corridor.
// The result depends only on the arguments.
func GenerateMaze(width, height int, seed uint32) *Maze {
	w, h := mazeSize(width), mazeSize(height)
	rng := NewMulberry32(seed)
	grid := NewGrid(w, h)

	carve(grid, rng)
	decorate(grid, rng)
	artifacts := placeArtifacts(grid)
	openWrap(grid)

	return &Maze{Grid: grid, Artifacts: artifacts, Seed: seed}
}

// carve runs the backtracker from room (1, 1).
func carve(grid *Grid, rng *Mulberry32) {
	start := Cell{X: 1, Y: 1}
	grid.Set(start.X, start.Y, TilePath)
	stack := []Cell{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		dirs := carveDirs
		for i := len(dirs) - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			dirs[i], dirs[j] = dirs[j], dirs[i]
		}

		carved := false
		for _, d := range dirs {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if nx <= 0 || ny <= 0 || nx >= grid.W-1 || ny >= grid.H-1 {
				continue
			}
			if grid.At(nx, ny) != TileWall {
				continue
			}
			grid.Set(cur.X+d.X/2, cur.Y+d.Y/2, TilePath)
			grid.Set(nx, ny, TilePath)
			stack = append(stack, Cell{X: nx, Y: ny})
			carved = true
			break
		}
		if !carved {
			stack = stack[:len(stack)-1]
		}
	}
}

// decorate turns some interior paths into grass or water.
func decorate(grid *Grid, rng *Mulberry32) {
	for y := 1; y < grid.H-1; y++ {
		for x := 1; x < grid.W-1; x++ {
			if grid.At(x, y) != TilePath {
				continue
			}
			r := rng.Float64()
			switch {
			case r < GrassChance:
				grid.Set(x, y, TileGrass)
			case r < WaterChance:
				grid.Set(x, y, TileWater)
			}
		}
	}
}

// placeArtifacts marks the interior cell nearest each quadrant target.
// A cell is never chosen twice.
func placeArtifacts(grid *Grid) []Cell {
	var candidates []Cell
	for y := 1; y < grid.H-1; y++ {
		for x := 1; x < grid.W-1; x++ {
			if grid.At(x, y) != TileWall {
				candidates = append(candidates, Cell{X: x, Y: y})
			}
		}
	}

	lo := func(n int) int { return int(math.Floor(float64(n) * ArtifactLow)) }
	hi := func(n int) int { return int(math.Floor(float64(n) * ArtifactHigh)) }
	targets := []Cell{
		{X: lo(grid.W), Y: lo(grid.H)},
		{X: hi(grid.W), Y: lo(grid.H)},
		{X: lo(grid.W), Y: hi(grid.H)},
		{X: hi(grid.W), Y: hi(grid.H)},
	}

	chosen := make(map[Cell]bool)
	artifacts := make([]Cell, 0, len(targets))
	for _, tgt := range targets {
		best, bestDist, found := Cell{}, math.Inf(1), false
		for _, c := range candidates {
			if chosen[c] {
				continue
			}
			if d := math.Hypot(float64(c.X-tgt.X), float64(c.Y-tgt.Y)); d < bestDist {
				best, bestDist, found = c, d, true
			}
		}
		if !found {
			break
		}
		chosen[best] = true
		grid.Set(best.X, best.Y, TileArtifact)
		artifacts = append(artifacts, best)
	}
	return artifacts
}

// openWrap opens both ends of the middle row. On an even middle row the
// neighbors inside the border are opened too so the corridor meets the maze.
func openWrap(grid *Grid) {
	mid := grid.MidRow()
	grid.Set(0, mid, TilePath)
	grid.Set(grid.W-1, mid, TilePath)
	if mid%2 == 0 {
		for _, x := range []int{1, grid.W - 2} {
			if grid.At(x, mid) == TileWall {
				grid.Set(x, mid, TilePath)
			}
		}
	}
}
