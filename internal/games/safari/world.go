package safari

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/safari-maze/internal/config"
)

// PredatorKind selects a predator's targeting strategy.
type PredatorKind int

const (
	KindHawk PredatorKind = iota
	KindFox
	KindSnake
	KindBadger
)

// spawnKinds is the order predators leave the den.
var spawnKinds = [4]PredatorKind{KindHawk, KindFox, KindSnake, KindBadger}

func (k PredatorKind) String() string {
	switch k {
	case KindHawk:
		return "hawk"
	case KindFox:
		return "fox"
	case KindSnake:
		return "snake"
	case KindBadger:
		return "badger"
	default:
		return "unknown"
	}
}

// Player is the animal controlled by the user.
type Player struct {
	Pos      r2.Vec
	Dir      r2.Vec // current unit direction, zero when stopped
	NextDir  r2.Vec // buffered direction, applied once the turn is open
	Cooldown float64
	Active   float64 // remaining ability time
	Shields  int
}

// AbilityActive reports whether the animal's ability is running.
func (p *Player) AbilityActive() bool {
	return p.Active > 0
}

// AbilityReady reports whether the ability can be triggered.
func (p *Player) AbilityReady() bool {
	return p.Cooldown <= 0 && p.Active <= 0
}

// Predator is an AI-controlled chaser.
type Predator struct {
	Kind PredatorKind
	Pos  r2.Vec
	Dir  r2.Vec
	Home Cell // respawn cell after a lost life

	// Countdown is the personal timer. It is stamped when an artifact is taken
	// and when the predator is bumped; Bumped marks the latter.
	Countdown float64
	Bumped    bool

	Wander r2.Vec // snake only: heading while out of sight
}

// Immune reports whether collisions with this predator are ignored.
func (p *Predator) Immune() bool {
	return p.Bumped && p.Countdown > 0
}

// Artifact is a special pickup that frightens predators.
type Artifact struct {
	Cell  Cell
	Taken bool
}

// World is the state of one level.
type World struct {
	Grid      *Grid
	Maze      *Maze
	Player    Player
	Predators []Predator
	Artifacts []Artifact

	pickups      []bool // parallel to Grid
	TotalPickups int
	Collected    int

	Frightened   float64 // global countdown
	ExtraSpawned bool

	Den         Cell
	PlayerSpawn Cell

	Difficulty config.Difficulty
	Animal     config.Animal
}

// NewWorld builds a level from a fresh maze. rng drives spawn-time randomness.
func NewWorld(diff config.Difficulty, animal config.Animal, seed uint32, rng *rand.Rand) *World {
	maze := GenerateMaze(diff.MazeWidth, diff.MazeHeight, seed)
	grid := maze.Grid

	w := &World{
		Grid:       grid,
		Maze:       maze,
		pickups:    make([]bool, grid.W*grid.H),
		Difficulty: diff,
		Animal:     animal,
	}

	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			t := grid.At(x, y)
			if t.Passable() && t != TileArtifact {
				w.pickups[y*grid.W+x] = true
				w.TotalPickups++
			}
		}
	}
	for _, c := range maze.Artifacts {
		w.Artifacts = append(w.Artifacts, Artifact{Cell: c})
	}

	w.PlayerSpawn = playerSpawn(grid)
	w.Den = grid.NearestPassable(Cell{X: grid.W / 2, Y: grid.H / 2})
	w.Player = Player{Pos: w.PlayerSpawn.Vec(), Shields: animal.Shields}

	for i := 0; i < diff.Predators; i++ {
		w.Predators = append(w.Predators, w.newPredator(spawnKinds[i%len(spawnKinds)], w.denSlot(i), rng))
	}
	return w
}

// playerSpawn walks up the center column from near the bottom until it finds
// an open cell.
func playerSpawn(grid *Grid) Cell {
	x := grid.W / 2
	for y := grid.H - 3; y >= 0; y-- {
		if grid.At(x, y).Passable() {
			return Cell{X: x, Y: y}
		}
	}
	return grid.NearestPassable(Cell{X: x, Y: grid.H - 3})
}

// denSlot is the spawn cell for the i-th starting predator.
func (w *World) denSlot(i int) Cell {
	dx := -1
	if i%2 == 0 {
		dx = 1
	}
	dy := 1
	if i < 2 {
		dy = 0
	}
	cx, cy := w.Grid.W/2, w.Grid.H/2
	return w.Grid.NearestPassable(Cell{X: cx + dx, Y: cy + dy})
}

func (w *World) newPredator(kind PredatorKind, home Cell, rng *rand.Rand) Predator {
	p := Predator{Kind: kind, Pos: home.Vec(), Home: home}
	if kind == KindSnake {
		p.Wander = stepOrder[rng.Intn(len(stepOrder))]
	}
	return p
}

// HasPickup reports whether a pickup is still waiting at c.
func (w *World) HasPickup(c Cell) bool {
	if !w.Grid.InBounds(c.X, c.Y) {
		return false
	}
	return w.pickups[c.Y*w.Grid.W+c.X]
}

// takePickup clears the pickup at c and reports whether one was there.
func (w *World) takePickup(c Cell) bool {
	if !w.HasPickup(c) {
		return false
	}
	w.pickups[c.Y*w.Grid.W+c.X] = false
	w.Collected++
	return true
}

// Remaining is the number of pickups still on the board.
func (w *World) Remaining() int {
	return w.TotalPickups - w.Collected
}

// Cleared reports whether every pickup has been collected.
func (w *World) Cleared() bool {
	return w.TotalPickups > 0 && w.Collected >= w.TotalPickups
}

// artifactAt returns the untaken artifact at c, if any.
func (w *World) artifactAt(c Cell) *Artifact {
	for i := range w.Artifacts {
		if !w.Artifacts[i].Taken && w.Artifacts[i].Cell == c {
			return &w.Artifacts[i]
		}
	}
	return nil
}

// resetAgents moves everyone back to spawn and clears all timers.
func (w *World) resetAgents() {
	w.Player.Pos = w.PlayerSpawn.Vec()
	w.Player.Dir = r2.Vec{}
	w.Player.NextDir = r2.Vec{}
	w.Player.Cooldown = 0
	w.Player.Active = 0

	for i := range w.Predators {
		p := &w.Predators[i]
		p.Pos = p.Home.Vec()
		p.Dir = r2.Vec{}
		p.Countdown = 0
		p.Bumped = false
	}
	w.Frightened = 0
}

// wrap teleports a tentative position across the middle-row corridor.
// cur decides whether the agent is on the corridor row.
func (w *World) wrap(cur, next r2.Vec) r2.Vec {
	if CellOf(cur).Y != w.Grid.MidRow() {
		return next
	}
	switch x := CellOf(next).X; {
	case x < 0:
		next.X = float64(w.Grid.W - 1)
	case x > w.Grid.W-1:
		next.X = 0
	}
	return next
}
