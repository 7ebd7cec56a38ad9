// Package safari implements the maze-chase simulation: maze generation, the
// player and predator movement model, and the collision rules.
package safari

import (
	"math/rand"

	"github.com/vovakirdan/safari-maze/internal/config"
	"github.com/vovakirdan/safari-maze/internal/core"
)

// Options selects the difficulty and animal of a run.
type Options struct {
	Difficulty config.Difficulty
	Animal     config.Animal
}

// Frame is the outcome of one Advance call.
type Frame struct {
	State  core.GameState
	Events []Event
}

// Game is the simulation object. It is not safe for concurrent use; the
// frame scheduler owns it.
type Game struct {
	opts Options

	seed       uint32      // seed of the current run
	levelSeeds *Mulberry32 // draws maze seeds for later levels
	rng        *rand.Rand  // predator and spawn randomness

	world    *World
	score    int
	lives    int
	level    int
	gameOver bool
	paused   bool
	ticks    uint64
	banner   float64 // remaining time of the level banner

	events []Event
}

// New creates a game for the given options and starts a run with seed 0.
// Call Run or Reset to choose a seed.
func New(opts Options) *Game {
	g := &Game{}
	g.Run(opts, 0)
	return g
}

// Run rebuilds the world for a fresh run. Score, lives and level reset.
func (g *Game) Run(opts Options, seed uint32) {
	g.opts = opts
	g.seed = seed
	g.levelSeeds = NewMulberry32(seed)
	g.rng = rand.New(rand.NewSource(int64(seed)))

	g.score = 0
	g.lives = opts.Difficulty.Lives
	g.level = 1
	g.gameOver = false
	g.paused = false
	g.ticks = 0
	g.banner = BannerLength
	g.events = nil

	g.world = NewWorld(opts.Difficulty, opts.Animal, seed, g.rng)
}

// Reset starts a run from a platform runtime config. Only the seed is used;
// Render adapts to whatever screen it is given.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Run(g.opts, uint32(cfg.Seed))
}

// Restart begins a new run with a fresh seed drawn from the current run.
func (g *Game) Restart() {
	g.Run(g.opts, g.rng.Uint32())
}

// Advance runs one frame of dt seconds with the given input snapshot.
// dt is clamped to MaxFrameDT so a stalled frame cannot tunnel agents.
func (g *Game) Advance(dt float64, in core.InputFrame) Frame {
	g.events = g.events[:0]

	if in.Has(core.ActionRestart) {
		g.Restart()
		return g.frame()
	}
	if g.gameOver {
		return g.frame()
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.frame()
	}

	dt = core.ClampF(dt, 0, MaxFrameDT)
	g.ticks++
	if g.banner > 0 {
		g.banner -= dt
	}

	g.applyInput(in)
	g.updatePlayer(dt)
	g.updatePredators(dt)
	g.resolveCollisions()

	switch {
	case g.lives <= 0:
		g.gameOver = true
		g.emit(GameOver{Score: g.score, Level: g.level, Seed: g.seed})
	case g.world.Cleared():
		g.clearLevel()
	}
	return g.frame()
}

// clearLevel awards the bonus and builds the next maze.
func (g *Game) clearLevel() {
	g.score += LevelClearBonus
	g.emit(LevelCleared{Level: g.level, Bonus: LevelClearBonus, Score: g.score})
	g.level++
	g.banner = BannerLength
	g.world = NewWorld(g.opts.Difficulty, g.opts.Animal, g.levelSeeds.Uint32(), g.rng)
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

func (g *Game) frame() Frame {
	events := make([]Event, len(g.events))
	copy(events, g.events)
	return Frame{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// World returns the current level. Callers must treat it as read-only.
func (g *Game) World() *World {
	return g.world
}

// Options returns the difficulty and animal of the run.
func (g *Game) Options() Options {
	return g.opts
}

// Seed returns the seed of the current run.
func (g *Game) Seed() uint32 {
	return g.seed
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tiny Animal Safari"
}
