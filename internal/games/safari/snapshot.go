package safari

// StateType is the coarse phase of a run.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StatePaused   StateType = "paused"
	StateGameOver StateType = "game_over"
)

// Snapshot captures the observable game state for determinism checks,
// the HUD and exports.
type Snapshot struct {
	Tick       uint64
	Seed       uint32
	MazeSeed   uint32
	Level      int
	Score      int
	Lives      int
	Remaining  int
	Collected  int
	Total      int
	PlayerX    float64
	PlayerY    float64
	Cooldown   float64
	Active     float64
	Shields    int
	Frightened float64
	Predators  int
	Artifacts  int // still untaken
	State      StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world

	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	artifacts := 0
	for _, a := range w.Artifacts {
		if !a.Taken {
			artifacts++
		}
	}

	return Snapshot{
		Tick:       g.ticks,
		Seed:       g.seed,
		MazeSeed:   w.Maze.Seed,
		Level:      g.level,
		Score:      g.score,
		Lives:      g.lives,
		Remaining:  w.Remaining(),
		Collected:  w.Collected,
		Total:      w.TotalPickups,
		PlayerX:    w.Player.Pos.X,
		PlayerY:    w.Player.Pos.Y,
		Cooldown:   w.Player.Cooldown,
		Active:     w.Player.Active,
		Shields:    w.Player.Shields,
		Frightened: w.Frightened,
		Predators:  len(w.Predators),
		Artifacts:  artifacts,
		State:      state,
	}
}
