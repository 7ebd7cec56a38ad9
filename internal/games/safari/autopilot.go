package safari

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/safari-maze/internal/core"
)

// Autopilot is a simple bot for headless runs and demos. It walks the
// shortest path to the nearest seed or artifact, steering around predators
// unless they are frightened, and fires the ability when one gets close.
type Autopilot struct {
	// DangerRadius is how close (in tiles) a predator may be to a path cell.
	DangerRadius float64
	// PanicRadius triggers the ability.
	PanicRadius float64
}

// NewAutopilot returns a bot with default radii.
func NewAutopilot() *Autopilot {
	return &Autopilot{DangerRadius: 2.5, PanicRadius: 2.0}
}

// Decide returns the input for the next frame.
func (a *Autopilot) Decide(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	w := g.World()
	if g.State().GameOver {
		return in
	}

	safe := w.Frightened > 0
	if !safe && w.Player.AbilityReady() && a.nearestThreat(w) < a.PanicRadius {
		in.Set(core.ActionAbility)
	}

	start := CellOf(w.Player.Pos)
	next, ok := a.route(w, start, !safe)
	if !ok {
		next, ok = a.route(w, start, false)
	}
	if !ok {
		return in
	}

	dx, dy := next.X-start.X, next.Y-start.Y
	if dx > 1 || dx < -1 { // wrapped through the corridor
		dx = -dx / abs(dx)
	}
	switch {
	case dx < 0:
		in.Set(core.ActionLeft)
	case dx > 0:
		in.Set(core.ActionRight)
	case dy < 0:
		in.Set(core.ActionUp)
	case dy > 0:
		in.Set(core.ActionDown)
	}
	return in
}

// route runs a breadth-first search from start to the nearest goal cell and
// returns the first step on the way.
func (a *Autopilot) route(w *World, start Cell, avoid bool) (Cell, bool) {
	prev := map[Cell]Cell{start: start}
	queue := []Cell{start}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		if c != start && a.goal(w, c) {
			for prev[c] != start {
				c = prev[c]
			}
			return c, true
		}
		for _, n := range w.Grid.Neighbors(c) {
			if _, seen := prev[n]; seen {
				continue
			}
			if avoid && a.dangerous(w, n) {
				continue
			}
			prev[n] = c
			queue = append(queue, n)
		}
	}
	return Cell{}, false
}

func (a *Autopilot) goal(w *World, c Cell) bool {
	return w.HasPickup(c) || w.artifactAt(c) != nil
}

func (a *Autopilot) dangerous(w *World, c Cell) bool {
	for _, p := range w.Predators {
		if r2.Norm(r2.Sub(p.Pos, c.Vec())) < a.DangerRadius {
			return true
		}
	}
	return false
}

func (a *Autopilot) nearestThreat(w *World) float64 {
	best := 1e9
	for _, p := range w.Predators {
		best = min(best, r2.Norm(r2.Sub(p.Pos, w.Player.Pos)))
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
