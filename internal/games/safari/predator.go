package safari

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// greedyStep picks the unit step whose destination cell is closest to target
// (or farthest when flee is set). Candidates are checked right, left, down, up
// and ties keep the earlier one. ok is false when no neighbor is open.
func greedyStep(grid *Grid, from, target r2.Vec, flee bool) (step r2.Vec, ok bool) {
	bestDist := math.Inf(1)
	if flee {
		bestDist = math.Inf(-1)
	}
	for _, d := range stepOrder {
		c := CellOf(r2.Add(from, d))
		if !grid.Passable(c) {
			continue
		}
		dist := r2.Norm(r2.Sub(target, c.Vec()))
		if (flee && dist > bestDist) || (!flee && dist < bestDist) {
			step, bestDist, ok = d, dist, true
		}
	}
	return step, ok
}

// predatorTarget returns the point a predator steers toward this frame.
// The snake's wander heading may be re-rolled as a side effect.
func (g *Game) predatorTarget(p *Predator) r2.Vec {
	w := g.world
	player := w.Player

	switch p.Kind {
	case KindHawk:
		return r2.Add(player.Pos, r2.Scale(HawkLead, player.Dir))

	case KindSnake:
		if r2.Norm(r2.Sub(player.Pos, p.Pos)) <= SnakeSightRange {
			return player.Pos
		}
		if g.rng.Float64() < SnakeTurnChance {
			p.Wander = stepOrder[g.rng.Intn(len(stepOrder))]
		}
		return r2.Add(p.Pos, p.Wander)

	case KindBadger:
		best, bestDist := player.Pos, math.Inf(1)
		for _, a := range w.Artifacts {
			if a.Taken {
				continue
			}
			if d := r2.Norm(r2.Sub(a.Cell.Vec(), p.Pos)); d < bestDist {
				best, bestDist = a.Cell.Vec(), d
			}
		}
		return best

	default:
		return player.Pos
	}
}

// fleeing reports whether predators run away this frame.
func (g *Game) fleeing() bool {
	if g.world.Frightened > 0 {
		return true
	}
	return g.opts.Animal.Scatter && g.world.Player.AbilityActive()
}

// predatorSpeed is the current predator speed in tiles per second.
func (g *Game) predatorSpeed() float64 {
	speed := g.opts.Difficulty.PredatorSpeed
	if g.world.Frightened > 0 {
		speed *= FrightenedSpeed
	}
	return speed
}

// updatePredators moves every predator one frame.
func (g *Game) updatePredators(dt float64) {
	w := g.world
	speed := g.predatorSpeed()
	flee := g.fleeing()

	for i := range w.Predators {
		p := &w.Predators[i]
		target := g.predatorTarget(p)

		moved := false
		if step, ok := greedyStep(w.Grid, p.Pos, target, flee); ok {
			moved = g.tryMove(p, step, speed*dt)
		}
		if !moved {
			for _, j := range g.rng.Perm(len(stepOrder)) {
				if g.tryMove(p, stepOrder[j], speed*dt) {
					break
				}
			}
		}

		if p.Countdown > 0 {
			p.Countdown = max(0, p.Countdown-dt)
		}
		if p.Countdown <= 0 {
			p.Bumped = false
		}
	}
}

// tryMove advances p by dist along step when the destination is open.
func (g *Game) tryMove(p *Predator, step r2.Vec, dist float64) bool {
	next := g.world.wrap(p.Pos, r2.Add(p.Pos, r2.Scale(dist, step)))
	if !g.world.Grid.PassableAt(next) {
		return false
	}
	p.Pos = next
	p.Dir = step
	return true
}
