package safari

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// resolveCollisions applies the outcome of every player/predator contact.
// Precedence: frightened or reflecting bump, then shield, then a lost life.
func (g *Game) resolveCollisions() {
	w := g.world
	p := &w.Player
	reflecting := g.opts.Animal.Reflect && p.AbilityActive()

	for i := range w.Predators {
		pred := &w.Predators[i]
		if pred.Immune() {
			continue
		}
		if r2.Norm(r2.Sub(pred.Pos, p.Pos)) >= CollisionRadius {
			continue
		}

		switch {
		case w.Frightened > 0 || reflecting:
			g.knockBack(pred)
			g.score += BumpScore
			g.emit(PredatorBumped{Kind: pred.Kind})
		case p.Shields > 0:
			p.Shields--
			g.knockBack(pred)
			g.emit(ShieldUsed{Kind: pred.Kind, ShieldsLeft: p.Shields})
		default:
			g.loseLife(pred.Kind)
			return
		}
	}
}

// knockBack pushes a predator away from the player and opens its bump window.
// The push is dropped if it would land in a wall.
func (g *Game) knockBack(pred *Predator) {
	w := g.world
	away := r2.Sub(pred.Pos, w.Player.Pos)
	next := r2.Add(pred.Pos, r2.Scale(KnockbackFactor, away))
	if w.Grid.PassableAt(next) {
		pred.Pos = next
	}
	pred.Countdown = BumpWindow
	pred.Bumped = true
}

// loseLife takes a life and sends every agent back to spawn.
func (g *Game) loseLife(by PredatorKind) {
	g.lives--
	g.world.resetAgents()
	g.emit(LifeLost{Kind: by, LivesLeft: g.lives})
}
