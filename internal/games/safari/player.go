package safari

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/safari-maze/internal/config"
	"github.com/vovakirdan/safari-maze/internal/core"
)

// applyInput buffers the desired direction and triggers the ability.
func (g *Game) applyInput(in core.InputFrame) {
	p := &g.world.Player

	dx, dy := in.Axis()
	if dx != 0 && dy != 0 {
		// Both axes held: keep the one that turns away from the current heading.
		if p.Dir.X != 0 {
			dx = 0
		} else {
			dy = 0
		}
	}
	if dx != 0 || dy != 0 {
		p.NextDir = r2.Vec{X: float64(dx), Y: float64(dy)}
	}

	if in.Has(core.ActionAbility) && p.AbilityReady() {
		p.Active = g.opts.Animal.Duration
		p.Cooldown = g.opts.Animal.Cooldown
		g.emit(AbilityUsed{Animal: g.opts.Animal.Key, Duration: p.Active})
	}
}

// tileSpeed is the terrain multiplier for an animal standing on t.
func tileSpeed(t Tile, animal config.Animal, abilityActive bool) float64 {
	if abilityActive {
		return 1.0
	}
	switch t {
	case TileGrass:
		return GrassSpeed
	case TileWater:
		if animal.WaterGlide {
			return 1.0
		}
		return WaterSpeed
	default:
		return 1.0
	}
}

// playerSpeed is the player's speed in tiles per second at its current spot.
func (g *Game) playerSpeed() float64 {
	p := &g.world.Player
	animal := g.opts.Animal
	active := p.AbilityActive()

	speed := g.opts.Difficulty.PlayerSpeed * tileSpeed(g.world.Grid.TileAt(p.Pos), animal, active)
	speed *= animal.PassiveMultiplier()
	if active {
		speed *= animal.AbilityMultiplier()
	}
	return speed
}

// updatePlayer ticks timers, turns, moves and collects.
func (g *Game) updatePlayer(dt float64) {
	w := g.world
	p := &w.Player

	p.Cooldown = max(0, p.Cooldown-dt)
	p.Active = max(0, p.Active-dt)
	w.Frightened = max(0, w.Frightened-dt)

	speed := g.playerSpeed()

	if p.NextDir != (r2.Vec{}) && w.Grid.PassableAt(r2.Add(p.Pos, p.NextDir)) {
		p.Dir = p.NextDir
	}

	next := w.wrap(p.Pos, r2.Add(p.Pos, r2.Scale(speed*dt, p.Dir)))
	if w.Grid.PassableAt(next) {
		p.Pos = next
	} else {
		p.Dir = r2.Vec{}
	}

	g.collect(CellOf(p.Pos))
}

// collect handles pickups and artifacts under the player.
func (g *Game) collect(c Cell) {
	w := g.world

	if w.takePickup(c) {
		g.score += PickupScore
		g.emit(PickupCollected{Cell: c, Remaining: w.Remaining()})
		g.maybeSpawnExtra()
	}

	if a := w.artifactAt(c); a != nil {
		a.Taken = true
		g.score += ArtifactScore
		w.Frightened = g.opts.Difficulty.FrightenedDuration
		for i := range w.Predators {
			w.Predators[i].Countdown = w.Frightened
			w.Predators[i].Bumped = false
		}
		g.emit(ArtifactTaken{Cell: c, Duration: w.Frightened})
	}
}

// maybeSpawnExtra releases one fox from the den once the collected fraction
// reaches the difficulty threshold.
func (g *Game) maybeSpawnExtra() {
	w := g.world
	at := g.opts.Difficulty.ExtraPredatorAt
	if w.ExtraSpawned || at <= 0 || w.TotalPickups == 0 {
		return
	}
	if float64(w.Collected)/float64(w.TotalPickups) < at {
		return
	}
	w.ExtraSpawned = true
	w.Predators = append(w.Predators, w.newPredator(KindFox, w.Den, g.rng))
	g.emit(ExtraPredatorSpawned{Kind: KindFox, Cell: w.Den})
}
