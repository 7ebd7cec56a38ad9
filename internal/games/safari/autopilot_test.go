package safari

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/safari-maze/internal/core"
)

func TestAutopilotHeadsForPickup(t *testing.T) {
	g, w := predatorGame(t, "frog")
	w.Predators = nil
	w.Artifacts = nil
	w.pickups = make([]bool, w.Grid.W*w.Grid.H)
	w.pickups[10*w.Grid.W+14] = true
	w.TotalPickups, w.Collected = 1, 0
	standOn(w, Cell{X: 10, Y: 10})

	in := NewAutopilot().Decide(g)
	if dx, dy := in.Axis(); dx != 1 || dy != 0 {
		t.Errorf("Axis() = (%d, %d), expected right", dx, dy)
	}
}

func TestAutopilotAvoidsPredator(t *testing.T) {
	g, w := predatorGame(t, "frog")
	w.Artifacts = nil
	w.pickups = make([]bool, w.Grid.W*w.Grid.H)
	w.pickups[10*w.Grid.W+16] = true
	w.TotalPickups, w.Collected = 1, 0
	standOn(w, Cell{X: 10, Y: 10})
	w.Player.Cooldown = 10 // no panic button
	w.Predators = []Predator{{Kind: KindFox, Pos: r2.Vec{X: 12, Y: 10}}}

	in := NewAutopilot().Decide(g)
	if dx, _ := in.Axis(); dx == 1 {
		t.Error("autopilot walked straight at the predator")
	}

	w.Frightened = 2
	in = NewAutopilot().Decide(g)
	if dx, dy := in.Axis(); dx != 1 || dy != 0 {
		t.Errorf("frightened predators are harmless, expected right, got (%d, %d)", dx, dy)
	}
}

func TestAutopilotUsesAbility(t *testing.T) {
	g, w := predatorGame(t, "chipmunk")
	standOn(w, Cell{X: 10, Y: 10})
	w.Predators = []Predator{{Kind: KindFox, Pos: r2.Vec{X: 11, Y: 10}}}

	if in := NewAutopilot().Decide(g); !in.Has(core.ActionAbility) {
		t.Error("expected the ability with a predator one tile away")
	}
	w.Player.Cooldown = 3
	if in := NewAutopilot().Decide(g); in.Has(core.ActionAbility) {
		t.Error("ability pressed while cooling down")
	}
}

func TestAutopilotScores(t *testing.T) {
	g := newTestGame(t, "easy", "hummingbird", 2)
	bot := NewAutopilot()
	for i := 0; i < 1500 && !g.State().GameOver; i++ {
		g.Advance(testDT, bot.Decide(g))
	}
	if g.State().Score < 10*PickupScore {
		t.Errorf("autopilot scored only %d", g.State().Score)
	}
}
