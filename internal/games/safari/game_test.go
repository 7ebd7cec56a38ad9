package safari

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/safari-maze/internal/config"
	"github.com/vovakirdan/safari-maze/internal/core"
)

const testDT = 1.0 / 30.0

func newTestGame(t *testing.T, difficulty, animal string, seed uint32) *Game {
	t.Helper()
	cfg := config.DefaultSafariConfig()
	d, err := cfg.Difficulty(difficulty)
	if err != nil {
		t.Fatal(err)
	}
	a, err := cfg.Animal(animal)
	if err != nil {
		t.Fatal(err)
	}
	g := New(Options{Difficulty: d, Animal: a})
	g.Run(g.Options(), seed)
	return g
}

// pickupCells lists cells that still hold a pickup, in scan order.
func pickupCells(w *World) []Cell {
	var cells []Cell
	for y := 0; y < w.Grid.H; y++ {
		for x := 0; x < w.Grid.W; x++ {
			if c := (Cell{X: x, Y: y}); w.HasPickup(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// standOn parks the player on c with no motion.
func standOn(w *World, c Cell) {
	w.Player.Pos = c.Vec()
	w.Player.Dir = r2.Vec{}
	w.Player.NextDir = r2.Vec{}
}

func hasEvent[T Event](events []Event) (T, int) {
	var first T
	n := 0
	for _, e := range events {
		if v, ok := e.(T); ok {
			if n == 0 {
				first = v
			}
			n++
		}
	}
	return first, n
}

func TestNewWorldSpawns(t *testing.T) {
	for _, key := range []string{"easy", "medium", "hard", "pro"} {
		g := newTestGame(t, key, "frog", 17)
		w := g.World()

		if !w.Grid.Passable(w.PlayerSpawn) {
			t.Errorf("%s: player spawn %v is not passable", key, w.PlayerSpawn)
		}
		if !w.Grid.Passable(w.Den) {
			t.Errorf("%s: den %v is not passable", key, w.Den)
		}
		if len(w.Predators) != g.Options().Difficulty.Predators {
			t.Errorf("%s: %d predators, expected %d", key, len(w.Predators), g.Options().Difficulty.Predators)
		}
		for i, p := range w.Predators {
			if p.Kind != spawnKinds[i%4] {
				t.Errorf("%s: predator %d is %v", key, i, p.Kind)
			}
			if !w.Grid.PassableAt(p.Pos) {
				t.Errorf("%s: predator %d spawned in a wall at %v", key, i, p.Pos)
			}
		}
		if w.Remaining() != w.TotalPickups || w.TotalPickups == 0 {
			t.Errorf("%s: pickups = %d/%d", key, w.Remaining(), w.TotalPickups)
		}
		if len(w.Artifacts) != 4 {
			t.Errorf("%s: %d artifacts", key, len(w.Artifacts))
		}
		for _, a := range w.Artifacts {
			if w.HasPickup(a.Cell) {
				t.Errorf("%s: artifact slot %v holds a pickup", key, a.Cell)
			}
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(t, "medium", "chipmunk", 12345)
	g2 := newTestGame(t, "medium", "chipmunk", 12345)
	bot := NewAutopilot()

	for i := 0; i < 600; i++ {
		g1.Advance(testDT, bot.Decide(g1))
		g2.Advance(testDT, bot.Decide(g2))
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestPickupAccounting(t *testing.T) {
	g := newTestGame(t, "easy", "chipmunk", 8)
	bot := NewAutopilot()
	collected := 0

	for i := 0; i < 3000 && !g.State().GameOver; i++ {
		f := g.Advance(testDT, bot.Decide(g))
		_, n := hasEvent[PickupCollected](f.Events)
		collected += n

		w := g.World()
		if w.Remaining()+w.Collected != w.TotalPickups {
			t.Fatalf("frame %d: remaining %d + collected %d != total %d", i, w.Remaining(), w.Collected, w.TotalPickups)
		}
		if got := len(pickupCells(w)); got != w.Remaining() {
			t.Fatalf("frame %d: %d pickups on the board, Remaining() = %d", i, got, w.Remaining())
		}
	}
	if collected == 0 {
		t.Error("autopilot never collected a pickup")
	}
}

func TestMovementContainment(t *testing.T) {
	actions := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionAbility}

	for _, animal := range []string{"chipmunk", "frog", "hedgehog", "hummingbird"} {
		g := newTestGame(t, "pro", animal, 4242)
		rng := rand.New(rand.NewSource(1))

		for i := 0; i < 2000; i++ {
			in := core.NewInputFrame()
			if rng.Intn(4) == 0 {
				in.Set(actions[rng.Intn(len(actions))])
			}
			g.Advance(0.05, in)
			if g.State().GameOver {
				g.Run(g.Options(), uint32(i))
				continue
			}

			w := g.World()
			if !w.Grid.PassableAt(w.Player.Pos) {
				t.Fatalf("%s frame %d: player in a wall at %v", animal, i, w.Player.Pos)
			}
			for j, p := range w.Predators {
				if !w.Grid.PassableAt(p.Pos) {
					t.Fatalf("%s frame %d: predator %d in a wall at %v", animal, i, j, p.Pos)
				}
			}
		}
	}
}

func TestWrapCorridor(t *testing.T) {
	g := newTestGame(t, "easy", "frog", 3)
	w := g.World()
	w.Predators = nil
	mid := float64(w.Grid.MidRow())
	right := float64(w.Grid.W - 1)

	w.Player.Pos = r2.Vec{X: -0.25, Y: mid}
	w.Player.Dir = r2.Vec{X: -1}
	w.Player.NextDir = r2.Vec{X: -1}
	g.Advance(0.05, core.NewInputFrame())
	if w.Player.Pos.X != right {
		t.Errorf("moving left off the corridor: x = %v, expected %v", w.Player.Pos.X, right)
	}

	w.Player.Pos = r2.Vec{X: right + 0.25, Y: mid}
	w.Player.Dir = r2.Vec{X: 1}
	w.Player.NextDir = r2.Vec{X: 1}
	g.Advance(0.05, core.NewInputFrame())
	if w.Player.Pos.X != 0 {
		t.Errorf("moving right off the corridor: x = %v, expected 0", w.Player.Pos.X)
	}
}

func TestPlayerStopsAtWall(t *testing.T) {
	g := newTestGame(t, "easy", "frog", 3)
	w := g.World()
	w.Predators = nil

	// (1, 1) always has the border wall above it.
	standOn(w, Cell{X: 1, Y: 1})
	w.Player.Dir = r2.Vec{Y: -1}
	w.Player.NextDir = r2.Vec{Y: -1}
	for i := 0; i < 10; i++ {
		g.Advance(0.05, core.NewInputFrame())
	}
	if w.Player.Dir != (r2.Vec{}) {
		t.Errorf("player direction = %v, expected stopped", w.Player.Dir)
	}
	if CellOf(w.Player.Pos) != (Cell{X: 1, Y: 1}) {
		t.Errorf("player moved into %v", CellOf(w.Player.Pos))
	}
}

func TestAxisInputBuffersDirection(t *testing.T) {
	g := newTestGame(t, "easy", "frog", 3)
	w := g.World()

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.applyInput(in)
	if w.Player.NextDir != (r2.Vec{X: -1}) {
		t.Errorf("NextDir = %v", w.Player.NextDir)
	}

	g.applyInput(core.NewInputFrame())
	if w.Player.NextDir != (r2.Vec{X: -1}) {
		t.Error("empty input should keep the buffered direction")
	}

	w.Player.Dir = r2.Vec{X: -1}
	both := core.NewInputFrame()
	both.Set(core.ActionLeft)
	both.Set(core.ActionUp)
	g.applyInput(both)
	if w.Player.NextDir != (r2.Vec{Y: -1}) {
		t.Errorf("two axes while moving horizontally: NextDir = %v, expected up", w.Player.NextDir)
	}
}

func TestTileSpeed(t *testing.T) {
	cfg := config.DefaultSafariConfig()
	chip, _ := cfg.Animal("chipmunk")
	frog, _ := cfg.Animal("frog")

	tests := []struct {
		name     string
		tile     Tile
		animal   config.Animal
		active   bool
		expected float64
	}{
		{"path", TilePath, chip, false, 1.0},
		{"grass", TileGrass, chip, false, GrassSpeed},
		{"water", TileWater, chip, false, WaterSpeed},
		{"water frog", TileWater, frog, false, 1.0},
		{"grass frog", TileGrass, frog, false, GrassSpeed},
		{"grass active", TileGrass, chip, true, 1.0},
		{"water active", TileWater, chip, true, 1.0},
		{"artifact", TileArtifact, chip, false, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tileSpeed(tc.tile, tc.animal, tc.active); got != tc.expected {
				t.Errorf("tileSpeed() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPlayerSpeedMultipliers(t *testing.T) {
	g := newTestGame(t, "easy", "chipmunk", 3)
	w := g.World()
	standOn(w, w.PlayerSpawn)
	w.Grid.Set(w.PlayerSpawn.X, w.PlayerSpawn.Y, TileWater)

	base := g.opts.Difficulty.PlayerSpeed
	if got, want := g.playerSpeed(), base*WaterSpeed*1.05; math.Abs(got-want) > 1e-9 {
		t.Errorf("chipmunk on water = %v, expected %v", got, want)
	}

	w.Player.Active = 1
	if got, want := g.playerSpeed(), base*1.05*1.4; math.Abs(got-want) > 1e-9 {
		t.Errorf("dashing chipmunk = %v, expected %v", got, want)
	}
}

func TestAbilityCooldown(t *testing.T) {
	g := newTestGame(t, "easy", "chipmunk", 3)
	w := g.World()
	w.Predators = nil

	press := core.NewInputFrame()
	press.Set(core.ActionAbility)

	f := g.Advance(0.05, press)
	if _, n := hasEvent[AbilityUsed](f.Events); n != 1 {
		t.Fatalf("expected one AbilityUsed event, got %d", n)
	}
	if math.Abs(w.Player.Active-(1.5-0.05)) > 1e-9 || math.Abs(w.Player.Cooldown-(20-0.05)) > 1e-9 {
		t.Errorf("after trigger: active=%v cooldown=%v", w.Player.Active, w.Player.Cooldown)
	}

	f = g.Advance(0.05, press)
	if _, n := hasEvent[AbilityUsed](f.Events); n != 0 {
		t.Error("ability fired again while active")
	}

	w.Player.Active = 0
	f = g.Advance(0.05, press)
	if _, n := hasEvent[AbilityUsed](f.Events); n != 0 {
		t.Error("ability fired while cooling down")
	}

	w.Player.Cooldown = 0
	f = g.Advance(0.05, press)
	if _, n := hasEvent[AbilityUsed](f.Events); n != 1 {
		t.Error("ability should fire once the cooldown expires")
	}
}

func TestCollectPickupScores(t *testing.T) {
	g := newTestGame(t, "easy", "frog", 9)
	w := g.World()
	w.Predators = nil

	cells := pickupCells(w)
	standOn(w, cells[0])
	f := g.Advance(0.01, core.NewInputFrame())

	if g.State().Score != PickupScore {
		t.Errorf("score = %d, expected %d", g.State().Score, PickupScore)
	}
	if w.HasPickup(cells[0]) {
		t.Error("pickup should be cleared")
	}
	if e, n := hasEvent[PickupCollected](f.Events); n != 1 || e.Remaining != w.TotalPickups-1 {
		t.Errorf("PickupCollected = %+v (n=%d)", e, n)
	}

	// Standing still collects nothing more.
	g.Advance(0.01, core.NewInputFrame())
	if g.State().Score != PickupScore {
		t.Errorf("score changed to %d while standing still", g.State().Score)
	}
}

func TestArtifactFrightens(t *testing.T) {
	g := newTestGame(t, "medium", "frog", 21)
	w := g.World()
	for i := range w.Predators {
		w.Predators[i].Pos = w.Predators[i].Home.Vec()
	}

	a := w.Artifacts[0].Cell
	standOn(w, a)
	f := g.Advance(0.01, core.NewInputFrame())

	if !w.Artifacts[0].Taken {
		t.Fatal("artifact should be taken")
	}
	if g.State().Score != ArtifactScore {
		t.Errorf("score = %d, expected %d", g.State().Score, ArtifactScore)
	}
	dur := g.opts.Difficulty.FrightenedDuration
	if w.Frightened != dur {
		t.Errorf("frightened = %v, expected %v", w.Frightened, dur)
	}
	for i, p := range w.Predators {
		if math.Abs(p.Countdown-(dur-0.01)) > 1e-9 {
			t.Errorf("predator %d countdown = %v", i, p.Countdown)
		}
		if p.Immune() {
			t.Errorf("artifact stamp should not make predator %d immune", i)
		}
	}
	if _, n := hasEvent[ArtifactTaken](f.Events); n != 1 {
		t.Errorf("expected one ArtifactTaken event, got %d", n)
	}
	if !g.fleeing() {
		t.Error("predators should flee while frightened")
	}
	if got, want := g.predatorSpeed(), g.opts.Difficulty.PredatorSpeed*FrightenedSpeed; got != want {
		t.Errorf("predator speed = %v, expected %v", got, want)
	}

	// A taken artifact does not score twice.
	g.Advance(0.01, core.NewInputFrame())
	if g.State().Score != ArtifactScore {
		t.Errorf("score changed to %d", g.State().Score)
	}
}

func TestExtraPredatorSpawn(t *testing.T) {
	g := newTestGame(t, "hard", "frog", 77)
	w := g.World()
	w.Predators = nil

	at := g.opts.Difficulty.ExtraPredatorAt
	need := 0
	for float64(need)/float64(w.TotalPickups) < at {
		need++
	}

	cells := pickupCells(w)
	for _, c := range cells[:need-2] {
		w.takePickup(c)
	}

	standOn(w, cells[need-2])
	f := g.Advance(0.001, core.NewInputFrame())
	if _, n := hasEvent[ExtraPredatorSpawned](f.Events); n != 0 || len(w.Predators) != 0 {
		t.Fatalf("spawned below the threshold at %d/%d", w.Collected, w.TotalPickups)
	}

	standOn(w, cells[need-1])
	f = g.Advance(0.001, core.NewInputFrame())
	e, n := hasEvent[ExtraPredatorSpawned](f.Events)
	if n != 1 || len(w.Predators) != 1 {
		t.Fatalf("expected one spawn at %d/%d, got %d (predators %d)", w.Collected, w.TotalPickups, n, len(w.Predators))
	}
	if e.Kind != KindFox || w.Predators[0].Kind != KindFox || e.Cell != w.Den || w.Predators[0].Home != w.Den {
		t.Errorf("spawn = %+v at %v, den %v", e, w.Predators[0].Pos, w.Den)
	}

	// Move the fox away so the next pickup is safe.
	w.Predators[0].Pos = w.Den.Vec()
	standOn(w, cells[need])
	if CellOf(w.Predators[0].Pos) == cells[need] {
		t.Skip("next pickup sits in the den")
	}
	f = g.Advance(0.001, core.NewInputFrame())
	if _, n := hasEvent[ExtraPredatorSpawned](f.Events); n != 0 || len(w.Predators) != 1 {
		t.Error("extra predator spawned twice")
	}
}

func TestNoExtraPredatorWithoutThreshold(t *testing.T) {
	g := newTestGame(t, "easy", "frog", 77)
	w := g.World()
	w.Predators = nil

	cells := pickupCells(w)
	for _, c := range cells[:len(cells)-2] {
		w.takePickup(c)
	}
	standOn(w, cells[len(cells)-2])
	f := g.Advance(0.001, core.NewInputFrame())
	if _, n := hasEvent[ExtraPredatorSpawned](f.Events); n != 0 {
		t.Error("easy has no threshold and must not spawn")
	}
}

func TestLevelClear(t *testing.T) {
	g := newTestGame(t, "medium", "frog", 5)
	w := g.World()
	w.Predators = nil
	firstSeed := w.Maze.Seed

	cells := pickupCells(w)
	for _, c := range cells[:len(cells)-1] {
		w.takePickup(c)
	}
	scoreBefore := g.State().Score
	livesBefore := g.State().Lives

	standOn(w, cells[len(cells)-1])
	f := g.Advance(0.01, core.NewInputFrame())

	e, n := hasEvent[LevelCleared](f.Events)
	if n != 1 {
		t.Fatalf("expected one LevelCleared event, got %d", n)
	}
	if e.Level != 1 || e.Bonus != LevelClearBonus {
		t.Errorf("LevelCleared = %+v", e)
	}

	st := g.State()
	if st.Score != scoreBefore+PickupScore+LevelClearBonus {
		t.Errorf("score = %d, expected %d", st.Score, scoreBefore+PickupScore+LevelClearBonus)
	}
	if st.Lives != livesBefore {
		t.Errorf("lives = %d, expected %d", st.Lives, livesBefore)
	}
	if st.Level != 2 {
		t.Errorf("level = %d, expected 2", st.Level)
	}

	next := g.World()
	if next == w {
		t.Fatal("level clear should build a new world")
	}
	if next.Maze.Seed == firstSeed {
		t.Error("next level reused the maze seed")
	}
	if next.Collected != 0 || next.Remaining() != next.TotalPickups {
		t.Errorf("new level pickups = %d/%d", next.Remaining(), next.TotalPickups)
	}
}

func TestLevelSeedsRepeatable(t *testing.T) {
	seeds := func() []uint32 {
		g := newTestGame(t, "easy", "frog", 31)
		var out []uint32
		for i := 0; i < 3; i++ {
			w := g.World()
			w.Predators = nil
			out = append(out, w.Maze.Seed)
			for _, c := range pickupCells(w) {
				w.takePickup(c)
			}
			g.clearLevel()
		}
		return out
	}

	a, b := seeds(), seeds()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("level %d seed %d vs %d", i+1, a[i], b[i])
		}
	}
	if a[0] != 31 {
		t.Errorf("first level should use the run seed, got %d", a[0])
	}
}

func TestPauseFreezesTimers(t *testing.T) {
	g := newTestGame(t, "easy", "frog", 3)
	w := g.World()
	w.Player.Cooldown = 5

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Advance(0.05, pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	for i := 0; i < 10; i++ {
		g.Advance(0.05, core.NewInputFrame())
	}
	if w.Player.Cooldown != 5 {
		t.Errorf("cooldown advanced while paused: %v", w.Player.Cooldown)
	}

	g.Advance(0.05, pause)
	if g.State().Paused {
		t.Fatal("game should resume")
	}
	if w.Player.Cooldown >= 5 {
		t.Error("cooldown should tick after resuming")
	}
}

func TestFrameTimeClamped(t *testing.T) {
	g := newTestGame(t, "easy", "frog", 3)
	w := g.World()
	w.Predators = nil
	w.Player.Cooldown = 5

	g.Advance(10, core.NewInputFrame())
	if math.Abs(w.Player.Cooldown-(5-MaxFrameDT)) > 1e-9 {
		t.Errorf("cooldown = %v, expected %v", w.Player.Cooldown, 5-MaxFrameDT)
	}
	g.Advance(-1, core.NewInputFrame())
	if math.Abs(w.Player.Cooldown-(5-MaxFrameDT)) > 1e-9 {
		t.Error("negative dt should not move the clock")
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, "easy", "frog", 3)
	g.score = 500
	g.lives = 1
	g.level = 3
	oldSeed := g.Seed()

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Advance(0.05, restart)

	st := g.State()
	if st.Score != 0 || st.Lives != g.opts.Difficulty.Lives || st.Level != 1 || st.GameOver {
		t.Errorf("state after restart = %+v", st)
	}
	if g.Seed() == oldSeed {
		t.Error("restart should pick a new seed")
	}
}
