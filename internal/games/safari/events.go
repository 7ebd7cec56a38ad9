package safari

// Event is something that happened during a frame. The platform layer uses
// events for sounds, logging and score persistence; they carry no rules.
type Event interface {
	safariEvent()
}

// PickupCollected is emitted when the player eats a seed.
type PickupCollected struct {
	Cell      Cell
	Remaining int
}

func (PickupCollected) safariEvent() {}

// ArtifactTaken is emitted when the player takes an artifact and predators
// become frightened.
type ArtifactTaken struct {
	Cell     Cell
	Duration float64
}

func (ArtifactTaken) safariEvent() {}

// AbilityUsed is emitted when the animal's ability fires.
type AbilityUsed struct {
	Animal   string
	Duration float64
}

func (AbilityUsed) safariEvent() {}

// PredatorBumped is emitted when the player knocks a predator back for points.
type PredatorBumped struct {
	Kind PredatorKind
}

func (PredatorBumped) safariEvent() {}

// ShieldUsed is emitted when a shield charge absorbs a hit.
type ShieldUsed struct {
	Kind        PredatorKind
	ShieldsLeft int
}

func (ShieldUsed) safariEvent() {}

// LifeLost is emitted when a predator catches the player.
type LifeLost struct {
	Kind      PredatorKind
	LivesLeft int
}

func (LifeLost) safariEvent() {}

// ExtraPredatorSpawned is emitted when the pickup threshold releases a fox.
type ExtraPredatorSpawned struct {
	Kind PredatorKind
	Cell Cell
}

func (ExtraPredatorSpawned) safariEvent() {}

// LevelCleared is emitted once all pickups of a level are collected.
// Level is the number of the level that was just finished.
type LevelCleared struct {
	Level int
	Bonus int
	Score int
}

func (LevelCleared) safariEvent() {}

// GameOver is emitted exactly once per run, when the last life is lost.
type GameOver struct {
	Score int
	Level int
	Seed  uint32
}

func (GameOver) safariEvent() {}

// EventName returns a short stable name for an event, used in logs and exports.
func EventName(e Event) string {
	switch e.(type) {
	case PickupCollected:
		return "pickup"
	case ArtifactTaken:
		return "artifact"
	case AbilityUsed:
		return "ability"
	case PredatorBumped:
		return "bump"
	case ShieldUsed:
		return "shield"
	case LifeLost:
		return "life_lost"
	case ExtraPredatorSpawned:
		return "extra_predator"
	case LevelCleared:
		return "level_cleared"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
