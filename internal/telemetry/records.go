// Package telemetry records headless safari runs as CSV and summarizes
// score distributions.
package telemetry

import (
	"fmt"

	"github.com/vovakirdan/safari-maze/internal/games/safari"
)

// RunRecord is one finished (or frame-capped) autopilot run.
type RunRecord struct {
	Run        int     `csv:"run"`
	Seed       uint32  `csv:"seed"`
	Difficulty string  `csv:"difficulty"`
	Animal     string  `csv:"animal"`
	Score      int     `csv:"score"`
	Level      int     `csv:"level"`
	Collected  int     `csv:"collected"`
	LivesLost  int     `csv:"lives_lost"`
	Bumps      int     `csv:"bumps"`
	Frames     int     `csv:"frames"`
	SimSeconds float64 `csv:"sim_seconds"`
	Outcome    string  `csv:"outcome"` // game_over or timeout
}

// EventRecord is one gameplay event of a run.
type EventRecord struct {
	Run    int     `csv:"run"`
	Frame  int     `csv:"frame"`
	Time   float64 `csv:"time"`
	Level  int     `csv:"level"`
	Score  int     `csv:"score"`
	Event  string  `csv:"event"`
	Detail string  `csv:"detail"`
}

// NewEventRecord flattens a gameplay event into a CSV row.
func NewEventRecord(run, frame int, t float64, level, score int, e safari.Event) EventRecord {
	return EventRecord{
		Run:    run,
		Frame:  frame,
		Time:   t,
		Level:  level,
		Score:  score,
		Event:  safari.EventName(e),
		Detail: eventDetail(e),
	}
}

func eventDetail(e safari.Event) string {
	switch ev := e.(type) {
	case safari.PickupCollected:
		return fmt.Sprintf("cell=%d,%d remaining=%d", ev.Cell.X, ev.Cell.Y, ev.Remaining)
	case safari.ArtifactTaken:
		return fmt.Sprintf("cell=%d,%d frightened=%.1fs", ev.Cell.X, ev.Cell.Y, ev.Duration)
	case safari.AbilityUsed:
		return fmt.Sprintf("animal=%s duration=%.1fs", ev.Animal, ev.Duration)
	case safari.PredatorBumped:
		return "kind=" + ev.Kind.String()
	case safari.ShieldUsed:
		return fmt.Sprintf("kind=%s shields=%d", ev.Kind, ev.ShieldsLeft)
	case safari.LifeLost:
		return fmt.Sprintf("kind=%s lives=%d", ev.Kind, ev.LivesLeft)
	case safari.ExtraPredatorSpawned:
		return fmt.Sprintf("kind=%s cell=%d,%d", ev.Kind, ev.Cell.X, ev.Cell.Y)
	case safari.LevelCleared:
		return fmt.Sprintf("level=%d bonus=%d", ev.Level, ev.Bonus)
	case safari.GameOver:
		return fmt.Sprintf("seed=%d level=%d", ev.Seed, ev.Level)
	}
	return ""
}
