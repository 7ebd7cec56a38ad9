package telemetry

import (
	"context"
	"fmt"

	"github.com/vovakirdan/safari-maze/internal/games/safari"
)

// BatchConfig controls a headless autopilot batch.
type BatchConfig struct {
	Runs      int
	Seed      uint32  // seed of the first run; run i uses Seed+i
	FrameDT   float64 // simulated seconds per frame
	MaxFrames int     // per-run frame cap; <= 0 means no cap
	Options   safari.Options
}

// DefaultFrameDT is one 60 Hz frame.
const DefaultFrameDT = 1.0 / 60.0

// Progress is called after every finished run.
type Progress func(r RunRecord)

// RunBatch plays cfg.Runs autopilot runs, writing every run and its events
// to out. It stops early when ctx is cancelled and returns the runs finished
// so far together with ctx.Err().
func RunBatch(ctx context.Context, cfg BatchConfig, out *OutputManager, progress Progress) ([]RunRecord, error) {
	if cfg.FrameDT <= 0 {
		cfg.FrameDT = DefaultFrameDT
	}

	records := make([]RunRecord, 0, cfg.Runs)
	for i := 0; i < cfg.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		rec, events := PlayRun(i+1, cfg.Options, cfg.Seed+uint32(i), cfg.FrameDT, cfg.MaxFrames)
		if err := out.WriteRun(rec); err != nil {
			return records, err
		}
		if err := out.WriteEvents(events); err != nil {
			return records, err
		}

		records = append(records, rec)
		if progress != nil {
			progress(rec)
		}
	}
	return records, nil
}

// PlayRun plays one seeded run with the autopilot and returns its record and
// event log. Runs are deterministic for a given seed, options and dt.
func PlayRun(run int, opts safari.Options, seed uint32, dt float64, maxFrames int) (RunRecord, []EventRecord) {
	g := safari.New(opts)
	g.Run(opts, seed)
	bot := safari.NewAutopilot()

	rec := RunRecord{
		Run:        run,
		Seed:       seed,
		Difficulty: opts.Difficulty.Key,
		Animal:     opts.Animal.Key,
		Outcome:    "timeout",
	}
	var events []EventRecord

	for frame := 1; maxFrames <= 0 || frame <= maxFrames; frame++ {
		f := g.Advance(dt, bot.Decide(g))
		rec.Frames = frame

		for _, e := range f.Events {
			events = append(events, NewEventRecord(run, frame, float64(frame)*dt, f.State.Level, f.State.Score, e))
			switch e.(type) {
			case safari.PickupCollected:
				rec.Collected++
			case safari.LifeLost:
				rec.LivesLost++
			case safari.PredatorBumped:
				rec.Bumps++
			}
		}

		rec.Score = f.State.Score
		rec.Level = f.State.Level
		if f.State.GameOver {
			rec.Outcome = "game_over"
			break
		}
	}
	rec.SimSeconds = float64(rec.Frames) * dt
	return rec, events
}

// Scores extracts the score column of a batch.
func Scores(records []RunRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Score
	}
	return out
}

// Describe returns a one-line description of a batch configuration.
func (c BatchConfig) Describe() string {
	return fmt.Sprintf("%d runs of %s/%s from seed %d", c.Runs, c.Options.Difficulty.Key, c.Options.Animal.Key, c.Seed)
}
