package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/safari-maze/internal/telemetry"
)

var (
	flagRuns      int
	flagOutDir    string
	flagMaxFrames int
	flagSimDiff   string
	flagSimAnimal string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot games",
	Long: `Play a batch of seeded runs with the built-in autopilot, without a
terminal UI. Each run uses seed --seed + i. With --out, runs.csv and
events.csv are written to that directory. A score summary is logged at the
end.

Examples:
  safari sim --runs 20
  safari sim --runs 100 --difficulty hard --animal hedgehog --out ./runs
  safari sim --runs 10 --seed 42 --max-frames 7200`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of runs")
	simCmd.Flags().StringVar(&flagOutDir, "out", "", "Directory for runs.csv and events.csv (empty = no export)")
	simCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 60*60*5, "Per-run frame cap (0 = until game over)")
	simCmd.Flags().StringVar(&flagSimDiff, "difficulty", "medium", "Difficulty key")
	simCmd.Flags().StringVar(&flagSimAnimal, "animal", "chipmunk", "Animal key")
}

func runSim(cmd *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("safari-sim", false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	opts, err := lookupOptions(cfg, flagSimDiff, flagSimAnimal)
	if err != nil {
		logger.Fatal("invalid options", "error", err)
	}

	out, err := telemetry.NewOutputManager(flagOutDir)
	if err != nil {
		logger.Fatal("cannot create output", "error", err)
	}
	defer out.Close()

	seed := uint32(flagSeed)
	if flagSeed == 0 {
		seed = uint32(time.Now().UnixNano())
	}
	batch := telemetry.BatchConfig{
		Runs:      flagRuns,
		Seed:      seed,
		FrameDT:   1.0 / float64(max(flagFPS, 1)),
		MaxFrames: flagMaxFrames,
		Options:   opts,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	logger.Info("starting batch", "batch", batch.Describe(), "out", out.Dir())
	start := time.Now()
	records, err := telemetry.RunBatch(ctx, batch, out, func(r telemetry.RunRecord) {
		logger.Debug("run finished",
			"run", r.Run, "seed", r.Seed, "score", r.Score, "level", r.Level, "outcome", r.Outcome)
		if r.Run%10 == 0 {
			logger.Info("progress", "done", r.Run, "of", batch.Runs)
		}
	})
	if err != nil {
		logger.Warn("batch stopped early", "error", err, "done", len(records))
	}

	logger.Info("batch finished",
		"runs", len(records),
		"elapsed", time.Since(start).Round(time.Millisecond),
		"scores", telemetry.SummarizeInts(telemetry.Scores(records)).String(),
	)
}
