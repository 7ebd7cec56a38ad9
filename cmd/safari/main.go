// safari is a terminal maze-chase game: guide a small animal through a
// generated maze, eat every seed and stay away from the predators.
//
// Usage:
//
//	safari play              - Pick a difficulty and animal, then play
//	safari list              - List difficulties and animals
//	safari scores [level]    - Show high scores and score statistics
//	safari serve             - Start SSH server for remote play
//	safari sim               - Run headless autopilot games and export CSV
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible mazes
//	--db <path|url>     - SQLite path or postgres:// URL (default: ~/.safari/scores.db)
//	--config <path>     - Custom difficulty/animal YAML
//	--log-file <path>   - Write logs to a file
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/safari-maze/internal/config"
	"github.com/vovakirdan/safari-maze/internal/games/safari"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "safari",
	Short: "Tiny Animal Safari - a maze chase in your terminal",
	Long: `Tiny Animal Safari is a terminal maze-chase game. Pick an animal with a
special ability, collect every seed in the maze and avoid the hawk, fox,
snake and badger. Artifacts scare the predators for a while.

Available commands:
  play     - Play (interactive setup unless flags are given)
  list     - Show difficulties and animals
  scores   - View high scores and statistics
  serve    - Start SSH server for remote play
  sim      - Headless autopilot batch with CSV export

Examples:
  safari play
  safari play --difficulty hard --animal frog
  safari scores medium
  safari serve --ssh :2222
  safari sim --runs 50 --out ./runs`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.safari/scores.db", "Scores database: SQLite path or postgres:// URL")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom difficulty/animal YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger. Interactive commands own the
// terminal, so without --log-file they only get a discarding logger.
func newLogger(prefix string, interactive bool) (*log.Logger, func(), error) {
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadConfig loads the difficulty and animal tables from --config or the
// default search path.
func loadConfig() (config.SafariConfig, error) {
	return config.LoadSafari(flagConfig)
}

// lookupOptions resolves difficulty and animal keys.
func lookupOptions(cfg config.SafariConfig, difficulty, animal string) (safari.Options, error) {
	d, err := cfg.Difficulty(difficulty)
	if err != nil {
		return safari.Options{}, err
	}
	a, err := cfg.Animal(animal)
	if err != nil {
		return safari.Options{}, err
	}
	return safari.Options{Difficulty: d, Animal: a}, nil
}
