package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/safari-maze/internal/config"
	"github.com/vovakirdan/safari-maze/internal/core"
	"github.com/vovakirdan/safari-maze/internal/games/safari"
	"github.com/vovakirdan/safari-maze/internal/platform/tui"
	"github.com/vovakirdan/safari-maze/internal/storage"
)

var (
	flagDifficulty string
	flagAnimal     string
	flagName       string
	flagDemo       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tiny Animal Safari",
	Long: `Start a run. Without --difficulty and --animal an interactive setup menu
asks for both.

Controls:
  Arrows/WASD/HJKL - Move
  Space            - Use your animal's ability
  P/Esc            - Pause
  B                - Back to setup (while paused or after game over)
  R                - Restart with a new maze
  Ctrl+S           - Save a text screenshot to ~/.safari/screenshots
  Q/Ctrl+C         - Quit

Examples:
  safari play
  safari play --difficulty easy --animal chipmunk
  safari play --difficulty pro --animal hummingbird --seed 1234
  safari play --demo --difficulty medium --animal frog`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty key (see 'safari list')")
	playCmd.Flags().StringVar(&flagAnimal, "animal", "", "Animal key (see 'safari list')")
	playCmd.Flags().StringVar(&flagName, "name", "", "Leaderboard initials (default: $USER)")
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Let the autopilot play")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("safari", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	name := flagName
	if name == "" {
		name = os.Getenv("USER")
	}
	opts := tui.Options{
		Store:     store,
		Logger:    logger,
		Player:    name,
		Autopilot: flagDemo,
	}

	runErr := playLoop(cfg, rt, opts, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// playLoop alternates between the setup menu, the scoreboard and runs until
// the user quits.
func playLoop(cfg config.SafariConfig, rt core.RuntimeConfig, opts tui.Options, logger *log.Logger) error {
	difficulty, animal := flagDifficulty, flagAnimal
	direct := difficulty != "" && animal != ""

	for {
		var selected safari.Options
		if direct {
			direct = false
			o, err := lookupOptions(cfg, difficulty, animal)
			if err != nil {
				return err
			}
			selected = o
		} else {
			res, err := tui.RunSetup(cfg, rt, difficulty, animal)
			if err != nil {
				return err
			}
			if res.Quit {
				return nil
			}
			if res.WantsScoreboard {
				goBack, err := tui.RunScoreboard(opts.Store, cfg.Difficulties, difficulty, rt.ScreenW, rt.ScreenH)
				if err != nil {
					return err
				}
				if !goBack {
					return nil
				}
				continue
			}
			selected = *res.Options
		}

		difficulty, animal = selected.Difficulty.Key, selected.Animal.Key
		logger.Debug("starting run", "difficulty", difficulty, "animal", animal, "seed", rt.Seed)

		result, err := tui.Run(safari.New(selected), rt, opts)
		if err != nil {
			return err
		}
		if !result.BackToMenu {
			return nil
		}
	}
}
