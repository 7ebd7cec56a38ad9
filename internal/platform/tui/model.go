package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/safari-maze/internal/core"
	"github.com/vovakirdan/safari-maze/internal/games/safari"
	"github.com/vovakirdan/safari-maze/internal/storage"
)

// Options configures a game model.
type Options struct {
	Store     *storage.Store // nil disables score saving
	Logger    *log.Logger    // nil discards logs
	Player    string         // leaderboard initials
	Autopilot bool           // let the bot play (demo mode)
	Palette   *Palette       // nil uses the default palette
}

// Model is the Bubble Tea model that drives one safari run.
type Model struct {
	game       *safari.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	palette    *Palette
	player     string
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	autopilot  *safari.Autopilot
	lastTick   time.Time
	quitting   bool
	backToMenu bool
	scoreSaved bool
	embedded   bool // owned by a SessionModel; never quit the program on back
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *safari.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	palette := opts.Palette
	if palette == nil {
		palette = defaultPalette()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		palette:    palette,
		player:     storage.NormalizeName(opts.Player),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	if opts.Autopilot {
		m.autopilot = safari.NewAutopilot()
	}

	game.Reset(cfg)
	m.gameState = game.State()
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("run started",
		"difficulty", m.game.Options().Difficulty.Key,
		"animal", m.game.Options().Animal.Key,
		"seed", m.game.Seed(),
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path := m.saveScreenshot(); path != "" {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// frameDelta returns the elapsed time since the previous tick.
// The first frame uses the nominal tick interval.
func (m *Model) frameDelta(now time.Time) float64 {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now
	return dt
}

// frameInput is the input sampled for the next frame. In autopilot mode the
// bot steers and the user keeps pause and restart.
func (m Model) frameInput() core.InputFrame {
	if m.autopilot == nil {
		return m.inputFrame.Clone()
	}
	in := m.autopilot.Decide(m.game)
	for _, a := range []core.Action{core.ActionPause, core.ActionRestart} {
		if m.inputFrame.Has(a) {
			in.Set(a)
		}
	}
	return in
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	dt := m.frameDelta(now)
	in := m.frameInput()
	m.inputFrame.Clear()

	if in.Has(core.ActionRestart) {
		m.scoreSaved = false
	}

	frame := m.game.Advance(dt, in)
	m.gameState = frame.State
	m.handleEvents(frame.Events)

	return m, tickCmd(m.config.TickRate)
}

// handleEvents logs notable events and saves the score at game over.
func (m *Model) handleEvents(events []safari.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case safari.LevelCleared:
			m.logger.Info("level cleared", "level", ev.Level, "score", ev.Score)
		case safari.LifeLost:
			m.logger.Debug("life lost", "predator", ev.Kind, "lives", ev.LivesLeft)
		case safari.ExtraPredatorSpawned:
			m.logger.Debug("extra predator", "kind", ev.Kind)
		case safari.GameOver:
			m.logger.Info("game over", "score", ev.Score, "level", ev.Level, "seed", ev.Seed)
			m.saveScore(ev)
		}
	}
}

// saveScore records the run once. Zero scores are not recorded.
func (m *Model) saveScore(ev safari.GameOver) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil || ev.Score <= 0 {
		return
	}

	opts := m.game.Options()
	if top, err := m.store.Qualifies(opts.Difficulty.Key, ev.Score, storage.DefaultLimit); err == nil && top {
		m.logger.Info("new leaderboard entry", "difficulty", opts.Difficulty.Key, "score", ev.Score)
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		Name:       m.player,
		Difficulty: opts.Difficulty.Key,
		Animal:     opts.Animal.Key,
		Score:      ev.Score,
		Level:      ev.Level,
		Seed:       ev.Seed,
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current frame as text under ~/.safari/screenshots
// and returns the file path, or "" on failure.
func (m *Model) saveScreenshot() string {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".safari", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return ""
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("safari_%s_%s.txt", m.game.Options().Difficulty.Key, timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return ""
	}
	return path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// State returns the HUD state after the most recent frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the setup menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Result is the outcome of a local Run.
type Result struct {
	State      core.GameState
	BackToMenu bool
}

// Run plays the game in the current terminal until the user quits or goes
// back to the menu.
func Run(game *safari.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{State: m.State(), BackToMenu: m.BackToMenu()}, nil
}
