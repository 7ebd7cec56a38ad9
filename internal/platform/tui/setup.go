package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/safari-maze/internal/config"
	"github.com/vovakirdan/safari-maze/internal/core"
	"github.com/vovakirdan/safari-maze/internal/games/safari"
)

type setupStage int

const (
	stageDifficulty setupStage = iota
	stageAnimal
)

// SetupModel lets the user pick a difficulty and then an animal.
type SetupModel struct {
	cfg          config.SafariConfig
	stage        setupStage
	diffCursor   int
	animalCursor int
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    *safari.Options
	quitting     bool
	scoreboard   bool
}

// NewSetupModel creates the setup menu. The cursors start on the given
// keys when they exist in cfg.
func NewSetupModel(cfg config.SafariConfig, width, height int, difficulty, animal string) SetupModel {
	m := SetupModel{
		cfg:       cfg,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, d := range cfg.Difficulties {
		if d.Key == difficulty {
			m.diffCursor = i
		}
	}
	for i, a := range cfg.Animals {
		if a.Key == animal {
			m.animalCursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cursor, count := &m.diffCursor, len(m.cfg.Difficulties)
	if m.stage == stageAnimal {
		cursor, count = &m.animalCursor, len(m.cfg.Animals)
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if *cursor > 0 {
			*cursor--
		}
	case MenuActionDown:
		if *cursor < count-1 {
			*cursor++
		}
	case MenuActionSelect:
		if count == 0 {
			return m, nil
		}
		if m.stage == stageDifficulty {
			m.stage = stageAnimal
			return m, nil
		}
		m.selection = &safari.Options{
			Difficulty: m.cfg.Difficulties[m.diffCursor],
			Animal:     m.cfg.Animals[m.animalCursor],
		}
		return m, tea.Quit
	case MenuActionBack:
		if m.stage == stageAnimal {
			m.stage = stageDifficulty
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the current selection list.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, "T I N Y   A N I M A L   S A F A R I", m.width))
	b.WriteString("\n\n")

	if m.stage == stageDifficulty {
		b.WriteString(centerText("Choose a difficulty:", m.width))
		b.WriteString("\n\n")
		for i, d := range m.cfg.Difficulties {
			line := fmt.Sprintf("%s%-8s %dx%d maze, %d lives, %d predators",
				cursorMark(i == m.diffCursor), d.Label, d.MazeWidth, d.MazeHeight, d.Lives, d.Predators)
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	} else {
		diff := m.cfg.Difficulties[m.diffCursor]
		b.WriteString(centerText(fmt.Sprintf("Difficulty: %s. Choose your animal:", diff.Label), m.width))
		b.WriteString("\n\n")
		for i, a := range m.cfg.Animals {
			line := fmt.Sprintf("%s%-20s %s", cursorMark(i == m.animalCursor), a.Label, a.Ability)
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(hintStyle, "Enter: Select  |  Esc: Back  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen options, or nil while still choosing.
func (m SetupModel) Selected() *safari.Options {
	return m.selection
}

// IsQuitting returns true if the user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if the user asked for the scoreboard.
func (m SetupModel) WantsScoreboard() bool {
	return m.scoreboard
}

func cursorMark(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

func centerStyled(style lipgloss.Style, text string, width int) string {
	return centerText(style.Render(text), width)
}

// SetupResult holds the outcome of the setup menu.
type SetupResult struct {
	Options         *safari.Options
	WantsScoreboard bool
	Quit            bool
}

// RunSetup runs the setup menu in the current terminal.
func RunSetup(cfg config.SafariConfig, rt core.RuntimeConfig, difficulty, animal string) (SetupResult, error) {
	model := NewSetupModel(cfg, rt.ScreenW, rt.ScreenH, difficulty, animal)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return SetupResult{}, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return SetupResult{Quit: true}, nil
	}

	switch {
	case m.WantsScoreboard():
		return SetupResult{WantsScoreboard: true}, nil
	case m.Selected() != nil:
		return SetupResult{Options: m.Selected()}, nil
	default:
		return SetupResult{Quit: true}, nil
	}
}
