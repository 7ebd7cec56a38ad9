package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/safari-maze/internal/core"
)

// colorCodes maps core.Color to ANSI color codes. ColorDefault has none.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorNavy:          "19",
	core.ColorLavender:      "183",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Palette turns screen colors into lipgloss styles for one output.
// SSH sessions get their own palette so the client's color profile is used.
type Palette struct {
	styles map[core.Color]lipgloss.Style
}

// NewPalette builds styles with the given renderer, or the default renderer
// when r is nil.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Palette{styles: make(map[core.Color]lipgloss.Style, len(colorCodes)+1)}
	p.styles[core.ColorDefault] = r.NewStyle()
	for c, code := range colorCodes {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

func (p *Palette) style(c core.Color) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	return p.styles[core.ColorDefault]
}

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells of one color are emitted as a single styled run.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultPalette = sync.OnceValue(func() *Palette { return NewPalette(nil) })

// RenderScreen renders with the process-wide default palette.
func RenderScreen(s *core.Screen) string {
	return defaultPalette().Render(s)
}
