package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// terminalColors maps core.Color to ANSI 256 colour codes.
var terminalColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:        "0",
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "12",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "15",
	core.ColorGray:         "245",
	core.ColorDarkGray:     "240",
	core.ColorNavy:         "4",
	core.ColorMaroon:       "88",
	core.ColorTeal:         "30",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
}

// styleCache holds one lipgloss style per core.Style seen so far. It is
// shared by all SSH sessions.
type styleCache struct {
	mu sync.Mutex
	m  map[core.Style]lipgloss.Style
}

func (c *styleCache) get(st core.Style) lipgloss.Style {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.m[st]; ok {
		return s
	}
	s := lipgloss.NewStyle().Bold(st.Bold)
	if fg, ok := terminalColors[st.Fg]; ok {
		s = s.Foreground(fg)
	}
	if bg, ok := terminalColors[st.Bg]; ok {
		s = s.Background(bg)
	}
	c.m[st] = s
	return s
}

var styles = &styleCache{m: make(map[core.Style]lipgloss.Style)}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same style share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == core.Plain {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
