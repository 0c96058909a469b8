package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/snakelab/termsnake/internal/theme"
)

// styleSet maps cell roles to lipgloss styles for one theme.
type styleSet map[CellRole]lipgloss.Style

// stylesFor builds the role style table from the active theme.
func stylesFor(t theme.Theme) styleSet {
	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	return styleSet{
		RoleDefault:       lipgloss.NewStyle(),
		RoleBorder:        fg(t.Border),
		RoleSnakeHead:     fg(t.SnakeHead).Bold(true),
		RoleSnakeBody:     fg(t.SnakeBody),
		RoleSnakeTail:     fg(t.SnakeTail),
		RoleSnakeGlow:     fg(t.SnakeGlow).Bold(true),
		RoleFood:          fg(t.Food),
		RoleSuperFood:     fg(t.SuperFood).Bold(true),
		RoleSuperFoodWarn: fg(t.SuperFoodWarn).Bold(true),
		RoleHudText:       fg(t.HudText),
		RoleHudAccent:     fg(t.HudAccent).Bold(true),
		RoleOverlay:       fg(t.OverlayText).Bold(true),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same role to minimize ANSI escape sequences.
func RenderScreen(s *Screen, styles styleSet) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startRole := s.GetCell(x, y).Role

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Role != startRole {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startRole]
			if !ok {
				style = styles[RoleDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
