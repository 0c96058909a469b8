// Package theme provides the color theme catalog: builtin themes embedded
// in the binary, overlaid by user-provided YAML themes. The simulation is
// theme-free; only the TUI layer consumes these.
package theme

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme holds every color role the renderer needs. Colors are lipgloss
// color values: ANSI indexes or hex strings.
type Theme struct {
	Name string `yaml:"name"`

	Background lipgloss.Color `yaml:"background"`
	Border     lipgloss.Color `yaml:"border"`

	SnakeHead lipgloss.Color `yaml:"snake_head"`
	SnakeBody lipgloss.Color `yaml:"snake_body"`
	SnakeTail lipgloss.Color `yaml:"snake_tail"`
	SnakeGlow lipgloss.Color `yaml:"snake_glow"`

	Food          lipgloss.Color `yaml:"food"`
	SuperFood     lipgloss.Color `yaml:"super_food"`
	SuperFoodWarn lipgloss.Color `yaml:"super_food_warning"`

	HudText     lipgloss.Color `yaml:"hud_text"`
	HudAccent   lipgloss.Color `yaml:"hud_accent"`
	OverlayText lipgloss.Color `yaml:"overlay_text"`
}

// Fallback returns the theme used when nothing else loads.
func Fallback() Theme {
	return Theme{
		Name:          "fallback",
		Background:    "0",
		Border:        "8",
		SnakeHead:     "10",
		SnakeBody:     "2",
		SnakeTail:     "2",
		SnakeGlow:     "11",
		Food:          "9",
		SuperFood:     "13",
		SuperFoodWarn: "11",
		HudText:       "7",
		HudAccent:     "14",
		OverlayText:   "15",
	}
}

func parseTheme(data []byte) (Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("theme: cannot parse theme: %w", err)
	}
	if t.Name == "" {
		return t, fmt.Errorf("theme: theme file has no name")
	}
	return t, nil
}

func parseThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: cannot read %s: %w", path, err)
	}
	return parseTheme(data)
}
