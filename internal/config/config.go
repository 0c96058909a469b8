// Package config provides YAML-based session configuration loading for
// termsnake.
package config

import "github.com/snakelab/termsnake/internal/game"

// Config contains all player-tunable session configuration.
type Config struct {
	Grid  GridConfig       `yaml:"grid"`
	Speed SpeedConfig      `yaml:"speed"`
	Food  game.FoodDensity `yaml:"food"`
	Theme string           `yaml:"theme"`
}

// GridConfig overrides the logical board size. Zero values mean "fit the
// terminal".
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig holds the starting speed selection.
type SpeedConfig struct {
	StartLevel int `yaml:"start_level"`
}

// Normalize clamps configuration into valid ranges instead of rejecting it:
// the starting level lands in [MinStartSpeedLevel, MaxStartSpeedLevel] and
// density components are raised to at least 1.
func (c *Config) Normalize() {
	if c.Speed.StartLevel < game.MinStartSpeedLevel {
		c.Speed.StartLevel = game.MinStartSpeedLevel
	}
	if c.Speed.StartLevel > game.MaxStartSpeedLevel {
		c.Speed.StartLevel = game.MaxStartSpeedLevel
	}
	if c.Food.FoodsPer < 1 {
		c.Food.FoodsPer = 1
	}
	if c.Food.CellsPer < 1 {
		c.Food.CellsPer = 1
	}
	if c.Grid.Width < 0 {
		c.Grid.Width = 0
	}
	if c.Grid.Height < 0 {
		c.Grid.Height = 0
	}
}
