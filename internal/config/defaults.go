package config

import (
	_ "embed"

	"github.com/snakelab/termsnake/internal/game"
)

//go:embed defaults/termsnake.yaml
var defaultConfigYAML []byte

// Default returns the hardcoded default configuration, used as the final
// fallback when the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Speed: SpeedConfig{StartLevel: game.MinStartSpeedLevel},
		Food:  game.DefaultFoodDensity(),
		Theme: "ember",
	}
}
