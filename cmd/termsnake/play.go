package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/snakelab/termsnake/internal/config"
	"github.com/snakelab/termsnake/internal/platform/tui"
	"github.com/snakelab/termsnake/internal/storage"
)

var (
	flagSpeed int
	flagTheme string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD - Steer
  P/Esc       - Pause
  Enter       - Start / play again
  T           - Cycle color theme
  +/-         - Starting speed (on the start screen)
  Q/Ctrl+C    - Quit

Examples:
  termsnake play
  termsnake play --speed 5
  termsnake play --theme ocean
  termsnake play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Starting speed level 1-10 (0 = from config)")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Theme id (overrides config and saved choice)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagSpeed > 0 {
		cfg.Speed.StartLevel = flagSpeed
		cfg.Normalize()
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage, game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Store:   store,
		Seed:    flagSeed,
		ScreenW: width,
		ScreenH: height,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
