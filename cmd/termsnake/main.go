// termsnake is a snake game for the terminal.
//
// Usage:
//
//	termsnake               - Play (same as 'termsnake play')
//	termsnake play          - Play in the current terminal
//	termsnake serve         - Start SSH server for remote play
//	termsnake scores        - Show the high score table
//	termsnake themes        - List available color themes
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.termsnake/termsnake.db)
//	--config <path> - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snakelab/termsnake/internal/storage"
)

var (
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termsnake",
	Short: "Snake for your terminal",
	Long: `termsnake is a terminal snake game with speed levels, super food and
coverage-based score bonuses.

Available commands:
  play     - Play in the current terminal (default)
  serve    - Start SSH server for remote play
  scores   - View the high score table
  themes   - List available color themes

Examples:
  termsnake
  termsnake play --speed 5
  termsnake serve --ssh :2222
  termsnake scores`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultDBPath, "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
}
