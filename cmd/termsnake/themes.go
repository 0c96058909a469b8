package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snakelab/termsnake/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Long: `List builtin themes plus any user themes found in
~/.termsnake/themes/*.yaml. A user theme with the same id as a builtin
theme replaces it.

Select a theme with 'termsnake play --theme <id>' or cycle themes in-game
with T.`,
	Args: cobra.NoArgs,
	Run:  runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	catalog := theme.LoadCatalog()

	fmt.Printf("  %-12s  %s\n", "ID", "Name")
	fmt.Printf("  %-12s  %s\n", "--", "----")
	for _, item := range catalog.Items() {
		marker := " "
		if item.ID == theme.DefaultThemeID {
			marker = "*"
		}
		fmt.Printf("%s %-12s  %s\n", marker, item.ID, item.Theme.Name)
	}
	fmt.Println()
	fmt.Println("* default theme")
}
