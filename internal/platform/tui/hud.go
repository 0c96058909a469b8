package tui

import (
	"fmt"
	"time"

	"github.com/snakelab/termsnake/internal/game"
)

// hudHeight is the number of screen rows above the board.
const hudHeight = 2

// drawHUD renders the two status lines at the top of the screen.
func drawHUD(dst *Screen, state *game.State, highScore int) {
	line1 := fmt.Sprintf(" Score: %d   Speed: %d   Length: %d   Hi: %d",
		state.Score(), state.SpeedLevel(), state.Snake().Len(), highScore)
	line2 := fmt.Sprintf(" Coverage: %.1f%%   Next food: +%d   Food: %d/%d   Time: %s",
		state.PlayAreaCoveragePercent(),
		state.OrdinaryFoodProjectedPoints(),
		len(state.Foods()), state.CalculatedFoodCount(),
		formatElapsed(state.ElapsedDuration()))

	dst.DrawText(0, 0, line1, RoleHudAccent)
	dst.DrawText(0, 1, line2, RoleHudText)
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

// drawOverlays renders the centered message box for non-running states.
func drawOverlays(dst *Screen, state *game.State, baseSpeed int) {
	switch {
	case state.IsStartScreen():
		drawOverlay(dst,
			"TERMSNAKE",
			fmt.Sprintf("Speed %d  (+/- to change)", baseSpeed),
			"Enter to start, q to quit")
	case state.Status() == game.StatusVictory:
		drawOverlay(dst,
			"You Win!",
			fmt.Sprintf("Final score: %d", state.Score()),
			"Enter to play again")
	case state.Status() == game.StatusGameOver:
		reason := "Game Over"
		if r, ok := state.DeathReason(); ok {
			switch r {
			case game.DeathWallCollision:
				reason = "Hit the wall"
			case game.DeathSelfCollision:
				reason = "Ate yourself"
			}
		}
		drawOverlay(dst,
			"Game Over",
			reason,
			"Enter to play again")
	case state.Status() == game.StatusPaused:
		drawOverlay(dst,
			"Paused",
			"",
			"p to continue")
	}
}

// drawOverlay draws a centered bordered box with up to three lines of text.
func drawOverlay(dst *Screen, line1, line2, line3 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len([]rune(line1))
	if l := len([]rune(line2)); l > maxLen {
		maxLen = l
	}
	if l := len([]rune(line3)); l > maxLen {
		maxLen = l
	}

	boxW := maxLen + 6
	boxH := 7
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ', RoleDefault)
		}
	}
	drawBorder(dst, boxX, boxY, boxW, boxH)

	dst.DrawTextCentered(boxY+1, line1, RoleOverlay)
	if line2 != "" {
		dst.DrawTextCentered(boxY+3, line2, RoleHudText)
	}
	if line3 != "" {
		dst.DrawTextCentered(boxY+5, line3, RoleHudText)
	}
}
