package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/snakelab/termsnake/internal/game"
)

// KeyAction classifies what a key press means to the UI layer.
type KeyAction int

const (
	ActionNone KeyAction = iota
	ActionGame            // carries a game input
	ActionSpeedUp         // raise starting speed (start screen only)
	ActionSpeedDown       // lower starting speed (start screen only)
)

// KeyMapper translates Bubble Tea key messages to game inputs.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message. When the action is ActionGame the second
// return value holds the input to feed the simulation.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (KeyAction, game.GameInput) {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionGame, game.GameInput{Kind: game.InputQuit}
	case "w", "up":
		return ActionGame, game.DirectionInput(game.DirUp)
	case "s", "down":
		return ActionGame, game.DirectionInput(game.DirDown)
	case "a", "left":
		return ActionGame, game.DirectionInput(game.DirLeft)
	case "d", "right":
		return ActionGame, game.DirectionInput(game.DirRight)
	case "p", "esc":
		return ActionGame, game.PauseInput()
	case "enter", " ":
		return ActionGame, game.GameInput{Kind: game.InputConfirm}
	case "t":
		return ActionGame, game.GameInput{Kind: game.InputCycleTheme}
	case "+", "=":
		return ActionSpeedUp, game.GameInput{}
	case "-", "_":
		return ActionSpeedDown, game.GameInput{}
	}

	return ActionNone, game.GameInput{}
}
