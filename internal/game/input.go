package game

// Direction is one of the four movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Vector returns the unit cell offset for one movement step.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionChangeValid reports whether turning from current to next is legal
// (no immediate 180° turns).
func DirectionChangeValid(current, next Direction) bool {
	return next != current.Opposite()
}

// InputKind discriminates GameInput events.
type InputKind int

const (
	InputDirection InputKind = iota
	InputPause
	InputQuit
	InputConfirm
	InputCycleTheme
	InputResize
)

// GameInput is one decoded input event fed to the simulation. The simulation
// interprets Direction and Pause; the remaining kinds are consumed by the
// UI layer.
type GameInput struct {
	Kind      InputKind
	Direction Direction
}

// DirectionInput builds a direction event.
func DirectionInput(d Direction) GameInput {
	return GameInput{Kind: InputDirection, Direction: d}
}

// PauseInput builds a pause-toggle event.
func PauseInput() GameInput {
	return GameInput{Kind: InputPause}
}
