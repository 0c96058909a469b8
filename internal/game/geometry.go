// Package game implements the snake simulation: geometry, snake movement,
// food lifecycle, and the per-tick game state machine. It contains no
// terminal or rendering dependencies so the whole simulation stays pure
// and testable.
package game

// Position is a logical cell coordinate. Values may be transiently negative
// or out of range before a bounds check; once a position is part of the
// snake body it satisfies WithinBounds.
type Position struct {
	X, Y int
}

// WithinBounds reports whether the position lies inside the grid.
func (p Position) WithinBounds(bounds GridSize) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < bounds.Width && p.Y < bounds.Height
}

// Wrapped returns the position wrapped into bounds on both axes.
func (p Position) Wrapped(bounds GridSize) Position {
	return Position{
		X: wrapAxis(p.X, bounds.Width),
		Y: wrapAxis(p.Y, bounds.Height),
	}
}

func wrapAxis(value, upperBound int) int {
	wrapped := value % upperBound
	if wrapped < 0 {
		wrapped += upperBound
	}
	return wrapped
}

// GridSize holds the logical board dimensions for one session.
type GridSize struct {
	Width, Height int
}

// TotalCells returns the number of cells in the grid.
func (g GridSize) TotalCells() int {
	return g.Width * g.Height
}
