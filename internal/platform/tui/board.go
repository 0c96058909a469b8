package tui

import (
	"github.com/snakelab/termsnake/internal/game"
)

// Board glyphs.
const (
	glyphBody = '█'
	glyphTail = '▓'
	glyphFood = '●'
)

// superFoodWarnTTL is the remaining lifetime below which super food blinks
// in the warning color.
const superFoodWarnTTL = 3

// headGlyph returns the arrow glyph for the snake's heading.
func headGlyph(d game.Direction) rune {
	switch d {
	case game.DirUp:
		return '▲'
	case game.DirDown:
		return '▼'
	case game.DirLeft:
		return '◀'
	case game.DirRight:
		return '▶'
	default:
		return '▶'
	}
}

// drawBoard renders the play field: double-line border, food, then the
// snake on top. The board's top-left corner lands at (offsetX, offsetY);
// grid cell (0,0) maps to screen (offsetX+1, offsetY+1) inside the border.
func drawBoard(dst *Screen, state *game.State, offsetX, offsetY int) {
	bounds := state.Bounds()
	drawBorder(dst, offsetX, offsetY, bounds.Width+2, bounds.Height+2)

	for _, f := range state.Foods() {
		role := RoleFood
		if f.IsSuper() {
			role = RoleSuperFood
			if f.TTL <= superFoodWarnTTL {
				role = RoleSuperFoodWarn
			}
		}
		dst.Set(offsetX+1+f.Position.X, offsetY+1+f.Position.Y, glyphFood, role)
	}

	segments := state.Snake().Segments()
	glow := state.ActiveGlow()
	bodyRole := RoleSnakeBody
	if glow != nil && glow.IsActive() {
		bodyRole = RoleSnakeGlow
	}

	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		sx := offsetX + 1 + seg.X
		sy := offsetY + 1 + seg.Y
		switch {
		case i == 0:
			dst.Set(sx, sy, headGlyph(state.Snake().Direction()), RoleSnakeHead)
		case i == len(segments)-1:
			dst.Set(sx, sy, glyphTail, bodyRole)
		default:
			dst.Set(sx, sy, glyphBody, bodyRole)
		}
	}
}

// drawBorder draws a double-line box of the given outer size.
func drawBorder(dst *Screen, x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}

	dst.Set(x, y, '╔', RoleBorder)
	dst.Set(x+w-1, y, '╗', RoleBorder)
	dst.Set(x, y+h-1, '╚', RoleBorder)
	dst.Set(x+w-1, y+h-1, '╝', RoleBorder)

	for i := x + 1; i < x+w-1; i++ {
		dst.Set(i, y, '═', RoleBorder)
		dst.Set(i, y+h-1, '═', RoleBorder)
	}
	for j := y + 1; j < y+h-1; j++ {
		dst.Set(x, j, '║', RoleBorder)
		dst.Set(x+w-1, j, '║', RoleBorder)
	}
}
