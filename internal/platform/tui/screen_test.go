package tui

import (
	"strings"
	"testing"
)

func TestScreenNewDimensions(t *testing.T) {
	s := NewScreen(10, 5)
	if s.Width() != 10 {
		t.Errorf("Width() = %d, want 10", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height() = %d, want 5", s.Height())
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@', RoleSnakeHead)
	cell := s.GetCell(3, 2)
	if cell.Rune != '@' {
		t.Errorf("GetCell rune = %q, want @", cell.Rune)
	}
	if cell.Role != RoleSnakeHead {
		t.Errorf("GetCell role = %d, want RoleSnakeHead", cell.Role)
	}
}

func TestScreenOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(5, 5)

	s.Set(-1, 0, 'x', RoleDefault)
	s.Set(0, -1, 'x', RoleDefault)
	s.Set(5, 0, 'x', RoleDefault)
	s.Set(0, 5, 'x', RoleDefault)

	if got := s.GetCell(10, 10); got.Rune != ' ' {
		t.Errorf("out-of-bounds GetCell rune = %q, want space", got.Rune)
	}
	if !strings.Contains(s.String(), "     ") {
		t.Error("screen should still be blank")
	}
}

func TestScreenClearResetsRoles(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(1, 1, '#', RoleBorder)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Role != RoleDefault {
		t.Errorf("after Clear cell = %+v, want blank default", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi", RoleHudText)

	if got := s.Row(1); got != "  hi      " {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(2, 1).Role != RoleHudText {
		t.Error("DrawText did not apply role")
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(3, 0, "long text", RoleDefault)

	if got := s.Row(0); got != "   lo" {
		t.Errorf("Row(0) = %q, want clipped text", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "abcd", RoleDefault)

	if got := s.Row(0); got != "   abcd   " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(0, 0, 'x', RoleDefault)

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Errorf("size after resize = %dx%d, want 6x3", s.Width(), s.Height())
	}
	if s.GetCell(0, 0).Rune != ' ' {
		t.Error("resize should clear the buffer")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a', RoleDefault)
	s.Set(2, 1, 'b', RoleDefault)

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
