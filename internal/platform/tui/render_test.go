package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/snakelab/termsnake/internal/theme"
)

func TestRenderScreenKeepsEveryRune(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawText(0, 0, "abc", RoleHudText)
	s.Set(4, 0, '●', RoleFood)
	s.DrawText(0, 1, "xyz", RoleSnakeBody)

	out := RenderScreen(s, stylesFor(theme.Fallback()))

	for _, want := range []string{"abc", "●", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rendered output has %d newlines, want 1", got)
	}
}

func TestStylesForCoversAllRoles(t *testing.T) {
	styles := stylesFor(theme.Fallback())
	roles := []CellRole{
		RoleDefault, RoleBorder, RoleSnakeHead, RoleSnakeBody, RoleSnakeTail,
		RoleSnakeGlow, RoleFood, RoleSuperFood, RoleSuperFoodWarn,
		RoleHudText, RoleHudAccent, RoleOverlay,
	}
	for _, role := range roles {
		if _, ok := styles[role]; !ok {
			t.Errorf("role %d has no style", role)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{60 * time.Second, "1:00"},
		{125 * time.Second, "2:05"},
		{3600 * time.Second, "60:00"},
	}
	for _, tc := range cases {
		if got := formatElapsed(tc.in); got != tc.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
