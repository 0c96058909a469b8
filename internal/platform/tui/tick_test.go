package tui

import (
	"testing"
	"time"
)

func TestTickIntervalSlowsAtLevelOne(t *testing.T) {
	if got := tickInterval(1); got != 200*time.Millisecond {
		t.Errorf("tickInterval(1) = %v, want 200ms", got)
	}
}

func TestTickIntervalShrinksPerLevel(t *testing.T) {
	if got := tickInterval(5); got != 140*time.Millisecond {
		t.Errorf("tickInterval(5) = %v, want 140ms", got)
	}
}

func TestTickIntervalFloors(t *testing.T) {
	if got := tickInterval(50); got != 60*time.Millisecond {
		t.Errorf("tickInterval(50) = %v, want 60ms floor", got)
	}
	if got := tickInterval(0); got != 200*time.Millisecond {
		t.Errorf("tickInterval(0) = %v, want clamped 200ms", got)
	}
}
