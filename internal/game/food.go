package game

import "math/rand"

// SuperFoodBaseTTL is added to the head distance when a super food's
// lifetime is computed, so food placed far from the head survives longer.
const SuperFoodBaseTTL = 10

// FoodKind discriminates food behavior.
type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodSuper
)

// Food is one item currently active on the board. Super food carries a tick
// countdown and degrades to normal food when it expires.
type Food struct {
	Position Position
	Kind     FoodKind
	TTL      int
}

// NewFood creates a normal food at position.
func NewFood(position Position) Food {
	return Food{Position: position, Kind: FoodNormal}
}

// NewSuperFood creates a super food at position with the given tick budget.
func NewSuperFood(position Position, ttl int) Food {
	return Food{Position: position, Kind: FoodSuper, TTL: ttl}
}

// IsSuper reports whether the food is a super food.
func (f Food) IsSuper() bool {
	return f.Kind == FoodSuper
}

// Points returns the base score value granted when eaten.
func (f Food) Points() int {
	if f.Kind == FoodSuper {
		return 5
	}
	return 1
}

// Growth returns the number of segments gained when eaten.
func (f Food) Growth() int {
	if f.Kind == FoodSuper {
		return 5
	}
	return 1
}

// Tick advances the TTL countdown and reports whether the food is still
// alive. Normal food never expires.
func (f *Food) Tick() bool {
	if f.Kind != FoodSuper {
		return true
	}
	if f.TTL > 0 {
		f.TTL--
	}
	return f.TTL > 0
}

// Degrade converts a super food to normal food in place.
func (f *Food) Degrade() {
	f.Kind = FoodNormal
	f.TTL = 0
}

// SpawnPosition enumerates all cells not occupied by the snake or existing
// food and samples one uniformly with the session RNG. Returns ok=false
// when the board is saturated; callers treat that as "stop spawning".
func SpawnPosition(rng *rand.Rand, bounds GridSize, snake *Snake, existing []Food) (Position, bool) {
	candidates := make([]Position, 0, bounds.TotalCells())

	for y := 0; y < bounds.Height; y++ {
		for x := 0; x < bounds.Width; x++ {
			position := Position{X: x, Y: y}
			if snake.Occupies(position) {
				continue
			}
			if foodAt(existing, position) {
				continue
			}
			candidates = append(candidates, position)
		}
	}

	if len(candidates) == 0 {
		return Position{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

func foodAt(foods []Food, position Position) bool {
	for _, food := range foods {
		if food.Position == position {
			return true
		}
	}
	return false
}
