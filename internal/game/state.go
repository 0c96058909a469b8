package game

import (
	"math/rand"
	"time"
)

// FoodPerSpeedLevel is the base food count consumed per speed level step.
const FoodPerSpeedLevel = 5

// MinStartSpeedLevel and MaxStartSpeedLevel bound the player-selectable
// starting speed. The live speed level itself is uncapped.
const (
	MinStartSpeedLevel = 1
	MaxStartSpeedLevel = 10
)

const superFoodChancePercent = 30

// GameStatus is the current high-level gameplay state.
type GameStatus int

const (
	StatusPlaying GameStatus = iota
	StatusPaused
	StatusGameOver
	StatusVictory
)

// String returns a human-readable name for the status.
func (s GameStatus) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	case StatusVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// DeathReason records why the most recent game over was reached.
type DeathReason int

const (
	DeathWallCollision DeathReason = iota
	DeathSelfCollision
)

// GlowTrigger names the gameplay event that armed a glow effect.
type GlowTrigger int

const (
	GlowSpeedLevelUp GlowTrigger = iota
	GlowSuperFoodEaten
)

// glowDurationTicks is how many ticks a glow effect lasts.
const glowDurationTicks = 10

// GlowEffect is a temporary visual pulse that fades over several ticks. It
// lives in the simulation state but never alters gameplay.
type GlowEffect struct {
	Trigger        GlowTrigger
	TicksRemaining int
	TotalTicks     int
}

// NewGlowEffect creates a glow effect with the default duration.
func NewGlowEffect(trigger GlowTrigger) GlowEffect {
	return GlowEffect{
		Trigger:        trigger,
		TicksRemaining: glowDurationTicks,
		TotalTicks:     glowDurationTicks,
	}
}

// Intensity returns 1.0 for a fresh effect down to 0.0 when expired.
func (g GlowEffect) Intensity() float64 {
	if g.TotalTicks == 0 {
		return 0
	}
	return float64(g.TicksRemaining) / float64(g.TotalTicks)
}

// IsActive reports whether the effect has remaining ticks.
func (g GlowEffect) IsActive() bool {
	return g.TicksRemaining > 0
}

func (g *GlowEffect) tick() bool {
	if g.TicksRemaining > 0 {
		g.TicksRemaining--
	}
	return g.IsActive()
}

// FoodDensity configures the food target as foodsPer items per cellsPer
// free cells. Both values are normalized to at least 1.
type FoodDensity struct {
	FoodsPer int `yaml:"foods_per"`
	CellsPer int `yaml:"cells_per"`
}

// DefaultFoodDensity returns the default density of one food per 200 cells.
func DefaultFoodDensity() FoodDensity {
	return FoodDensity{FoodsPer: 1, CellsPer: 200}
}

func normalizeFoodDensity(density FoodDensity) FoodDensity {
	if density.FoodsPer < 1 {
		density.FoodsPer = 1
	}
	if density.CellsPer < 1 {
		density.CellsPer = 1
	}
	return density
}

// State is the aggregate game state for one session. All mutation happens
// through its methods; the RNG is owned exclusively by the state so seeded
// runs stay reproducible.
type State struct {
	snake       *Snake
	foods       []Food
	score       int
	speedLevel  int
	tickCount   uint64
	status      GameStatus
	deathReason *DeathReason
	glow        *GlowEffect
	elapsed     time.Duration

	bounds         GridSize
	baseSpeedLevel int
	foodDensity    FoodDensity
	rng            *rand.Rand
}

// New creates a session state with a time-based RNG seed.
func New(bounds GridSize) *State {
	return newState(bounds, time.Now().UnixNano(), 1, DefaultFoodDensity())
}

// NewWithOptions creates a session state with an explicit starting speed.
func NewWithOptions(bounds GridSize, startingSpeedLevel int) *State {
	return newState(bounds, time.Now().UnixNano(), startingSpeedLevel, DefaultFoodDensity())
}

// NewWithOptionsAndFoodDensity creates a session state with explicit
// starting speed and food density.
func NewWithOptionsAndFoodDensity(bounds GridSize, startingSpeedLevel int, density FoodDensity) *State {
	return newState(bounds, time.Now().UnixNano(), startingSpeedLevel, density)
}

// NewWithSeed creates a deterministic state for tests and reproducible
// simulations.
func NewWithSeed(bounds GridSize, seed int64) *State {
	return newState(bounds, seed, 1, DefaultFoodDensity())
}

func newState(bounds GridSize, seed int64, startingSpeedLevel int, density FoodDensity) *State {
	if startingSpeedLevel < 1 {
		startingSpeedLevel = 1
	}

	start := Position{X: bounds.Width / 2, Y: bounds.Height / 2}
	s := &State{
		snake:          NewSnake(start, DirRight),
		speedLevel:     startingSpeedLevel,
		status:         StatusPlaying,
		bounds:         bounds,
		baseSpeedLevel: startingSpeedLevel,
		foodDensity:    normalizeFoodDensity(density),
		rng:            rand.New(rand.NewSource(seed)),
	}
	s.syncFoodCountToDensity()
	return s
}

// Tick advances the simulation by one step. It is a no-op unless the state
// is Playing. The order of operations is load-bearing: glow decay, food
// TTL, wall check on the projected head, eating, move, self-collision,
// scoring, victory, density resync.
func (s *State) Tick() {
	if s.status != StatusPlaying {
		return
	}

	s.tickCount++

	if s.glow != nil && !s.glow.tick() {
		s.glow = nil
	}

	for i := range s.foods {
		if s.foods[i].IsSuper() && !s.foods[i].Tick() {
			s.foods[i].Degrade()
		}
	}

	nextHead := s.snake.NextHeadPosition()

	if !nextHead.WithinBounds(s.bounds) {
		s.setGameOver(DeathWallCollision)
		return
	}

	eatenIdx := -1
	for i, food := range s.foods {
		if food.Position == nextHead {
			eatenIdx = i
			break
		}
	}
	if eatenIdx >= 0 {
		s.snake.GrowBy(s.foods[eatenIdx].Growth())
	}

	s.snake.MoveForward(s.bounds)

	if s.snake.HeadOverlapsBody() {
		s.setGameOver(DeathSelfCollision)
		return
	}

	if eatenIdx >= 0 {
		eaten := s.foods[eatenIdx]
		s.foods[eatenIdx] = s.foods[len(s.foods)-1]
		s.foods = s.foods[:len(s.foods)-1]

		base := eaten.Points() * s.speedLevel
		s.score += ScoreWithCoverageBonus(base, s.PlayAreaCoveragePercent())

		prevLevel := s.speedLevel
		s.updateSpeedLevel()

		if eaten.IsSuper() {
			glow := NewGlowEffect(GlowSuperFoodEaten)
			s.glow = &glow
		} else if s.speedLevel > prevLevel {
			glow := NewGlowEffect(GlowSpeedLevelUp)
			s.glow = &glow
		}

		if s.snake.Len() >= s.bounds.TotalCells() {
			s.status = StatusVictory
			s.deathReason = nil
			return
		}

		s.syncFoodCountToDensity()
	}
}

func (s *State) setGameOver(reason DeathReason) {
	s.status = StatusGameOver
	s.deathReason = &reason
}

// ApplyInput feeds one decoded input event. Direction events buffer a turn
// only while Playing; Pause toggles Playing and Paused and is a no-op in
// terminal states. All other kinds belong to the UI layer and are ignored.
func (s *State) ApplyInput(input GameInput) {
	switch input.Kind {
	case InputDirection:
		if s.status == StatusPlaying {
			s.snake.BufferDirection(input.Direction)
		}
	case InputPause:
		switch s.status {
		case StatusPlaying:
			s.status = StatusPaused
		case StatusPaused:
			s.status = StatusPlaying
		}
	}
}

// ResizeBounds updates the board dimensions and reconciles entity state:
// the snake wraps into the new bounds (a resize never kills), food outside
// the bounds or under the snake is dropped, colliding food positions are
// deduplicated, and the food count is resynchronized.
func (s *State) ResizeBounds(bounds GridSize) {
	s.bounds = bounds
	s.snake.WrapIntoBounds(bounds)

	kept := s.foods[:0]
	for _, food := range s.foods {
		if food.Position.WithinBounds(bounds) && !s.snake.Occupies(food.Position) {
			kept = append(kept, food)
		}
	}
	s.foods = dedupeFoodPositions(kept)

	if s.snake.Len() >= s.bounds.TotalCells() {
		s.status = StatusVictory
		s.deathReason = nil
		return
	}

	s.syncFoodCountToDensity()
}

// SetFoodDensity updates the configured density and applies it immediately.
func (s *State) SetFoodDensity(density FoodDensity) {
	s.foodDensity = normalizeFoodDensity(density)
	s.syncFoodCountToDensity()
}

// SetBaseSpeedLevel updates the configured starting speed without touching
// RNG, food, or snake state, so the start-screen backdrop stays stable
// across selector keypresses.
func (s *State) SetBaseSpeedLevel(level int) {
	if level < 1 {
		level = 1
	}
	s.baseSpeedLevel = level
	s.speedLevel = level
}

// Restart produces the next session's state with the same bounds, starting
// speed, and food density, but a fresh RNG seed. No gameplay state carries
// over.
func (s *State) Restart() *State {
	return NewWithOptionsAndFoodDensity(s.bounds, s.baseSpeedLevel, s.foodDensity)
}

// RecordTickDuration accumulates gameplay time for one simulation step.
func (s *State) RecordTickDuration(d time.Duration) {
	if d > 0 {
		s.elapsed += d
	}
}

func (s *State) updateSpeedLevel() {
	foodEaten := s.snake.Len() - 2
	if foodEaten < 0 {
		foodEaten = 0
	}
	s.speedLevel = SpeedLevelFor(s.baseSpeedLevel, foodEaten)
}

// SpeedLevelFor computes the live speed level reached from base after
// eating foodEaten items. Each level consumes its own threshold before the
// next one is tested, so levels become progressively harder to reach.
func SpeedLevelFor(base, foodEaten int) int {
	level := base
	remaining := foodEaten
	for {
		required := foodRequiredToLeaveLevel(level)
		if remaining < required {
			return level
		}
		remaining -= required
		level++
	}
}

func foodRequiredToLeaveLevel(level int) int {
	switch {
	case level <= 5:
		return FoodPerSpeedLevel + level
	case level <= 10:
		return FoodPerSpeedLevel + 2*level
	default:
		return level * FoodPerSpeedLevel
	}
}

// ScoreWithCoverageBonus scales base points by the coverage bonus
// multiplier 1 + min(coverage·0.10, 9.0) and floors the result.
func ScoreWithCoverageBonus(basePoints int, coveragePercent float64) int {
	bonus := coveragePercent * 0.10
	if bonus > 9.0 {
		bonus = 9.0
	}
	return int(float64(basePoints) * (1.0 + bonus))
}

func (s *State) syncFoodCountToDensity() {
	target := desiredFoodCount(s.bounds, s.snake.Len(), s.foodDensity)

	if len(s.foods) > target {
		s.foods = s.foods[:target]
	}

	for len(s.foods) < target {
		position, ok := SpawnPosition(s.rng, s.bounds, s.snake, s.foods)
		if !ok {
			break
		}

		food := NewFood(position)
		// Newly spawned food has a 30% chance of being super once play has
		// started; pre-game food is always normal. The TTL scales with the
		// head distance so far-away food survives long enough to reach.
		if s.tickCount > 0 && s.rng.Intn(100) < superFoodChancePercent {
			head := s.snake.Head()
			distance := abs(head.X-position.X) + abs(head.Y-position.Y)
			food = NewSuperFood(position, distance+SuperFoodBaseTTL)
		}

		s.foods = append(s.foods, food)
	}
}

func desiredFoodCount(bounds GridSize, snakeLen int, density FoodDensity) int {
	freeCells := bounds.TotalCells() - snakeLen
	if freeCells <= 0 {
		return 0
	}

	desired := freeCells * density.FoodsPer / density.CellsPer
	if desired < 1 {
		desired = 1
	}
	if desired > freeCells {
		desired = freeCells
	}
	return desired
}

func dedupeFoodPositions(foods []Food) []Food {
	unique := foods[:0]
	for _, food := range foods {
		if foodAt(unique, food.Position) {
			continue
		}
		unique = append(unique, food)
	}
	return unique
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Snake returns the live snake. Read-only for callers outside this package.
func (s *State) Snake() *Snake {
	return s.snake
}

// Foods returns the live food items. Read-only for callers outside this
// package.
func (s *State) Foods() []Food {
	return s.foods
}

// Score returns the accumulated score.
func (s *State) Score() int {
	return s.score
}

// SpeedLevel returns the current live speed level.
func (s *State) SpeedLevel() int {
	return s.speedLevel
}

// BaseSpeedLevel returns the configured starting speed level.
func (s *State) BaseSpeedLevel() int {
	return s.baseSpeedLevel
}

// TickCount returns the number of completed simulation ticks.
func (s *State) TickCount() uint64 {
	return s.tickCount
}

// Status returns the current gameplay status.
func (s *State) Status() GameStatus {
	return s.status
}

// DeathReason returns the reason for the most recent game over.
func (s *State) DeathReason() (DeathReason, bool) {
	if s.deathReason == nil {
		return 0, false
	}
	return *s.deathReason, true
}

// Bounds returns the logical board dimensions.
func (s *State) Bounds() GridSize {
	return s.bounds
}

// FoodDensityConfig returns the normalized density configuration.
func (s *State) FoodDensityConfig() FoodDensity {
	return s.foodDensity
}

// CalculatedFoodCount returns the current food target derived from density
// and free cells.
func (s *State) CalculatedFoodCount() int {
	return desiredFoodCount(s.bounds, s.snake.Len(), s.foodDensity)
}

// PlayAreaCoveragePercent returns the share of the board covered by the
// snake, as a percentage.
func (s *State) PlayAreaCoveragePercent() float64 {
	total := s.bounds.TotalCells()
	if total == 0 {
		return 0
	}
	return float64(s.snake.Len()) / float64(total) * 100.0
}

// OrdinaryFoodBasePoints returns the points a normal food is worth before
// the coverage bonus.
func (s *State) OrdinaryFoodBasePoints() int {
	return NewFood(Position{}).Points() * s.speedLevel
}

// OrdinaryFoodProjectedMultiplier returns the coverage bonus multiplier the
// next normal food would receive.
func (s *State) OrdinaryFoodProjectedMultiplier() float64 {
	bonus := s.PlayAreaCoveragePercent() * 0.10
	if bonus > 9.0 {
		bonus = 9.0
	}
	return 1.0 + bonus
}

// OrdinaryFoodProjectedPoints returns the score the next normal food would
// award at the current speed and coverage.
func (s *State) OrdinaryFoodProjectedPoints() int {
	return ScoreWithCoverageBonus(s.OrdinaryFoodBasePoints(), s.PlayAreaCoveragePercent())
}

// ActiveGlow returns the currently active glow effect, if any.
func (s *State) ActiveGlow() *GlowEffect {
	return s.glow
}

// ElapsedDuration returns the gameplay time accumulated from tick
// durations.
func (s *State) ElapsedDuration() time.Duration {
	return s.elapsed
}

// IsStartScreen reports whether the session sits on the initial start
// screen: paused before any tick has run and before any score.
func (s *State) IsStartScreen() bool {
	return s.status == StatusPaused && s.tickCount == 0 && s.score == 0
}
