package game

import "testing"

func TestPositionWrappingKeepsCoordinatesInsideBounds(t *testing.T) {
	bounds := GridSize{Width: 10, Height: 8}

	wrappedLeft := Position{X: -1, Y: 3}.Wrapped(bounds)
	if wrappedLeft != (Position{X: 9, Y: 3}) {
		t.Errorf("Expected (9,3), got (%d,%d)", wrappedLeft.X, wrappedLeft.Y)
	}

	wrappedBottom := Position{X: 4, Y: 8}.Wrapped(bounds)
	if wrappedBottom != (Position{X: 4, Y: 0}) {
		t.Errorf("Expected (4,0), got (%d,%d)", wrappedBottom.X, wrappedBottom.Y)
	}
}

func TestOppositeDirections(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for dir, opposite := range pairs {
		if dir.Opposite() != opposite {
			t.Errorf("%v.Opposite() = %v, want %v", dir, dir.Opposite(), opposite)
		}
		if DirectionChangeValid(dir, opposite) {
			t.Errorf("Reversal %v -> %v should be invalid", dir, opposite)
		}
	}

	if !DirectionChangeValid(DirUp, DirLeft) || !DirectionChangeValid(DirUp, DirRight) {
		t.Error("Perpendicular turns should be valid")
	}
}

func TestSnakeMovesOneCellPerTick(t *testing.T) {
	snake := NewSnake(Position{X: 5, Y: 5}, DirRight)

	snake.MoveForward(GridSize{Width: 40, Height: 20})

	if snake.Head() != (Position{X: 6, Y: 5}) {
		t.Errorf("Expected head (6,5), got (%d,%d)", snake.Head().X, snake.Head().Y)
	}
	if snake.Len() != 1 {
		t.Errorf("Expected length 1, got %d", snake.Len())
	}
}

func TestSnakeGrowthKeepsPreviousTail(t *testing.T) {
	snake := NewSnake(Position{X: 5, Y: 5}, DirRight)

	snake.GrowBy(1)
	snake.MoveForward(GridSize{Width: 40, Height: 20})

	if snake.Len() != 2 {
		t.Errorf("Expected length 2, got %d", snake.Len())
	}
}

func TestGrowthConsumesAllPendingUnitsInOneMove(t *testing.T) {
	snake := NewSnake(Position{X: 5, Y: 5}, DirRight)

	snake.GrowBy(5)
	snake.MoveForward(GridSize{Width: 40, Height: 20})

	if snake.Len() != 6 {
		t.Errorf("Expected length 6 after growing by 5, got %d", snake.Len())
	}

	// Growth was consumed; the next move must not grow again.
	snake.MoveForward(GridSize{Width: 40, Height: 20})
	if snake.Len() != 6 {
		t.Errorf("Expected length to stay 6, got %d", snake.Len())
	}
}

func TestDirectionBufferRejectsReverse(t *testing.T) {
	snake := NewSnake(Position{X: 5, Y: 5}, DirUp)

	snake.BufferDirection(DirDown)
	snake.MoveForward(GridSize{Width: 40, Height: 20})

	if snake.Head() != (Position{X: 5, Y: 4}) {
		t.Errorf("Expected head (5,4), got (%d,%d)", snake.Head().X, snake.Head().Y)
	}
}

func TestDirectionBufferQueuesSecondTurn(t *testing.T) {
	snake := NewSnake(Position{X: 5, Y: 5}, DirRight)

	// Quick 180 via two 90° turns: Up then Left within one tick.
	snake.BufferDirection(DirUp)
	snake.BufferDirection(DirLeft)

	bounds := GridSize{Width: 40, Height: 20}
	snake.MoveForward(bounds)
	if snake.Head() != (Position{X: 5, Y: 4}) {
		t.Fatalf("Expected head (5,4) after first move, got (%d,%d)", snake.Head().X, snake.Head().Y)
	}

	snake.MoveForward(bounds)
	if snake.Head() != (Position{X: 4, Y: 4}) {
		t.Errorf("Expected head (4,4) after second move, got (%d,%d)", snake.Head().X, snake.Head().Y)
	}
	if snake.Direction() != DirLeft {
		t.Errorf("Expected direction left, got %v", snake.Direction())
	}
}

func TestSecondaryBufferSlotIsLastWriteWins(t *testing.T) {
	snake := NewSnake(Position{X: 5, Y: 5}, DirRight)

	snake.BufferDirection(DirUp)    // primary queued turn
	snake.BufferDirection(DirLeft)  // secondary slot
	snake.BufferDirection(DirRight) // overwrites the secondary slot, not the primary

	bounds := GridSize{Width: 40, Height: 20}
	snake.MoveForward(bounds)
	if snake.Direction() != DirUp {
		t.Fatalf("Expected first committed direction up, got %v", snake.Direction())
	}

	snake.MoveForward(bounds)
	if snake.Direction() != DirRight {
		t.Errorf("Expected second committed direction right, got %v", snake.Direction())
	}
}

func TestSecondaryBufferRejectsReversalOfQueuedTurn(t *testing.T) {
	snake := NewSnake(Position{X: 5, Y: 5}, DirRight)

	snake.BufferDirection(DirUp)
	snake.BufferDirection(DirDown) // reverses the queued turn, rejected

	bounds := GridSize{Width: 40, Height: 20}
	snake.MoveForward(bounds)
	snake.MoveForward(bounds)

	if snake.Direction() != DirUp {
		t.Errorf("Expected direction to stay up, got %v", snake.Direction())
	}
	if snake.Head() != (Position{X: 5, Y: 3}) {
		t.Errorf("Expected head (5,3), got (%d,%d)", snake.Head().X, snake.Head().Y)
	}
}

func TestNoIllegalReversalAcrossBufferSequences(t *testing.T) {
	sequences := [][]Direction{
		{DirLeft},
		{DirUp, DirDown},
		{DirLeft, DirLeft, DirLeft},
		{DirUp, DirLeft, DirDown},
		{DirDown, DirRight, DirUp},
	}

	for _, sequence := range sequences {
		snake := NewSnake(Position{X: 10, Y: 10}, DirRight)
		before := snake.Direction()

		for _, d := range sequence {
			snake.BufferDirection(d)
		}
		snake.MoveForward(GridSize{Width: 40, Height: 20})

		if snake.Direction() == before.Opposite() {
			t.Errorf("Sequence %v produced illegal reversal from %v", sequence, before)
		}
	}
}

func TestMoveIntoVacatedTailCellIsLegal(t *testing.T) {
	// 2x2 loop: head at (1,1), tail at (2,1). Turning right moves the head
	// into the cell the tail releases this same move.
	snake := SnakeFromSegments([]Position{
		{X: 1, Y: 1},
		{X: 1, Y: 2},
		{X: 2, Y: 2},
		{X: 2, Y: 1},
	}, DirUp)

	snake.BufferDirection(DirRight)
	snake.MoveForward(GridSize{Width: 10, Height: 10})

	if snake.HeadOverlapsBody() {
		t.Error("Moving into the just-vacated tail cell must be legal")
	}
	if snake.Head() != (Position{X: 2, Y: 1}) {
		t.Errorf("Expected head (2,1), got (%d,%d)", snake.Head().X, snake.Head().Y)
	}
}

func TestMoveIntoTailCellWhileGrowingCollides(t *testing.T) {
	snake := SnakeFromSegments([]Position{
		{X: 1, Y: 1},
		{X: 1, Y: 2},
		{X: 2, Y: 2},
		{X: 2, Y: 1},
	}, DirUp)

	snake.GrowBy(1)
	snake.BufferDirection(DirRight)
	snake.MoveForward(GridSize{Width: 10, Height: 10})

	if !snake.HeadOverlapsBody() {
		t.Error("Moving into the tail cell while growing must collide")
	}
}

func TestOccupies(t *testing.T) {
	snake := SnakeFromSegments([]Position{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
	}, DirLeft)

	if !snake.Occupies(Position{X: 1, Y: 0}) {
		t.Error("Expected (1,0) to be occupied")
	}
	if snake.Occupies(Position{X: 2, Y: 0}) {
		t.Error("Expected (2,0) to be free")
	}
}
