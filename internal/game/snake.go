package game

// Snake holds ordered body segments (head at index 0) and the two-deep
// direction buffer used to queue turns between movement ticks.
type Snake struct {
	body      []Position
	direction Direction

	// buffered is applied on the next move; next holds at most one more
	// turn queued behind it so a quick double-turn is not lost.
	buffered Direction
	next     *Direction

	pendingGrowth int
}

// NewSnake creates a one-segment snake at start with the given direction.
func NewSnake(start Position, direction Direction) *Snake {
	return &Snake{
		body:      []Position{start},
		direction: direction,
		buffered:  direction,
	}
}

// SnakeFromSegments creates a snake from explicit body segments, front is
// head. Used by tests to shape specific scenarios.
func SnakeFromSegments(segments []Position, direction Direction) *Snake {
	body := make([]Position, len(segments))
	copy(body, segments)
	return &Snake{
		body:      body,
		direction: direction,
		buffered:  direction,
	}
}

// BufferDirection queues a turn. With no turn queued, the input is rejected
// only if it reverses the current direction. With a turn already queued, it
// is rejected only if it reverses that queued turn; otherwise it lands in
// the secondary slot with last-write-wins semantics. This permits a 180°
// turn via two 90° turns across one tick while still preventing an instant
// fatal reversal.
func (s *Snake) BufferDirection(d Direction) {
	if s.buffered == s.direction {
		if !DirectionChangeValid(s.direction, d) {
			return
		}
		s.buffered = d
		return
	}

	if !DirectionChangeValid(s.buffered, d) {
		return
	}
	queued := d
	s.next = &queued
}

// NextHeadPosition projects the head one cell along the buffered direction
// without mutating state.
func (s *Snake) NextHeadPosition() Position {
	head := s.Head()
	dx, dy := s.buffered.Vector()
	return Position{X: head.X + dx, Y: head.Y + dy}
}

// GrowBy queues growth consumed in full by the next MoveForward.
func (s *Snake) GrowBy(amount int) {
	if amount > 0 {
		s.pendingGrowth += amount
	}
}

// MoveForward commits the buffered direction, promotes the secondary queued
// turn, and advances the body one cell. Pending growth is consumed entirely
// in this call: the tail is retained and duplicated so the body length
// increases by the full amount. Without growth the tail pops before the new
// head is pushed, which is what makes moving into the just-vacated tail
// cell legal.
func (s *Snake) MoveForward(bounds GridSize) {
	if bounds.Width <= 0 || bounds.Height <= 0 {
		panic("game: snake moved within empty bounds")
	}

	newHead := s.NextHeadPosition()
	s.direction = s.buffered
	if s.next != nil {
		s.buffered = *s.next
		s.next = nil
	}

	if s.pendingGrowth > 0 {
		tail := s.body[len(s.body)-1]
		for i := 1; i < s.pendingGrowth; i++ {
			s.body = append(s.body, tail)
		}
		s.pendingGrowth = 0
	} else {
		s.body = s.body[:len(s.body)-1]
	}

	s.body = append([]Position{newHead}, s.body...)
}

// Head returns the current head position.
func (s *Snake) Head() Position {
	if len(s.body) == 0 {
		panic("game: snake body must always contain at least one segment")
	}
	return s.body[0]
}

// Occupies reports whether any segment sits on the given position.
func (s *Snake) Occupies(position Position) bool {
	for _, segment := range s.body {
		if segment == position {
			return true
		}
	}
	return false
}

// HeadOverlapsBody reports whether the head coincides with a non-head
// segment. Evaluated after MoveForward commits, so the released tail cell
// no longer counts.
func (s *Snake) HeadOverlapsBody() bool {
	head := s.Head()
	for _, segment := range s.body[1:] {
		if segment == head {
			return true
		}
	}
	return false
}

// Len returns the current segment count.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the last direction actually applied.
func (s *Snake) Direction() Direction {
	return s.direction
}

// BufferedDirection returns the direction that will be applied on the next
// move.
func (s *Snake) BufferedDirection() Direction {
	return s.buffered
}

// Segments returns the body from head to tail. The slice is shared; callers
// must not mutate it.
func (s *Snake) Segments() []Position {
	return s.body
}

// WrapIntoBounds wraps every segment into the given bounds. Used only for
// resize reconciliation; normal movement never wraps.
func (s *Snake) WrapIntoBounds(bounds GridSize) {
	for i, segment := range s.body {
		s.body[i] = segment.Wrapped(bounds)
	}
}
