package entity

import (
	"classic-snake/game/types"
)

type Snake struct {
	grid       types.Grid
	initial    types.Point
	body       []types.Point // head first
	length     int
	direction  types.Direction
	pending    types.Direction
	hasPending bool
}

// NewSnake places a one-cell snake in the middle of the grid, moving right.
func NewSnake(grid types.Grid) *Snake {
	s := &Snake{
		grid:    grid,
		initial: grid.Center(),
	}
	s.Reset()
	return s
}

// SetPendingDirection queues dir for the next Advance. A direction that
// reverses the current one is dropped. The check runs against the current
// direction, not against a change still waiting to be applied.
func (s *Snake) SetPendingDirection(dir types.Direction) {
	if dir == s.direction.Reverse() {
		return
	}
	s.pending = dir
	s.hasPending = true
}

// Advance moves the snake one cell. It returns true when the new head hit
// the body and the snake was reset instead of moved.
func (s *Snake) Advance() bool {
	if s.hasPending {
		s.direction = s.pending
		s.hasPending = false
	}

	newHead := s.grid.Wrap(s.Head().Add(s.direction, s.grid.CellSize))

	if s.hitsTrailingBody(newHead) {
		s.Reset()
		return true
	}

	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead
	if len(s.body) > s.length {
		s.body = s.body[:s.length]
	}
	return false
}

// hitsTrailingBody skips the head and the cell right behind it: that cell
// is vacated on this tick.
func (s *Snake) hitsTrailingBody(pos types.Point) bool {
	if len(s.body) <= 2 {
		return false
	}
	for _, part := range s.body[2:] {
		if part == pos {
			return true
		}
	}
	return false
}

// Grow extends the target length; the tail is kept on the next Advance.
func (s *Snake) Grow() {
	s.length++
}

func (s *Snake) Reset() {
	s.length = 1
	s.body = []types.Point{s.initial}
	s.direction = types.Right
	s.hasPending = false
	s.pending = types.Direction{}
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

// Body returns a copy of the occupied cells, head first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

func (s *Snake) Length() int {
	return s.length
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// Pending returns the queued direction, if any.
func (s *Snake) Pending() (types.Direction, bool) {
	return s.pending, s.hasPending
}

func (s *Snake) InitialPosition() types.Point {
	return s.initial
}
