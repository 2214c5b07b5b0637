package entity

import (
	"snake-engine/game/types"
)

// Snake is an ordered body, head at index 0 and tail last.
// A Snake is never mutated after construction; Advance builds the next one.
type Snake struct {
	Body []types.Point
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body: []types.Point{startPos},
	}
}

// NewSnakeFromBody copies body into a new snake. body must be non-empty.
func NewSnakeFromBody(body ...types.Point) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{Body: b}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether p is covered by any segment, tail included.
func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if types.SameCell(part, p) {
			return true
		}
	}
	return false
}

// Occupied returns the set of cells covered by the body.
func (s *Snake) Occupied() types.PointSet {
	return types.OccupiedSet(s.Body)
}

// Advance returns the snake after its head moves onto newHead.
// Without growth the tail is dropped so the length is unchanged.
func (s *Snake) Advance(newHead types.Point, grow bool) *Snake {
	n := len(s.Body)
	if grow {
		n++
	}
	body := make([]types.Point, 0, n)
	body = append(body, newHead)
	body = append(body, s.Body[:n-1]...)
	return &Snake{Body: body}
}
