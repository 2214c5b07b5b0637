package game

import (
	"fmt"

	"snake-engine/game/types"
)

// CellTag says what occupies a cell in a Snapshot.
type CellTag uint8

const (
	CellEmpty CellTag = iota
	CellFood
	CellBody
	CellHead
)

func (c CellTag) String() string {
	switch c {
	case CellFood:
		return "food"
	case CellBody:
		return "snake"
	case CellHead:
		return "head"
	default:
		return "empty"
	}
}

// Snapshot is an immutable view of the game taken between two ticks.
// Cells is indexed [y][x].
//
// Restart yields the same initial board every time, but whole snapshots are
// never equal across restarts: GameID is fresh for each game, and Food only
// repeats when Config.Seed is nonzero.
type Snapshot struct {
	Cells     [][]CellTag
	Score     int
	Running   bool
	GameOver  bool
	Paused    bool
	BoardFull bool

	Tick        int
	Length      int
	Head        types.Point
	Heading     types.Direction
	Food        types.Food
	LastOutcome Outcome
	GameID      string
}

// At returns the tag of cell p, CellEmpty off the board.
func (s Snapshot) At(p types.Point) CellTag {
	if p.Y < 0 || p.Y >= len(s.Cells) || p.X < 0 || p.X >= len(s.Cells[p.Y]) {
		return CellEmpty
	}
	return s.Cells[p.Y][p.X]
}

// Size is the side length of the board.
func (s Snapshot) Size() int {
	return len(s.Cells)
}

// Status is the HUD label: Running or Paused, with a Game Over suffix.
func (s Snapshot) Status() string {
	state := "Running"
	if !s.Running {
		state = "Paused"
	}
	if s.GameOver {
		state += " · Game Over"
	}
	return state
}

// StatusLine is Status prefixed with the score.
func (s Snapshot) StatusLine() string {
	return fmt.Sprintf("Score: %d  %s", s.Score, s.Status())
}
