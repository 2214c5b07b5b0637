package manager

import (
	"strings"

	"snake-engine/game/types"
)

// Raw input names accepted as direction requests. Arrow names match exactly,
// short names are matched case-insensitively.
var arrowKeys = map[string]types.Direction{
	"ArrowUp":    types.Up,
	"ArrowDown":  types.Down,
	"ArrowLeft":  types.Left,
	"ArrowRight": types.Right,
}

var shortKeys = map[string]types.Direction{
	"up":    types.Up,
	"down":  types.Down,
	"left":  types.Left,
	"right": types.Right,
}

// ParseDirection maps a raw input name onto a heading.
func ParseDirection(raw string) (types.Direction, bool) {
	if d, ok := arrowKeys[raw]; ok {
		return d, true
	}
	d, ok := shortKeys[strings.ToLower(raw)]
	return d, ok
}

// DirectionManager holds the committed heading. Requests between two ticks
// overwrite each other; only the last accepted one is read by the next tick.
type DirectionManager struct {
	initial types.Direction
	heading types.Direction
}

func NewDirectionManager(initial types.Direction) *DirectionManager {
	return &DirectionManager{
		initial: initial,
		heading: initial,
	}
}

func (dm *DirectionManager) Heading() types.Direction {
	return dm.heading
}

// Reset restores the initial heading.
func (dm *DirectionManager) Reset() {
	dm.heading = dm.initial
}

// Request parses raw and applies it against body. Unknown input is ignored.
func (dm *DirectionManager) Request(raw string, body []types.Point) (types.Direction, bool) {
	dir, ok := ParseDirection(raw)
	if !ok {
		return dm.heading, false
	}
	return dm.Turn(dir, body)
}

// Turn commits dir unless it would move the head straight back onto the neck.
// The returned heading is the committed one either way.
func (dm *DirectionManager) Turn(dir types.Direction, body []types.Point) (types.Direction, bool) {
	if dir == types.None {
		return dm.heading, false
	}
	if len(body) > 1 && types.SameCell(body[0].Add(dir.ToPoint()), body[1]) {
		return dm.heading, false
	}
	dm.heading = dir
	return dm.heading, true
}
