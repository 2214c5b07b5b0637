package game

import (
	"snake-engine/game/manager"
	"snake-engine/game/types"
)

// Signal is a discrete input event fed to the game by a front end.
type Signal int

const (
	SignalNone Signal = iota
	SignalUp
	SignalDown
	SignalLeft
	SignalRight
	SignalPause
	SignalRestart
)

var signalNames = map[string]Signal{
	" ":       SignalPause,
	"Space":   SignalPause,
	"space":   SignalPause,
	"Pause":   SignalPause,
	"p":       SignalPause,
	"r":       SignalRestart,
	"R":       SignalRestart,
	"Restart": SignalRestart,
}

// ParseSignal maps a key name onto a signal. Unknown names yield SignalNone.
func ParseSignal(name string) Signal {
	if dir, ok := manager.ParseDirection(name); ok {
		return SignalFromDirection(dir)
	}
	return signalNames[name]
}

func SignalFromDirection(dir types.Direction) Signal {
	switch dir {
	case types.Up:
		return SignalUp
	case types.Down:
		return SignalDown
	case types.Left:
		return SignalLeft
	case types.Right:
		return SignalRight
	default:
		return SignalNone
	}
}

// Direction returns the heading carried by a directional signal.
func (s Signal) Direction() (types.Direction, bool) {
	switch s {
	case SignalUp:
		return types.Up, true
	case SignalDown:
		return types.Down, true
	case SignalLeft:
		return types.Left, true
	case SignalRight:
		return types.Right, true
	default:
		return types.None, false
	}
}

func (s Signal) String() string {
	switch s {
	case SignalUp:
		return "up"
	case SignalDown:
		return "down"
	case SignalLeft:
		return "left"
	case SignalRight:
		return "right"
	case SignalPause:
		return "pause"
	case SignalRestart:
		return "restart"
	default:
		return "none"
	}
}
