package term

import (
	"snake-engine/game"

	"github.com/gdamore/tcell/v2"
)

// KeySignal translates a key press. r is only read for tcell.KeyRune.
// quit is true for q, Esc and Ctrl-C.
func KeySignal(key tcell.Key, r rune) (sig game.Signal, quit bool) {
	switch key {
	case tcell.KeyUp:
		return game.SignalUp, false
	case tcell.KeyDown:
		return game.SignalDown, false
	case tcell.KeyLeft:
		return game.SignalLeft, false
	case tcell.KeyRight:
		return game.SignalRight, false
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.SignalNone, true
	case tcell.KeyRune:
	default:
		return game.SignalNone, false
	}

	switch r {
	case 'w', 'W', 'k':
		return game.SignalUp, false
	case 's', 'S', 'j':
		return game.SignalDown, false
	case 'a', 'A', 'h':
		return game.SignalLeft, false
	case 'd', 'D', 'l':
		return game.SignalRight, false
	case 'q', 'Q':
		return game.SignalNone, true
	default:
		return game.ParseSignal(string(r)), false
	}
}
