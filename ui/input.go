package ui

import (
	"snake-engine/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type keyBinding struct {
	key int32
	sig game.Signal
}

var keyBindings = []keyBinding{
	{rl.KeyUp, game.SignalUp},
	{rl.KeyW, game.SignalUp},
	{rl.KeyDown, game.SignalDown},
	{rl.KeyS, game.SignalDown},
	{rl.KeyLeft, game.SignalLeft},
	{rl.KeyA, game.SignalLeft},
	{rl.KeyRight, game.SignalRight},
	{rl.KeyD, game.SignalRight},
	{rl.KeySpace, game.SignalPause},
	{rl.KeyP, game.SignalPause},
	{rl.KeyR, game.SignalRestart},
}

// PollSignals returns the signals for keys pressed since the last frame, in
// binding order. Must be called between frames on the window thread.
func PollSignals() []game.Signal {
	return pressedSignals(rl.IsKeyPressed)
}

func pressedSignals(pressed func(key int32) bool) []game.Signal {
	var sigs []game.Signal
	for _, b := range keyBindings {
		if pressed(b.key) {
			sigs = append(sigs, b.sig)
		}
	}
	return sigs
}

// QuitPressed reports whether the player asked to leave.
func QuitPressed() bool {
	return rl.IsKeyPressed(rl.KeyQ)
}
