package ui

import (
	"context"

	"snake-engine/game"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

const (
	windowWidth  = 1024
	windowHeight = 720
	targetFPS    = 60
)

// Run opens the window and plays runner until the window closes, Q is
// pressed or ctx is done. raylib must stay on the calling goroutine, so call
// Run from main.
func Run(ctx context.Context, runner *game.Runner, logger zerolog.Logger, onOutcome func(game.Outcome)) {
	logger = logger.With().Str("component", "ui").Logger()

	rl.InitWindow(windowWidth, windowHeight, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)

	renderer := NewRenderer()

	runner.Start(ctx)
	defer runner.Stop()

	last := <-runner.Snapshots()
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			logger.Info().Msg("context done, closing window")
			return
		}
		if QuitPressed() {
			logger.Info().Msg("player quit")
			return
		}

		for _, sig := range PollSignals() {
			runner.Send(sig)
		}

		select {
		case snap := <-runner.Snapshots():
			last = snap
		default:
		}

	drain:
		for {
			select {
			case out := <-runner.Outcomes():
				if onOutcome != nil {
					onOutcome(out)
				}
			default:
				break drain
			}
		}

		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}
		renderer.Draw(last, runner.Stats())
	}
	logger.Info().Msg("window closed")
}
