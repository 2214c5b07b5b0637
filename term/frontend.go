package term

import (
	"context"
	"fmt"

	"snake-engine/game"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// Frontend plays a Runner in the terminal.
type Frontend struct {
	screen    tcell.Screen
	runner    *game.Runner
	logger    zerolog.Logger
	onOutcome func(game.Outcome)
}

// New opens the terminal screen. Call Close when done.
func New(runner *game.Runner, logger zerolog.Logger) (*Frontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, runner, logger), nil
}

// NewWithScreen wraps an already initialised screen.
func NewWithScreen(screen tcell.Screen, runner *game.Runner, logger zerolog.Logger) *Frontend {
	screen.HideCursor()
	return &Frontend{
		screen: screen,
		runner: runner,
		logger: logger.With().Str("component", "term").Logger(),
	}
}

// OnOutcome registers a callback for tick outcomes, used for sound cues.
func (f *Frontend) OnOutcome(fn func(game.Outcome)) {
	f.onOutcome = fn
}

func (f *Frontend) Close() {
	f.screen.Fini()
}

// Run starts the runner and draws every snapshot until the player quits or
// ctx is done. Keys are forwarded to the runner as signals.
func (f *Frontend) Run(ctx context.Context) error {
	evChan := make(chan tcell.Event, 100)
	quitChan := make(chan struct{})
	go f.screen.ChannelEvents(evChan, quitChan)
	defer close(quitChan)

	f.runner.Start(ctx)
	defer f.runner.Stop()

	var last game.Snapshot
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap := <-f.runner.Snapshots():
			last = snap
			Draw(f.screen, last, f.runner.Stats().GetHighScore())
		case out := <-f.runner.Outcomes():
			if out.Collided() {
				f.screen.Beep()
			}
			if f.onOutcome != nil {
				f.onOutcome(out)
			}
		case ev := <-evChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				sig, quit := KeySignal(ev.Key(), ev.Rune())
				if quit {
					f.logger.Info().Msg("player quit")
					return nil
				}
				f.runner.Send(sig)
			case *tcell.EventResize:
				f.screen.Sync()
				if last.Size() > 0 {
					Draw(f.screen, last, f.runner.Stats().GetHighScore())
				}
			}
		}
	}
}
