package game

import (
	"context"
	"sync"
	"time"

	"snake-engine/game/manager"

	"github.com/rs/zerolog"
)

// Runner drives a Game from a ticker on a single goroutine. Input signals are
// queued and applied on that same goroutine, so ticks and inputs never overlap
// and the game needs no locking. A Runner runs its loop at most once.
type Runner struct {
	game     *Game
	interval time.Duration
	logger   zerolog.Logger

	inputChan    chan Signal
	snapshotChan chan Snapshot // capacity 1, latest snapshot wins
	outcomeChan  chan Outcome
	controlChan  chan struct{}
	doneChan     chan struct{} // closed when the loop returns, whatever the cause

	wg        sync.WaitGroup
	mutex     sync.Mutex
	isRunning bool
	started   bool
	doneOnce  sync.Once
}

func NewRunner(g *Game, logger zerolog.Logger) *Runner {
	return &Runner{
		game:         g,
		interval:     g.Config().TickInterval,
		logger:       logger.With().Str("component", "runner").Logger(),
		inputChan:    make(chan Signal, 16),
		snapshotChan: make(chan Snapshot, 1),
		outcomeChan:  make(chan Outcome, 16),
		controlChan:  make(chan struct{}),
		doneChan:     make(chan struct{}),
	}
}

// Done is closed once the loop has returned, after Stop or ctx cancellation.
func (r *Runner) Done() <-chan struct{} {
	return r.doneChan
}

// Snapshots delivers the latest snapshot after every tick or input that changed the game.
func (r *Runner) Snapshots() <-chan Snapshot {
	return r.snapshotChan
}

// Outcomes delivers eat and collision outcomes, for sound cues. Outcomes are
// dropped when nobody reads them.
func (r *Runner) Outcomes() <-chan Outcome {
	return r.outcomeChan
}

// Stats exposes the session history of the driven game.
func (r *Runner) Stats() *manager.StateManager {
	return r.game.Stats()
}

// Send queues a signal for the next turn of the loop. It returns false once
// the runner has stopped or its context is done, and never blocks past that.
func (r *Runner) Send(sig Signal) bool {
	if sig == SignalNone {
		return false
	}
	select {
	case <-r.controlChan:
		return false
	case <-r.doneChan:
		return false
	default:
	}
	select {
	case r.inputChan <- sig:
		return true
	case <-r.controlChan:
		return false
	case <-r.doneChan:
		return false
	}
}

// Start runs the loop in its own goroutine until ctx is done or Stop is called.
// Calls after the first are no-ops.
func (r *Runner) Start(ctx context.Context) {
	r.mutex.Lock()
	if r.started {
		r.mutex.Unlock()
		return
	}
	r.started = true
	r.isRunning = true
	r.mutex.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.Run(ctx)
	}()
}

// Stop ends the loop and waits for it. A tick already dispatched completes first.
func (r *Runner) Stop() {
	r.mutex.Lock()
	if !r.isRunning {
		r.mutex.Unlock()
		return
	}
	r.isRunning = false
	close(r.controlChan)
	r.mutex.Unlock()

	r.wg.Wait()
}

// Run is the game loop. It blocks until ctx is done or Stop is called.
// Callers using Run directly instead of Start must cancel ctx to end it.
// The ticker is stopped while the game is paused or over.
func (r *Runner) Run(ctx context.Context) {
	defer r.doneOnce.Do(func() { close(r.doneChan) })

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info().
		Str("game", r.game.Snapshot().GameID).
		Int("grid", r.game.Config().GridSize).
		Dur("interval", r.interval).
		Msg("game loop started")
	r.publish()

	ticking := true
	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Err(ctx.Err()).Msg("game loop cancelled")
			return
		case <-r.controlChan:
			r.logger.Info().Msg("game loop stopped")
			return
		case sig := <-r.inputChan:
			if !r.handle(sig) {
				continue
			}
		case <-ticker.C:
			r.tick()
		}

		switch {
		case r.game.State() == Running && !ticking:
			ticker.Reset(r.interval)
			ticking = true
		case r.game.State() != Running && ticking:
			ticker.Stop()
			ticking = false
		}
		r.publish()
	}
}

func (r *Runner) handle(sig Signal) bool {
	changed := r.game.HandleSignal(sig)
	switch sig {
	case SignalPause:
		if changed {
			r.logger.Debug().Stringer("state", r.game.State()).Msg("pause toggled")
		}
	case SignalRestart:
		r.logger.Info().Str("game", r.game.Snapshot().GameID).Msg("game restarted")
	default:
		if changed {
			r.logger.Debug().Stringer("heading", r.game.Heading()).Msg("heading changed")
		}
	}
	return changed
}

func (r *Runner) tick() {
	outcome := r.game.Tick()
	if outcome == OutcomeIdle || outcome == OutcomeMoved {
		return
	}

	if outcome.Collided() {
		r.logger.Info().
			Stringer("cause", outcome).
			Int("score", r.game.Score()).
			Int("highScore", r.game.Stats().GetHighScore()).
			Msg("game over")
	}

	// Dropped when the reader is behind
	select {
	case r.outcomeChan <- outcome:
	default:
	}
}

// publish replaces any unread snapshot with the current one.
func (r *Runner) publish() {
	snap := r.game.Snapshot()
	select {
	case r.snapshotChan <- snap:
		return
	default:
	}
	select {
	case <-r.snapshotChan:
	default:
	}
	select {
	case r.snapshotChan <- snap:
	default:
	}
}
