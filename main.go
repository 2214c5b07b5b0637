package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake-engine/audio"
	"snake-engine/game"
	"snake-engine/term"
	"snake-engine/ui"

	"github.com/rs/zerolog"
)

func main() {
	size := flag.Int("size", game.DefaultGridSize, "Grid side length in cells")
	speed := flag.Int("speed", int(game.DefaultTickInterval/time.Millisecond), "Tick interval in milliseconds (lower = faster)")
	seed := flag.Uint64("seed", 0, "Food RNG seed, 0 picks one from the clock")
	frontend := flag.String("frontend", "raylib", "Front end: raylib or term")
	mute := flag.Bool("mute", false, "Disable sound cues")
	logPath := flag.String("log", "", "Log file (term front end logs nowhere without it)")
	debug := flag.Bool("debug", false, "Log at debug level")
	flag.Parse()

	if err := run(*frontend, *logPath, *debug, *mute, game.Config{
		GridSize:     *size,
		TickInterval: time.Duration(*speed) * time.Millisecond,
		Seed:         *seed,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "snake:", err)
		os.Exit(1)
	}
}

func run(frontend, logPath string, debug, mute bool, cfg game.Config) error {
	logger, closeLog, err := newLogger(frontend, logPath, debug)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := game.NewGame(cfg)
	if err != nil {
		return err
	}
	runner := game.NewRunner(g, logger)

	sounds := audio.NewSoundManager(mute, logger)
	if err := sounds.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	}
	defer sounds.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch frontend {
	case "raylib":
		ui.Run(ctx, runner, logger, sounds.OnOutcome)
	case "term":
		f, err := term.New(runner, logger)
		if err != nil {
			return err
		}
		defer f.Close()
		f.OnOutcome(sounds.OnOutcome)
		if err := f.Run(ctx); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown front end %q", frontend)
	}

	stats := runner.Stats()
	event := logger.Info().
		Int("games", stats.GetGamesPlayed()).
		Int("highScore", stats.GetHighScore()).
		Float64("avgScore", stats.GetAverageScore()).
		Float64("medianScore", stats.GetMedianScore())
	if games := stats.GetStats(); len(games) > 0 {
		last := games[len(games)-1]
		event = event.Int("lastScore", last.Score).Dur("lastDuration", last.Duration())
	}
	event.Msg("session finished")
	return nil
}

// newLogger writes to logPath when set. Otherwise the window front end logs
// to stderr and the terminal front end, which owns the screen, logs nowhere.
func newLogger(frontend, logPath string, debug bool) (zerolog.Logger, func(), error) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var out io.Writer
	closeFn := func() {}
	switch {
	case logPath != "":
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), closeFn, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case frontend == "term":
		return zerolog.Nop(), closeFn, nil
	default:
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closeFn, nil
}
