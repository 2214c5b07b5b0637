package game

import (
	"errors"
	"fmt"
	"time"

	"snake-engine/game/types"
)

const (
	DefaultGridSize     = 20
	DefaultTickInterval = 120 * time.Millisecond
)

// ErrInvalidConfig is returned when a Config cannot describe a playable board.
var ErrInvalidConfig = errors.New("invalid game config")

// Config is fixed for the lifetime of a Game.
type Config struct {
	GridSize     int           // side length N of the square board
	TickInterval time.Duration // time between two ticks when driven by a Runner
	Seed         uint64        // food RNG seed; 0 picks a time based seed and disables reseeding on restart
	MaxHistory   int           // finished games kept in memory; 0 means manager.DefaultMaxHistory
}

func DefaultConfig() Config {
	return Config{
		GridSize:     DefaultGridSize,
		TickInterval: DefaultTickInterval,
	}
}

func (c Config) Validate() error {
	if c.GridSize < 1 {
		return fmt.Errorf("%w: grid size %d, must be at least 1", ErrInvalidConfig, c.GridSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %v, must be positive", ErrInvalidConfig, c.TickInterval)
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.NewSquareGrid(c.GridSize)
}
