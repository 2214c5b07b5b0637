package game

import (
	"time"

	"snake-engine/game/entity"
	"snake-engine/game/manager"
	"snake-engine/game/types"
)

// InitialHeading is the heading of every fresh snake.
const InitialHeading = types.Right

// State is the run state of a Game.
type State int

const (
	Running State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Outcome reports what a tick did.
type Outcome int

const (
	OutcomeIdle Outcome = iota // tick ignored: paused or game over
	OutcomeMoved
	OutcomeAte
	OutcomeHitWall
	OutcomeHitSelf
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeHitWall:
		return "hit wall"
	case OutcomeHitSelf:
		return "hit self"
	default:
		return "idle"
	}
}

// Collided reports whether the outcome ended the game.
func (o Outcome) Collided() bool {
	return o == OutcomeHitWall || o == OutcomeHitSelf
}

// Game owns the snake, the food and the run state. It is not safe for
// concurrent use; a Runner gives it a single owning goroutine.
type Game struct {
	cfg  Config
	grid types.Grid

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	directionMgr *manager.DirectionManager
	stateMgr     *manager.StateManager

	snake       *entity.Snake
	food        types.Food
	state       State
	ticks       int
	lastOutcome Outcome

	now func() time.Time
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	grid := cfg.Grid()
	g := &Game{
		cfg:          cfg,
		grid:         grid,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, seed),
		directionMgr: manager.NewDirectionManager(InitialHeading),
		stateMgr:     manager.NewStateManager(cfg.MaxHistory),
		now:          time.Now,
	}
	g.reset()
	return g, nil
}

// reset installs the initial snake, heading and food and starts a new record.
func (g *Game) reset() {
	g.snake = entity.NewSnake(g.grid.Center())
	g.directionMgr.Reset()
	g.food = g.foodMgr.GenerateFood(g.snake.Occupied())
	g.state = Running
	g.ticks = 0
	g.lastOutcome = OutcomeIdle
	g.stateMgr.StartGame(g.now())
}

// Tick advances the simulation by one step when Running.
func (g *Game) Tick() Outcome {
	if g.state != Running {
		return OutcomeIdle
	}

	g.ticks++
	result := Step(g.collisionMgr, g.foodMgr, g.snake, g.directionMgr.Heading(), g.food)

	switch result.Collision {
	case types.WallCollision:
		g.lastOutcome = OutcomeHitWall
	case types.SelfCollision:
		g.lastOutcome = OutcomeHitSelf
	default:
		g.snake = result.Snake
		g.food = result.Food
		g.lastOutcome = OutcomeMoved
		if result.Ate {
			g.lastOutcome = OutcomeAte
		}
		return g.lastOutcome
	}

	g.state = GameOver
	g.stateMgr.EndGame(g.now(), g.Score(), g.ticks, result.Collision)
	return g.lastOutcome
}

// RequestDirection applies a raw directional input such as "ArrowUp".
// It reports whether the heading was accepted.
func (g *Game) RequestDirection(raw string) bool {
	_, ok := g.directionMgr.Request(raw, g.snake.Body)
	return ok
}

// Turn is RequestDirection for an already decoded heading.
func (g *Game) Turn(dir types.Direction) bool {
	_, ok := g.directionMgr.Turn(dir, g.snake.Body)
	return ok
}

// TogglePause swaps Running and Paused. It does nothing once the game is over.
func (g *Game) TogglePause() State {
	switch g.state {
	case Running:
		g.state = Paused
	case Paused:
		g.state = Running
	}
	return g.state
}

// Restart resets the board whatever the current state is. A game abandoned
// before its game over is still recorded in the session history.
func (g *Game) Restart() {
	if g.state != GameOver && g.ticks > 0 {
		g.stateMgr.EndGame(g.now(), g.Score(), g.ticks, types.NoCollision)
	}
	if g.cfg.Seed != 0 {
		g.foodMgr.Seed(g.cfg.Seed)
	}
	g.reset()
}

// HandleSignal dispatches one input signal. It reports whether the signal
// changed anything.
func (g *Game) HandleSignal(sig Signal) bool {
	if dir, ok := sig.Direction(); ok {
		return g.Turn(dir)
	}
	switch sig {
	case SignalPause:
		before := g.state
		return g.TogglePause() != before
	case SignalRestart:
		g.Restart()
		return true
	default:
		return false
	}
}

func (g *Game) State() State {
	return g.state
}

// Score is the snake length minus one.
func (g *Game) Score() int {
	return g.snake.Len() - 1
}

func (g *Game) Heading() types.Direction {
	return g.directionMgr.Heading()
}

func (g *Game) Config() Config {
	return g.cfg
}

// Stats exposes the session history. It is safe to read from other goroutines.
func (g *Game) Stats() *manager.StateManager {
	return g.stateMgr
}

// Snapshot copies the current state into a value the caller may keep.
func (g *Game) Snapshot() Snapshot {
	cells := make([][]CellTag, g.grid.Height)
	for y := range cells {
		cells[y] = make([]CellTag, g.grid.Width)
	}

	if g.food.Present {
		cells[g.food.Cell.Y][g.food.Cell.X] = CellFood
	}
	for i, p := range g.snake.Body {
		tag := CellBody
		if i == 0 {
			tag = CellHead
		}
		cells[p.Y][p.X] = tag
	}

	return Snapshot{
		Cells:       cells,
		Score:       g.Score(),
		Running:     g.state == Running,
		GameOver:    g.state == GameOver,
		Paused:      g.state == Paused,
		BoardFull:   g.snake.Len() == g.grid.Area(),
		Tick:        g.ticks,
		Length:      g.snake.Len(),
		Head:        g.snake.GetHead(),
		Heading:     g.directionMgr.Heading(),
		Food:        g.food,
		LastOutcome: g.lastOutcome,
		GameID:      g.stateMgr.CurrentID(),
	}
}
