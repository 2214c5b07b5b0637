package game

import (
	"errors"
	"testing"
	"time"

	"snake-engine/game/entity"
	"snake-engine/game/types"

	"golang.org/x/exp/rand"
)

func newTestGame(t *testing.T, size int, seed uint64) *Game {
	t.Helper()
	g, err := NewGame(Config{GridSize: size, TickInterval: 10 * time.Millisecond, Seed: seed})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return g
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}

	bad := []Config{
		{GridSize: 0, TickInterval: time.Second},
		{GridSize: -3, TickInterval: time.Second},
		{GridSize: 10, TickInterval: 0},
	}
	for _, cfg := range bad {
		err := cfg.Validate()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Config %+v: expected ErrInvalidConfig, got %v", cfg, err)
		}
		if _, err := NewGame(cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("NewGame(%+v): expected ErrInvalidConfig, got %v", cfg, err)
		}
	}
}

// TestInitialState: one cell at the center heading right, food elsewhere
func TestInitialState(t *testing.T) {
	g := newTestGame(t, 20, 1)
	snap := g.Snapshot()

	if snap.Length != 1 || snap.Head != pt(10, 10) {
		t.Errorf("Expected single cell at (10,10), got length %d head %v", snap.Length, snap.Head)
	}
	if snap.Heading != types.Right {
		t.Errorf("Expected heading right, got %v", snap.Heading)
	}
	if !snap.Running || snap.GameOver || snap.Paused || snap.Score != 0 {
		t.Errorf("Unexpected initial flags %+v", snap)
	}
	if !snap.Food.Present || snap.Food.Cell == snap.Head {
		t.Errorf("Expected food away from the snake, got %+v", snap.Food)
	}
	if snap.At(snap.Head) != CellHead || snap.At(snap.Food.Cell) != CellFood {
		t.Error("Expected head and food tags in the cell grid")
	}
	if snap.GameID == "" {
		t.Error("Expected a game id")
	}
}

// TestTickEating: one tick onto food grows the snake and respawns food
func TestTickEating(t *testing.T) {
	g := newTestGame(t, 20, 3)
	g.food = types.FoodAt(pt(11, 10))

	if out := g.Tick(); out != OutcomeAte {
		t.Fatalf("Expected OutcomeAte, got %v", out)
	}
	snap := g.Snapshot()
	if snap.Score != 1 || snap.Length != 2 {
		t.Errorf("Expected score 1 length 2, got %d %d", snap.Score, snap.Length)
	}
	if snap.At(pt(11, 10)) != CellHead || snap.At(pt(10, 10)) != CellBody {
		t.Error("Expected head at (11,10) and body at (10,10)")
	}
	if !snap.Food.Present || snap.Food.Cell == pt(11, 10) || snap.Food.Cell == pt(10, 10) {
		t.Errorf("Expected new food off the snake, got %+v", snap.Food)
	}
}

// TestWallCollisionIsSticky: game over survives further ticks until restart
func TestWallCollisionIsSticky(t *testing.T) {
	g := newTestGame(t, 20, 3)
	g.snake = entity.NewSnake(pt(0, 0))
	g.food = types.FoodAt(pt(5, 5))
	if !g.Turn(types.Left) {
		t.Fatal("Expected left to be accepted")
	}

	if out := g.Tick(); out != OutcomeHitWall {
		t.Fatalf("Expected OutcomeHitWall, got %v", out)
	}
	if g.State() != GameOver {
		t.Fatalf("Expected GameOver, got %v", g.State())
	}

	before := g.Snapshot()
	for i := 0; i < 5; i++ {
		if out := g.Tick(); out != OutcomeIdle {
			t.Errorf("Expected idle tick after game over, got %v", out)
		}
	}
	after := g.Snapshot()
	if after.Tick != before.Tick || after.Head != before.Head || !after.GameOver || after.Running {
		t.Errorf("Ticks after game over changed the game: %+v", after)
	}

	// Pause is ignored once over
	if s := g.TogglePause(); s != GameOver {
		t.Errorf("Expected TogglePause to be a no-op, got %v", s)
	}

	g.Restart()
	if g.State() != Running {
		t.Errorf("Expected Running after restart, got %v", g.State())
	}

	recs := g.Stats().GetStats()
	if len(recs) != 1 || recs[0].Cause != types.WallCollision || recs[0].Score != 0 {
		t.Errorf("Expected one wall record, got %+v", recs)
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, 20, 3)
	g.snake = entity.NewSnakeFromBody(pt(5, 5), pt(6, 5), pt(6, 6), pt(5, 6), pt(4, 6))
	g.food = types.FoodAt(pt(15, 15))
	if !g.Turn(types.Down) {
		t.Fatal("Expected down to be accepted")
	}

	if out := g.Tick(); out != OutcomeHitSelf {
		t.Fatalf("Expected OutcomeHitSelf, got %v", out)
	}
	snap := g.Snapshot()
	if !snap.GameOver || snap.Running {
		t.Errorf("Expected game over snapshot, got %+v", snap)
	}
	if snap.Score != 4 {
		t.Errorf("Expected score kept at 4, got %d", snap.Score)
	}
	if g.Stats().GetHighScore() != 4 {
		t.Errorf("Expected high score 4, got %d", g.Stats().GetHighScore())
	}
}

func TestPauseGatesTicks(t *testing.T) {
	g := newTestGame(t, 20, 3)
	g.food = types.FoodAt(pt(0, 0))

	if s := g.TogglePause(); s != Paused {
		t.Fatalf("Expected Paused, got %v", s)
	}
	if out := g.Tick(); out != OutcomeIdle {
		t.Errorf("Expected idle tick while paused, got %v", out)
	}
	if g.Snapshot().Head != pt(10, 10) {
		t.Error("Snake moved while paused")
	}

	// Direction requests are still recorded while paused
	if !g.RequestDirection("ArrowDown") {
		t.Error("Expected direction request to be accepted while paused")
	}

	if s := g.TogglePause(); s != Running {
		t.Fatalf("Expected Running, got %v", s)
	}
	if out := g.Tick(); out != OutcomeMoved {
		t.Errorf("Expected a move, got %v", out)
	}
	if g.Snapshot().Head != pt(10, 11) {
		t.Errorf("Expected head (10,11), got %v", g.Snapshot().Head)
	}
}

// TestReversalThroughGame: snake [(10,10),(9,10)] heading east ignores west
func TestReversalThroughGame(t *testing.T) {
	g := newTestGame(t, 20, 3)
	g.snake = entity.NewSnakeFromBody(pt(10, 10), pt(9, 10))

	if g.RequestDirection("ArrowLeft") {
		t.Error("Expected reversal to be rejected")
	}
	if g.Heading() != types.Right {
		t.Errorf("Expected heading right, got %v", g.Heading())
	}
	if g.RequestDirection("Escape") {
		t.Error("Expected unknown key to be ignored")
	}
}

// TestRestartIdempotent: whatever happened before, restart gives the same board
func TestRestartIdempotent(t *testing.T) {
	g := newTestGame(t, 12, 99)
	initial := g.Snapshot()

	rng := rand.New(rand.NewSource(5))
	dirs := []string{"ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight"}
	for round := 0; round < 5; round++ {
		for i := 0; i < 40; i++ {
			g.RequestDirection(dirs[rng.Intn(len(dirs))])
			if rng.Intn(10) == 0 {
				g.TogglePause()
			}
			g.Tick()
		}
		g.Restart()

		snap := g.Snapshot()
		if !sameBoard(initial, snap) {
			t.Fatalf("Round %d: restart snapshot differs from the initial one", round)
		}
		if snap.Score != 0 || !snap.Running || snap.GameOver || snap.Heading != types.Right || snap.Tick != 0 {
			t.Fatalf("Round %d: unexpected restart state %+v", round, snap)
		}
		if snap.Food != initial.Food {
			t.Errorf("Round %d: expected seeded food %v, got %v", round, initial.Food, snap.Food)
		}
		if snap.GameID == initial.GameID {
			t.Errorf("Round %d: expected a fresh game id", round)
		}
	}
}

// TestRestartRecordsAbandonedGame: restarting mid-game still lands in the history
func TestRestartRecordsAbandonedGame(t *testing.T) {
	g := newTestGame(t, 20, 3)
	g.food = types.FoodAt(pt(0, 0))
	firstID := g.Snapshot().GameID

	g.Tick()
	g.Tick()
	g.Restart()

	recs := g.Stats().GetStats()
	if len(recs) != 1 {
		t.Fatalf("Expected one record, got %d", len(recs))
	}
	if recs[0].ID != firstID || recs[0].Cause != types.NoCollision || recs[0].Ticks != 2 {
		t.Errorf("Unexpected record %+v", recs[0])
	}
	if g.Snapshot().GameID == firstID {
		t.Error("Expected a new game id after restart")
	}

	// Restart before any tick records nothing
	g.Restart()
	if n := g.Stats().GetGamesPlayed(); n != 1 {
		t.Errorf("Expected 1 recorded game, got %d", n)
	}
}

// TestSingleCellBoard: N=1 has no room for food and dies on the first tick
func TestSingleCellBoard(t *testing.T) {
	g := newTestGame(t, 1, 3)
	snap := g.Snapshot()
	if snap.Food.Present {
		t.Errorf("Expected no food on a 1x1 board, got %+v", snap.Food)
	}
	if !snap.BoardFull {
		t.Error("Expected BoardFull on a 1x1 board")
	}
	if out := g.Tick(); out != OutcomeHitWall {
		t.Errorf("Expected wall collision, got %v", out)
	}
}

// TestBoardFullThroughGame: filling the board leaves food absent
func TestBoardFullThroughGame(t *testing.T) {
	g := newTestGame(t, 2, 3)
	g.snake = entity.NewSnakeFromBody(pt(0, 0), pt(0, 1), pt(1, 1))
	g.food = types.FoodAt(pt(1, 0))

	if out := g.Tick(); out != OutcomeAte {
		t.Fatalf("Expected OutcomeAte, got %v", out)
	}
	snap := g.Snapshot()
	if snap.Food.Present || !snap.BoardFull || snap.Score != 3 {
		t.Errorf("Expected full board without food, got %+v", snap)
	}
	if out := g.Tick(); !out.Collided() {
		t.Errorf("Expected the next tick to collide, got %v", out)
	}
}

// TestRandomWalkInvariants drives the game with random input and checks every
// reachable state: cells in bounds, no duplicates, food off the snake, length conservation.
func TestRandomWalkInvariants(t *testing.T) {
	g := newTestGame(t, 8, 11)
	rng := rand.New(rand.NewSource(2024))
	signals := []Signal{SignalUp, SignalDown, SignalLeft, SignalRight}
	grid := g.Config().Grid()

	ate, collided := 0, 0
	for i := 0; i < 5000; i++ {
		if rng.Intn(3) == 0 {
			g.HandleSignal(signals[rng.Intn(len(signals))])
		}

		before := g.snake.Len()
		out := g.Tick()

		switch out {
		case OutcomeMoved:
			if g.snake.Len() != before {
				t.Fatalf("Tick %d: plain move changed length %d -> %d", i, before, g.snake.Len())
			}
		case OutcomeAte:
			ate++
			if g.snake.Len() != before+1 {
				t.Fatalf("Tick %d: eating changed length %d -> %d", i, before, g.snake.Len())
			}
		case OutcomeHitWall, OutcomeHitSelf:
			collided++
			if g.snake.Len() != before {
				t.Fatalf("Tick %d: collision changed the snake", i)
			}
		}

		seen := make(types.PointSet)
		for _, p := range g.snake.Body {
			if !grid.InBounds(p) {
				t.Fatalf("Tick %d: cell %v out of bounds", i, p)
			}
			if seen.Has(p) {
				t.Fatalf("Tick %d: duplicate cell %v", i, p)
			}
			seen.Add(p)
		}
		if g.food.Present && seen.Has(g.food.Cell) {
			t.Fatalf("Tick %d: food %v on the snake", i, g.food.Cell)
		}

		if g.State() == GameOver {
			g.Restart()
		}
	}

	if ate == 0 || collided == 0 {
		t.Errorf("Random walk too tame: ate=%d collided=%d", ate, collided)
	}
}

func TestHandleSignal(t *testing.T) {
	g := newTestGame(t, 20, 3)

	if g.HandleSignal(SignalNone) {
		t.Error("Expected SignalNone to do nothing")
	}
	if !g.HandleSignal(SignalUp) || g.Heading() != types.Up {
		t.Errorf("Expected heading up, got %v", g.Heading())
	}
	if !g.HandleSignal(SignalPause) || g.State() != Paused {
		t.Errorf("Expected Paused, got %v", g.State())
	}
	if !g.HandleSignal(SignalRestart) || g.State() != Running || g.Heading() != types.Right {
		t.Errorf("Expected fresh running game, got %v heading %v", g.State(), g.Heading())
	}
}

func sameBoard(a, b Snapshot) bool {
	if a.Size() != b.Size() || a.Food != b.Food {
		return false
	}
	for y := range a.Cells {
		for x := range a.Cells[y] {
			if a.Cells[y][x] != b.Cells[y][x] {
				return false
			}
		}
	}
	return true
}
