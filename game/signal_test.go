package game

import (
	"testing"

	"snake-engine/game/types"
)

func TestParseSignal(t *testing.T) {
	tests := []struct {
		name string
		want Signal
	}{
		{"ArrowUp", SignalUp},
		{"ArrowDown", SignalDown},
		{"ArrowLeft", SignalLeft},
		{"ArrowRight", SignalRight},
		{"left", SignalLeft},
		{" ", SignalPause},
		{"Space", SignalPause},
		{"r", SignalRestart},
		{"Restart", SignalRestart},
		{"Enter", SignalNone},
		{"", SignalNone},
	}

	for _, tc := range tests {
		if got := ParseSignal(tc.name); got != tc.want {
			t.Errorf("ParseSignal(%q) = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestSignalDirectionRoundTrip(t *testing.T) {
	for _, dir := range []types.Direction{types.Up, types.Down, types.Left, types.Right} {
		sig := SignalFromDirection(dir)
		got, ok := sig.Direction()
		if !ok || got != dir {
			t.Errorf("Direction %v -> %v -> %v (ok=%v)", dir, sig, got, ok)
		}
	}
	if _, ok := SignalPause.Direction(); ok {
		t.Error("Pause carries no direction")
	}
	if SignalFromDirection(types.None) != SignalNone {
		t.Error("Expected None to map to SignalNone")
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	g := newTestGame(t, 10, 4)
	snap := g.Snapshot()
	snap.Cells[0][0] = CellHead

	// The head sits at (5,5), so (0,0) can only read CellHead through shared storage
	if g.Snapshot().At(pt(0, 0)) == CellHead {
		t.Error("Snapshot shares cell storage with the game")
	}
	if snap.At(pt(-1, 3)) != CellEmpty || snap.At(pt(3, 10)) != CellEmpty {
		t.Error("Expected off-board cells to read as empty")
	}
}

func TestSnapshotStatusLine(t *testing.T) {
	tests := []struct {
		snap Snapshot
		want string
	}{
		{Snapshot{Score: 3, Running: true}, "Score: 3  Running"},
		{Snapshot{Score: 3, Paused: true}, "Score: 3  Paused"},
		{Snapshot{Score: 5, GameOver: true}, "Score: 5  Paused · Game Over"},
	}
	for _, tc := range tests {
		if got := tc.snap.StatusLine(); got != tc.want {
			t.Errorf("Expected %q, got %q", tc.want, got)
		}
	}
}
