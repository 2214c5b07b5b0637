package manager

import (
	"sort"
	"sync"
	"time"

	"snake-engine/game/types"

	"github.com/google/uuid"
)

// DefaultMaxHistory bounds how many finished games are kept in memory.
const DefaultMaxHistory = 200

// GameRecord describes one finished or abandoned game.
type GameRecord struct {
	ID        string              `json:"id"`
	StartTime time.Time           `json:"startTime"`
	EndTime   time.Time           `json:"endTime"`
	Score     int                 `json:"score"`
	Ticks     int                 `json:"ticks"`
	Cause     types.CollisionType `json:"cause"` // NoCollision when restarted before game over
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps the session's score history. Nothing is written to disk.
// Safe for concurrent use: renderers read it while the game loop writes.
type StateManager struct {
	mutex       sync.RWMutex
	current     GameRecord
	games       []GameRecord
	gamesPlayed int // all games ended this session, not only the kept ones
	highScore   int
	maxHistory  int
}

func NewStateManager(maxHistory int) *StateManager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &StateManager{
		games:      make([]GameRecord, 0),
		maxHistory: maxHistory,
	}
}

// StartGame opens a new record and returns its id.
func (sm *StateManager) StartGame(at time.Time) string {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	sm.current = GameRecord{
		ID:        uuid.New().String(),
		StartTime: at,
	}
	return sm.current.ID
}

// CurrentID is the id of the latest game started, finished or not.
func (sm *StateManager) CurrentID() string {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.current.ID
}

// EndGame closes the current record and appends it to the history.
func (sm *StateManager) EndGame(at time.Time, score, ticks int, cause types.CollisionType) GameRecord {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	record := sm.current
	record.EndTime = at
	record.Score = score
	record.Ticks = ticks
	record.Cause = cause

	if len(sm.games) >= sm.maxHistory {
		sm.games = sm.games[1:]
	}
	sm.games = append(sm.games, record)
	sm.gamesPlayed++

	if score > sm.highScore {
		sm.highScore = score
	}
	return record
}

func (sm *StateManager) GetHighScore() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.highScore
}

// GetStats returns a copy of the recorded games, oldest first.
func (sm *StateManager) GetStats() []GameRecord {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	games := make([]GameRecord, len(sm.games))
	copy(games, sm.games)
	return games
}

func (sm *StateManager) GetScoreHistory() []int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	scores := make([]int, len(sm.games))
	for i, g := range sm.games {
		scores[i] = g.Score
	}
	return scores
}

// GetGamesPlayed counts every game ended this session, including those
// dropped from the bounded history.
func (sm *StateManager) GetGamesPlayed() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.gamesPlayed
}

func (sm *StateManager) GetAverageScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.games) == 0 {
		return 0
	}
	total := 0
	for _, g := range sm.games {
		total += g.Score
	}
	return float64(total) / float64(len(sm.games))
}

func (sm *StateManager) GetMedianScore() float64 {
	scores := sm.GetScoreHistory()
	if len(scores) == 0 {
		return 0
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (sm *StateManager) GetAverageDuration() time.Duration {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.games) == 0 {
		return 0
	}
	var total time.Duration
	for _, g := range sm.games {
		total += g.Duration()
	}
	return total / time.Duration(len(sm.games))
}
