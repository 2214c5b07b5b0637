package manager

import (
	"snake-engine/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager picks food cells uniformly among the cells not occupied by the snake.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
	free []types.Point // scratch buffer reused across picks
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
		free: make([]types.Point, 0, grid.Area()),
	}
}

// Seed resets the random source so the following picks repeat.
func (fm *FoodManager) Seed(seed uint64) {
	fm.rng.Seed(seed)
}

// Pick returns a free cell, or false when occupied covers the whole grid.
// Free cells are scanned row by row so a given seed always yields the same cell.
func (fm *FoodManager) Pick(occupied types.PointSet) (types.Point, bool) {
	fm.free = fm.free[:0]
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !occupied.Has(p) {
				fm.free = append(fm.free, p)
			}
		}
	}

	if len(fm.free) == 0 {
		return types.Point{}, false
	}
	return fm.free[fm.rng.Intn(len(fm.free))], true
}

// GenerateFood wraps Pick into an optional food value.
func (fm *FoodManager) GenerateFood(occupied types.PointSet) types.Food {
	p, ok := fm.Pick(occupied)
	if !ok {
		return types.Food{}
	}
	return types.FoodAt(p)
}
