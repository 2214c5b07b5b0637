package game

import (
	"snake-engine/game/entity"
	"snake-engine/game/manager"
	"snake-engine/game/types"
)

// FoodSpawner chooses a free cell for new food.
type FoodSpawner interface {
	Pick(occupied types.PointSet) (types.Point, bool)
}

// StepResult is the outcome of advancing the snake by one cell.
// Snake and Food are only meaningful when Collision is NoCollision.
type StepResult struct {
	Collision types.CollisionType
	Snake     *entity.Snake
	Food      types.Food
	Ate       bool
}

func (r StepResult) Moved() bool {
	return r.Collision == types.NoCollision
}

// Step advances snake one cell along dir. It has no side effects beyond
// asking spawner for a new cell when the food is eaten.
func Step(cm *manager.CollisionManager, spawner FoodSpawner, snake *entity.Snake, dir types.Direction, food types.Food) StepResult {
	newHead := snake.GetHead().Add(dir.ToPoint())

	// Self collision is checked against the body before the tail moves.
	if collision := cm.CheckCollision(newHead, snake); collision != types.NoCollision {
		return StepResult{Collision: collision}
	}

	willGrow := cm.IsFoodCollision(newHead, food)
	next := snake.Advance(newHead, willGrow)

	newFood := food
	if willGrow {
		newFood = types.Food{}
		if p, ok := spawner.Pick(next.Occupied()); ok {
			newFood = types.FoodAt(p)
		}
	}

	return StepResult{
		Collision: types.NoCollision,
		Snake:     next,
		Food:      newFood,
		Ate:       willGrow,
	}
}
