package manager

import (
	"snake-engine/game/entity"
	"snake-engine/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision checks all types of collisions for a new head position.
// Walls are checked first, so a position off the grid is never reported as a self collision.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if cm.isSelfCollision(pos, snake) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos)
}

// isSelfCollision checks pos against the whole current body, including the
// tail cell that a non-growing move is about to vacate.
func (cm *CollisionManager) isSelfCollision(pos types.Point, snake *entity.Snake) bool {
	return snake.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Food) bool {
	return food.Present && types.SameCell(pos, food.Cell)
}
