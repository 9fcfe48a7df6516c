package manager

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsFoodCollision checks if the snake's head is on the food
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, food *entity.Food) bool {
	return snake.Head() == food.Position
}

// FoodOnBody reports whether the food landed on a snake cell. Placement
// never avoids the snake, this is only used for diagnostics.
func (cm *CollisionManager) FoodOnBody(snake *entity.Snake, food *entity.Food) bool {
	for _, part := range snake.Body() {
		if part == food.Position {
			return true
		}
	}
	return false
}
