package ui

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"
)

// Surface is a fixed-size drawing target addressed in pixels.
type Surface interface {
	Clear(c types.Color)
	FillRect(x, y, w, h int, c types.Color)
	StrokeRect(x, y, w, h int, c types.Color)
	Present()
}

type Renderer struct {
	surface  Surface
	cellSize int
}

func NewRenderer(surface Surface, grid types.Grid) *Renderer {
	return &Renderer{
		surface:  surface,
		cellSize: grid.CellSize,
	}
}

// Draw renders one full frame: background, every body cell, the head again,
// then the food.
func (r *Renderer) Draw(snake *entity.Snake, food *entity.Food) {
	r.surface.Clear(types.BackgroundColor)

	for _, p := range snake.Body() {
		DrawCell(r.surface, p, r.cellSize, types.SnakeColor)
	}
	DrawCell(r.surface, snake.Head(), r.cellSize, types.SnakeColor)

	DrawCell(r.surface, food.Position, r.cellSize, types.FoodColor)

	r.surface.Present()
}

// DrawCell fills one grid cell and outlines it with the border colour.
func DrawCell(s Surface, p types.Point, size int, c types.Color) {
	s.FillRect(p.X, p.Y, size, size, c)
	s.StrokeRect(p.X, p.Y, size, size, types.BorderColor)
}
