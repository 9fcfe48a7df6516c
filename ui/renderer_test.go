package ui

import (
	"fmt"
	"testing"

	"classic-snake/game/entity"
	"classic-snake/game/types"

	"github.com/stretchr/testify/require"
)

type recordingSurface struct {
	ops []string
}

func (s *recordingSurface) Clear(c types.Color) {
	s.ops = append(s.ops, fmt.Sprintf("clear %v", c))
}

func (s *recordingSurface) FillRect(x, y, w, h int, c types.Color) {
	s.ops = append(s.ops, fmt.Sprintf("fill %d,%d %dx%d %v", x, y, w, h, c))
}

func (s *recordingSurface) StrokeRect(x, y, w, h int, c types.Color) {
	s.ops = append(s.ops, fmt.Sprintf("stroke %d,%d %dx%d %v", x, y, w, h, c))
}

func (s *recordingSurface) Present() {
	s.ops = append(s.ops, "present")
}

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

func cellOps(p types.Point, c types.Color) []string {
	return []string{
		fmt.Sprintf("fill %d,%d 20x20 %v", p.X, p.Y, c),
		fmt.Sprintf("stroke %d,%d 20x20 %v", p.X, p.Y, types.BorderColor),
	}
}

func TestDrawOrder(t *testing.T) {
	g := types.DefaultGrid()
	snake := entity.NewSnake(g)
	snake.Grow()
	snake.Advance()
	food := entity.NewFood(g, zeroRand{})

	surface := &recordingSurface{}
	NewRenderer(surface, g).Draw(snake, food)

	want := []string{fmt.Sprintf("clear %v", types.BackgroundColor)}
	want = append(want, cellOps(types.Point{X: 340, Y: 240}, types.SnakeColor)...)
	want = append(want, cellOps(types.Point{X: 320, Y: 240}, types.SnakeColor)...)
	// head drawn a second time
	want = append(want, cellOps(types.Point{X: 340, Y: 240}, types.SnakeColor)...)
	want = append(want, cellOps(types.Point{X: 0, Y: 0}, types.FoodColor)...)
	want = append(want, "present")

	require.Equal(t, want, surface.ops)
}

func TestDrawCell(t *testing.T) {
	surface := &recordingSurface{}
	DrawCell(surface, types.Point{X: 60, Y: 80}, 20, types.FoodColor)
	require.Equal(t, cellOps(types.Point{X: 60, Y: 80}, types.FoodColor), surface.ops)
}
