package entity

import (
	"classic-snake/game/types"

	"golang.org/x/exp/rand"
)

// Rand is the subset of *rand.Rand used to place food.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a food placement source seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

type Food struct {
	Position types.Point
	grid     types.Grid
	rng      Rand
}

// NewFood creates food at a random cell.
func NewFood(grid types.Grid, rng Rand) *Food {
	f := &Food{
		grid: grid,
		rng:  rng,
	}
	f.Relocate()
	return f
}

// Relocate moves the food to a uniformly random cell. The snake body is not
// consulted, so food can land on it.
func (f *Food) Relocate() {
	f.Position = types.Point{
		X: f.rng.Intn(f.grid.Cols()) * f.grid.CellSize,
		Y: f.rng.Intn(f.grid.Rows()) * f.grid.CellSize,
	}
}
