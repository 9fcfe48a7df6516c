package entity

import (
	"testing"

	"classic-snake/game/types"

	"github.com/stretchr/testify/require"
)

type scriptedRand struct {
	values []int
	calls  []int
}

func (r *scriptedRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

func TestNewFoodRelocates(t *testing.T) {
	rng := &scriptedRand{values: []int{3, 7}}
	f := NewFood(types.DefaultGrid(), rng)
	require.Equal(t, types.Point{X: 60, Y: 140}, f.Position)
	require.Equal(t, []int{32, 24}, rng.calls)
}

func TestRelocateStaysOnGrid(t *testing.T) {
	g := types.DefaultGrid()
	f := NewFood(g, NewRand(42))
	for i := 0; i < 1000; i++ {
		f.Relocate()
		require.True(t, g.Contains(f.Position), "off grid: %+v", f.Position)
		require.Zero(t, f.Position.X%g.CellSize)
		require.Zero(t, f.Position.Y%g.CellSize)
	}
}

func TestRelocateEdges(t *testing.T) {
	g := types.DefaultGrid()
	rng := &scriptedRand{values: []int{0, 0, 31, 23}}
	f := NewFood(g, rng)
	require.Equal(t, types.Point{X: 0, Y: 0}, f.Position)
	f.Relocate()
	require.Equal(t, types.Point{X: 620, Y: 460}, f.Position)
}
