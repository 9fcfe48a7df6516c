package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	require.Equal(t, Down, Up.Reverse())
	require.Equal(t, Up, Down.Reverse())
	require.Equal(t, Right, Left.Reverse())
	require.Equal(t, Left, Right.Reverse())
}

func TestDefaultGridDimensions(t *testing.T) {
	g := DefaultGrid()
	require.Equal(t, 32, g.Cols())
	require.Equal(t, 24, g.Rows())
	require.Equal(t, Point{X: 320, Y: 240}, g.Center())
}

func TestCenterOddGrid(t *testing.T) {
	g := Grid{CellSize: 20, ScreenWidth: 100, ScreenHeight: 60}
	require.Equal(t, Point{X: 40, Y: 20}, g.Center())
}

func TestWrap(t *testing.T) {
	g := DefaultGrid()
	require.Equal(t, Point{X: 0, Y: 100}, g.Wrap(Point{X: 640, Y: 100}))
	require.Equal(t, Point{X: 620, Y: 100}, g.Wrap(Point{X: -20, Y: 100}))
	require.Equal(t, Point{X: 40, Y: 460}, g.Wrap(Point{X: 40, Y: -20}))
	require.Equal(t, Point{X: 40, Y: 0}, g.Wrap(Point{X: 40, Y: 480}))
	require.Equal(t, Point{X: 40, Y: 60}, g.Wrap(Point{X: 40, Y: 60}))
}

func TestContains(t *testing.T) {
	g := DefaultGrid()
	require.True(t, g.Contains(Point{X: 0, Y: 0}))
	require.True(t, g.Contains(Point{X: 620, Y: 460}))
	require.False(t, g.Contains(Point{X: 640, Y: 0}))
	require.False(t, g.Contains(Point{X: 0, Y: -20}))
	require.False(t, g.Contains(Point{X: 10, Y: 20}))
}

func TestAdd(t *testing.T) {
	p := Point{X: 40, Y: 40}
	require.Equal(t, Point{X: 60, Y: 40}, p.Add(Right, 20))
	require.Equal(t, Point{X: 40, Y: 20}, p.Add(Up, 20))
}
