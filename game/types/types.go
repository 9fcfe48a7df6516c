package types

// Point is the pixel position of the top-left corner of one grid cell.
type Point struct {
	X, Y int
}

// Add returns p moved by d steps of size cells.
func (p Point) Add(d Direction, size int) Point {
	return Point{X: p.X + d.X*size, Y: p.Y + d.Y*size}
}

// Direction is a unit vector on the grid.
type Direction struct {
	X, Y int
}

var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

type Color struct {
	R, G, B uint8
}

// Palette
var (
	BackgroundColor = Color{R: 0, G: 0, B: 0}
	BorderColor     = Color{R: 93, G: 216, B: 228}
	SnakeColor      = Color{R: 0, G: 255, B: 0}
	FoodColor       = Color{R: 255, G: 0, B: 0}
)

// Game constants
const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
	DefaultCellSize     = 20
	DefaultSpeed        = 20 // ticks per second
)

// Grid represents the playfield. All sizes are in pixels; the number of
// cells per axis is derived from the cell size.
type Grid struct {
	CellSize     int
	ScreenWidth  int
	ScreenHeight int
}

func DefaultGrid() Grid {
	return Grid{
		CellSize:     DefaultCellSize,
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
	}
}

func (g Grid) Cols() int {
	return g.ScreenWidth / g.CellSize
}

func (g Grid) Rows() int {
	return g.ScreenHeight / g.CellSize
}

// Center returns the cell in the middle of the grid.
func (g Grid) Center() Point {
	return Point{
		X: g.Cols() / 2 * g.CellSize,
		Y: g.Rows() / 2 * g.CellSize,
	}
}

// Wrap folds p back onto the screen, so leaving one edge re-enters at the
// opposite one. The modulus is taken in pixels, not cells.
func (g Grid) Wrap(p Point) Point {
	return Point{X: floorMod(p.X, g.ScreenWidth), Y: floorMod(p.Y, g.ScreenHeight)}
}

// Contains reports whether p is a cell-aligned position on the screen.
func (g Grid) Contains(p Point) bool {
	if p.X < 0 || p.X >= g.ScreenWidth || p.Y < 0 || p.Y >= g.ScreenHeight {
		return false
	}
	return p.X%g.CellSize == 0 && p.Y%g.CellSize == 0
}

func floorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// EventKind classifies input events.
type EventKind int

const (
	EventNone EventKind = iota
	EventDirection
	EventQuit
)

// Event is one discrete input event drained from a backend.
type Event struct {
	Kind      EventKind
	Direction Direction
}

func DirectionEvent(d Direction) Event {
	return Event{Kind: EventDirection, Direction: d}
}

func QuitEvent() Event {
	return Event{Kind: EventQuit}
}
