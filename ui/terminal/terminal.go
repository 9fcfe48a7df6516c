// Package terminal implements the game surface and input on a tcell screen.
// One grid cell is drawn as two terminal columns by one row.
package terminal

import (
	"classic-snake/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const eventBuffer = 64

type Terminal struct {
	screen   tcell.Screen
	cellSize int
	events   chan tcell.Event
	done     chan struct{}
}

// Open initialises the real terminal.
func Open(cellSize int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	return New(screen, cellSize)
}

// New takes ownership of screen and initialises it.
func New(screen tcell.Screen, cellSize int) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal screen")
	}
	screen.HideCursor()

	t := &Terminal{
		screen:   screen,
		cellSize: cellSize,
		events:   make(chan tcell.Event, eventBuffer),
		done:     make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump forwards screen events until the screen is finalised.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func style(c types.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func (t *Terminal) Clear(c types.Color) {
	t.screen.Fill(' ', style(c))
}

// FillRect paints every terminal cell covered by the pixel rectangle.
func (t *Terminal) FillRect(x, y, w, h int, c types.Color) {
	st := style(c)
	col0, col1 := x*2/t.cellSize, (x+w)*2/t.cellSize
	row0, row1 := y/t.cellSize, (y+h)/t.cellSize
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			t.screen.SetContent(col, row, ' ', nil, st)
		}
	}
}

// StrokeRect is a no-op: a one pixel outline is finer than a character cell.
func (t *Terminal) StrokeRect(x, y, w, h int, c types.Color) {}

func (t *Terminal) Present() {
	t.screen.Show()
}

// Poll drains pending terminal events without blocking.
func (t *Terminal) Poll() []types.Event {
	var out []types.Event
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if e, ok := keyEvent(ev); ok {
					out = append(out, e)
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return out
		}
	}
}

func keyEvent(ev *tcell.EventKey) (types.Event, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.DirectionEvent(types.Up), true
	case tcell.KeyDown:
		return types.DirectionEvent(types.Down), true
	case tcell.KeyLeft:
		return types.DirectionEvent(types.Left), true
	case tcell.KeyRight:
		return types.DirectionEvent(types.Right), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.QuitEvent(), true
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return types.QuitEvent(), true
		}
	}
	return types.Event{}, false
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	close(t.done)
	t.screen.Fini()
	return nil
}
