// Package window implements the game surface and input on a raylib window.
package window

import (
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Window struct{}

// Open creates the raylib window. Close must be called to release it.
func Open(width, height int, title string) *Window {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), title)
	// Pacing is done by the game clock
	rl.SetTargetFPS(0)
	return &Window{}
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func (w *Window) Clear(c types.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(c))
}

func (w *Window) FillRect(x, y, width, height int, c types.Color) {
	rl.DrawRectangle(int32(x), int32(y), int32(width), int32(height), toRaylib(c))
}

func (w *Window) StrokeRect(x, y, width, height int, c types.Color) {
	rl.DrawRectangleLines(int32(x), int32(y), int32(width), int32(height), toRaylib(c))
}

// Present flips the frame. raylib polls input while ending the frame.
func (w *Window) Present() {
	rl.EndDrawing()
}

// Poll drains the key queue filled during the last frame.
func (w *Window) Poll() []types.Event {
	var events []types.Event
	if rl.WindowShouldClose() {
		events = append(events, types.QuitEvent())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if ev, ok := keyEvent(key); ok {
			events = append(events, ev)
		}
	}
	return events
}

func keyEvent(key int32) (types.Event, bool) {
	switch key {
	case rl.KeyUp:
		return types.DirectionEvent(types.Up), true
	case rl.KeyDown:
		return types.DirectionEvent(types.Down), true
	case rl.KeyLeft:
		return types.DirectionEvent(types.Left), true
	case rl.KeyRight:
		return types.DirectionEvent(types.Right), true
	}
	return types.Event{}, false
}

func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}
