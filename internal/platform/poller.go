// Package platform turns raylib's polled device state into the discrete events the game
// consumes. It is the only place that reads the keyboard or mouse.
package platform

import (
	"ruins-game/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sink receives device events in arrival order.
type Sink interface {
	KeyDown(key string)
	KeyUp(key string)
	MouseDown(b input.MouseButton)
	MouseUp(b input.MouseButton)
	MouseMove(dx, dy float32)
	FocusLost()
}

var mouseButtons = []struct {
	rl  rl.MouseButton
	btn input.MouseButton
}{
	{rl.MouseButtonLeft, input.ButtonLeft},
	{rl.MouseButtonMiddle, input.ButtonMiddle},
	{rl.MouseButtonRight, input.ButtonRight},
}

// Poller diffs raylib input state once per frame and forwards the edges to a Sink.
type Poller struct {
	sink    Sink
	focused bool
}

func NewPoller(sink Sink) *Poller {
	return &Poller{sink: sink, focused: true}
}

// Poll must run once per frame after raylib has polled events (i.e. inside the frame loop).
func (p *Poller) Poll() {
	focused := rl.IsWindowFocused()
	if p.focused && !focused {
		p.sink.FocusLost()
	}
	p.focused = focused
	if !focused {
		return
	}

	for _, code := range keyCodes {
		name := keyNames[code]
		if rl.IsKeyPressed(code) {
			p.sink.KeyDown(name)
		}
		if rl.IsKeyReleased(code) {
			p.sink.KeyUp(name)
		}
	}

	for _, m := range mouseButtons {
		if rl.IsMouseButtonPressed(m.rl) {
			p.sink.MouseDown(m.btn)
		}
		if rl.IsMouseButtonReleased(m.rl) {
			p.sink.MouseUp(m.btn)
		}
	}

	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		p.sink.MouseMove(d.X, d.Y)
	}
}
