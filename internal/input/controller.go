package input

import (
	"ruins-game/internal/keybind"
	"ruins-game/internal/transform"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMouseSensitivity scales raw drag deltas (pixels) into radians.
const DefaultMouseSensitivity = 0.005

// Bindings resolves a logical action to its current physical key.
type Bindings interface {
	Key(action keybind.Action) string
}

// MouseMovement is the sensitivity-scaled drag delta of the current tick.
type MouseMovement struct {
	X, Y   float32
	Active bool
}

// Controller turns raw device events into held-key and drag state. Events arrive through
// Mailbox; Sample applies them once per tick, so the state read by the rest of the tick is
// stable.
type Controller struct {
	Mailbox Mailbox

	bindings    Bindings
	sensitivity float32

	held       map[string]bool
	dragActive bool
	dx, dy     float32
}

// NewController returns a controller reading action bindings from bindings.
func NewController(bindings Bindings, sensitivity float32) *Controller {
	if sensitivity == 0 {
		sensitivity = DefaultMouseSensitivity
	}
	return &Controller{
		bindings:    bindings,
		sensitivity: sensitivity,
		held:        make(map[string]bool),
	}
}

// Sample applies every queued event and returns how many context-menu requests were suppressed.
// Mouse deltas are not accumulated: the last move of the tick wins, a move while not dragging
// clears the delta, and a tick without moves reports zero.
func (c *Controller) Sample() (suppressed int) {
	c.dx, c.dy = 0, 0
	for _, ev := range c.Mailbox.Drain() {
		switch ev.Kind {
		case KeyDown:
			if k := keybind.NormalizeKey(ev.Key); k != "" {
				c.held[k] = true
			}
		case KeyUp:
			delete(c.held, keybind.NormalizeKey(ev.Key))
		case MouseDown:
			if ev.Button == DragButton {
				c.dragActive = true
			}
		case MouseUp:
			if ev.Button == DragButton {
				c.dragActive = false
				c.dx, c.dy = 0, 0
			}
		case MouseMove:
			if c.dragActive {
				c.dx, c.dy = ev.DX, ev.DY
			} else {
				c.dx, c.dy = 0, 0
			}
		case ContextMenu:
			if ev.Button == DragButton {
				suppressed++
			}
		}
	}
	return suppressed
}

// ReleaseAll clears held keys and drag state, e.g. when the window loses focus.
func (c *Controller) ReleaseAll() {
	clear(c.held)
	c.dragActive = false
	c.dx, c.dy = 0, 0
}

// IsKeyPressed reports whether the physical key is held.
func (c *Controller) IsKeyPressed(key string) bool {
	return c.held[keybind.NormalizeKey(key)]
}

// IsActionPressed reports whether the key currently bound to action is held.
// The binding is looked up on every call, so rebinding takes effect immediately.
func (c *Controller) IsActionPressed(action keybind.Action) bool {
	key := c.bindings.Key(action)
	if key == "" {
		return false
	}
	return c.held[key]
}

// DragActive reports whether the drag button is held.
func (c *Controller) DragActive() bool {
	return c.dragActive
}

// MouseMovement returns this tick's drag delta scaled by the sensitivity.
func (c *Controller) MouseMovement() MouseMovement {
	return MouseMovement{
		X:      c.dx * c.sensitivity,
		Y:      c.dy * c.sensitivity,
		Active: c.dragActive,
	}
}

// HandlePlayerMovement moves target according to the held movement actions, relative to the
// camera's horizontal facing. The held directions are summed without normalizing, so a
// diagonal step is speed*√2 long while an axial step is speed long. When the sum is non-zero
// target turns to face it. Returns whether any movement action was held.
func (c *Controller) HandlePlayerMovement(target *transform.Transform, camera *transform.Transform, speed float32) bool {
	forward, right := cameraBasis(camera)

	var dir mgl32.Vec3
	held := false
	if c.IsActionPressed(keybind.MoveForward) {
		dir = dir.Add(forward)
		held = true
	}
	if c.IsActionPressed(keybind.MoveBackward) {
		dir = dir.Sub(forward)
		held = true
	}
	if c.IsActionPressed(keybind.MoveLeft) {
		dir = dir.Sub(right)
		held = true
	}
	if c.IsActionPressed(keybind.MoveRight) {
		dir = dir.Add(right)
		held = true
	}
	if !held {
		return false
	}
	if l := dir.Len(); l > 0 {
		target.SetYaw(transform.YawOf(dir.Mul(1 / l)))
	}
	target.SetPosition(target.Position.Add(dir.Mul(speed)))
	return true
}

// cameraBasis returns the camera's forward direction flattened onto the XZ plane and the
// matching right vector. A camera looking straight down falls back to -Z forward.
func cameraBasis(camera *transform.Transform) (forward, right mgl32.Vec3) {
	f := camera.Forward()
	flat := mgl32.Vec3{f.X(), 0, f.Z()}
	l := flat.Len()
	if l < 1e-6 {
		forward = mgl32.Vec3{0, 0, -1}
	} else {
		forward = flat.Mul(1 / l)
	}
	right = forward.Cross(mgl32.Vec3{0, 1, 0})
	return forward, right
}
