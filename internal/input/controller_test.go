package input

import (
	"testing"

	"ruins-game/internal/keybind"
	"ruins-game/internal/transform"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController() (*Controller, *keybind.Store) {
	store := keybind.NewStore(nil, nil)
	return NewController(store, 0.01), store
}

func press(c *Controller, keys ...string) {
	for _, k := range keys {
		c.Mailbox.Post(Event{Kind: KeyDown, Key: k})
	}
	c.Sample()
}

// behindCamera sits behind the origin on +Z looking toward -Z.
func behindCamera() *transform.Transform {
	cam := transform.New(mgl32.Vec3{0, 5, 10})
	cam.LookAt(mgl32.Vec3{0, 1, 0})
	return cam
}

func TestController_KeyStateIsCaseInsensitive(t *testing.T) {
	c, _ := newTestController()

	press(c, "W")
	assert.True(t, c.IsKeyPressed("w"))
	assert.True(t, c.IsActionPressed(keybind.MoveForward))

	c.Mailbox.Post(Event{Kind: KeyUp, Key: "w"})
	c.Sample()
	assert.False(t, c.IsKeyPressed("W"))
	assert.False(t, c.IsActionPressed(keybind.MoveForward))
}

func TestController_RebindTakesEffectImmediately(t *testing.T) {
	c, store := newTestController()
	press(c, "t")
	require.False(t, c.IsActionPressed(keybind.MoveForward))

	store.Update(keybind.MoveForward, "t")

	assert.True(t, c.IsActionPressed(keybind.MoveForward))
}

func TestController_UnknownActionIsNeverPressed(t *testing.T) {
	c, _ := newTestController()
	press(c, "w", "")
	assert.False(t, c.IsActionPressed(keybind.Action("jump")))
}

func TestController_MouseDragDeltas(t *testing.T) {
	c, _ := newTestController()

	c.Mailbox.Post(Event{Kind: MouseMove, DX: 50, DY: 50})
	c.Sample()
	assert.Equal(t, MouseMovement{}, c.MouseMovement(), "moves without drag are ignored")

	c.Mailbox.Post(Event{Kind: MouseDown, Button: ButtonLeft})
	c.Mailbox.Post(Event{Kind: MouseMove, DX: 50, DY: 50})
	c.Sample()
	assert.False(t, c.MouseMovement().Active, "left button does not drag")

	c.Mailbox.Post(Event{Kind: MouseDown, Button: ButtonRight})
	c.Mailbox.Post(Event{Kind: MouseMove, DX: 10, DY: -4})
	c.Mailbox.Post(Event{Kind: MouseMove, DX: 3, DY: 2})
	c.Sample()
	mm := c.MouseMovement()
	assert.True(t, mm.Active)
	assert.InDelta(t, 0.03, mm.X, 1e-6, "last move wins, no accumulation")
	assert.InDelta(t, 0.02, mm.Y, 1e-6)

	c.Sample()
	assert.Equal(t, MouseMovement{Active: true}, c.MouseMovement(), "delta lasts one tick")

	c.Mailbox.Post(Event{Kind: MouseUp, Button: ButtonRight})
	c.Sample()
	assert.False(t, c.DragActive())
}

func TestController_ContextMenuSuppressedForDragButton(t *testing.T) {
	c, _ := newTestController()
	c.Mailbox.Post(Event{Kind: ContextMenu, Button: ButtonRight})
	c.Mailbox.Post(Event{Kind: ContextMenu, Button: ButtonLeft})
	assert.Equal(t, 1, c.Sample())
	assert.Zero(t, c.Mailbox.Len())
}

func TestController_ReleaseAll(t *testing.T) {
	c, _ := newTestController()
	c.Mailbox.Post(Event{Kind: MouseDown, Button: ButtonRight})
	press(c, "w", "a")

	c.ReleaseAll()

	assert.False(t, c.IsKeyPressed("w"))
	assert.False(t, c.DragActive())
}

func TestHandlePlayerMovement_NothingHeld(t *testing.T) {
	c, _ := newTestController()
	player := transform.New(mgl32.Vec3{1, 0, 1})

	moved := c.HandlePlayerMovement(player, behindCamera(), 0.5)

	assert.False(t, moved)
	assert.Equal(t, mgl32.Vec3{1, 0, 1}, player.Position)
}

func TestHandlePlayerMovement_Directions(t *testing.T) {
	tests := []struct {
		key     string
		wantPos mgl32.Vec3
		wantYaw float32
	}{
		{"w", mgl32.Vec3{0, 0, -1}, math32.Pi},
		{"s", mgl32.Vec3{0, 0, 1}, 0},
		{"a", mgl32.Vec3{-1, 0, 0}, -math32.Pi / 2},
		{"d", mgl32.Vec3{1, 0, 0}, math32.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c, _ := newTestController()
			press(c, tt.key)
			player := transform.New(mgl32.Vec3{})

			require.True(t, c.HandlePlayerMovement(player, behindCamera(), 1))

			for i := 0; i < 3; i++ {
				assert.InDelta(t, tt.wantPos[i], player.Position[i], 1e-5)
			}
			assert.InDelta(t, tt.wantYaw, player.Yaw, 1e-5)
		})
	}
}

func TestHandlePlayerMovement_DiagonalIsFasterBySqrt2(t *testing.T) {
	const speed = 0.25

	axial, _ := newTestController()
	press(axial, "w")
	p1 := transform.New(mgl32.Vec3{})
	axial.HandlePlayerMovement(p1, behindCamera(), speed)

	diagonal, _ := newTestController()
	press(diagonal, "w", "d")
	p2 := transform.New(mgl32.Vec3{})
	diagonal.HandlePlayerMovement(p2, behindCamera(), speed)

	assert.InDelta(t, speed, p1.Position.Len(), 1e-6)
	assert.InDelta(t, speed*math32.Sqrt2, p2.Position.Len(), 1e-6)
	assert.InDelta(t, math32.Sqrt2, p2.Position.Len()/p1.Position.Len(), 1e-5)
	assert.InDelta(t, 3*math32.Pi/4, p2.Yaw, 1e-5)
}

func TestHandlePlayerMovement_OpposingKeysCancel(t *testing.T) {
	c, _ := newTestController()
	press(c, "w", "s")
	player := transform.New(mgl32.Vec3{2, 0, 2})
	player.SetYaw(1)

	moved := c.HandlePlayerMovement(player, behindCamera(), 1)

	assert.True(t, moved, "actions were held even though they cancel")
	assert.Equal(t, mgl32.Vec3{2, 0, 2}, player.Position)
	assert.Equal(t, float32(1), player.Yaw)
}

func TestHandlePlayerMovement_TopDownCameraFallsBack(t *testing.T) {
	c, _ := newTestController()
	press(c, "w")
	cam := transform.New(mgl32.Vec3{0, 10, 0})
	cam.LookAt(mgl32.Vec3{0, 0, 0})
	player := transform.New(mgl32.Vec3{})

	c.HandlePlayerMovement(player, cam, 1)

	assert.False(t, math32.IsNaN(player.Position.X()))
	assert.InDelta(t, -1, player.Position.Z(), 1e-6)
}
