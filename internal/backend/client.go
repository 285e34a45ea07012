// Package backend talks to the game's REST API: player state, enemies, item pickup and reset.
// Every call is made off the frame loop; callers must not block a tick on it.
package backend

import (
	"context"
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrStatus is wrapped by HTTP when the server answers with a non-2xx status.
var ErrStatus = errors.New("backend: unexpected status")

// Client is the REST contract the game session depends on.
type Client interface {
	Player(ctx context.Context) (Player, error)
	Move(ctx context.Context, pos mgl32.Vec3) (Player, error)
	Enemies(ctx context.Context) ([]Enemy, error)
	Pickup(ctx context.Context, itemType string) (Player, error)
	Reset(ctx context.Context) (ResetResult, error)
}

type Player struct {
	X         float32  `json:"x"`
	Y         float32  `json:"y"`
	Z         float32  `json:"z"`
	Inventory []string `json:"inventory"`
}

func (p Player) Position() mgl32.Vec3 {
	return mgl32.Vec3{p.X, p.Y, p.Z}
}

type Enemy struct {
	Type string  `json:"type"`
	X    float32 `json:"x"`
	Y    float32 `json:"y"`
	Z    float32 `json:"z"`
}

func (e Enemy) Position() mgl32.Vec3 {
	return mgl32.Vec3{e.X, e.Y, e.Z}
}

// Item is a pickup lying in the world.
type Item struct {
	Type string  `json:"type"`
	X    float32 `json:"x"`
	Y    float32 `json:"y"`
	Z    float32 `json:"z"`
}

func (i Item) Position() mgl32.Vec3 {
	return mgl32.Vec3{i.X, i.Y, i.Z}
}

type ResetResult struct {
	Player  Player  `json:"player"`
	Enemies []Enemy `json:"enemies"`
	Items   []Item  `json:"items"`
}

// FirstOfType returns the first enemy of the given type.
func FirstOfType(enemies []Enemy, typ string) (Enemy, bool) {
	for _, e := range enemies {
		if e.Type == typ {
			return e, true
		}
	}
	return Enemy{}, false
}
