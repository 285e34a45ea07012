package backend

import (
	"context"
	"slices"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultItems is the item layout of a fresh world.
func DefaultItems() []Item {
	return []Item{
		{Type: "herb", X: 6, Z: -4},
		{Type: "stone", X: -8, Z: 5},
		{Type: "bone", X: 3, Z: 12},
	}
}

// Local is an in-process stand-in for the server. It answers deterministically and never
// fails, so it serves both offline play and the fallback path. Safe for concurrent use.
type Local struct {
	mu     sync.Mutex
	player Player
	spawn  mgl32.Vec3
}

// NewLocal returns a world with the player at the origin and one wolf at wolfSpawn.
func NewLocal(wolfSpawn mgl32.Vec3) *Local {
	return &Local{player: Player{Inventory: []string{}}, spawn: wolfSpawn}
}

func (l *Local) Player(context.Context) (Player, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot(), nil
}

func (l *Local) Move(_ context.Context, pos mgl32.Vec3) (Player, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.player.X, l.player.Y, l.player.Z = pos.X(), pos.Y(), pos.Z()
	return l.snapshot(), nil
}

func (l *Local) Enemies(context.Context) ([]Enemy, error) {
	return []Enemy{{Type: "wolf", X: l.spawn.X(), Y: l.spawn.Y(), Z: l.spawn.Z()}}, nil
}

func (l *Local) Pickup(_ context.Context, itemType string) (Player, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if itemType != "" {
		l.player.Inventory = append(l.player.Inventory, itemType)
	}
	return l.snapshot(), nil
}

func (l *Local) Reset(ctx context.Context) (ResetResult, error) {
	l.mu.Lock()
	l.player = Player{Inventory: []string{}}
	p := l.snapshot()
	l.mu.Unlock()

	enemies, _ := l.Enemies(ctx)
	return ResetResult{Player: p, Enemies: enemies, Items: DefaultItems()}, nil
}

func (l *Local) snapshot() Player {
	p := l.player
	p.Inventory = slices.Clone(l.player.Inventory)
	if p.Inventory == nil {
		p.Inventory = []string{}
	}
	return p
}
