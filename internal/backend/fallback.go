package backend

import (
	"context"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Fallback tries Primary first; on an error it logs and answers from Secondary instead, unless
// ctx is already done.
// With a Local secondary the caller never sees an error.
type Fallback struct {
	Primary   Client
	Secondary Client
	Log       *slog.Logger
}

func (f *Fallback) Player(ctx context.Context) (Player, error) {
	p, err := f.Primary.Player(ctx)
	if f.useSecondary(ctx, "player", err) {
		return f.Secondary.Player(ctx)
	}
	return p, err
}

func (f *Fallback) Move(ctx context.Context, pos mgl32.Vec3) (Player, error) {
	p, err := f.Primary.Move(ctx, pos)
	if f.useSecondary(ctx, "move", err) {
		return f.Secondary.Move(ctx, pos)
	}
	return p, err
}

func (f *Fallback) Enemies(ctx context.Context) ([]Enemy, error) {
	e, err := f.Primary.Enemies(ctx)
	if f.useSecondary(ctx, "enemies", err) {
		return f.Secondary.Enemies(ctx)
	}
	return e, err
}

func (f *Fallback) Pickup(ctx context.Context, itemType string) (Player, error) {
	p, err := f.Primary.Pickup(ctx, itemType)
	if f.useSecondary(ctx, "pickup", err) {
		return f.Secondary.Pickup(ctx, itemType)
	}
	return p, err
}

func (f *Fallback) Reset(ctx context.Context) (ResetResult, error) {
	r, err := f.Primary.Reset(ctx)
	if f.useSecondary(ctx, "reset", err) {
		return f.Secondary.Reset(ctx)
	}
	return r, err
}

// useSecondary reports whether a failed primary call should be answered by Secondary, logging
// the failure when it is. A cancelled or expired ctx is the caller giving up, not the server
// being down, so its error is returned as is.
func (f *Fallback) useSecondary(ctx context.Context, call string, err error) bool {
	if err == nil || f.Secondary == nil || ctx.Err() != nil {
		return false
	}
	log := f.Log
	if log == nil {
		log = slog.Default()
	}
	log.Warn("backend unavailable, using local fallback", "call", call, "error", err)
	return true
}
