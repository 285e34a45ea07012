// Package game runs one play session: it owns the controllers and entities and advances them
// in a fixed order once per tick. Backend calls run on goroutines and hand their results back
// to the loop, so a tick never waits on the network.
package game

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"ruins-game/internal/backend"
	"ruins-game/internal/camera"
	"ruins-game/internal/gameconfig"
	"ruins-game/internal/input"
	"ruins-game/internal/keybind"
	"ruins-game/internal/locomotion"
	"ruins-game/internal/rebind"
	"ruins-game/internal/transform"
	"ruins-game/internal/wolf"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"
)

const (
	ResetKey         = "f5"
	ResetBindingsKey = "f9"

	wolfEnemyType = "wolf"
	resultBuffer  = 64
)

// Session is not safe for concurrent use. Event methods (KeyDown, MouseDown, ...) and Tick
// must be called from the loop goroutine.
type Session struct {
	cfg    gameconfig.Config
	log    *slog.Logger
	client backend.Client

	bindings *keybind.Store
	panel    *rebind.Presenter
	input    *input.Controller

	player     *transform.Transform
	playerGait *locomotion.Animator
	cam        *transform.Transform
	orbit      *camera.Orbit
	wolf       *wolf.Behavior

	inventory     []string
	items         []backend.Item
	showInventory bool
	showControls  bool
	prevHeld      map[keybind.Action]bool

	wasMoving    bool
	lastSyncMs   float64
	syncedPos    mgl32.Vec3
	synced       bool
	moveInFlight bool
	pendingMove  *mgl32.Vec3

	// generation is bumped by Reset; results of calls started before it are dropped.
	generation uint64

	ctx      context.Context
	cancel   context.CancelFunc
	results  chan result
	inflight sync.WaitGroup
}

// result is a finished backend call waiting to be applied on the loop. apply is nil when the
// call failed; done always runs.
type result struct {
	generation uint64
	apply      func()
	done       func()
}

// NewSession builds a session with the player at the origin and the wolf at its spawn.
// unit supplies uniform randoms in [0, 1) to the wolf.
func NewSession(cfg gameconfig.Config, bindings *keybind.Store, client backend.Client, unit func() float32, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		cfg:        cfg,
		log:        log,
		client:     client,
		bindings:   bindings,
		panel:      rebind.NewPresenter(bindings, log),
		input:      input.NewController(bindings, cfg.Camera.MouseSensitivity),
		player:     transform.New(mgl32.Vec3{}),
		playerGait: locomotion.NewAnimator(cfg.Locomotion),
		cam:        transform.New(cfg.Camera.Offset),
		wolf:       wolf.New(cfg.Wolf, cfg.Locomotion, unit, log),
		inventory:  []string{},
		items:      backend.DefaultItems(),
		prevHeld:   make(map[keybind.Action]bool),
		ctx:        ctx,
		cancel:     cancel,
		results:    make(chan result, resultBuffer),
	}
	s.orbit = camera.NewOrbit(s.cam, s.player, cfg.Camera)
	s.orbit.Update(input.MouseMovement{})
	return s
}

// Bootstrap fetches the player and the enemy list concurrently and applies them. On error the
// session keeps its local defaults; the error is returned for logging.
func (s *Session) Bootstrap(ctx context.Context) error {
	var (
		p       backend.Player
		enemies []backend.Enemy
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = s.client.Player(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		enemies, err = s.client.Enemies(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Warn("bootstrap failed, using local state", "error", err)
		return err
	}

	s.player.SetPosition(p.Position())
	s.setInventory(p.Inventory)
	if e, ok := backend.FirstOfType(enemies, wolfEnemyType); ok {
		s.wolf.Place(e.Position())
	}
	s.orbit.Update(input.MouseMovement{})
	s.log.Info("session bootstrapped", "player", p.Position(), "enemies", len(enemies))
	return nil
}

// KeyDown routes a key press: the rebinding panel sees it first, then the session shortcuts,
// then gameplay input.
func (s *Session) KeyDown(key string) {
	if s.panel.HandleKey(key) {
		return
	}
	switch keybind.NormalizeKey(key) {
	case ResetKey:
		s.Reset()
		return
	case ResetBindingsKey:
		s.bindings.Reset()
		return
	}
	s.input.Mailbox.Post(input.Event{Kind: input.KeyDown, Key: key})
}

func (s *Session) KeyUp(key string) {
	s.input.Mailbox.Post(input.Event{Kind: input.KeyUp, Key: key})
}

// MouseDown forwards the press to input. A left click while the panel is open closes it.
func (s *Session) MouseDown(b input.MouseButton) {
	if b == input.ButtonLeft && s.panel.IsOpen() {
		s.panel.ClickOutside()
	}
	s.input.Mailbox.Post(input.Event{Kind: input.MouseDown, Button: b})
}

func (s *Session) MouseUp(b input.MouseButton) {
	s.input.Mailbox.Post(input.Event{Kind: input.MouseUp, Button: b})
}

func (s *Session) MouseMove(dx, dy float32) {
	s.input.Mailbox.Post(input.Event{Kind: input.MouseMove, DX: dx, DY: dy})
}

// FocusLost releases everything held so keys do not stick after the window loses focus.
func (s *Session) FocusLost() {
	s.input.ReleaseAll()
	clear(s.prevHeld)
}

// Tick advances the session by one frame. nowMs is wall-clock milliseconds.
func (s *Session) Tick(nowMs float64) {
	s.input.Sample()
	s.orbit.Update(s.input.MouseMovement())

	moved := s.input.HandlePlayerMovement(s.player, s.cam, s.cfg.Player.Speed)
	s.playerGait.Animate(moved)

	s.wolf.Update(s.player.Position, nowMs)

	if s.pressedOnce(keybind.ToggleInventory) {
		s.showInventory = !s.showInventory
	}
	if s.pressedOnce(keybind.ToggleControls) {
		s.showControls = !s.showControls
	}
	if s.pressedOnce(keybind.Interact) {
		s.interact()
	}

	s.drain()
	switch {
	case moved:
		s.syncPosition(nowMs, false)
	case s.wasMoving:
		s.syncPosition(nowMs, true)
	}
	s.wasMoving = moved
}

// pressedOnce reports whether action went from released to held this tick.
func (s *Session) pressedOnce(action keybind.Action) bool {
	held := s.input.IsActionPressed(action)
	was := s.prevHeld[action]
	s.prevHeld[action] = held
	return held && !was
}

// interact picks up the nearest item within reach. The inventory updates immediately and the
// server's answer replaces it when it arrives.
func (s *Session) interact() {
	idx := -1
	best := s.cfg.Player.PickupRadius
	for i, it := range s.items {
		if d := transform.HorizontalDistance(s.player.Position, it.Position()); d <= best {
			idx, best = i, d
		}
	}
	if idx < 0 {
		s.log.Debug("nothing to pick up")
		return
	}
	item := s.items[idx]
	s.items = slices.Delete(s.items, idx, idx+1)
	s.inventory = append(s.inventory, item.Type)
	s.log.Info("picked up item", "item", item.Type)

	s.call("pickup", nil, func(ctx context.Context) (func(), error) {
		p, err := s.client.Pickup(ctx, item.Type)
		if err != nil {
			return nil, err
		}
		return func() { s.setInventory(p.Inventory) }, nil
	})
}

// syncPosition reports the player's position at most once per MoveSyncInterval while moving.
// final bypasses the throttle so the resting position always reaches the server.
func (s *Session) syncPosition(nowMs float64, final bool) {
	interval := float64(s.cfg.Backend.MoveSyncInterval) / float64(time.Millisecond)
	if !final && s.synced && nowMs-s.lastSyncMs < interval {
		return
	}
	pos := s.player.Position
	if s.synced && pos == s.syncedPos {
		return
	}
	s.lastSyncMs, s.syncedPos, s.synced = nowMs, pos, true
	s.sendMove(pos)
}

// sendMove keeps at most one move request in flight so the server sees positions in order.
// Positions reported meanwhile collapse into the latest one, sent when the current call ends.
func (s *Session) sendMove(pos mgl32.Vec3) {
	if s.moveInFlight {
		s.pendingMove = &pos
		return
	}
	s.moveInFlight = true
	s.call("move", s.moveFinished, func(ctx context.Context) (func(), error) {
		p, err := s.client.Move(ctx, pos)
		if err != nil {
			return nil, err
		}
		return func() { s.setInventory(p.Inventory) }, nil
	})
}

func (s *Session) moveFinished() {
	s.moveInFlight = false
	if next := s.pendingMove; next != nil {
		s.pendingMove = nil
		s.sendMove(*next)
	}
}

// Reset puts the session back to its starting state and asks the server to do the same. The
// server's answer replaces inventory and items; results of earlier calls are discarded.
func (s *Session) Reset() {
	s.orbit.ResetRotation()
	s.player.SetPosition(mgl32.Vec3{})
	s.player.SetYaw(0)
	s.playerGait.Reset()
	s.wolf.Reset()
	s.input.ReleaseAll()
	clear(s.prevHeld)
	s.inventory = []string{}
	s.items = backend.DefaultItems()
	s.wasMoving = false
	s.synced = false
	s.pendingMove = nil
	s.generation++
	s.orbit.Update(input.MouseMovement{})
	s.log.Info("game reset", "generation", s.generation)

	s.call("reset", nil, func(ctx context.Context) (func(), error) {
		r, err := s.client.Reset(ctx)
		if err != nil {
			return nil, err
		}
		return func() {
			s.setInventory(r.Player.Inventory)
			if r.Items != nil {
				s.items = slices.Clone(r.Items)
			}
		}, nil
	})
}

// call runs fn off the loop. A successful result is applied by a later drain unless Reset ran
// in between; failures are logged and dropped. done, if set, runs on the loop either way.
func (s *Session) call(name string, done func(), fn func(ctx context.Context) (func(), error)) {
	gen := s.generation
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		apply, err := fn(s.ctx)
		if err != nil {
			if s.ctx.Err() == nil {
				s.log.Warn("backend call failed", "call", name, "error", err)
			}
			apply = nil
		}
		if apply == nil && done == nil {
			return
		}
		select {
		case s.results <- result{generation: gen, apply: apply, done: done}:
		case <-s.ctx.Done():
		}
	}()
}

// drain applies every result that has arrived without waiting for more.
func (s *Session) drain() {
	for {
		select {
		case r := <-s.results:
			if r.apply != nil {
				if r.generation == s.generation {
					r.apply()
				} else {
					s.log.Debug("dropped backend result from before reset", "generation", r.generation)
				}
			}
			if r.done != nil {
				r.done()
			}
		default:
			return
		}
	}
}

// Wait blocks until every backend call started so far has finished and queued its result.
func (s *Session) Wait() {
	s.inflight.Wait()
}

// Close cancels outstanding backend calls and waits for them to return.
func (s *Session) Close() {
	s.cancel()
	s.inflight.Wait()
}

func (s *Session) setInventory(items []string) {
	if items == nil {
		items = []string{}
	}
	s.inventory = slices.Clone(items)
}

func (s *Session) Bindings() *keybind.Store { return s.bindings }

func (s *Session) Panel() *rebind.Presenter { return s.panel }

func (s *Session) Orbit() *camera.Orbit { return s.orbit }

func (s *Session) Wolf() *wolf.Behavior { return s.wolf }

func (s *Session) Player() *transform.Transform { return s.player }
