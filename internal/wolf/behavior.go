package wolf

import (
	"log/slog"

	"ruins-game/internal/gameconfig"
	"ruins-game/internal/locomotion"
	"ruins-game/internal/physics"
	"ruins-game/internal/transform"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode is the wolf's behavior for the current tick. It is derived from the distance to the
// player every tick; there is no hysteresis band.
type Mode int

const (
	Wander Mode = iota
	Follow
)

func (m Mode) String() string {
	if m == Follow {
		return "follow"
	}
	return "wander"
}

// Indicator is the cosmetic marker shown above the wolf while the player is in range.
type Indicator struct {
	Visible bool
	Scale   float32
}

const (
	indicatorPulse     = 0.2
	indicatorFrequency = 0.005 // radians per millisecond
)

// Behavior is the wolf's steering controller. Each Update picks a velocity from the distance
// to the player, integrates it, keeps the wolf inside the arena and drives its gait.
type Behavior struct {
	cfg   gameconfig.Wolf
	arena physics.Arena
	unit  func() float32
	log   *slog.Logger

	body      physics.Body
	xf        *transform.Transform
	animator  *locomotion.Animator
	mode      Mode
	target    mgl32.Vec3
	nextTurn  float64
	indicator Indicator
}

// New returns a wolf at cfg.Spawn. unit supplies uniform randoms in [0, 1) for wander targets
// and delays; log may be nil.
func New(cfg gameconfig.Wolf, gait gameconfig.Locomotion, unit func() float32, log *slog.Logger) *Behavior {
	if log == nil {
		log = slog.Default()
	}
	b := &Behavior{
		cfg:      cfg,
		arena:    physics.Arena{HalfExtent: cfg.ArenaHalfExtent},
		unit:     unit,
		log:      log,
		xf:       transform.New(cfg.Spawn),
		animator: locomotion.NewAnimator(gait),
	}
	b.Reset()
	return b
}

// Update advances the wolf one tick against the player's position at nowMs (wall-clock
// milliseconds, used for wander deadlines and the indicator pulse).
func (b *Behavior) Update(player mgl32.Vec3, nowMs float64) {
	dist := transform.HorizontalDistance(b.body.Position, player)

	mode := Wander
	if dist < b.cfg.FollowTriggerRadius {
		mode = Follow
	}
	if mode != b.mode {
		b.log.Debug("wolf mode changed", "from", b.mode, "to", mode, "distance", dist)
		b.mode = mode
	}

	switch {
	case mode == Follow && dist < b.cfg.FollowStopRadius:
		b.body.Stop()
	case mode == Follow:
		b.face(b.body.SteerToward(player, b.cfg.FollowSpeed))
	case nowMs >= b.nextTurn:
		b.target = b.arena.RandomPoint(b.unit)
		b.face(b.body.SteerToward(b.target, b.cfg.WanderSpeed))
		b.nextTurn = nowMs + b.cfg.WanderMinMs + float64(b.unit())*(b.cfg.WanderMaxMs-b.cfg.WanderMinMs)
	}

	b.arena.StepClamped(&b.body)
	b.xf.SetPosition(b.body.Position)
	b.animator.Animate(b.body.Moving(b.cfg.IdleEpsilon))

	b.indicator.Visible = mode == Follow
	b.indicator.Scale = 1
	if b.indicator.Visible {
		b.indicator.Scale = 1 + indicatorPulse*math32.Sin(float32(nowMs*indicatorFrequency))
	}
}

// Reset puts the wolf back at its spawn: zero velocity, hidden indicator, not following,
// rest pose, and a wander deadline that has already passed.
func (b *Behavior) Reset() {
	b.body = physics.Body{Position: b.arena.Clamp(b.cfg.Spawn)}
	b.xf.SetPosition(b.body.Position)
	b.xf.SetYaw(b.cfg.SpawnYaw)
	b.animator.Reset()
	b.mode = Wander
	b.target = b.body.Position
	b.nextTurn = 0
	b.indicator = Indicator{Scale: 1}
}

// Place moves the wolf to p (clamped to the arena) without changing its velocity.
func (b *Behavior) Place(p mgl32.Vec3) {
	b.body.Position = b.arena.Clamp(p)
	b.xf.SetPosition(b.body.Position)
}

func (b *Behavior) face(dir mgl32.Vec3) {
	if dir.X() == 0 && dir.Z() == 0 {
		return
	}
	b.xf.SetYaw(transform.YawOf(dir))
}

// Mode returns the mode chosen by the last Update.
func (b *Behavior) Mode() Mode { return b.mode }

// Following reports whether the wolf is in Follow mode.
func (b *Behavior) Following() bool { return b.mode == Follow }

// Position returns the wolf's position.
func (b *Behavior) Position() mgl32.Vec3 { return b.body.Position }

// Velocity returns the per-tick velocity.
func (b *Behavior) Velocity() mgl32.Vec3 { return b.body.Velocity }

// Transform returns the transform the renderer reads.
func (b *Behavior) Transform() *transform.Transform { return b.xf }

// WanderTarget returns the last random destination.
func (b *Behavior) WanderTarget() mgl32.Vec3 { return b.target }

// NextTurnMs returns the wander deadline in milliseconds.
func (b *Behavior) NextTurnMs() float64 { return b.nextTurn }

// Indicator returns the follow marker state.
func (b *Behavior) Indicator() Indicator { return b.indicator }

// Gait returns the wolf's locomotion animator.
func (b *Behavior) Gait() *locomotion.Animator { return b.animator }
