package locomotion

import (
	"ruins-game/internal/gameconfig"

	"github.com/chewxy/math32"
)

// State is the gait state.
type State int

const (
	Idle State = iota
	Walking
)

func (s State) String() string {
	if s == Walking {
		return "walking"
	}
	return "idle"
}

// Pose holds the limb rotations (radians about the limb's hinge axis) for one tick.
// For quadrupeds the arms are the front legs.
type Pose struct {
	LeftLeg, RightLeg float32
	LeftArm, RightArm float32
	Tail              float32
}

// Animator drives a contralateral sinusoidal gait from a per-tick "is moving" signal.
// Each limb pair is offset by π, and each arm swings with the opposite leg.
type Animator struct {
	cfg   gameconfig.Locomotion
	state State
	phase float32
	pose  Pose
}

// NewAnimator returns an idle animator.
func NewAnimator(cfg gameconfig.Locomotion) *Animator {
	return &Animator{cfg: cfg}
}

// Animate advances one tick. While moving, the phase grows by the configured step and the pose
// follows it; the first tick without movement snaps phase and every limb back to exactly zero.
func (a *Animator) Animate(moving bool) {
	if !moving {
		a.Reset()
		return
	}
	a.state = Walking
	a.phase += a.cfg.PhaseStep

	leg := math32.Sin(a.phase) * a.cfg.LegAmplitude
	arm := math32.Sin(a.phase) * a.cfg.ArmAmplitude
	a.pose = Pose{
		LeftLeg:  leg,
		RightLeg: math32.Sin(a.phase+math32.Pi) * a.cfg.LegAmplitude,
		LeftArm:  math32.Sin(a.phase+math32.Pi) * a.cfg.ArmAmplitude,
		RightArm: arm,
		Tail:     math32.Sin(2*a.phase) * a.cfg.ArmAmplitude,
	}
}

// Reset forces the rest pose immediately.
func (a *Animator) Reset() {
	a.state = Idle
	a.phase = 0
	a.pose = Pose{}
}

// State returns the current gait state.
func (a *Animator) State() State { return a.state }

// Phase returns the phase accumulator.
func (a *Animator) Phase() float32 { return a.phase }

// Pose returns the limb rotations of the last tick.
func (a *Animator) Pose() Pose { return a.pose }
