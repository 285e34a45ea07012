package locomotion

import (
	"testing"

	"ruins-game/internal/gameconfig"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func testConfig() gameconfig.Locomotion {
	return gameconfig.Locomotion{PhaseStep: 0.1, LegAmplitude: 0.5, ArmAmplitude: 0.3}
}

func TestAnimator_StartsIdle(t *testing.T) {
	a := NewAnimator(testConfig())
	assert.Equal(t, Idle, a.State())
	assert.Zero(t, a.Phase())
	assert.Equal(t, Pose{}, a.Pose())
}

func TestAnimator_WalkingAdvancesPhase(t *testing.T) {
	a := NewAnimator(testConfig())

	for i := 1; i <= 10; i++ {
		a.Animate(true)
		assert.InDelta(t, 0.1*float32(i), a.Phase(), 1e-5)
	}
	assert.Equal(t, Walking, a.State())
	assert.Equal(t, "walking", a.State().String())
}

func TestAnimator_ContralateralGait(t *testing.T) {
	a := NewAnimator(testConfig())
	for i := 0; i < 7; i++ {
		a.Animate(true)
	}
	p := a.Pose()
	phase := a.Phase()

	assert.InDelta(t, math32.Sin(phase)*0.5, p.LeftLeg, 1e-6)
	assert.InDelta(t, -p.LeftLeg, p.RightLeg, 1e-6, "legs are π apart")
	assert.InDelta(t, -p.LeftArm, p.RightArm, 1e-6, "arms are π apart")
	assert.InDelta(t, p.RightArm/0.3, p.LeftLeg/0.5, 1e-5, "right arm swings with left leg")
	assert.Less(t, math32.Abs(p.LeftArm), math32.Abs(p.LeftLeg), "arms swing less than legs")
}

func TestAnimator_StopResetsExactly(t *testing.T) {
	for _, ticks := range []int{1, 2, 17, 250} {
		a := NewAnimator(testConfig())
		for i := 0; i < ticks; i++ {
			a.Animate(true)
		}

		a.Animate(false)

		assert.Equal(t, Idle, a.State())
		assert.Equal(t, float32(0), a.Phase())
		assert.Equal(t, Pose{}, a.Pose())
	}
}

func TestAnimator_RestartBeginsFromZero(t *testing.T) {
	a := NewAnimator(testConfig())
	a.Animate(true)
	a.Animate(true)
	a.Animate(false)

	a.Animate(true)

	assert.InDelta(t, 0.1, a.Phase(), 1e-6)
}

func TestAnimator_ResetWhileWalking(t *testing.T) {
	a := NewAnimator(testConfig())
	a.Animate(true)

	a.Reset()

	assert.Equal(t, Idle, a.State())
	assert.Zero(t, a.Phase())
	assert.Equal(t, Pose{}, a.Pose())
}
