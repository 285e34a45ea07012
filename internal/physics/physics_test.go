package physics

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestBody_StepAndStop(t *testing.T) {
	b := NewBody(mgl32.Vec3{1, 0, 1})
	b.Velocity = mgl32.Vec3{0.5, 0, -0.25}

	b.Step()
	b.Step()
	assert.Equal(t, mgl32.Vec3{2, 0, 0.5}, b.Position)
	assert.True(t, b.Moving(1e-4))

	b.Stop()
	b.Step()
	assert.Equal(t, mgl32.Vec3{2, 0, 0.5}, b.Position)
	assert.False(t, b.Moving(1e-4))
}

func TestBody_MovingUsesSquaredSpeed(t *testing.T) {
	b := NewBody(mgl32.Vec3{})
	b.Velocity = mgl32.Vec3{0.009, 0, 0}
	assert.False(t, b.Moving(1e-4), "0.009^2 is below 1e-4")
	b.Velocity = mgl32.Vec3{0.011, 0, 0}
	assert.True(t, b.Moving(1e-4))
}

func TestBody_SteerToward(t *testing.T) {
	b := NewBody(mgl32.Vec3{0, 2, 0})

	dir := b.SteerToward(mgl32.Vec3{3, 0, 4}, 0.5)

	assert.InDelta(t, 0.6, dir.X(), 1e-6)
	assert.Zero(t, dir.Y(), "steering ignores height")
	assert.InDelta(t, 0.8, dir.Z(), 1e-6)
	assert.InDelta(t, 0.5, b.Velocity.Len(), 1e-6)
}

func TestBody_SteerTowardSelfStops(t *testing.T) {
	b := NewBody(mgl32.Vec3{1, 0, 1})
	b.Velocity = mgl32.Vec3{1, 0, 0}

	dir := b.SteerToward(mgl32.Vec3{1, 5, 1}, 0.5)

	assert.Equal(t, mgl32.Vec3{}, dir)
	assert.Equal(t, mgl32.Vec3{}, b.Velocity)
}

func TestArena_Clamp(t *testing.T) {
	a := Arena{HalfExtent: 10}
	tests := []struct {
		in, want mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 0}},
		{mgl32.Vec3{11, 3, -11}, mgl32.Vec3{10, 3, -10}},
		{mgl32.Vec3{-10, -100, 10}, mgl32.Vec3{-10, -100, 10}},
	}
	for _, tt := range tests {
		got := a.Clamp(tt.in)
		assert.Equal(t, tt.want, got)
		assert.True(t, a.Contains(got))
	}
	assert.False(t, a.Contains(mgl32.Vec3{10.001, 0, 0}))
}

func TestArena_RandomPointInside(t *testing.T) {
	a := Arena{HalfExtent: 45}
	unit := UnitSource(rand.New(rand.NewSource(3)))
	for i := 0; i < 1000; i++ {
		p := a.RandomPoint(unit)
		assert.True(t, a.Contains(p))
		assert.Zero(t, p.Y())
	}
}

func TestArena_StepClamped(t *testing.T) {
	a := Arena{HalfExtent: 1}
	b := NewBody(mgl32.Vec3{0.9, 0, 0})
	b.Velocity = mgl32.Vec3{0.5, 0, -2}

	a.StepClamped(b)

	assert.Equal(t, mgl32.Vec3{1, 0, -1}, b.Position)
	assert.Equal(t, mgl32.Vec3{0.5, 0, -2}, b.Velocity, "clamping keeps velocity")
}
