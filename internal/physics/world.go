package physics

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Arena is the square play area [-HalfExtent, HalfExtent] on X and Z. Y is unbounded.
type Arena struct {
	HalfExtent float32
}

// Clamp returns p with X and Z clamped into the arena.
func (a Arena) Clamp(p mgl32.Vec3) mgl32.Vec3 {
	b := a.HalfExtent
	return mgl32.Vec3{mgl32.Clamp(p.X(), -b, b), p.Y(), mgl32.Clamp(p.Z(), -b, b)}
}

// Contains reports whether p lies inside the arena on X and Z (edges included).
func (a Arena) Contains(p mgl32.Vec3) bool {
	b := a.HalfExtent
	return p.X() >= -b && p.X() <= b && p.Z() >= -b && p.Z() <= b
}

// RandomPoint returns a point on Y=0 drawn uniformly from the arena using unit, which must
// return values in [0, 1).
func (a Arena) RandomPoint(unit func() float32) mgl32.Vec3 {
	b := a.HalfExtent
	return mgl32.Vec3{(unit()*2 - 1) * b, 0, (unit()*2 - 1) * b}
}

// StepClamped integrates body one tick and keeps it inside the arena.
func (a Arena) StepClamped(body *Body) {
	body.Step()
	body.Position = a.Clamp(body.Position)
}

// UnitSource adapts a *rand.Rand to the func() float32 form RandomPoint expects.
func UnitSource(r *rand.Rand) func() float32 {
	return r.Float32
}
