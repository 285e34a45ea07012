package physics

import "github.com/go-gl/mathgl/mgl32"

// Body is a kinematic point: a position moved by a per-tick velocity. There is no mass,
// gravity or collision; steering code writes Velocity and Step integrates it.
type Body struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
}

// NewBody returns a body at position with zero velocity.
func NewBody(position mgl32.Vec3) *Body {
	return &Body{Position: position}
}

// Step advances the body by one tick: Position += Velocity.
func (b *Body) Step() {
	b.Position = b.Position.Add(b.Velocity)
}

// Stop zeroes the velocity.
func (b *Body) Stop() {
	b.Velocity = mgl32.Vec3{}
}

// Moving reports whether the squared speed exceeds epsilon.
func (b *Body) Moving(epsilon float32) bool {
	return b.Velocity.Dot(b.Velocity) > epsilon
}

// SteerToward sets Velocity to the horizontal unit direction from the body to target scaled by speed
// and returns that direction. When target coincides with the body on XZ the velocity is zeroed
// and the zero vector is returned.
func (b *Body) SteerToward(target mgl32.Vec3, speed float32) mgl32.Vec3 {
	d := mgl32.Vec3{target.X() - b.Position.X(), 0, target.Z() - b.Position.Z()}
	l := d.Len()
	if l == 0 {
		b.Stop()
		return mgl32.Vec3{}
	}
	dir := d.Mul(1 / l)
	b.Velocity = dir.Mul(speed)
	return dir
}
