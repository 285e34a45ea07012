package transform

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the position/orientation pair the renderer reads each frame for an entity or camera.
// Yaw is rotation about +Y in radians (0 faces +Z). LookTarget is the last point passed to LookAt;
// cameras use it to derive their forward direction.
type Transform struct {
	Position   mgl32.Vec3
	Yaw        float32
	LookTarget mgl32.Vec3
}

// New returns a transform at position facing +Z and looking one unit ahead.
func New(position mgl32.Vec3) *Transform {
	return &Transform{
		Position:   position,
		LookTarget: position.Add(mgl32.Vec3{0, 0, 1}),
	}
}

// SetPosition moves the transform without touching its orientation.
func (t *Transform) SetPosition(p mgl32.Vec3) {
	t.Position = p
}

// SetYaw sets rotation about the vertical axis.
func (t *Transform) SetYaw(yaw float32) {
	t.Yaw = yaw
}

// LookAt points the transform at p. Yaw follows the horizontal component of the direction;
// when p is straight above or below (or equal to) the position, yaw is left unchanged.
func (t *Transform) LookAt(p mgl32.Vec3) {
	t.LookTarget = p
	d := p.Sub(t.Position)
	if d.X() == 0 && d.Z() == 0 {
		return
	}
	t.Yaw = YawOf(d)
}

// Forward returns the normalized direction from Position to LookTarget, or +Z when they coincide.
func (t *Transform) Forward() mgl32.Vec3 {
	d := t.LookTarget.Sub(t.Position)
	l := d.Len()
	if l == 0 {
		return mgl32.Vec3{0, 0, 1}
	}
	return d.Mul(1 / l)
}

// YawOf returns the yaw (rotation about +Y, 0 along +Z) that faces along d's horizontal component.
func YawOf(d mgl32.Vec3) float32 {
	return math32.Atan2(d.X(), d.Z())
}

// HorizontalDistance is the distance between a and b on the XZ plane.
func HorizontalDistance(a, b mgl32.Vec3) float32 {
	dx := b.X() - a.X()
	dz := b.Z() - a.Z()
	return math32.Sqrt(dx*dx + dz*dz)
}
