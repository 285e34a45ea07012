package camera

import (
	"ruins-game/internal/gameconfig"
	"ruins-game/internal/input"
	"ruins-game/internal/transform"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Orbit keeps a camera on a sphere around a moving target. Yaw turns around +Y (0 puts the
// camera on the target's +Z side); pitch is the polar angle from +Y and is always kept inside
// [MinPolarAngle, MaxPolarAngle].
type Orbit struct {
	camera *transform.Transform
	target *transform.Transform

	offset     mgl32.Vec3
	lookOffset mgl32.Vec3
	radius     float32

	yaw, pitch   float32
	minPolar     float32
	maxPolar     float32
	defaultPitch float32
}

// NewOrbit returns a rig that positions camera around target using cfg's geometry.
// The rig starts at yaw 0 and the default pitch.
func NewOrbit(camera, target *transform.Transform, cfg gameconfig.Camera) *Orbit {
	o := &Orbit{
		camera:       camera,
		target:       target,
		lookOffset:   cfg.LookOffset,
		minPolar:     cfg.MinPolarAngle,
		maxPolar:     cfg.MaxPolarAngle,
		defaultPitch: cfg.DefaultPitch,
	}
	o.SetOffset(cfg.Offset)
	o.ResetRotation()
	return o
}

// Update applies this tick's drag (dragging right/down decreases yaw/pitch) and recomputes the
// camera position and look-at point. Call once per tick even without drag, since the target moves.
func (o *Orbit) Update(mm input.MouseMovement) {
	if mm.Active && finite(mm.X) && finite(mm.Y) {
		o.yaw -= mm.X
		o.pitch -= mm.Y
	}
	o.pitch = mgl32.Clamp(o.pitch, o.minPolar, o.maxPolar)

	sinPitch, cosPitch := math32.Sin(o.pitch), math32.Cos(o.pitch)
	sinYaw, cosYaw := math32.Sin(o.yaw), math32.Cos(o.yaw)
	arm := mgl32.Vec3{
		o.radius * sinPitch * sinYaw,
		o.radius * cosPitch,
		o.radius * sinPitch * cosYaw,
	}
	center := o.target.Position
	o.camera.SetPosition(center.Add(arm))
	o.camera.LookAt(center.Add(o.lookOffset))
}

// SetOffset changes the rig's arm. Only its length is used: it becomes the orbit radius.
// A zero offset parks the camera on the target.
func (o *Orbit) SetOffset(offset mgl32.Vec3) {
	o.offset = offset
	o.radius = offset.Len()
}

// SetLookOffset changes the point above the target the camera looks at.
func (o *Orbit) SetLookOffset(offset mgl32.Vec3) {
	o.lookOffset = offset
}

// ResetRotation snaps yaw to 0 and pitch to the default pitch.
func (o *Orbit) ResetRotation() {
	o.yaw = 0
	o.pitch = mgl32.Clamp(o.defaultPitch, o.minPolar, o.maxPolar)
}

// Yaw returns the orbit yaw in radians.
func (o *Orbit) Yaw() float32 { return o.yaw }

// Pitch returns the orbit polar angle in radians.
func (o *Orbit) Pitch() float32 { return o.pitch }

// Radius returns the orbit radius.
func (o *Orbit) Radius() float32 { return o.radius }

// Offset returns the configured arm vector.
func (o *Orbit) Offset() mgl32.Vec3 { return o.offset }

// PolarLimits returns the pitch clamp range.
func (o *Orbit) PolarLimits() (min, max float32) { return o.minPolar, o.maxPolar }

// Camera returns the transform the rig drives.
func (o *Orbit) Camera() *transform.Transform { return o.camera }

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
