package view

import (
	"ruins-game/internal/locomotion"
	"ruins-game/internal/transform"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	skinColor  = rl.NewColor(224, 184, 150, 255)
	shirtColor = rl.NewColor(60, 90, 160, 255)
	pantsColor = rl.NewColor(50, 50, 60, 255)
	furColor   = rl.NewColor(110, 110, 118, 255)
	furDark    = rl.NewColor(80, 80, 88, 255)
)

// limb draws a box of the given size hanging from pivot, swung by angle radians about local X.
func limb(px, py, pz, angle, w, h, d float32, c rl.Color) {
	rl.PushMatrix()
	rl.Translatef(px, py, pz)
	rl.Rotatef(angle*rl.Rad2deg, 1, 0, 0)
	rl.DrawCube(rl.NewVector3(0, -h/2, 0), w, h, d, c)
	rl.PopMatrix()
}

// place moves the matrix stack into xf's local frame. Callers must PopMatrix.
func place(xf transform.Transform) {
	rl.PushMatrix()
	rl.Translatef(xf.Position.X(), xf.Position.Y(), xf.Position.Z())
	rl.Rotatef(xf.Yaw*rl.Rad2deg, 0, 1, 0)
}

func drawHumanoid(xf transform.Transform, pose locomotion.Pose) {
	place(xf)
	defer rl.PopMatrix()

	rl.DrawCube(rl.NewVector3(0, 1.25, 0), 0.6, 0.8, 0.3, shirtColor)
	rl.DrawCube(rl.NewVector3(0, 1.9, 0), 0.4, 0.4, 0.4, skinColor)

	limb(-0.15, 0.85, 0, pose.LeftLeg, 0.22, 0.85, 0.22, pantsColor)
	limb(0.15, 0.85, 0, pose.RightLeg, 0.22, 0.85, 0.22, pantsColor)
	limb(-0.4, 1.6, 0, pose.LeftArm, 0.18, 0.7, 0.18, skinColor)
	limb(0.4, 1.6, 0, pose.RightArm, 0.18, 0.7, 0.18, skinColor)
}

// drawWolf draws a quadruped: front legs take the arm angles, back legs the leg angles.
func drawWolf(xf transform.Transform, pose locomotion.Pose) {
	place(xf)
	defer rl.PopMatrix()

	rl.DrawCube(rl.NewVector3(0, 0.7, 0), 0.5, 0.45, 1.2, furColor)
	rl.DrawCube(rl.NewVector3(0, 0.95, 0.75), 0.4, 0.38, 0.4, furColor)
	rl.DrawCube(rl.NewVector3(0, 0.88, 1.05), 0.2, 0.18, 0.25, furDark)

	limb(-0.18, 0.5, 0.45, pose.LeftArm, 0.14, 0.5, 0.14, furDark)
	limb(0.18, 0.5, 0.45, pose.RightArm, 0.14, 0.5, 0.14, furDark)
	limb(-0.18, 0.5, -0.45, pose.LeftLeg, 0.14, 0.5, 0.14, furDark)
	limb(0.18, 0.5, -0.45, pose.RightLeg, 0.14, 0.5, 0.14, furDark)

	rl.PushMatrix()
	rl.Translatef(0, 0.85, -0.6)
	rl.Rotatef(pose.Tail*rl.Rad2deg, 0, 1, 0)
	rl.Rotatef(-35, 1, 0, 0)
	rl.DrawCube(rl.NewVector3(0, 0, -0.25), 0.1, 0.1, 0.5, furColor)
	rl.PopMatrix()
}
