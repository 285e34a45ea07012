// Package view draws a game.View with raylib. It reads snapshots only and never mutates game state.
package view

import (
	"ruins-game/internal/game"
	"ruins-game/internal/gameconfig"
	"ruins-game/internal/mapgen"
	"ruins-game/internal/transform"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 40
	gridMajorAlpha = 110
	fovy           = 45
	groundTexSize  = 256
)

var (
	groundColor = rl.NewColor(52, 66, 44, 255)
	wallColor   = rl.NewColor(120, 110, 96, 255)
	stoneColor  = rl.NewColor(160, 150, 132, 255)
	itemColors  = map[string]rl.Color{
		"herb":  rl.NewColor(90, 200, 90, 255),
		"stone": rl.NewColor(150, 150, 160, 255),
		"bone":  rl.NewColor(235, 225, 200, 255),
	}
)

// World draws the arena, ruins, items and characters from the camera stored in each snapshot.
type World struct {
	Camera rl.Camera3D

	extent  float32
	seed    int64
	pillars []mapgen.Pillar

	ground       rl.Model
	groundTex    rl.Texture2D
	groundLoaded bool
	groundTried  bool
}

func NewWorld(cfg gameconfig.Config) *World {
	spawn := cfg.Wolf.Spawn
	w := &World{
		extent:  cfg.Wolf.ArenaHalfExtent,
		seed:    cfg.Scenery.Seed,
		pillars: mapgen.Ruins(cfg.Scenery, cfg.Wolf.ArenaHalfExtent, [2]float32{spawn.X(), spawn.Z()}),
	}
	w.Camera.Up = rl.NewVector3(0, 1, 0)
	w.Camera.Fovy = fovy
	w.Camera.Projection = rl.CameraPerspective
	return w
}

// ensureGround uploads the ground texture on the first Draw, once the GL context exists.
// If the upload fails the flat-colored plane is used instead.
func (w *World) ensureGround() {
	if w.groundTried {
		return
	}
	w.groundTried = true

	img := rl.NewImageFromImage(mapgen.GroundImage(groundTexSize, w.seed))
	w.groundTex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if !rl.IsTextureValid(w.groundTex) {
		return
	}
	w.ground = rl.LoadModelFromMesh(rl.GenMeshPlane(2*w.extent, 2*w.extent, 1, 1))
	rl.SetMaterialTexture(w.ground.Materials, rl.MapDiffuse, w.groundTex)
	w.groundLoaded = true
}

// Unload releases GPU resources. Call before the window closes.
func (w *World) Unload() {
	if !w.groundLoaded {
		return
	}
	rl.UnloadModel(w.ground)
	rl.UnloadTexture(w.groundTex)
	w.groundLoaded = false
}

// Draw renders the 3D scene. Call between BeginDrawing and the HUD.
func (w *World) Draw(v game.View) {
	w.Camera.Position = vec(v.Camera.Position)
	w.Camera.Target = vec(v.Camera.LookTarget)

	w.ensureGround()
	rl.BeginMode3D(w.Camera)
	w.drawArena()
	for _, p := range w.pillars {
		rl.DrawCube(rl.NewVector3(p.X, p.Height/2, p.Z), p.Width, p.Height, p.Width, stoneColor)
		rl.DrawCubeWires(rl.NewVector3(p.X, p.Height/2, p.Z), p.Width, p.Height, p.Width, wallColor)
	}
	for _, it := range v.Items {
		c, ok := itemColors[it.Type]
		if !ok {
			c = rl.Gold
		}
		rl.DrawCube(vec(it.Position().Add(mgl32.Vec3{0, 0.25, 0})), 0.4, 0.4, 0.4, c)
	}
	drawHumanoid(v.Player, v.PlayerPose)
	drawWolf(v.Wolf, v.WolfPose)
	if v.Indicator.Visible {
		drawIndicator(v.Wolf, v.Indicator.Scale)
	}
	rl.EndMode3D()
}

// drawArena draws the ground plane, a grid over it and low walls on the boundary.
func (w *World) drawArena() {
	e := w.extent
	if w.groundLoaded {
		rl.DrawModel(w.ground, rl.NewVector3(0, -0.01, 0), 1, rl.White)
	} else {
		rl.DrawPlane(rl.NewVector3(0, -0.01, 0), rl.NewVector2(2*e, 2*e), groundColor)
	}

	minor := rl.NewColor(200, 200, 200, gridMinorAlpha)
	major := rl.NewColor(220, 220, 220, gridMajorAlpha)
	n := int(e)
	var start, end rl.Vector3
	for i := -n; i <= n; i += gridMinorStep {
		c := minor
		if i%gridMajorStep == 0 {
			c = major
		}
		start.X, start.Y, start.Z = float32(i), 0, -e
		end.X, end.Y, end.Z = float32(i), 0, e
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -e, 0, float32(i)
		end.X, end.Y, end.Z = e, 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	const h, t = 1.0, 0.5
	rl.DrawCube(rl.NewVector3(0, h/2, -e-t/2), 2*e+2*t, h, t, wallColor)
	rl.DrawCube(rl.NewVector3(0, h/2, e+t/2), 2*e+2*t, h, t, wallColor)
	rl.DrawCube(rl.NewVector3(-e-t/2, h/2, 0), t, h, 2*e, wallColor)
	rl.DrawCube(rl.NewVector3(e+t/2, h/2, 0), t, h, 2*e, wallColor)
}

func drawIndicator(xf transform.Transform, scale float32) {
	p := xf.Position.Add(mgl32.Vec3{0, 1.6, 0})
	rl.DrawSphere(vec(p), 0.18*scale, rl.Red)
}

func vec(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}
