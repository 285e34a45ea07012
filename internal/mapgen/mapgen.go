// Package mapgen lays out the arena's decorative ruins and paints its ground texture from
// fractal value noise. Output depends only on the seed.
package mapgen

import (
	"image"
	"image/color"

	"ruins-game/internal/gameconfig"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
	"github.com/chewxy/math32"
)

// Pillar is a broken column. Position is the base center on Y=0.
type Pillar struct {
	X, Z   float32
	Height float32
	Width  float32
}

const (
	octaves    = 4
	frequency  = 0.08
	lacunarity = 2.0
	gain       = 0.5
	minHeight  = 0.6
	maxHeight  = 4.0
)

// Ruins places pillars on a lattice of cfg.Spacing inside [-halfExtent, halfExtent] wherever the
// noise rises above cfg.Threshold. Nothing is placed within cfg.ClearRadius of the origin or of
// any point in keepClear, so spawns stay open.
func Ruins(cfg gameconfig.Scenery, halfExtent float32, keepClear ...[2]float32) []Pillar {
	if cfg.Spacing <= 0 || halfExtent <= 0 {
		return nil
	}
	spots := append([][2]float32{{0, 0}}, keepClear...)

	var out []Pillar
	edge := halfExtent - cfg.Spacing/2
	for z := -edge; z <= edge; z += cfg.Spacing {
		for x := -edge; x <= edge; x += cfg.Spacing {
			n := fractalValueNoise2D(x*frequency, z*frequency, cfg.Seed)
			if n < cfg.Threshold || near(x, z, spots, cfg.ClearRadius) {
				continue
			}
			t := (n - cfg.Threshold) / (1 - cfg.Threshold)
			out = append(out, Pillar{
				X:      x,
				Z:      z,
				Height: minHeight + t*(maxHeight-minHeight),
				Width:  0.6 + 0.4*hash2D(int32(x), int32(z), int32(cfg.Seed)),
			})
		}
	}
	return out
}

func near(x, z float32, points [][2]float32, r float32) bool {
	for _, p := range points {
		dx, dz := x-p[0], z-p[1]
		if dx*dx+dz*dz < r*r {
			return true
		}
	}
	return false
}

// GroundImage paints a size×size mottled grass texture.
func GroundImage(size int, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scale := float32(24) / float32(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := uint8(fractalValueNoise2D(float32(x)*scale, float32(y)*scale, seed) * 255)
			img.SetRGBA(x, y, color.RGBA{v, v, v, 255})
		}
	}
	soft := blur.Gaussian(img, 1.5)
	return adjust.Apply(soft, func(c color.RGBA) color.RGBA {
		l := float32(c.R) / 255
		return color.RGBA{
			R: uint8(40 + 40*l),
			G: uint8(70 + 70*l),
			B: uint8(30 + 25*l),
			A: 255,
		}
	})
}

// fractalValueNoise2D layers octaves of value noise. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64) float32 {
	var sum, maxAmp float32
	amplitude, freq := float32(1), float32(1)
	for i := 0; i < octaves; i++ {
		sum += valueNoise2D(x*freq, y*freq, int32(seed)+int32(i)) * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	return sum / maxAmp
}

func valueNoise2D(x, y float32, seed int32) float32 {
	fx, fy := math32.Floor(x), math32.Floor(y)
	x0, y0 := int32(fx), int32(fy)
	sx, sy := smoothStep(x-fx), smoothStep(y-fy)

	top := lerp(hash2D(x0, y0, seed), hash2D(x0+1, y0, seed), sx)
	bottom := lerp(hash2D(x0, y0+1, seed), hash2D(x0+1, y0+1, seed), sx)
	return lerp(top, bottom, sy)
}

// hash2D maps a lattice point to a deterministic value in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	return float32(n&0x7fffffff) / 2147483647
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func smoothStep(t float32) float32 {
	return t * t * (3 - 2*t)
}
