package material

import (
	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
)

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// UVDebug shows the surface parameterization: U maps to red, V to green
type UVDebug struct{}

// NewUVDebug creates a UV debug texture
func NewUVDebug() *UVDebug {
	return &UVDebug{}
}

// Evaluate returns (u, v, 0)
func (UVDebug) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.NewVec3(uv.X, uv.Y, 0)
}

// Checker is a solid 3D checker pattern driven by the hit position, so it
// does not depend on the surface parameterization
type Checker struct {
	Color1 core.Vec3 // where the product of sines is negative
	Color2 core.Vec3
	Scale  float32 // angular frequency; larger values give smaller cells
}

// NewChecker creates a checker texture
func NewChecker(color1, color2 core.Vec3, scale float32) *Checker {
	return &Checker{Color1: color1, Color2: color2, Scale: scale}
}

// Evaluate picks a color from the sign of sin(sx)·sin(sy)·sin(sz)
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math32.Sin(c.Scale*point.X) *
		math32.Sin(c.Scale*point.Y) *
		math32.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Color1
	}
	return c.Color2
}

const (
	noiseAlpha   = 2.0 // weight divisor between octaves
	noiseBeta    = 2.0 // frequency multiplier between octaves
	noiseOctaves = 3
	// noiseUVScale turns the user-facing scale into a useful frequency on [0,1] UVs
	noiseUVScale = 10
)

// Noise is a grayscale Perlin noise texture over the surface parameterization
type Noise struct {
	Scale float32
	noise *perlin.Perlin
}

// NewNoise creates a noise texture. The same seed always gives the same pattern.
func NewNoise(scale float32, seed int64) *Noise {
	return &Noise{
		Scale: scale,
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
	}
}

// Evaluate samples the noise at the scaled UV coordinates, remapped to [0, 1]
func (n *Noise) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	frequency := float64(n.Scale * noiseUVScale)
	value := n.noise.Noise2D(float64(uv.X)*frequency, float64(uv.Y)*frequency)
	gray := max(0, min(1, float32(value)*0.5+0.5))
	return core.Uniform(gray)
}
