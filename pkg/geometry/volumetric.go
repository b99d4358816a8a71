package geometry

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// volumeExitOffset separates the entry hit from the search for the exit hit
const volumeExitOffset = 1e-4

// Volumetric is a constant-density participating medium filling a closed
// boundary shape. Rays scatter at a random depth inside the boundary.
type Volumetric struct {
	Boundary      core.Intersectable
	Density       float32
	PhaseFunction core.Material
}

// NewVolumetric fills boundary with a medium of the given density whose
// scattering color comes from texture
func NewVolumetric(boundary core.Intersectable, density float32, texture core.Texture) *Volumetric {
	return &Volumetric{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewIsotropic(texture),
	}
}

// NewVolumetricColor fills boundary with a medium of a single color
func NewVolumetricColor(boundary core.Intersectable, density float32, color core.Vec3) *Volumetric {
	return NewVolumetric(boundary, density, material.NewSolidColor(color))
}

// Hit samples a scattering distance inside the boundary. The boundary must
// be closed and convex: its first two hits along the line are taken as the
// entry and exit points.
func (v *Volumetric) Hit(ray core.Ray, tMin, tMax float32, random *rand.Rand) (*core.HitRecord, bool) {
	entry, ok := v.Boundary.Hit(ray, -math32.Inf(1), math32.Inf(1), random)
	if !ok {
		return nil, false
	}
	exit, ok := v.Boundary.Hit(ray, entry.T+volumeExitOffset, math32.Inf(1), random)
	if !ok {
		return nil, false
	}

	t0 := max(entry.T, tMin)
	t1 := min(exit.T, tMax)
	if t0 >= t1 {
		return nil, false
	}
	t0 = max(t0, 0)

	rayLength := ray.Direction.Length()
	distanceInside := (t1 - t0) * rayLength
	hitDistance := random.Float32() / v.Density
	if hitDistance > distanceInside {
		return nil, false
	}

	t := t0 + hitDistance/rayLength
	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.RandomUnitVector(random), // arbitrary, scattering is isotropic
		UV:        entry.UV,
		FrontFace: true,
		Material:  v.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (v *Volumetric) BoundingBox() (core.AABB, bool) {
	return v.Boundary.BoundingBox()
}
