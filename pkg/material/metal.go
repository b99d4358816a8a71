package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with glossy reflection
type Metal struct {
	Albedo    core.Vec3 // Metal color
	Roughness float32   // 0.0 = perfect mirror, 1.0 = very rough
}

// NewMetal creates a new metal material; roughness is clamped to [0, 1]
func NewMetal(albedo core.Vec3, roughness float32) *Metal {
	return &Metal{Albedo: albedo, Roughness: max(0, min(1, roughness))}
}

// BSDF reflects the incoming ray, perturbed by the roughness. Perturbed
// directions that point into the surface are absorbed.
func (m *Metal) BSDF(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) core.BSDFResult {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Roughness > 0 {
		reflected = reflected.Add(core.RandomUnitVector(random).Multiply(m.Roughness))
	}

	result := core.BSDFResult{Diffuse: m.Albedo}
	if reflected.Dot(hit.Normal) > 0 {
		bounce := core.NewRay(hit.Point, reflected)
		result.Bounce = &bounce
	}
	return result
}
