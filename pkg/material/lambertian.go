package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// BSDF scatters around the normal by offsetting it with a random unit vector,
// which gives a cosine-weighted distribution
func (l *Lambertian) BSDF(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) core.BSDFResult {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(random))
	// Opposite vectors cancel out
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	bounce := core.NewRay(hit.Point, scatterDirection)
	return core.BSDFResult{
		Diffuse: l.Albedo.Evaluate(hit.UV, hit.Point),
		Bounce:  &bounce,
	}
}
