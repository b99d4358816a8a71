package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly in every direction, ignoring the hit normal
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic creates an isotropic phase function colored by albedo
func NewIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

func (i *Isotropic) BSDF(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) core.BSDFResult {
	bounce := core.NewRay(hit.Point, core.RandomUnitVector(random))
	return core.BSDFResult{
		Diffuse: i.Albedo.Evaluate(hit.UV, hit.Point),
		Bounce:  &bounce,
	}
}
