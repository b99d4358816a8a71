package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight is an emitter. It never scatters, so paths end on it.
type DiffuseLight struct {
	Albedo   core.Texture
	Strength float32 // multiplier on the texture color for emission
}

// NewDiffuseLight creates a light emitting color scaled by strength
func NewDiffuseLight(color core.Vec3, strength float32) *DiffuseLight {
	return NewTexturedDiffuseLight(NewSolidColor(color), strength)
}

// NewTexturedDiffuseLight creates a light whose emission follows a texture
func NewTexturedDiffuseLight(albedo core.Texture, strength float32) *DiffuseLight {
	return &DiffuseLight{Albedo: albedo, Strength: strength}
}

func (l *DiffuseLight) BSDF(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) core.BSDFResult {
	color := l.Albedo.Evaluate(hit.UV, hit.Point)
	return core.BSDFResult{
		Diffuse:  color,
		Emissive: color.Multiply(l.Strength),
	}
}
