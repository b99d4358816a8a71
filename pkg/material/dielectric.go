package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// iorAir is the refractive index outside every dielectric
const iorAir = 1.0

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float32   // Index of refraction (e.g., 1.5 for glass)
	Tint            core.Vec3 // Attenuation per bounce; white for clear glass
}

// NewDielectric creates a clear dielectric material
func NewDielectric(refractiveIndex float32) *Dielectric {
	return NewTintedDielectric(refractiveIndex, core.Uniform(1))
}

// NewTintedDielectric creates a colored dielectric material
func NewTintedDielectric(refractiveIndex float32, tint core.Vec3) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex, Tint: tint}
}

// BSDF picks reflection with the Schlick reflectance as probability and
// refraction otherwise. Total internal reflection always reflects.
func (d *Dielectric) BSDF(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) core.BSDFResult {
	iorFrom, iorInto := float32(iorAir), d.RefractiveIndex
	if !hit.FrontFace {
		iorFrom, iorInto = iorInto, iorFrom
	}

	unitDirection := rayIn.Direction.Normalize()
	reflectance := core.Reflectance(unitDirection, hit.Normal, iorFrom, iorInto)

	direction, canRefract := core.Refract(unitDirection, hit.Normal, iorFrom, iorInto)
	if !canRefract || reflectance > random.Float32() {
		direction = core.Reflect(unitDirection, hit.Normal)
	}

	bounce := core.NewRay(hit.Point, direction)
	return core.BSDFResult{
		Diffuse: d.Tint,
		Bounce:  &bounce,
	}
}
