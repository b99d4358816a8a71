package integrator

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Integrator estimates the radiance arriving along a camera ray
type Integrator interface {
	RayColor(ray core.Ray, world core.Intersectable, random *rand.Rand) core.Vec3
}
