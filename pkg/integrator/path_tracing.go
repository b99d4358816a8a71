package integrator

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
)

// AcneOffset is the minimum hit distance. It keeps bounce rays from
// re-hitting the surface they leave due to floating point error.
const AcneOffset = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a hard
// bounce limit
type PathTracingIntegrator struct {
	MaxDepth   int
	Background core.Vec3 // Radiance of rays that escape the scene
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int, background core.Vec3) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: background,
	}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Intersectable, random *rand.Rand) core.Vec3 {
	return TraceRay(ray, world, pt.MaxDepth, pt.Background, random)
}

// TraceRay follows a path through world for at most depth segments. Each hit
// contributes its emission plus its diffuse color times the light arriving
// along the bounce.
func TraceRay(ray core.Ray, world core.Intersectable, depth int, background core.Vec3, random *rand.Rand) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, AcneOffset, math32.Inf(1), random)
	if !isHit {
		return background
	}

	result := hit.Material.BSDF(ray, hit, random)
	if result.Bounce == nil {
		// Lights and absorbed rays end the path
		return result.Emissive
	}

	incoming := TraceRay(*result.Bounce, world, depth-1, background, random)
	return result.Emissive.Add(result.Diffuse.MultiplyVec(incoming))
}
