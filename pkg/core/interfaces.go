package core

import "math/rand"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, oriented against the incoming ray
	T         float32  // Parameter t along the ray
	UV        Vec2     // Surface parameterization, both components in [0, 1]
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Intersectable is anything a ray can be tested against.
//
// Hit reports the nearest intersection with t in [tMin, tMax]. The random
// source belongs to the calling render task and is only consumed by
// stochastic primitives (volumes).
//
// BoundingBox returns false when the object has no finite bound; such
// objects cannot be placed in a BVH.
type Intersectable interface {
	Hit(ray Ray, tMin, tMax float32, random *rand.Rand) (*HitRecord, bool)
	BoundingBox() (AABB, bool)
}

// BSDFResult is the outcome of evaluating a material at a hit
type BSDFResult struct {
	Diffuse  Vec3 // Attenuation applied to light arriving along Bounce
	Emissive Vec3 // Light emitted by the surface
	Bounce   *Ray // Continuation ray, nil terminates the path
}

// Material maps an incoming ray and a hit to scattered and emitted light
type Material interface {
	BSDF(rayIn Ray, hit *HitRecord, random *rand.Rand) BSDFResult
}

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv Vec2, point Vec3) Vec3
}
