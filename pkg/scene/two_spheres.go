package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

func twoSpheresSettings() Settings {
	s := DefaultSettings()
	s.CameraPosition = core.NewVec3(0, 0, -6)
	s.Background = core.Vec3{}
	s.SamplesPerPixel = 1
	s.MaxBounces = 2
	return s
}

// loadTwoSpheres places a diffuse sphere below a spherical light. With a
// black background its underside only receives light via other bounces.
func loadTwoSpheres(world *geometry.World, _ Env) error {
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.Uniform(0.8))))
	world.Add(geometry.NewSphere(core.NewVec3(0, 3, 0), 1, material.NewDiffuseLight(core.NewVec3(1, 1, 1), 4)))
	return nil
}
