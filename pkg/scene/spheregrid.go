package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// sphereGridSize is the number of spheres along each side of the grid
const sphereGridSize = 100

func sphereGridSettings() Settings {
	s := DefaultSettings()
	s.CameraPosition = core.NewVec3(0, 2, 5)
	s.CameraTarget = core.NewVec3(0, 0.1, 0)
	return s
}

// loadSphereGrid fills the ground with randomly tinted metal spheres. Without
// a BVH this scene is impractically slow.
func loadSphereGrid(world *geometry.World, env Env) error {
	world.Add(groundSphere(material.NewLambertian(core.NewVec3(0.15, 0.3, 0.15))))

	const radius = 0.3
	totalX := radius * 2.1 * float32(sphereGridSize)
	origin := core.NewVec3(-totalX/2, -0.12, -5)

	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			offset := core.NewVec3(float32(i)/sphereGridSize*totalX, 0, float32(j)*radius*3)
			albedo := core.NewVec3(env.Random.Float32(), env.Random.Float32(), env.Random.Float32())
			world.Add(geometry.NewSphere(origin.Add(offset), radius, material.NewMetal(albedo, 0.05)))
		}
	}
	return nil
}
