package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

func texturesSettings() Settings {
	s := DefaultSettings()
	s.CameraPosition = core.NewVec3(0, 2, 5)
	s.CameraTarget = core.NewVec3(0, 0.1, 0)
	return s
}

func loadTextures(world *geometry.World, env Env) error {
	image, err := loaders.LoadImageTexture(env.TexturePath)
	if err != nil {
		return err
	}

	checker := material.NewChecker(core.Uniform(0.3), core.Uniform(0.8), 5)
	world.Add(groundSphere(material.NewTexturedLambertian(checker)))

	world.Add(geometry.NewSphere(core.NewVec3(0, 0.45, 0), 0.9, material.NewTexturedLambertian(image)))
	world.Add(geometry.NewSphere(core.NewVec3(-2, 0.45, 0), 0.9, material.NewTexturedLambertian(material.NewUVDebug())))
	noise := material.NewNoise(10, env.Random.Int63())
	world.Add(geometry.NewSphere(core.NewVec3(2, 0.45, 0), 0.9, material.NewTexturedLambertian(noise)))
	return nil
}
