package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// markerRadius is the size of the spheres marking bounding box corners
const markerRadius = 0.04

func playgroundSettings() Settings {
	s := DefaultSettings()
	s.CameraPosition = core.NewVec3(0, 4.5, 0.5)
	s.CameraTarget = core.NewVec3(0, 0, 0)
	s.SamplesPerPixel = 5
	return s
}

func loadPlayground(world *geometry.World, env Env) error {
	const size = 1

	floor := geometry.NewRectangle(geometry.PlaneXY, core.NewVec2(-size, -size), core.NewVec2(size, size), 0,
		material.NewLambertian(core.Uniform(0.2)))
	world.Add(geometry.RotateTranslate(mgl32.Rotate3DX(mgl32.DegToRad(90)), core.Vec3{}, floor))

	box := geometry.NewBox(core.NewVec3(1, 1, 1), material.NewLambertian(core.NewVec3(0, 0.5, 0)))
	if bbox, ok := box.BoundingBox(); ok {
		logger.Debugf("box dims %v, bounds %v..%v", box.Dims(), bbox.Min, bbox.Max)
	}

	placed := geometry.RotateTranslate(mgl32.Rotate3DY(mgl32.DegToRad(45)), core.NewVec3(-1, 0, 0), box)
	world.Add(placed)

	bbox, ok := placed.BoundingBox()
	if !ok {
		return nil
	}
	logger.Debugf("placed box bounds %v..%v, size %v", bbox.Min, bbox.Max, bbox.Size())
	addCornerMarkers(world, bbox, env)
	return nil
}

// addCornerMarkers puts a small randomly coloured glowing sphere on every corner of bbox
func addCornerMarkers(world *geometry.World, bbox core.AABB, env Env) {
	for _, corner := range bbox.Corners() {
		color := core.NewVec3(env.Random.Float32(), env.Random.Float32(), env.Random.Float32())
		world.Add(geometry.NewSphere(corner, markerRadius, material.NewDiffuseLight(color, 1)))
	}
}
