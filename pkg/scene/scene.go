// Package scene holds the built-in scene catalogue
package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// DefaultTexturePath is the image used by scenes that need a texture from disk
const DefaultTexturePath = "assets/test_texture.png"

// ErrUnknownScene is returned when a scene name is not in the catalogue
var ErrUnknownScene = errors.New("scene: unknown scene")

var logger = log.New("scene")

// Env carries the external inputs scene builders may need
type Env struct {
	TexturePath string     // Image file for textured scenes
	Random      *rand.Rand // Source for randomized scene content
}

// Scene contains a populated world and the settings it is rendered with
type Scene struct {
	Name     string
	Settings Settings
	World    *geometry.World
}

type entry struct {
	description string
	settings    func() Settings
	load        func(world *geometry.World, env Env) error
}

var catalogue = map[string]entry{
	"simple":      {"three spheres: diffuse, metal and glass on a large ground sphere", simpleSettings, loadSimple},
	"materials":   {"row of metal and diffuse spheres in front of tinted glass", materialsSettings, loadMaterials},
	"sphere-grid": {"10,000 metal spheres, a BVH stress test", sphereGridSettings, loadSphereGrid},
	"textures":    {"image, UV debug and Perlin noise textures over a checker ground", texturesSettings, loadTextures},
	"lights":      {"dark scene lit by a single red area light", lightsSettings, loadLights},
	"transform":   {"image-textured square rotated 45 degrees about X", transformSettings, loadTransform},
	"cornell":     {"Cornell box holding two rotated boxes of participating media", cornellSettings, loadCornell},
	"playground":  {"rotated and translated box with markers at its bounding box corners", playgroundSettings, loadPlayground},
	"two-spheres": {"diffuse sphere under a spherical light, one bounce", twoSpheresSettings, loadTwoSpheres},
}

// Names returns the catalogue in alphabetical order
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns a one-line description of a scene
func Describe(name string) (string, error) {
	e, ok := catalogue[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return e.description, nil
}

// New builds the named scene
func New(name string, env Env) (*Scene, error) {
	e, ok := catalogue[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	if env.TexturePath == "" {
		env.TexturePath = DefaultTexturePath
	}
	if env.Random == nil {
		env.Random = rand.New(rand.NewSource(42))
	}

	logger.Infof("loading scene %s: %s", name, e.description)
	world := geometry.NewWorld()
	if err := e.load(world, env); err != nil {
		return nil, fmt.Errorf("failed to load scene %s: %w", name, err)
	}
	logger.Infof("scene %s has %d objects", name, world.Len())

	return &Scene{
		Name:     name,
		Settings: e.settings(),
		World:    world,
	}, nil
}

// BuildBVH builds the acceleration structure rendering runs against
func (s *Scene) BuildBVH(random *rand.Rand) (*geometry.BVHNode, error) {
	bvh, err := geometry.NewBVH(s.World, random)
	if err != nil {
		return nil, fmt.Errorf("failed to build BVH for scene %s: %w", s.Name, err)
	}

	stats := bvh.Stats()
	logger.Infof("BVH: %d nodes, %d leaves, max depth %d", stats.TotalNodes, stats.LeafNodes, stats.MaxDepth)
	return bvh, nil
}

// CameraConfig returns the camera the scene settings describe for an image aspect ratio
func (s *Scene) CameraConfig(aspectRatio float32) renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:      s.Settings.CameraPosition,
		LookAt:      s.Settings.CameraTarget,
		Up:          core.NewVec3(0, 1, 0),
		VFov:        s.Settings.CameraFOV,
		AspectRatio: aspectRatio,
		Aperture:    s.Settings.CameraAperture,
	}
}
