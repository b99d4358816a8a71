package renderer

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("renderer")

// Raytracer renders a world through a camera. The world must not change
// while a render is in progress; every worker reads it concurrently.
type Raytracer struct {
	world      core.Intersectable
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
}

// NewRaytracer creates a new raytracer
func NewRaytracer(world core.Intersectable, camera *Camera, integrator integrator.Integrator, config SamplingConfig) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if world == nil || camera == nil || integrator == nil {
		return nil, fmt.Errorf("%w: world, camera and integrator are required", ErrInvalidConfig)
	}

	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integrator,
		config:     config,
	}, nil
}

// Render traces every pixel in parallel and returns the linear frame
func (rt *Raytracer) Render() (*FrameBuffer, RenderStats) {
	start := time.Now()
	frame := NewFrameBuffer(rt.config.Width, rt.config.Height)
	tiles := NewTileGrid(rt.config.Width, rt.config.Height, rt.config.TileSize)

	pool := NewWorkerPool(rt, rt.config.NumWorkers, len(tiles))
	logger.Infof("rendering %dx%d at %d spp, %d tiles on %d workers",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, len(tiles), pool.GetNumWorkers())

	pool.Start()
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:   tile,
			Random: tile.Random(rt.config.Seed),
			Frame:  frame,
		})
	}
	pool.Stop()

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Add(result.Stats)
		logger.Debugf("tile %d/%d done", stats.Tiles, len(tiles))
	}
	stats.Duration = time.Since(start)

	return frame, stats
}

// RenderImage renders the frame and converts it to 8-bit
func (rt *Raytracer) RenderImage() (*image.RGBA, RenderStats) {
	frame, stats := rt.Render()
	return frame.ToRGBA(), stats
}

// RenderBounds renders pixels within the specified image bounds into frame.
// Rows are flipped so that row 0 shows the top of the camera's view.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, frame *FrameBuffer, random *rand.Rand) RenderStats {
	width, height := rt.config.Width, rt.config.Height
	// Jittered samples span [0, 1] exactly across the first and last pixel
	uScale := 1 / float32(max(width-1, 1))
	vScale := 1 / float32(max(height-1, 1))
	spp := rt.config.SamplesPerPixel

	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		y := height - row - 1
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var colorAccum core.Vec3
			for sample := 0; sample < spp; sample++ {
				s := (float32(x) + random.Float32()) * uScale
				t := (float32(y) + random.Float32()) * vScale
				ray := rt.camera.GetRay(s, t, random)
				colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.world, random))
			}
			frame.Set(x, row, colorAccum.Divide(float32(spp)))
		}
	}

	pixels := bounds.Dx() * bounds.Dy()
	return RenderStats{
		TotalPixels:  pixels,
		TotalSamples: pixels * spp,
		Tiles:        1,
	}
}
