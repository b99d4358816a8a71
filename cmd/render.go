package cmd

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// RenderFrame renders a still frame of a built-in scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	seed := ctx.Int64("seed")
	sc, err := scene.New(ctx.String("scene"), scene.Env{
		TexturePath: ctx.String("texture"),
		Random:      rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return err
	}

	if path := ctx.String("settings"); path != "" {
		if sc.Settings, err = scene.LoadSettings(path, sc.Settings); err != nil {
			return err
		}
	}

	config, err := samplingConfig(ctx, sc.Settings)
	if err != nil {
		return err
	}

	bvh, err := sc.BuildBVH(rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	displayBVHStats(bvh.Stats())

	camera := renderer.NewCamera(sc.CameraConfig(config.AspectRatio()))
	pathTracer := integrator.NewPathTracingIntegrator(config.MaxDepth, sc.Settings.Background)
	rt, err := renderer.NewRaytracer(bvh, camera, pathTracer, config)
	if err != nil {
		return err
	}

	img, stats := rt.RenderImage()
	displayRenderStats(config, stats)

	return renderer.WriteImage(ctx.String("out"), img)
}

// samplingConfig merges scene settings with the command line. Flags the user
// did not set leave the scene's choice in place.
func samplingConfig(ctx *cli.Context, settings scene.Settings) (renderer.SamplingConfig, error) {
	config := renderer.DefaultSamplingConfig()

	aspect := ctx.Float64("aspect")
	if aspect <= 0 {
		return config, fmt.Errorf("%w: aspect ratio %v", renderer.ErrInvalidConfig, aspect)
	}
	config.Width = ctx.Int("width")
	config.Height = int(float64(config.Width) / aspect)

	config.SamplesPerPixel = settings.SamplesPerPixel
	if ctx.IsSet("spp") {
		config.SamplesPerPixel = ctx.Int("spp")
	}
	config.MaxDepth = settings.MaxBounces
	if ctx.IsSet("depth") {
		config.MaxDepth = ctx.Int("depth")
	}

	config.TileSize = ctx.Int("tile")
	config.Seed = ctx.Int64("seed")
	config.NumWorkers = ctx.Int("workers")
	if config.NumWorkers == 0 {
		model, cores := hostInfo()
		logger.Infof("host: %s, %d logical cores", model, cores)
		config.NumWorkers = cores
	}

	return config, config.Validate()
}

func displayBVHStats(stats geometry.BVHStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Objects", "Nodes", "Leaves", "Max depth", "Avg leaf depth"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalObjects),
		fmt.Sprintf("%d", stats.TotalNodes),
		fmt.Sprintf("%d", stats.LeafNodes),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%.1f", stats.AvgDepth),
	})

	table.Render()
	logger.Noticef("BVH statistics\n%s", buf.String())
}

func displayRenderStats(config renderer.SamplingConfig, stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "SPP", "Max depth", "Tiles", "Workers", "Samples/s", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", config.Width, config.Height),
		fmt.Sprintf("%d", config.SamplesPerPixel),
		fmt.Sprintf("%d", config.MaxDepth),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		stats.Duration.String(),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL SAMPLES", fmt.Sprintf("%d", stats.TotalSamples)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
