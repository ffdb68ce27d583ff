package renderer

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/rmak/go-pathtracer/pkg/core"
	"github.com/rmak/go-pathtracer/pkg/geometry"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetShapes() []core.Hittable
}

// RenderOptions controls scheduling and reproducibility of a render
type RenderOptions struct {
	NumWorkers int                             // Parallel row workers (0 = use CPU count)
	Seed       int64                           // Base seed for per-row random generators
	Progress   func(completedRows, totalRows int) // Called after each completed row, may be nil
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	camera *Camera
	world  *geometry.HittableList
	config SamplingConfig
	logger core.Logger
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// NewRaytracer creates a new raytracer. The sampling configuration starts
// from the scene camera's resolved samples-per-pixel and max depth.
func NewRaytracer(scene Scene, logger core.Logger) *Raytracer {
	camera := scene.GetCamera()
	return &Raytracer{
		scene:  scene,
		camera: camera,
		world:  geometry.NewHittableList(scene.GetShapes()...),
		config: SamplingConfig{
			SamplesPerPixel: camera.Config().SamplesPerPixel,
			MaxDepth:        camera.Config().MaxDepth,
		},
		logger: logger,
	}
}

// SetSamplingConfig updates the sampling configuration. Zero values keep
// the current setting.
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	if config.SamplesPerPixel > 0 {
		rt.config.SamplesPerPixel = config.SamplesPerPixel
	}
	if config.MaxDepth > 0 {
		rt.config.MaxDepth = config.MaxDepth
	}
}

// Render traces the full image and returns the accumulated frame. Rows are
// distributed across workers; each row gets its own random generator seeded
// from the base seed plus the row index, so output bytes are reproducible
// for a fixed seed regardless of worker count.
func (rt *Raytracer) Render(opts RenderOptions) *Frame {
	width, height := rt.camera.Width(), rt.camera.Height()
	frame := NewFrame(width, height, rt.config.SamplesPerPixel)

	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	if rt.logger != nil {
		rt.logger.Printf("Rendering %dx%d, %d samples per pixel, depth %d, %d workers\n",
			width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, numWorkers)
	}

	rows := make(chan int, height)
	var completed atomic.Int64
	var wg sync.WaitGroup

	for worker := 0; worker < numWorkers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				random := rand.New(rand.NewSource(opts.Seed + int64(j)))
				rt.renderRow(j, frame, random)

				done := int(completed.Add(1))
				if opts.Progress != nil {
					opts.Progress(done, height)
				}
			}
		}()
	}

	for j := 0; j < height; j++ {
		rows <- j
	}
	close(rows)
	wg.Wait()

	return frame
}

// renderRow renders a single row of pixels into the frame. Rows are
// disjoint, so no synchronization is needed on the frame.
func (rt *Raytracer) renderRow(j int, frame *Frame, random *rand.Rand) {
	for i := 0; i < frame.Width; i++ {
		colorSum := core.Vec3{}
		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			ray := rt.camera.GetRay(i, j, random)
			colorSum = colorSum.Add(rt.rayColor(ray, random))
		}
		frame.Set(i, j, colorSum)
	}
}

// rayColor computes the color gathered along a ray. Light transport runs as
// an explicit loop carrying the accumulated attenuation product and a
// remaining-bounce counter: it stops on absorption, on reaching the bounce
// limit (contributing black), or on a miss, which picks up the background
// gradient.
func (rt *Raytracer) rayColor(r core.Ray, random *rand.Rand) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for depth := rt.config.MaxDepth; depth > 0; depth-- {
		// Start the interval just past zero to avoid re-hitting the
		// surface the ray scattered from (shadow acne)
		hit, isHit := rt.world.Hit(r, 0.001, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(rt.backgroundGradient(r))
		}

		scatter, didScatter := hit.Material.Scatter(r, *hit, random)
		if !didScatter {
			return core.Vec3{} // Material absorbed the ray
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		r = scatter.Scattered
	}

	// Bounce limit reached; no more light is gathered
	return core.Vec3{}
}

// backgroundGradient returns the sky color for a ray that escaped the scene,
// interpolated vertically between the scene's bottom and top colors.
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()
	// Map the y component from [-1, 1] to [0, 1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Lerp(topColor, t)
}
