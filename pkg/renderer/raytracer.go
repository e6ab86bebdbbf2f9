package renderer

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/jerx2y/go-path-tracer/pkg/core"
	"github.com/jerx2y/go-path-tracer/pkg/integrator"
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

// Scene is what the renderer needs from scene construction. The scene is
// read-only once rendering starts.
type Scene interface {
	core.Scene
	GetCamera() *Camera
}

// Raytracer drives the per-pixel sampling loop over a scene
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     SamplingConfig
	seed       int64
	numWorkers int
	logger     core.Logger
	integrator *integrator.PathTracer
}

// NewRaytracer creates a new raytracer with default sampling configuration
func NewRaytracer(scene Scene, width, height int, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	config := DefaultSamplingConfig()
	return &Raytracer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     config,
		seed:       42,
		numWorkers: 0, // 0 = one worker per CPU
		logger:     logger,
		integrator: integrator.NewPathTracer(config.MaxDepth),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
	rt.integrator = integrator.NewPathTracer(config.MaxDepth)
}

// SetSeed sets the base seed for the per-tile random streams. Two renders
// of the same scene with the same seed produce identical images.
func (rt *Raytracer) SetSeed(seed int64) {
	rt.seed = seed
}

// SetNumWorkers sets the worker count (0 = one per CPU)
func (rt *Raytracer) SetNumWorkers(numWorkers int) {
	rt.numWorkers = numWorkers
}

// renderBounds renders all pixels inside bounds into img using the given
// random generator. Bounds of concurrent calls never overlap, so no
// synchronization is needed on the image.
func (rt *Raytracer) renderBounds(bounds image.Rectangle, img *image.RGBA, random *rand.Rand) int {
	camera := rt.scene.GetCamera()
	sampler := core.NewRandomSampler(random)
	samples := 0

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			colorAccum := core.Vec3{}

			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				// Jittered sub-pixel coordinates; row 0 is the top of
				// the image, so flip j for the camera's t axis
				s := (float64(i) + sampler.Get1D()) / float64(rt.width)
				t := (float64(rt.height-1-j) + sampler.Get1D()) / float64(rt.height)

				ray := camera.GetRay(s, t, sampler)
				colorAccum = colorAccum.Add(rt.integrator.Trace(ray, rt.scene, sampler))
			}
			samples += rt.config.SamplesPerPixel

			colorVec := colorAccum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
			img.SetRGBA(i, j, vec3ToColor(colorVec))
		}
	}

	return samples
}

// vec3ToColor converts a linear color to 8-bit RGBA with gamma-2 correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 0.999)

	return color.RGBA{
		R: uint8(256 * colorVec.X),
		G: uint8(256 * colorVec.Y),
		B: uint8(256 * colorVec.Z),
		A: 255,
	}
}
