package integrator

import (
	"math"

	"github.com/jerx2y/go-path-tracer/pkg/core"
)

// PathTracer implements unidirectional path tracing with a fixed depth
// cutoff. Diffuse bounces mix material sampling with light sampling.
type PathTracer struct {
	maxDepth int
}

// NewPathTracer creates a new path tracing integrator
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{maxDepth: maxDepth}
}

// MaxDepth returns the configured bounce limit
func (pt *PathTracer) MaxDepth() int {
	return pt.maxDepth
}

// Trace computes the color for a camera ray at the configured depth limit
func (pt *PathTracer) Trace(ray core.Ray, scene core.Scene, sampler core.Sampler) core.Vec3 {
	return pt.RayColor(ray, scene, sampler, pt.maxDepth)
}

// RayColor computes the color for a single ray using path tracing
func (pt *PathTracer) RayColor(ray core.Ray, scene core.Scene, sampler core.Sampler, depth int) core.Vec3 {
	// Past the bounce limit no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	// The 0.001 lower bound avoids re-intersecting the originating surface
	hit, isHit := scene.GetWorld().Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		return pt.backgroundGradient(ray, scene)
	}

	// Start with emitted light from the hit material
	colorEmitted := pt.getEmittedLight(ray, hit)

	// Try to scatter the ray
	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	var colorScattered core.Vec3
	if scatter.IsSpecular() {
		colorScattered = pt.calculateSpecularColor(scatter, scene, sampler, depth)
	} else {
		colorScattered = pt.calculateDiffuseColor(ray, scatter, hit, scene, sampler, depth)
	}

	return colorEmitted.Add(colorScattered)
}

// getEmittedLight returns the emitted light from a material if it's emissive
func (pt *PathTracer) getEmittedLight(ray core.Ray, hit *core.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(core.Emitter); isEmissive {
		return emitter.Emitted(ray, *hit)
	}
	return core.Vec3{}
}

// calculateSpecularColor handles specular material scattering. The sampling
// already matches the integrand exactly, so the recursive term is unweighted.
func (pt *PathTracer) calculateSpecularColor(scatter core.ScatterResult, scene core.Scene, sampler core.Sampler, depth int) core.Vec3 {
	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, scene, sampler, depth-1))
}

// calculateDiffuseColor handles materials that report a PDF. When the scene
// has lights, the bounce direction is drawn from a 50/50 mixture of the
// material's density and the lights' solid-angle density, and the recursive
// term is weighted by ScatteringPDF/mixturePDF to keep the estimator unbiased.
func (pt *PathTracer) calculateDiffuseColor(rayIn core.Ray, scatter core.ScatterResult, hit *core.HitRecord, scene core.Scene, sampler core.Sampler, depth int) core.Vec3 {
	lights := scene.GetLights()

	scattered := scatter.Scattered
	pdf := scatter.PDF

	if len(lights) > 0 {
		scattered, pdf = pt.sampleMixtureDirection(rayIn, scatter, hit, lights, sampler)
	}

	if pdf <= 0 {
		return core.Vec3{}
	}

	weight := hit.Material.ScatteringPDF(rayIn, *hit, scattered) / pdf
	if weight <= 0 {
		return core.Vec3{}
	}

	incomingLight := pt.RayColor(scattered, scene, sampler, depth-1)
	return scatter.Attenuation.Multiply(weight).MultiplyVec(incomingLight)
}

// sampleMixtureDirection picks the bounce direction from the material half
// the time and from a uniformly chosen light the other half, and returns the
// combined density of the mixture for that direction
func (pt *PathTracer) sampleMixtureDirection(rayIn core.Ray, scatter core.ScatterResult, hit *core.HitRecord, lights []core.Light, sampler core.Sampler) (core.Ray, float64) {
	var direction core.Vec3
	if sampler.Get1D() < 0.5 {
		light := lights[pt.pickLight(len(lights), sampler)]
		direction = light.RandomToward(hit.Point, sampler)
	} else {
		direction = scatter.Scattered.Direction
	}

	scattered := core.NewRay(hit.Point, direction, rayIn.Time)

	materialPDF := hit.Material.ScatteringPDF(rayIn, *hit, scattered)
	lightPDF := pt.lightsPDF(lights, hit.Point, direction)

	return scattered, 0.5*materialPDF + 0.5*lightPDF
}

// lightsPDF returns the density of the uniform-over-lights strategy for the
// given direction
func (pt *PathTracer) lightsPDF(lights []core.Light, origin, direction core.Vec3) float64 {
	sum := 0.0
	for _, light := range lights {
		sum += light.PDFValue(origin, direction)
	}
	return sum / float64(len(lights))
}

// pickLight chooses a light index uniformly
func (pt *PathTracer) pickLight(n int, sampler core.Sampler) int {
	index := int(sampler.Get1D() * float64(n))
	if index >= n {
		index = n - 1
	}
	return index
}

// backgroundGradient returns the scene's vertical gradient for rays that
// escape the scene
func (pt *PathTracer) backgroundGradient(r core.Ray, scene core.Scene) core.Vec3 {
	topColor, bottomColor := scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}
