package material

import (
	"math"

	"github.com/jerx2y/go-path-tracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with a color source
func NewTexturedLambertian(albedo ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// The outgoing direction is cosine-weighted around the surface normal.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	uvw := core.NewOnbFromW(hit.Normal)
	direction := uvw.LocalVec(core.RandomCosineDirection(sampler.Get2D())).Normalize()
	scattered := core.NewRay(hit.Point, direction, rayIn.Time)

	// PDF matches the sampling density: cos(θ) / π
	pdf := uvw.W.Dot(direction) / math.Pi

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo.Evaluate(hit.U, hit.V, hit.Point),
		PDF:         pdf,
	}, true
}

// ScatteringPDF returns the cosine-weighted density for an arbitrary
// scattered direction, zero for directions below the surface
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}
