package material

import (
	"github.com/jerx2y/go-path-tracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)

	// Perturb the reflection direction by the fuzz factor
	if m.Fuzzness > 0 {
		perturbation := core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Fuzzness)
		reflected = reflected.Add(perturbation)
	}

	scattered := core.NewRay(hit.Point, reflected, rayIn.Time)

	// Absorb rays that end up below the surface
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
		PDF:         0, // Specular materials have no PDF
	}, scatters
}

// ScatteringPDF returns zero; metal reflection is a delta distribution and
// is never importance-sampled against lights
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
