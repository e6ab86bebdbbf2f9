package material

import (
	"github.com/jerx2y/go-path-tracer/pkg/core"
)

// Isotropic scatters uniformly over the full sphere of directions. Used for
// participating media, where scattering has no preferred direction.
type Isotropic struct {
	Albedo ColorSource
}

// NewIsotropic creates an isotropic material with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic material with a color source
func NewTexturedIsotropic(albedo ColorSource) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements the Material interface with a uniform random direction
func (i *Isotropic) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	scattered := core.NewRay(hit.Point, core.SampleOnUnitSphere(sampler.Get2D()), rayIn.Time)

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: i.Albedo.Evaluate(hit.U, hit.V, hit.Point),
		PDF:         0,
	}, true
}

// ScatteringPDF returns zero; isotropic scattering is taken as-is by the
// estimator rather than importance-sampled against lights
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}
