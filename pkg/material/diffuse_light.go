package material

import (
	"github.com/jerx2y/go-path-tracer/pkg/core"
)

// DiffuseLight is a one-sided emissive material. It never scatters; it
// emits its color source only when hit on the front face.
type DiffuseLight struct {
	Emission ColorSource
}

// NewDiffuseLight creates an emissive material with a solid color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates an emissive material with a color source
func NewTexturedDiffuseLight(emission ColorSource) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter implements the Material interface; lights absorb incoming rays
func (dl *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// ScatteringPDF returns zero; lights never scatter
func (dl *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted implements the Emitter interface. Emission is one-sided: rays
// arriving from behind the surface see black.
func (dl *DiffuseLight) Emitted(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return dl.Emission.Evaluate(hit.U, hit.V, hit.Point)
}
