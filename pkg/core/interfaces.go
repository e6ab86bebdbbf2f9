package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord contains information about a ray-object intersection.
// Records are created fresh per intersection test and discarded once the
// integrator consumes them.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, flipped to face the incoming ray
	T         float64  // Parameter t along the ray
	U, V      float64  // Surface coordinates at the hit point
	FrontFace bool     // Whether the ray approached from outside the surface
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Hittable interface for objects that can be hit by rays
type Hittable interface {
	// Hit returns the closest intersection with t in (tMin, tMax), if any
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	// BoundingBox returns a box valid over the time interval, or false if
	// the object is unbounded (or an empty aggregate)
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// Light interface for hittables that can be importance-sampled as emitters
type Light interface {
	Hittable

	// PDFValue returns the solid-angle density of RandomToward producing
	// the given direction from the given origin
	PDFValue(origin, direction Vec3) float64

	// RandomToward samples a direction from origin toward the light
	RandomToward(origin Vec3, sampler Sampler) Vec3
}

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter generates a scattered ray for the hit, or false if absorbed
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)

	// ScatteringPDF returns the material's own density for having produced
	// the given scattered ray; used to weight directions that were sampled
	// from a light instead of from the material
	ScatteringPDF(rayIn Ray, hit HitRecord, scattered Ray) float64
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(rayIn Ray, hit HitRecord) Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray     // The scattered ray
	Attenuation Vec3    // Color attenuation
	PDF         float64 // Probability density (0 for specular materials)
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.PDF <= 0
}

// Scene provides the read-only state the integrator needs. The scene is
// built once before rendering and never mutated afterwards.
type Scene interface {
	GetWorld() Hittable
	GetLights() []Light
	GetBackgroundColors() (topColor, bottomColor Vec3)
}
