package geometry

import (
	"math"

	"github.com/jerx2y/go-path-tracer/pkg/core"
)

// Sphere represents a sphere shape. Spheres with an emissive material can
// also serve as importance-sampled lights via PDFValue/RandomToward.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Degenerate spheres and rays never intersect anything
	if s.Radius <= 0 {
		return nil, false
	}

	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return nil, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Find the nearest intersection point within the valid range
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal (from center to hit point), unit by construction
	outwardNormal := hitRecord.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hitRecord.U, hitRecord.V = sphereUV(outwardNormal)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	), true
}

// PDFValue returns the solid-angle density for sampling the given direction
// from origin toward this sphere. Directions that miss the sphere have
// density zero.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, isHit := s.Hit(core.NewRay(origin, direction, 0), 0.001, math.Inf(1)); !isHit {
		return 0
	}

	distanceSquared := s.Center.Subtract(origin).LengthSquared()
	if distanceSquared <= s.Radius*s.Radius {
		// Origin inside the sphere; the subtended cone is undefined
		return 0
	}

	cosThetaMax := math.Sqrt(1.0 - s.Radius*s.Radius/distanceSquared)
	solidAngle := 2.0 * math.Pi * (1.0 - cosThetaMax)
	if solidAngle <= 0 {
		return 0
	}

	return 1.0 / solidAngle
}

// RandomToward samples a direction from origin uniformly over the cone
// subtended by this sphere
func (s *Sphere) RandomToward(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	toCenter := s.Center.Subtract(origin)
	distanceSquared := toCenter.LengthSquared()

	uvw := core.NewOnbFromW(toCenter.Normalize())
	return uvw.LocalVec(core.RandomToSphere(s.Radius, distanceSquared, sampler.Get2D()))
}

// sphereUV maps a point on the unit sphere to surface coordinates in
// [0,1)×[0,1]. The seam sits at -x, with the polar axis along y.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	u = phi / (2 * math.Pi)
	v = theta / math.Pi
	return u, v
}
