package geometry

import (
	"math"

	"github.com/jerx2y/go-path-tracer/pkg/core"
)

// MovingSphere is a sphere whose center moves linearly from Center0 at
// Time0 to Center1 at Time1. Rays carry a shutter time that selects where
// the sphere is for that sample.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a sphere moving between two centers over a time interval
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// CenterAt returns the interpolated center at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	offset := s.Center1.Subtract(s.Center0).Multiply((time - s.Time0) / (s.Time1 - s.Time0))
	return s.Center0.Add(offset)
}

// Hit tests if a ray intersects with the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if s.Radius <= 0 {
		return nil, false
	}

	center := s.CenterAt(ray.Time)
	oc := ray.Origin.Subtract(center)

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

	sqrtD := math.Sqrt(discriminant)

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

	outwardNormal := hitRecord.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hitRecord.U, hitRecord.V = sphereUV(outwardNormal)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// BoundingBox returns the union of the sphere's boxes at the interval
// endpoints. The interval is the render's shutter interval, not the
// sphere's own motion interval, so culling stays correct across the shutter.
func (s *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(
		s.CenterAt(time0).Subtract(radius),
		s.CenterAt(time0).Add(radius),
	)
	box1 := core.NewAABB(
		s.CenterAt(time1).Subtract(radius),
		s.CenterAt(time1).Add(radius),
	)
	return box0.Union(box1), true
}
