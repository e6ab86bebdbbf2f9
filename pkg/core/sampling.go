package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// Every worker carries its own Sampler so sample streams stay independent
// and renders are reproducible from a seed.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomCosineDirection generates a cosine-weighted direction in the local
// frame (z up). Transform with an Onb built from the surface normal.
func RandomCosineDirection(sample Vec2) Vec3 {
	a := 2.0 * math.Pi * sample.X
	z := sample.Y
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	zCoord := math.Sqrt(1.0 - z)

	return NewVec3(x, y, zCoord)
}

// SampleCosineHemisphere generates a cosine-weighted random direction in the
// hemisphere around the given normal
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	return NewOnbFromW(normal).LocalVec(RandomCosineDirection(sample))
}

// RandomToSphere samples a direction in the local frame (z toward the sphere
// center) uniformly over the cone subtended by a sphere of the given radius
// at the given squared distance
func RandomToSphere(radius, distanceSquared float64, sample Vec2) Vec3 {
	cosThetaMax := math.Sqrt(math.Max(0, 1.0-radius*radius/distanceSquared))

	cosTheta := 1.0 + sample.X*(cosThetaMax-1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * sample.Y

	x := sinTheta * math.Cos(phi)
	y := sinTheta * math.Sin(phi)
	z := cosTheta

	return NewVec3(x, y, z)
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}

// SamplePointInUnitSphere generates a random point inside a unit sphere using
// the inverse CDF method, avoiding rejection sampling
func SamplePointInUnitSphere(sample Vec3) Vec3 {
	r := math.Pow(sample.X, 1.0/3.0)
	phi := 2 * math.Pi * sample.Y
	cosTheta := 2*sample.Z - 1
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	x := r * sinTheta * math.Cos(phi)
	y := r * sinTheta * math.Sin(phi)
	z := r * cosTheta

	return NewVec3(x, y, z)
}

// SamplePointInUnitDisk generates a random point in a unit disk using
// concentric mapping, avoiding rejection sampling
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	// Map sample to [-1,1]² and handle degeneracy at the origin
	uOffset := NewVec2(2*sample.X-1, 2*sample.Y-1)
	if uOffset.X == 0 && uOffset.Y == 0 {
		return NewVec3(0, 0, 0)
	}

	var theta, r float64
	if math.Abs(uOffset.X) > math.Abs(uOffset.Y) {
		r = uOffset.X
		theta = math.Pi / 4 * (uOffset.Y / uOffset.X)
	} else {
		r = uOffset.Y
		theta = math.Pi/2 - math.Pi/4*(uOffset.X/uOffset.Y)
	}

	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}
