package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomSamplerDeterminism(t *testing.T) {
	a := NewRandomSampler(rand.New(rand.NewSource(7)))
	b := NewRandomSampler(rand.New(rand.NewSource(7)))

	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("samplers with the same seed diverged at draw %d", i)
		}
	}
}

func TestRandomSamplerRange(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(1)))

	for i := 0; i < 1000; i++ {
		v := sampler.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Get1D returned %v, expected [0, 1)", v)
		}
	}

	v2 := sampler.Get2D()
	if v2.X < 0 || v2.X >= 1 || v2.Y < 0 || v2.Y >= 1 {
		t.Errorf("Get2D returned %v, expected components in [0, 1)", v2)
	}
	v3 := sampler.Get3D()
	if v3.X < 0 || v3.X >= 1 || v3.Y < 0 || v3.Y >= 1 || v3.Z < 0 || v3.Z >= 1 {
		t.Errorf("Get3D returned %v, expected components in [0, 1)", v3)
	}
}

func TestRandomCosineDirection(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(2)))

	for i := 0; i < 1000; i++ {
		dir := RandomCosineDirection(sampler.Get2D())
		if math.Abs(dir.Length()-1.0) > 1e-9 {
			t.Fatalf("direction length %v, expected 1", dir.Length())
		}
		if dir.Z < 0 {
			t.Fatalf("direction %v is below the local horizon", dir)
		}
	}
}

func TestSampleCosineHemisphereStaysAboveSurface(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(3)))
	normal := NewVec3(1, 2, -1).Normalize()

	for i := 0; i < 1000; i++ {
		dir := SampleCosineHemisphere(normal, sampler.Get2D())
		if dir.Dot(normal) < -1e-9 {
			t.Fatalf("direction %v points below the surface", dir)
		}
	}
}

func TestRandomToSphereStaysInCone(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(4)))

	radius := 1.0
	distanceSquared := 25.0
	cosThetaMax := math.Sqrt(1.0 - radius*radius/distanceSquared)

	for i := 0; i < 1000; i++ {
		dir := RandomToSphere(radius, distanceSquared, sampler.Get2D())
		if math.Abs(dir.Length()-1.0) > 1e-9 {
			t.Fatalf("direction length %v, expected 1", dir.Length())
		}
		// Local z is the cone axis
		if dir.Z < cosThetaMax-1e-9 {
			t.Fatalf("direction %v falls outside the cone (cos %v < %v)", dir, dir.Z, cosThetaMax)
		}
	}
}

func TestSampleOnUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(5)))
	var mean Vec3

	const n = 5000
	for i := 0; i < n; i++ {
		dir := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(dir.Length()-1.0) > 1e-9 {
			t.Fatalf("direction length %v, expected 1", dir.Length())
		}
		mean = mean.Add(dir)
	}

	// Uniform directions average out near the origin
	mean = mean.Multiply(1.0 / n)
	if mean.Length() > 0.05 {
		t.Errorf("mean direction %v is too far from zero for a uniform distribution", mean)
	}
}

func TestSamplePointInUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(6)))

	inner := 0
	const n = 5000
	for i := 0; i < n; i++ {
		p := SamplePointInUnitSphere(sampler.Get3D())
		if p.Length() > 1.0+1e-9 {
			t.Fatalf("point %v lies outside the unit sphere", p)
		}
		if p.Length() < 0.5 {
			inner++
		}
	}

	// Volume of the inner half-radius sphere is 1/8 of the whole
	fraction := float64(inner) / n
	if fraction < 0.09 || fraction > 0.16 {
		t.Errorf("inner-sphere fraction %v, expected about 0.125", fraction)
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(8)))

	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 {
			t.Fatalf("disk point %v has nonzero z", p)
		}
		if p.Length() > 1.0+1e-9 {
			t.Fatalf("point %v lies outside the unit disk", p)
		}
	}

	// The degenerate center sample maps to the origin
	if p := SamplePointInUnitDisk(NewVec2(0.5, 0.5)); p != NewVec3(0, 0, 0) {
		t.Errorf("center sample gave %v, expected origin", p)
	}
}
