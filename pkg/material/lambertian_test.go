package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jerx2y/go-path-tracer/pkg/core"
)

func testHit(normal core.Vec3) core.HitRecord {
	return core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    normal,
		T:         1.0,
		FrontFace: true,
	}
}

func TestLambertianScatter(t *testing.T) {
	mat := NewLambertian(core.NewVec3(0.5, 0.3, 0.1))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 0.25)
	hit := testHit(core.NewVec3(0, 1, 0))

	for i := 0; i < 500; i++ {
		result, scatters := mat.Scatter(rayIn, hit, sampler)
		if !scatters {
			t.Fatal("lambertian always scatters")
		}
		if result.IsSpecular() {
			t.Fatal("lambertian scattering must carry a pdf")
		}

		// Scattered direction stays in the upper hemisphere
		cosine := result.Scattered.Direction.Dot(hit.Normal)
		if cosine < 0 {
			t.Fatalf("direction %v points below the surface", result.Scattered.Direction)
		}

		// PDF matches the cosine-weighted sampling density
		wantPDF := cosine / math.Pi
		if math.Abs(result.PDF-wantPDF) > 1e-9 {
			t.Fatalf("pdf = %v, want %v", result.PDF, wantPDF)
		}

		if result.Attenuation != core.NewVec3(0.5, 0.3, 0.1) {
			t.Fatalf("attenuation = %v, want the albedo", result.Attenuation)
		}
		if result.Scattered.Time != rayIn.Time {
			t.Fatalf("scattered time = %v, want %v", result.Scattered.Time, rayIn.Time)
		}
	}
}

func TestLambertianScatteringPDF(t *testing.T) {
	mat := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := testHit(core.NewVec3(0, 1, 0))
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 0)

	tests := []struct {
		name      string
		direction core.Vec3
		want      float64
	}{
		{"along the normal", core.NewVec3(0, 1, 0), 1.0 / math.Pi},
		{"45 degrees", core.NewVec3(1, 1, 0), math.Sqrt(0.5) / math.Pi},
		{"grazing", core.NewVec3(1, 0, 0), 0},
		{"below the surface", core.NewVec3(0, -1, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scattered := core.NewRay(hit.Point, tt.direction, 0)
			if got := mat.ScatteringPDF(rayIn, hit, scattered); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("pdf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTexturedLambertianUsesColorSource(t *testing.T) {
	mat := NewTexturedLambertian(NewSolidColor(core.NewVec3(0.9, 0.1, 0.2)))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(2)))

	result, scatters := mat.Scatter(
		core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 0),
		testHit(core.NewVec3(0, 1, 0)),
		sampler,
	)
	if !scatters {
		t.Fatal("expected scattering")
	}
	if result.Attenuation != core.NewVec3(0.9, 0.1, 0.2) {
		t.Errorf("attenuation = %v, want the source color", result.Attenuation)
	}
}
