package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jerx2y/go-path-tracer/pkg/core"
)

func TestIsotropicScattersInAllDirections(t *testing.T) {
	mat := NewIsotropic(core.NewVec3(0.7, 0.7, 0.7))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 0.75)
	hit := testHit(core.NewVec3(0, 1, 0))

	below := 0
	const n = 1000
	for i := 0; i < n; i++ {
		result, scatters := mat.Scatter(rayIn, hit, sampler)
		if !scatters {
			t.Fatal("isotropic always scatters")
		}
		if math.Abs(result.Scattered.Direction.Length()-1.0) > 1e-9 {
			t.Fatalf("direction length = %v, want 1", result.Scattered.Direction.Length())
		}
		if result.Scattered.Time != rayIn.Time {
			t.Fatalf("scattered time = %v, want %v", result.Scattered.Time, rayIn.Time)
		}
		if result.Scattered.Direction.Dot(hit.Normal) < 0 {
			below++
		}
	}

	// Uniform sphere sampling sends about half the rays below the surface
	fraction := float64(below) / n
	if fraction < 0.4 || fraction > 0.6 {
		t.Errorf("below-surface fraction = %v, expected about 0.5", fraction)
	}
}
