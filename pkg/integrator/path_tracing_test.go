package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jerx2y/go-path-tracer/pkg/core"
	"github.com/jerx2y/go-path-tracer/pkg/geometry"
	"github.com/jerx2y/go-path-tracer/pkg/material"
)

// testScene is a minimal core.Scene for driving the integrator directly
type testScene struct {
	world       core.Hittable
	lights      []core.Light
	topColor    core.Vec3
	bottomColor core.Vec3
}

func (s *testScene) GetWorld() core.Hittable { return s.world }

func (s *testScene) GetLights() []core.Light { return s.lights }

func (s *testScene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return s.topColor, s.bottomColor
}

func newTestScene(objects ...core.Hittable) *testScene {
	return &testScene{
		world:       geometry.NewHittableList(objects...),
		topColor:    core.NewVec3(0.5, 0.7, 1.0),
		bottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

func newSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

func TestDepthCutoffReturnsBlack(t *testing.T) {
	scene := newTestScene(geometry.NewSphere(
		core.NewVec3(0, 0, -3), 1.0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	pt := NewPathTracer(0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)

	if got := pt.Trace(ray, scene, newSampler(1)); got != (core.Vec3{}) {
		t.Errorf("depth 0 trace = %v, want black", got)
	}
}

func TestBackgroundGradient(t *testing.T) {
	scene := newTestScene() // empty world
	pt := NewPathTracer(10)

	tests := []struct {
		name      string
		direction core.Vec3
		want      core.Vec3
	}{
		{"straight up is the top color", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down is the bottom color", core.NewVec3(0, -1, 0), core.NewVec3(1.0, 1.0, 1.0)},
		{"horizontal is the midpoint", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction, 0)
			got := pt.Trace(ray, scene, newSampler(1))
			if math.Abs(got.X-tt.want.X) > 1e-9 ||
				math.Abs(got.Y-tt.want.Y) > 1e-9 ||
				math.Abs(got.Z-tt.want.Z) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGradientUsesDirectionNotMagnitude(t *testing.T) {
	scene := newTestScene()
	pt := NewPathTracer(10)

	short := pt.Trace(core.NewRay(core.Vec3{}, core.NewVec3(0, 0.5, 0), 0), scene, newSampler(1))
	long := pt.Trace(core.NewRay(core.Vec3{}, core.NewVec3(0, 50, 0), 0), scene, newSampler(1))
	if short != long {
		t.Errorf("gradient depends on direction magnitude: %v vs %v", short, long)
	}
}

func TestEmissiveMaterialTerminatesPath(t *testing.T) {
	emission := core.NewVec3(4, 3, 2)
	scene := newTestScene(geometry.NewSphere(
		core.NewVec3(0, 0, -3), 1.0, material.NewDiffuseLight(emission)))

	pt := NewPathTracer(10)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)

	if got := pt.Trace(ray, scene, newSampler(1)); got != emission {
		t.Errorf("got %v, want the emission %v", got, emission)
	}
}

func TestEnergyConservation(t *testing.T) {
	// A diffuse sphere under the sky: no surface interaction may amplify
	// light, so every sample stays below the brightest background value
	albedo := core.NewVec3(0.7, 0.7, 0.7)
	scene := newTestScene(geometry.NewSphere(
		core.NewVec3(0, 0, -3), 1.0, material.NewLambertian(albedo)))

	pt := NewPathTracer(20)
	sampler := newSampler(2)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)

	for i := 0; i < 200; i++ {
		got := pt.Trace(ray, scene, sampler)
		if got.X < 0 || got.Y < 0 || got.Z < 0 {
			t.Fatalf("negative radiance %v", got)
		}
		if got.X > 1.0+1e-9 || got.Y > 1.0+1e-9 || got.Z > 1.0+1e-9 {
			t.Fatalf("sample %v exceeds the maximum background radiance", got)
		}
	}
}

func TestSpecularBounceReachesBackground(t *testing.T) {
	// A huge mirror sphere acts as a flat floor; a ray straight down
	// reflects straight up into the sky
	scene := newTestScene(geometry.NewSphere(
		core.NewVec3(0, -1e5, -3), 1e5-1.0, material.NewMetal(core.NewVec3(1, 1, 1), 0)))

	pt := NewPathTracer(5)
	ray := core.NewRay(core.NewVec3(0, 2, -3), core.NewVec3(0, -1, 0), 0)

	got := pt.Trace(ray, scene, newSampler(3))

	// The mirror flips the ray upward into the top background color
	want := core.NewVec3(0.5, 0.7, 1.0)
	if math.Abs(got.X-want.X) > 1e-6 || math.Abs(got.Y-want.Y) > 1e-6 || math.Abs(got.Z-want.Z) > 1e-6 {
		t.Errorf("got %v, want the top background %v", got, want)
	}
}

func TestLightSamplingFindsSmallLight(t *testing.T) {
	// A small bright light above a diffuse floor. With light sampling in the
	// mixture, a modest number of samples must pick up energy from the light.
	lightSphere := geometry.NewSphere(
		core.NewVec3(0, 5, 0), 0.5, material.NewDiffuseLight(core.NewVec3(20, 20, 20)))
	floor := geometry.NewSphere(
		core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7)))

	scene := &testScene{
		world:  geometry.NewHittableList(floor, lightSphere),
		lights: []core.Light{lightSphere},
		// Black sky isolates the light's contribution
		topColor:    core.Vec3{},
		bottomColor: core.Vec3{},
	}

	pt := NewPathTracer(5)
	sampler := newSampler(4)
	ray := core.NewRay(core.NewVec3(0, 2, 4), core.NewVec3(0, -0.4, -1).Normalize(), 0)

	var total core.Vec3
	const n = 500
	for i := 0; i < n; i++ {
		total = total.Add(pt.Trace(ray, scene, sampler))
	}
	mean := total.Multiply(1.0 / n)

	if mean.Luminance() <= 0.001 {
		t.Errorf("mean radiance %v is black; light sampling found no energy", mean)
	}
}

func TestAbsorbedDiffuseSampleIsBlack(t *testing.T) {
	// Rays that escape a black-sky scene without hitting a light gather nothing
	floor := geometry.NewSphere(
		core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	scene := &testScene{
		world:       geometry.NewHittableList(floor),
		topColor:    core.Vec3{},
		bottomColor: core.Vec3{},
	}

	pt := NewPathTracer(3)
	sampler := newSampler(5)
	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0), 0)

	for i := 0; i < 100; i++ {
		if got := pt.Trace(ray, scene, sampler); got != (core.Vec3{}) {
			t.Fatalf("got %v, want black under a black sky", got)
		}
	}
}

func TestMaxDepthAccessor(t *testing.T) {
	if got := NewPathTracer(7).MaxDepth(); got != 7 {
		t.Errorf("MaxDepth = %d, want 7", got)
	}
}
