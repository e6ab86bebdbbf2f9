package scene

import (
	"github.com/jerx2y/go-path-tracer/pkg/core"
	"github.com/jerx2y/go-path-tracer/pkg/geometry"
	"github.com/jerx2y/go-path-tracer/pkg/material"
	"github.com/jerx2y/go-path-tracer/pkg/renderer"
)

// NewLightScene creates a dimly lit scene dominated by an emissive sphere,
// exercising one-sided emission and light importance sampling
func NewLightScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		LookFrom:    core.NewVec3(13, 3, 6),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        30.0,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		CameraConfig: cameraConfig,
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel: 200,
			MaxDepth:        50,
		},
		// Near-black night sky so the sphere light dominates
		TopColor:    core.NewVec3(0.02, 0.03, 0.08),
		BottomColor: core.NewVec3(0.01, 0.01, 0.01),
	}

	groundMaterial := material.NewLambertian(core.NewVec3(0.48, 0.48, 0.45))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMaterial))

	s.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	s.Add(geometry.NewSphere(core.NewVec3(-2.5, 1, 1), 1.0, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.05)))
	s.Add(geometry.NewSphere(core.NewVec3(2.2, 0.7, 1.5), 0.7, material.NewDielectric(1.5)))

	s.AddSphereLight(core.NewVec3(0, 5, 0), 1.0, core.NewVec3(6, 6, 6))

	s.Preprocess()
	return s
}
