package scene

import (
	"github.com/jerx2y/go-path-tracer/pkg/core"
	"github.com/jerx2y/go-path-tracer/pkg/geometry"
	"github.com/jerx2y/go-path-tracer/pkg/material"
	"github.com/jerx2y/go-path-tracer/pkg/renderer"
)

// NewDefaultScene creates the four-sphere scene: diffuse ground and center,
// a mirror on the left and glass on the right
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	top, bottom := skyBackground()
	s := &Scene{
		CameraConfig: cameraConfig,
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
		TopColor:    top,
		BottomColor: bottom,
	}

	materialGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	materialLeft := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	materialRight := material.NewDielectric(1.5)

	s.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, materialGround))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, materialCenter))
	s.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialLeft))
	s.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, materialRight))

	s.Preprocess()
	return s
}
