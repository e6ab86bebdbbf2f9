package scene

import (
	"math/rand"

	"github.com/jerx2y/go-path-tracer/pkg/core"
	"github.com/jerx2y/go-path-tracer/pkg/geometry"
	"github.com/jerx2y/go-path-tracer/pkg/material"
	"github.com/jerx2y/go-path-tracer/pkg/renderer"
)

// NewMotionBlurScene creates a field of small random spheres, many of them
// bouncing during the shutter interval, around three large feature spheres.
// Construction uses a fixed seed so the scene is identical on every run.
func NewMotionBlurScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
		ShutterOpen:   0.0,
		ShutterClose:  1.0,
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

	random := rand.New(rand.NewSource(2022))

	groundMaterial := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMaterial))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Keep the area around the feature spheres clear
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			chooseMat := random.Float64()
			switch {
			case chooseMat < 0.8:
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				mat := material.NewLambertian(albedo)
				// Diffuse spheres bounce upward during the shutter
				center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				s.Add(geometry.NewMovingSphere(center, center1, 0.0, 1.0, 0.2, mat))
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
				)
				mat := material.NewMetal(albedo, 0.5*random.Float64())
				s.Add(geometry.NewSphere(center, 0.2, mat))
			default:
				s.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	s.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	s.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	s.Preprocess()
	return s
}
