package scene

import (
	"github.com/jerx2y/go-path-tracer/pkg/core"
	"github.com/jerx2y/go-path-tracer/pkg/geometry"
	"github.com/jerx2y/go-path-tracer/pkg/material"
	"github.com/jerx2y/go-path-tracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. Scenes are built
// once, preprocessed, and then read-only while workers render.
type Scene struct {
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	Objects        []core.Hittable
	Lights         []core.Light
	TopColor       core.Vec3 // Background gradient at +y
	BottomColor    core.Vec3 // Background gradient at -y

	camera *renderer.Camera
	world  core.Hittable
}

// Preprocess builds the camera and the BVH over the camera's shutter
// interval. Call it after the object list is final; the BVH is never
// rebuilt during rendering.
func (s *Scene) Preprocess() error {
	s.camera = renderer.NewCamera(s.CameraConfig)
	s.world = geometry.NewBVH(s.Objects, s.CameraConfig.ShutterOpen, s.CameraConfig.ShutterClose)
	return nil
}

// GetCamera returns the camera built by Preprocess
func (s *Scene) GetCamera() *renderer.Camera {
	return s.camera
}

// GetWorld returns the acceleration structure built by Preprocess
func (s *Scene) GetWorld() core.Hittable {
	return s.world
}

// GetLights returns the importance-sampled lights in the scene
func (s *Scene) GetLights() []core.Light {
	return s.Lights
}

// GetBackgroundColors returns the background gradient endpoints
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// Add appends an object to the scene
func (s *Scene) Add(object core.Hittable) {
	s.Objects = append(s.Objects, object)
}

// AddSphereLight adds an emissive sphere that is both visible geometry and
// an importance-sampled light
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) {
	emissiveMat := material.NewDiffuseLight(emission)
	sphere := geometry.NewSphere(center, radius, emissiveMat)
	s.Objects = append(s.Objects, sphere)
	s.Lights = append(s.Lights, sphere)
}

// skyBackground returns the classic white-to-sky-blue gradient
func skyBackground() (top, bottom core.Vec3) {
	return core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0)
}
