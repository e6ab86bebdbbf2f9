package renderer

import (
	"math"

	"github.com/jerx2y/go-path-tracer/pkg/core"
)

// CameraConfig holds the camera parameters supplied by scene construction
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 disables depth of field
	FocusDistance float64   // Distance to the focal plane; 0 = auto from LookAt
	ShutterOpen   float64   // Shutter open time
	ShutterClose  float64   // Shutter close time
}

// MergeCameraConfig overlays non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	zero := core.Vec3{}

	if override.LookFrom != zero {
		merged.LookFrom = override.LookFrom
	}
	if override.LookAt != zero {
		merged.LookAt = override.LookAt
	}
	if override.Up != zero {
		merged.Up = override.Up
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		merged.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		merged.FocusDistance = override.FocusDistance
	}
	if override.ShutterOpen != 0 || override.ShutterClose != 0 {
		merged.ShutterOpen = override.ShutterOpen
		merged.ShutterClose = override.ShutterClose
	}

	return merged
}

// Camera generates jittered rays for rendering. Each ray gets a lens-disk
// offset for depth of field and a uniform time inside the shutter interval
// for motion blur.
type Camera struct {
	config          CameraConfig
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Camera basis vectors
	lensRadius      float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		// Auto-focus on the look-at point
		focusDistance = config.LookAt.Subtract(config.LookFrom).Length()
	}

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		config:          config,
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1,
// with t = 0 at the bottom of the image
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	offset := core.Vec3{}
	if c.lensRadius > 0 {
		rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	time := c.config.ShutterOpen + sampler.Get1D()*(c.config.ShutterClose-c.config.ShutterOpen)

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction, time)
}
