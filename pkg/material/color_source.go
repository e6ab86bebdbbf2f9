package material

import (
	"github.com/jerx2y/go-path-tracer/pkg/core"
)

// ColorSource maps surface coordinates and a point to a color. Solid colors
// are the only variant here; checker/noise/image sources plug in through the
// same interface.
type ColorSource interface {
	Evaluate(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor is a color source that returns a constant color everywhere
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the constant color regardless of position
func (sc *SolidColor) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	return sc.Color
}
