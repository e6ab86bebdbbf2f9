package core

import "math"

// Onb is an orthonormal basis used to map directions sampled in a local
// frame (z along W) into world space.
type Onb struct {
	U, V, W Vec3
}

// NewOnbFromW builds an orthonormal basis around the given axis.
// w is expected to be unit length.
func NewOnbFromW(w Vec3) Onb {
	// Pick any vector not parallel to w to seed the basis
	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := w.Cross(a).Normalize()
	u := w.Cross(v)

	return Onb{U: u, V: v, W: w}
}

// Local transforms local coordinates (a, b, c) into world space
func (o Onb) Local(a, b, c float64) Vec3 {
	return o.U.Multiply(a).Add(o.V.Multiply(b)).Add(o.W.Multiply(c))
}

// LocalVec transforms a local-frame vector into world space
func (o Onb) LocalVec(v Vec3) Vec3 {
	return o.Local(v.X, v.Y, v.Z)
}
