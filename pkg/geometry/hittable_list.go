package geometry

import (
	"github.com/jerx2y/go-path-tracer/pkg/core"
)

// HittableList is a flat collection of hittables searched linearly.
// It is the fallback aggregate for tiny scenes; larger scenes should be
// wrapped in a BVH.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Hit scans every member and returns the globally closest hit.
// tMax narrows as hits are found, so later candidates get cheaper to reject.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// BoundingBox returns the union of all members' boxes over the time
// interval, or false if the list is empty or any member is unbounded
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	first := true
	for _, object := range l.Objects {
		objectBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if first {
			box = objectBox
			first = false
		} else {
			box = box.Union(objectBox)
		}
	}

	return box, true
}
