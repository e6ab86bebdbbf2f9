package geometry

import (
	"sort"

	"github.com/jerx2y/go-path-tracer/pkg/core"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Objects     []core.Hittable // Objects for leaf nodes (nil for internal nodes)
}

// BVH is a bounding volume hierarchy for fast ray-object intersection.
// It is built once from the final object list over the camera's shutter
// interval and never mutated during rendering.
type BVH struct {
	Root         *BVHNode
	time0, time1 float64
}

// Leaf threshold: if we have this many or fewer objects, store them in a
// leaf node and search them linearly
const leafThreshold = 8

// NewBVH constructs a BVH from a slice of bounded hittables. time0 and time1
// are the shutter interval used for all cached bounding boxes.
func NewBVH(objects []core.Hittable, time0, time1 float64) *BVH {
	if len(objects) == 0 {
		return &BVH{Root: nil, time0: time0, time1: time1}
	}

	// Copy the slice so sorting during the build never mutates the caller's
	// object list
	objectsCopy := make([]core.Hittable, len(objects))
	copy(objectsCopy, objects)

	return &BVH{
		Root:  buildBVH(objectsCopy, time0, time1),
		time0: time0,
		time1: time1,
	}
}

// buildBVH recursively builds the tree using a median split on the longest axis
func buildBVH(objects []core.Hittable, time0, time1 float64) *BVHNode {
	boundingBox := boxAround(objects, time0, time1)

	// Base case: few objects - create a leaf searched linearly
	if len(objects) <= leafThreshold {
		return &BVHNode{
			BoundingBox: boundingBox,
			Objects:     objects,
		}
	}

	axis := boundingBox.LongestAxis()
	sortObjectsByAxis(objects, axis, time0, time1)

	mid := len(objects) / 2
	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(objects[:mid], time0, time1),
		Right:       buildBVH(objects[mid:], time0, time1),
	}
}

// boxAround returns the union of all objects' boxes over the time interval
func boxAround(objects []core.Hittable, time0, time1 float64) core.AABB {
	var box core.AABB
	first := true
	for _, object := range objects {
		objectBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			continue // unbounded objects don't occur in BVH-managed scenes
		}
		if first {
			box = objectBox
			first = false
		} else {
			box = box.Union(objectBox)
		}
	}
	return box
}

// sortObjectsByAxis sorts objects by their bounding box minimum along the given axis
func sortObjectsByAxis(objects []core.Hittable, axis int, time0, time1 float64) {
	sort.Slice(objects, func(i, j int) bool {
		boxI, _ := objects[i].BoundingBox(time0, time1)
		boxJ, _ := objects[j].BoundingBox(time0, time1)

		switch axis {
		case 0:
			return boxI.Min.X < boxJ.Min.X
		case 1:
			return boxI.Min.Y < boxJ.Min.Y
		case 2:
			return boxI.Min.Z < boxJ.Min.Z
		default:
			return false
		}
	})
}

// Hit tests if a ray intersects any object in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return hitNode(bvh.Root, ray, tMin, tMax)
}

// BoundingBox returns the cached box built over the shutter interval
func (bvh *BVH) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if bvh.Root == nil {
		return core.AABB{}, false
	}
	return bvh.Root.BoundingBox, true
}

// hitNode recursively tests ray intersection with BVH nodes
func hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Check the node's own box first; a miss culls the whole subtree
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	// Leaf node: linear search through its objects
	if node.Objects != nil {
		var closestHit *core.HitRecord
		hitAnything := false
		closestSoFar := tMax

		for _, object := range node.Objects {
			if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
				hitAnything = true
				closestSoFar = hit.T
				closestHit = hit
			}
		}

		return closestHit, hitAnything
	}

	// Internal node: test both children, narrowing tMax by the first
	// child's hit distance before testing the second
	var closestHit *core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	if node.Left != nil {
		if hit, isHit := hitNode(node.Left, ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	if node.Right != nil {
		if hit, isHit := hitNode(node.Right, ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes   int
	leafNodes    int
	maxDepth     int
	totalObjects int
}

// getStats returns statistics about the BVH structure
func (bvh *BVH) getStats() bvhStats {
	stats := bvhStats{}
	if bvh.Root != nil {
		collectStats(bvh.Root, 0, &stats)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH
func collectStats(node *BVHNode, depth int, stats *bvhStats) {
	stats.totalNodes++

	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	if node.Objects != nil {
		stats.leafNodes++
		stats.totalObjects += len(node.Objects)
		return
	}

	if node.Left != nil {
		collectStats(node.Left, depth+1, stats)
	}
	if node.Right != nil {
		collectStats(node.Right, depth+1, stats)
	}
}
