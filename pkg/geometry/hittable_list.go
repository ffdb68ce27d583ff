package geometry

import (
	"github.com/rmak/go-pathtracer/pkg/core"
)

// HittableList aggregates a collection of hittables and resolves the nearest
// hit across all of them.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends objects to the list
func (hl *HittableList) Add(objects ...core.Hittable) {
	hl.Objects = append(hl.Objects, objects...)
}

// Clear removes all objects from the list
func (hl *HittableList) Clear() {
	hl.Objects = hl.Objects[:0]
}

// Hit returns the globally nearest intersection within [tMin, tMax] across
// all members, independent of insertion order. The upper bound narrows to
// the closest hit seen so far as the scan progresses.
func (hl *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range hl.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
