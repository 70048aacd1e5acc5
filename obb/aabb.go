package obb

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents axis-aligned bounds in world space.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// AABBFromPoints returns the smallest AABB enclosing all points.
// An empty slice yields the zero AABB.
func AABBFromPoints(points []mgl64.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	bounds := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		for i := 0; i < 3; i++ {
			bounds.Min[i] = math.Min(bounds.Min[i], p[i])
			bounds.Max[i] = math.Max(bounds.Max[i], p[i])
		}
	}
	return bounds
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if point[i] < a.Min[i] || point[i] > a.Max[i] {
			return false
		}
	}
	return true
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	for i := 0; i < 3; i++ {
		if a.Max[i] < other.Min[i] || a.Min[i] > other.Max[i] {
			return false
		}
	}
	return true
}
