package sat

import (
	"math"

	"github.com/akmonengine/prism/obb"
	"github.com/go-gl/mathgl/mgl64"
)

// project computes the interval covered by a box projected onto an axis.
//
// The support radius is the sum of each half-extent weighted by the absolute
// dot product of its local axis with the test axis; the absolute values are
// what make the formula correct regardless of the axis sign.
//
// Precondition: axis must be unit length. Both the support radius and the
// overlap length computed from it assume a unit axis.
func project(b obb.OBB, axis mgl64.Vec3) (min, max float64) {
	centerProjection := b.Center.Dot(axis)
	extent := b.HalfExtents.X()*math.Abs(b.Axes[0].Dot(axis)) +
		b.HalfExtents.Y()*math.Abs(b.Axes[1].Dot(axis)) +
		b.HalfExtents.Z()*math.Abs(b.Axes[2].Dot(axis))

	return centerProjection - extent, centerProjection + extent
}

// overlapOnAxis projects both boxes onto a unit axis and tests their
// intervals. It returns ok=false the moment the intervals are disjoint
// (a separating axis), without computing anything further. When the
// intervals overlap, overlap is the length of their intersection.
func overlapOnAxis(a, b obb.OBB, axis mgl64.Vec3) (overlap float64, ok bool) {
	min1, max1 := project(a, axis)
	min2, max2 := project(b, axis)

	if max1 < min2 || max2 < min1 {
		return 0, false
	}

	return math.Min(max1, max2) - math.Max(min1, min2), true
}
