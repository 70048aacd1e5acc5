package sat

import (
	"math"

	"github.com/akmonengine/prism/obb"
	"github.com/go-gl/mathgl/mgl64"
)

// degenerateLengthSqr is the squared-length threshold under which a segment
// collapses to a point in the closest-point computations.
const degenerateLengthSqr = 1e-6

// vertexFaceContact recovers an approximate contact point once the winning
// separating-axis candidate was a face axis.
//
// Every vertex of one box is tested against the three center planes of the
// other (plane through the box center, normal = one local axis, in-plane
// bounds = the other two half-extents), in both directions. A vertex is a
// candidate when it sits on the penetrating side of the plane and its
// in-plane projection falls inside the face rectangle. The candidate with the
// smallest absolute penetration distance is reported verbatim; no averaging
// of near-ties.
func vertexFaceContact(a, b obb.OBB) mgl64.Vec3 {
	var closestPoint mgl64.Vec3
	closestDistance := math.MaxFloat64

	scanVertices := func(vertices [8]mgl64.Vec3, faces obb.OBB) {
		for _, vertex := range vertices {
			for i := 0; i < 3; i++ {
				normal := faces.Axes[i]
				u := faces.Axes[(i+1)%3]
				v := faces.Axes[(i+2)%3]
				uHalf := faces.HalfExtents[(i+1)%3]
				vHalf := faces.HalfExtents[(i+2)%3]

				rel := vertex.Sub(faces.Center)
				distance := rel.Dot(normal)
				if distance >= 0 {
					continue
				}
				if math.Abs(rel.Dot(u)) > uHalf || math.Abs(rel.Dot(v)) > vHalf {
					continue
				}
				if math.Abs(distance) < closestDistance {
					closestDistance = math.Abs(distance)
					closestPoint = vertex
				}
			}
		}
	}

	scanVertices(a.Vertices(), b)
	scanVertices(b.Vertices(), a)

	return closestPoint
}

// segmentClosestPoints solves the clamped parametric closest-point problem
// between two finite segments, returning the closest point on each.
//
// Degenerate fallbacks: a segment with near-zero squared length collapses to
// a point (point-to-segment distance), and when the directions are nearly
// parallel the 2x2 normal-equations denominator vanishes, in which case s is
// pinned to 0 and t solved alone.
func segmentClosestPoints(p1, q1, p2, q2 mgl64.Vec3) (c1, c2 mgl64.Vec3) {
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)

	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t float64
	switch {
	case a <= degenerateLengthSqr && e <= degenerateLengthSqr:
		// Both segments are points
		return p1, p2
	case a <= degenerateLengthSqr:
		s = 0
		t = mgl64.Clamp(f/e, 0, 1)
	default:
		c := d1.Dot(r)
		if e <= degenerateLengthSqr {
			t = 0
			s = mgl64.Clamp(-c/a, 0, 1)
		} else {
			b := d1.Dot(d2)
			denom := a*e - b*b
			if denom != 0 {
				s = mgl64.Clamp((b*f-c*e)/denom, 0, 1)
			} else {
				s = 0
			}
			t = mgl64.Clamp((b*s+f)/e, 0, 1)
		}
	}

	return p1.Add(d1.Mul(s)), p2.Add(d2.Mul(t))
}

// squaredDistanceBetweenEdges returns the minimum squared distance between
// two finite segments.
func squaredDistanceBetweenEdges(edge1, edge2 obb.Edge) float64 {
	c1, c2 := segmentClosestPoints(edge1.Start, edge1.End, edge2.Start, edge2.End)
	return c1.Sub(c2).LenSqr()
}

// closestEdgePair scans all 12x12 edge pairs and returns the pair with the
// globally minimum squared distance.
func closestEdgePair(a, b obb.OBB) (obb.Edge, obb.Edge) {
	edgesA := a.Edges()
	edgesB := b.Edges()

	minDistanceSquared := math.MaxFloat64
	var closestA, closestB obb.Edge

	for _, edgeA := range edgesA {
		for _, edgeB := range edgesB {
			distSquared := squaredDistanceBetweenEdges(edgeA, edgeB)
			if distSquared < minDistanceSquared {
				minDistanceSquared = distSquared
				closestA = edgeA
				closestB = edgeB
			}
		}
	}

	return closestA, closestB
}

// edgeEdgeContact recovers an approximate contact point once the winning
// separating-axis candidate was an edge cross-product axis.
//
// After finding the closest edge pair, the reported point is whichever of the
// two closest points lies nearer to its own segment's start. That asymmetry
// (rather than the midpoint of the two) is intentional and kept as-is.
func edgeEdgeContact(a, b obb.OBB) mgl64.Vec3 {
	edgeA, edgeB := closestEdgePair(a, b)
	c1, c2 := segmentClosestPoints(edgeA.Start, edgeA.End, edgeB.Start, edgeB.End)

	if c1.Sub(edgeA.Start).Len() < c2.Sub(edgeB.Start).Len() {
		return c1
	}
	return c2
}
