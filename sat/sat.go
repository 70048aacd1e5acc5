// Package sat implements narrow-phase collision detection between two
// oriented boxes using the Separating Axis Theorem.
//
// Two convex polyhedra are disjoint if and only if some axis exists on which
// their projections do not overlap; for a pair of boxes that axis, when it
// exists, is always among the 6 face normals and the 9 pairwise
// edge-direction cross products. The driver tests exactly this candidate set,
// bailing out on the first separating axis. When every axis overlaps, the
// axis with the smallest overlap is kept as the collision normal (a standard
// heuristic: it approximates, but is not guaranteed identical to, the true
// contact normal), and a single approximate contact point is recovered from
// the winning axis class.
//
// References:
//   - Gottschalk, Lin, Manocha: "OBBTree: A Hierarchical Structure for Rapid
//     Interference Detection" (1996)
//   - Ericson: "Real-Time Collision Detection" (2005), ch. 4-5
package sat

import (
	"math"

	"github.com/akmonengine/prism/obb"
	"github.com/go-gl/mathgl/mgl64"
)

// degenerateAxisLength drops cross-product candidates built from nearly
// parallel axes; such directions are numerically unreliable and the face
// axes already cover them.
const degenerateAxisLength = 1e-6

// ContactType classifies which kind of candidate axis produced the
// collision normal.
type ContactType int

const (
	// VertexFace means the winning axis was one of the 6 box face normals.
	VertexFace ContactType = iota
	// EdgeEdge means the winning axis was an edge-direction cross product.
	EdgeEdge
)

func (t ContactType) String() string {
	switch t {
	case VertexFace:
		return "vertex-face"
	case EdgeEdge:
		return "edge-edge"
	}
	return "unknown"
}

// Result describes a detected collision. It is a transient per-query record:
// Normal is the minimum-overlap candidate axis (unit-ish, not renormalized
// after the overlap test), Depth the overlap length along it, Point a single
// approximate contact location and Type the axis classification.
type Result struct {
	Normal mgl64.Vec3
	Depth  float64
	Point  mgl64.Vec3
	Type   ContactType
}

// faceAxisCount is the number of leading candidates that classify as
// vertex-face; everything after them is an edge cross product.
const faceAxisCount = 6

// candidateAxes builds the ordered SAT candidate set: the 3 axes of a, the
// 3 axes of b, then the 9 pairwise cross products with near-zero ones
// dropped and the rest normalized. Between 6 and 15 axes result.
func candidateAxes(a, b obb.OBB) []mgl64.Vec3 {
	axes := make([]mgl64.Vec3, 0, 15)
	axes = append(axes, a.Axes[0], a.Axes[1], a.Axes[2])
	axes = append(axes, b.Axes[0], b.Axes[1], b.Axes[2])

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			crossAxis := a.Axes[i].Cross(b.Axes[j])
			if crossAxis.Len() > degenerateAxisLength {
				axes = append(axes, crossAxis.Normalize())
			}
		}
	}

	return axes
}

// Intersect tests two boxes for overlap.
//
// The first candidate axis with disjoint projections proves separation and
// terminates the query with ok=false and a zero Result; callers must check
// ok before reading any field. If every axis overlaps the boxes intersect,
// and the minimum-overlap axis provides the normal, depth and contact-type
// classification; the matching recovery routine then searches the full
// geometry for the contact point.
//
// Intersect is a pure function of its inputs; concurrent calls over any
// boxes, shared or not, need no synchronization.
func Intersect(a, b obb.OBB) (Result, bool) {
	minDepth := math.MaxFloat64
	var smallestAxis mgl64.Vec3
	winner := -1

	for i, axis := range candidateAxes(a, b) {
		depth, ok := overlapOnAxis(a, b, axis)
		if !ok {
			// Separating axis found, no collision
			return Result{}, false
		}

		if depth < minDepth {
			minDepth = depth
			smallestAxis = axis
			winner = i
		}
	}

	result := Result{
		Normal: smallestAxis,
		Depth:  minDepth,
	}

	if winner < faceAxisCount {
		result.Type = VertexFace
		result.Point = vertexFaceContact(a, b)
	} else {
		result.Type = EdgeEdge
		result.Point = edgeEdgeContact(a, b)
	}

	return result, true
}
