package sat

import (
	"math"
	"testing"

	"github.com/akmonengine/prism/obb"
	"github.com/go-gl/mathgl/mgl64"
)

// pointToEdgeDistance degrades the segment-segment solver to point-segment
// by passing a zero-length first segment.
func pointToEdgeDistance(p mgl64.Vec3, edge obb.Edge) float64 {
	c1, c2 := segmentClosestPoints(p, p, edge.Start, edge.End)
	return c1.Sub(c2).Len()
}

func onAnyEdge(p mgl64.Vec3, boxes []obb.OBB, tolerance float64) bool {
	for _, box := range boxes {
		for _, edge := range box.Edges() {
			if pointToEdgeDistance(p, edge) <= tolerance {
				return true
			}
		}
	}
	return false
}

func TestSegmentClosestPoints(t *testing.T) {
	t.Run("perpendicular crossing segments", func(t *testing.T) {
		c1, c2 := segmentClosestPoints(
			mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{1, 0, 0},
			mgl64.Vec3{0, -1, 1}, mgl64.Vec3{0, 1, 1},
		)

		if c1.Sub(mgl64.Vec3{0, 0, 0}).Len() > 1e-9 {
			t.Errorf("c1 = %v, want origin", c1)
		}
		if c2.Sub(mgl64.Vec3{0, 0, 1}).Len() > 1e-9 {
			t.Errorf("c2 = %v, want (0, 0, 1)", c2)
		}
	})

	t.Run("clamping to segment ends", func(t *testing.T) {
		// Second segment lies entirely beyond the end of the first
		c1, c2 := segmentClosestPoints(
			mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0},
			mgl64.Vec3{3, -1, 0}, mgl64.Vec3{3, 1, 0},
		)

		if c1.Sub(mgl64.Vec3{1, 0, 0}).Len() > 1e-9 {
			t.Errorf("c1 = %v, want clamped endpoint (1, 0, 0)", c1)
		}
		if c2.Sub(mgl64.Vec3{3, 0, 0}).Len() > 1e-9 {
			t.Errorf("c2 = %v, want (3, 0, 0)", c2)
		}
	})

	t.Run("parallel segments fall back to s=0", func(t *testing.T) {
		c1, c2 := segmentClosestPoints(
			mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 0, 0},
			mgl64.Vec3{1, 1, 0}, mgl64.Vec3{3, 1, 0},
		)

		// Degenerate 2x2 system: s pinned to the first segment's start,
		// t solved alone.
		if c1.Sub(mgl64.Vec3{0, 0, 0}).Len() > 1e-9 {
			t.Errorf("c1 = %v, want segment start", c1)
		}
		if c2.Sub(mgl64.Vec3{1, 1, 0}).Len() > 1e-9 {
			t.Errorf("c2 = %v, want (1, 1, 0)", c2)
		}
		if got := c1.Sub(c2).Len(); math.Abs(got-math.Sqrt2) > 1e-9 {
			t.Errorf("distance = %v, want sqrt2", got)
		}
	})

	t.Run("first segment degenerates to a point", func(t *testing.T) {
		p := mgl64.Vec3{0, 2, 0}
		c1, c2 := segmentClosestPoints(
			p, p,
			mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{1, 0, 0},
		)

		if c1 != p {
			t.Errorf("c1 = %v, want the degenerate point itself", c1)
		}
		if c2.Sub(mgl64.Vec3{0, 0, 0}).Len() > 1e-9 {
			t.Errorf("c2 = %v, want projection (0, 0, 0)", c2)
		}
	})

	t.Run("both segments degenerate to points", func(t *testing.T) {
		p1 := mgl64.Vec3{1, 2, 3}
		p2 := mgl64.Vec3{4, 5, 6}
		c1, c2 := segmentClosestPoints(p1, p1, p2, p2)

		if c1 != p1 || c2 != p2 {
			t.Errorf("closest points = %v, %v, want the points themselves", c1, c2)
		}
	})
}

func TestVertexFaceContact(t *testing.T) {
	t.Run("overlapping cubes report a penetrating vertex", func(t *testing.T) {
		a := createBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
		b := createBox(mgl64.Vec3{1.5, 0, 0}, mgl64.Vec3{1, 1, 1})

		point := vertexFaceContact(a, b)

		// The least-penetrating in-bounds vertex is a's first corner on the
		// overlapping side.
		if point.Sub(mgl64.Vec3{1, 1, 1}).Len() > 1e-9 {
			t.Errorf("contact point = %v, want (1, 1, 1)", point)
		}
	})

	t.Run("contact point is always an input vertex", func(t *testing.T) {
		rotation := mgl64.QuatRotate(0.3, mgl64.Vec3{1, 2, 0}.Normalize())
		a := createBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 1, 1})
		b := createRotatedBox(mgl64.Vec3{1.2, 0.8, 0}, mgl64.Vec3{1, 1, 1}, rotation)

		point := vertexFaceContact(a, b)

		isVertex := false
		for _, box := range []obb.OBB{a, b} {
			for _, v := range box.Vertices() {
				if point.Sub(v).Len() < 1e-9 {
					isVertex = true
				}
			}
		}
		if !isVertex {
			t.Errorf("contact point %v is not a vertex of either box", point)
		}
	})
}

func TestEdgeEdgeContact(t *testing.T) {
	t.Run("crossed rods meet near the crossing", func(t *testing.T) {
		// Rod a runs along x, rod b along z, almost touching in y
		a := createBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 0.1, 0.1})
		b := obb.OBB{
			Center:      mgl64.Vec3{0.3, 0.15, 0},
			HalfExtents: mgl64.Vec3{2, 0.1, 0.1},
			Axes: [3]mgl64.Vec3{
				{0, 0, -1},
				{0, 1, 0},
				{1, 0, 0},
			},
		}

		point := edgeEdgeContact(a, b)

		if !onAnyEdge(point, []obb.OBB{a, b}, 1e-9) {
			t.Errorf("contact point %v does not lie on any edge", point)
		}
		// The crossing happens above a, within b's footprint around x = 0.3
		if math.Abs(point.X()-0.3) > 0.1+1e-9 || math.Abs(point.Z()) > 0.1+1e-9 {
			t.Errorf("contact point %v not in the crossing region", point)
		}
	})

	t.Run("reports the side whose closest point is nearer its start", func(t *testing.T) {
		// The kept point comes from one segment only, not the midpoint of
		// the two closest points; the gap between the rods makes the
		// difference observable.
		a := createBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 0.1, 0.1})
		b := obb.OBB{
			Center:      mgl64.Vec3{0.3, 0.3, 0},
			HalfExtents: mgl64.Vec3{2, 0.1, 0.1},
			Axes: [3]mgl64.Vec3{
				{0, 0, -1},
				{0, 1, 0},
				{1, 0, 0},
			},
		}

		point := edgeEdgeContact(a, b)

		onA := onAnyEdge(point, []obb.OBB{a}, 1e-9)
		onB := onAnyEdge(point, []obb.OBB{b}, 1e-9)
		if onA == onB {
			t.Fatalf("contact point %v should lie on exactly one rod (onA=%v onB=%v)", point, onA, onB)
		}
	})
}
