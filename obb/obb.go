// Package obb provides the oriented bounding box geometry used by the
// narrow-phase collision routines.
//
// An OBB is a value type: center, half-extents and a local orthonormal frame.
// Vertices and edges are derived on demand from the current fields and never
// cached, so a box can be freely copied or rebuilt between queries.
package obb

import "github.com/go-gl/mathgl/mgl64"

// OBB is an oriented bounding box.
//
// Caller contract: Axes must stay mutually orthonormal (a right-handed unit
// frame) and HalfExtents non-negative. Nothing here checks or enforces this;
// violating it makes query results numerically meaningless without failing.
type OBB struct {
	Center      mgl64.Vec3
	HalfExtents mgl64.Vec3
	Axes        [3]mgl64.Vec3
}

// Edge is a finite segment between two box vertices.
type Edge struct {
	Start mgl64.Vec3
	End   mgl64.Vec3
}

// NewAxisAligned builds a box with the world frame as its local axes.
func NewAxisAligned(center, halfExtents mgl64.Vec3) OBB {
	return OBB{
		Center:      center,
		HalfExtents: halfExtents,
		Axes: [3]mgl64.Vec3{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
	}
}

// Vertices returns the 8 corners of the box.
//
// The order is fixed and load-bearing: Edges pairs vertices by index, so the
// enumeration below (all +hX first, then all -hX, with hY and hZ alternating)
// must not be reordered.
func (b OBB) Vertices() [8]mgl64.Vec3 {
	hX := b.Axes[0].Mul(b.HalfExtents.X())
	hY := b.Axes[1].Mul(b.HalfExtents.Y())
	hZ := b.Axes[2].Mul(b.HalfExtents.Z())

	return [8]mgl64.Vec3{
		b.Center.Add(hX).Add(hY).Add(hZ),
		b.Center.Add(hX).Add(hY).Sub(hZ),
		b.Center.Add(hX).Sub(hY).Add(hZ),
		b.Center.Add(hX).Sub(hY).Sub(hZ),
		b.Center.Sub(hX).Add(hY).Add(hZ),
		b.Center.Sub(hX).Add(hY).Sub(hZ),
		b.Center.Sub(hX).Sub(hY).Add(hZ),
		b.Center.Sub(hX).Sub(hY).Sub(hZ),
	}
}

// edgePairs lists the vertex-index pairs forming the 12 edges, grouped 4 per
// local axis direction. Derived purely from the Vertices order.
var edgePairs = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Edges returns the 12 edges of the box, 4 aligned with each local axis.
func (b OBB) Edges() [12]Edge {
	vertices := b.Vertices()

	var edges [12]Edge
	for i, pair := range edgePairs {
		edges[i] = Edge{Start: vertices[pair[0]], End: vertices[pair[1]]}
	}
	return edges
}

// Transformed returns a copy of the box mapped through an affine transform:
// the center as a point, each axis as a direction renormalized to unit
// length. HalfExtents are left untouched, so a non-uniform scale or shear
// desynchronizes the stored extents from the true shape; callers applying
// such transforms must compensate externally.
func (b OBB) Transformed(model mgl64.Mat4) OBB {
	out := b
	out.Center = model.Mul4x1(b.Center.Vec4(1)).Vec3()
	for i, axis := range b.Axes {
		out.Axes[i] = model.Mul4x1(axis.Vec4(0)).Vec3().Normalize()
	}
	return out
}

// AABB returns the world-space axis-aligned bounds of the box, for callers
// feeding a broad phase.
func (b OBB) AABB() AABB {
	vertices := b.Vertices()
	return AABBFromPoints(vertices[:])
}
