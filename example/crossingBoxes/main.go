package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/prism"
	"github.com/akmonengine/prism/obb"
	"github.com/akmonengine/prism/sat"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	// A single query: two cubes overlapping face to face
	a := obb.NewAxisAligned(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	b := obb.NewAxisAligned(mgl64.Vec3{1.5, 0, 0}, mgl64.Vec3{1, 1, 1})

	if result, ok := sat.Intersect(a, b); ok {
		fmt.Printf("face-to-face: %s, depth=%.3f, normal=%v, contact=%v\n",
			result.Type, result.Depth, result.Normal, result.Point)
	}

	// Rotate one cube 45 degrees and pose it through a model matrix
	model := mgl64.Translate3D(0, 2*math.Sqrt2-0.1, 0).Mul4(mgl64.HomogRotate3DZ(math.Pi / 4))
	c := obb.NewAxisAligned(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}).Transformed(model)
	ridge := obb.NewAxisAligned(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}).
		Transformed(mgl64.HomogRotate3DX(math.Pi / 4))

	if result, ok := sat.Intersect(ridge, c); ok {
		fmt.Printf("crossing ridges: %s, depth=%.3f, contact=%v\n",
			result.Type, result.Depth, result.Point)
	}

	// Batch form, the way a physics loop would consume it
	pairs := []prism.Pair{
		{A: a, B: b},
		{A: ridge, B: c},
		{A: a, B: obb.NewAxisAligned(mgl64.Vec3{5, 0, 0}, mgl64.Vec3{1, 1, 1})},
	}

	contacts := prism.DetectPairs(pairs, 4)
	fmt.Printf("batch: %d of %d pairs collide\n", len(contacts), len(pairs))
}
