package debug

import (
	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/pkg/math"
)

// BoxVertexCount is the number of vertices DrawBox emits (12 edges × 2).
const BoxVertexCount = 24

// BoxEdges returns the 12 edges of the axis-aligned box spanning lo and
// hi as consecutive endpoint pairs.
func BoxEdges(lo, hi math.Vec3) [BoxVertexCount]math.Vec3 {
	c := func(x, y, z bool) math.Vec3 {
		v := lo
		if x {
			v.X = hi.X
		}
		if y {
			v.Y = hi.Y
		}
		if z {
			v.Z = hi.Z
		}
		return v
	}
	return [BoxVertexCount]math.Vec3{
		// Bottom face
		c(false, false, false), c(true, false, false),
		c(true, false, false), c(true, false, true),
		c(true, false, true), c(false, false, true),
		c(false, false, true), c(false, false, false),
		// Top face
		c(false, true, false), c(true, true, false),
		c(true, true, false), c(true, true, true),
		c(true, true, true), c(false, true, true),
		c(false, true, true), c(false, true, false),
		// Vertical edges
		c(false, false, false), c(false, true, false),
		c(true, false, false), c(true, true, false),
		c(true, false, true), c(true, true, true),
		c(false, false, true), c(false, true, true),
	}
}

// DrawBox submits the wireframe of the box spanning lo and hi, grown by
// padding on every side, as one Lines batch.
func DrawBox(r scene.Renderer, lo, hi math.Vec3, padding float32, color math.Color) {
	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	r.Begin(scene.Lines)
	r.Color(color)
	for _, v := range BoxEdges(lo.Sub(pad), hi.Add(pad)) {
		r.Vertex(v)
	}
	r.End()
}
