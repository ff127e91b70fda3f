// Package debug provides debug visualization entities and helpers.
package debug

import (
	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/pkg/math"
)

// DrawVector submits the segment from origin along dir, scaled by length.
// When normalize is set dir is reduced to unit length first. Call it between
// Begin(scene.Lines) and End.
func DrawVector(r scene.Renderer, origin, dir math.Vec3, length float32, normalize bool) {
	if normalize {
		dir = dir.Normalize()
	}
	r.Vertex(origin)
	r.Vertex(origin.Add(dir.Scale(length)))
}
