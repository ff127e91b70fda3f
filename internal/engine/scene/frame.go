// Package scene defines the contracts shared by every entity of the island
// scene: the per-frame timing snapshot, the renderer the entities draw with,
// the capability interfaces and the ordered entity registry.
package scene

import "github.com/Faultbox/island-defense/pkg/math"

// Frame is the timing snapshot handed to entities on every update.
type Frame struct {
	Time   float32 // simulation time in seconds
	Delta  float32 // seconds since the previous update
	Number uint64  // update counter, starts at 1
}

// Primitive selects how submitted vertices are assembled.
type Primitive int

const (
	Triangles Primitive = iota
	Lines
	Points
	TriangleStrip
	LineStrip
)

// Light describes the single directional light of the scene.
type Light struct {
	Enabled   bool
	Direction math.Vec3 // towards the light
	Ambient   math.Color
	Diffuse   math.Color
}

// Renderer is the immediate-mode style drawing surface entities submit to.
// Implementations buffer Vertex calls between Begin and End; Color and Normal
// set the attributes used by the following vertices.
type Renderer interface {
	Begin(p Primitive)
	Color(c math.Color)
	Normal(n math.Vec3)
	Vertex(v math.Vec3)
	End()

	SetWireframe(on bool)
	SetView(view math.Mat4)
	PushMatrix(model math.Mat4)
	PopMatrix()
	SetLight(l Light)
}
