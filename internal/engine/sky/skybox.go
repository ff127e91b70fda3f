// Package sky draws the sky around the scene.
package sky

import (
	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/pkg/math"
)

// Skybox is a cube centered on the origin with a vertical colour gradient.
type Skybox struct {
	Size    float32 // half edge length
	Zenith  math.Color
	Horizon math.Color
}

// New creates a skybox of the given half size.
func New(size float32) *Skybox {
	return &Skybox{
		Size:    size,
		Zenith:  math.RGB(0.25, 0.45, 0.85),
		Horizon: math.RGB(0.75, 0.85, 0.95),
	}
}

func (s *Skybox) Position() math.Vec3 { return math.Zero }

// Update never finishes.
func (s *Skybox) Update(scene.Frame) bool { return false }

// cubeFaces lists the corners of each face, wound to face inwards.
var cubeFaces = [6][4]math.Vec3{
	{{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}}, // back
	{{X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}},     // front
	{{X: -1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 1}}, // left
	{{X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}},     // right
	{{X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}},     // top
	{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1}}, // bottom
}

func (s *Skybox) Draw(r scene.Renderer) {
	r.PushMatrix(math.Scale(s.Size))
	r.Begin(scene.Triangles)
	for _, face := range cubeFaces {
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			v := face[i]
			r.Color(s.colorAt(v.Y))
			r.Normal(v.Scale(-1).Normalize())
			r.Vertex(v)
		}
	}
	r.End()
	r.PopMatrix()
}

// colorAt blends from horizon at the bottom of the cube to zenith at the top.
func (s *Skybox) colorAt(y float32) math.Color {
	return s.Horizon.Lerp(s.Zenith, (y+1)/2)
}
