package debug

import (
	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/pkg/math"
)

// Axes draws the world X (red), Y (green) and Z (blue) axes from the origin.
type Axes struct {
	Length float32
}

// NewAxes creates axes of the given length.
func NewAxes(length float32) *Axes {
	return &Axes{Length: length}
}

func (a *Axes) Position() math.Vec3 { return math.Zero }

// Update never finishes.
func (a *Axes) Update(scene.Frame) bool { return false }

func (a *Axes) Draw(r scene.Renderer) {
	r.Begin(scene.Lines)
	r.Color(math.Red)
	DrawVector(r, math.Zero, math.Vec3{X: 1}, a.Length, false)
	r.Color(math.Green)
	DrawVector(r, math.Zero, math.Vec3{Y: 1}, a.Length, false)
	r.Color(math.Blue)
	DrawVector(r, math.Zero, math.Vec3{Z: 1}, a.Length, false)
	r.End()
}
