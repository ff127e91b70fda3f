package lighting

import (
	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/pkg/math"
)

// Light is the sun of the scene. It is drawn before the lit entities so its
// state applies to everything after it in registry order.
type Light struct {
	Longitude float32 // degrees
	Latitude  float32 // degrees
	Ambient   math.Color
	Diffuse   math.Color

	enabled bool
}

var (
	_ scene.Displayable = (*Light)(nil)
	_ scene.Lightable   = (*Light)(nil)
)

// NewSun creates an enabled light in the afternoon sky.
func NewSun() *Light {
	return &Light{
		Longitude: 45,
		Latitude:  50,
		Ambient:   math.RGB(0.35, 0.35, 0.4),
		Diffuse:   math.RGB(0.9, 0.85, 0.75),
		enabled:   true,
	}
}

// Position returns a point on the unit sphere towards the sun.
func (l *Light) Position() math.Vec3 {
	return SunDirection(l.Longitude, l.Latitude)
}

// Update never finishes.
func (l *Light) Update(scene.Frame) bool { return false }

func (l *Light) Draw(r scene.Renderer) {
	r.SetLight(scene.Light{
		Enabled:   l.enabled,
		Direction: l.Position(),
		Ambient:   l.Ambient,
		Diffuse:   l.Diffuse,
	})
}

// ToggleLight switches lighting on or off.
func (l *Light) ToggleLight() { l.enabled = !l.enabled }

// Enabled reports whether lighting is on.
func (l *Light) Enabled() bool { return l.enabled }
