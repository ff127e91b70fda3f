// Package camera provides the free-look scene camera.
package camera

import (
	gomath "math"

	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/pkg/math"
)

// Camera is a free-look camera. Mouse motion turns it, Move translates it
// along its own horizontal axes or along world Y.
type Camera struct {
	Eye   math.Vec3
	Yaw   float32 // radians around Y, 0 looks towards -Z
	Pitch float32 // radians, positive looks up

	// Constraints
	MinPitch float32
	MaxPitch float32

	// Sensitivity
	RotationSpeed    float32 // radians per pixel of mouse motion
	TranslationSpeed float32 // world units per Move step

	lastX, lastY int
	tracking     bool
}

var (
	_ scene.Movable   = (*Camera)(nil)
	_ scene.Rotatable = (*Camera)(nil)
)

// New creates a camera above the water looking at the island.
func New() *Camera {
	return &Camera{
		Eye:              math.Vec3{Y: 0.5, Z: 1.8},
		Pitch:            -0.3,
		MinPitch:         -1.5,
		MaxPitch:         1.5,
		RotationSpeed:    0.005,
		TranslationSpeed: 0.02,
	}
}

func (c *Camera) Position() math.Vec3 { return c.Eye }

// Update never finishes.
func (c *Camera) Update(scene.Frame) bool { return false }

// Draw installs the view matrix.
func (c *Camera) Draw(r scene.Renderer) {
	r.SetView(c.ViewMatrix())
}

// Forward returns the unit view direction.
func (c *Camera) Forward() math.Vec3 {
	cp := float32(gomath.Cos(float64(c.Pitch)))
	return math.Vec3{
		X: cp * float32(gomath.Sin(float64(c.Yaw))),
		Y: float32(gomath.Sin(float64(c.Pitch))),
		Z: -cp * float32(gomath.Cos(float64(c.Yaw))),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Eye.Add(c.Forward()), math.Up)
}

// Move translates the camera. Forward and backward stay on the horizontal
// plane so pitch does not change the altitude.
func (c *Camera) Move(dir scene.Direction, coef float32) {
	step := c.TranslationSpeed * coef
	sy := float32(gomath.Sin(float64(c.Yaw)))
	cy := float32(gomath.Cos(float64(c.Yaw)))
	forward := math.Vec3{X: sy, Z: -cy}
	right := math.Vec3{X: cy, Z: sy}

	switch dir {
	case scene.Left:
		c.Eye = c.Eye.Sub(right.Scale(step))
	case scene.Right:
		c.Eye = c.Eye.Add(right.Scale(step))
	case scene.Forward:
		c.Eye = c.Eye.Add(forward.Scale(step))
	case scene.Backward:
		c.Eye = c.Eye.Sub(forward.Scale(step))
	case scene.Up:
		c.Eye.Y += step
	case scene.Down:
		c.Eye.Y -= step
	}
}

// Rotation turns the camera by the pointer motion since the previous call.
// The first call only records the pointer position.
func (c *Camera) Rotation(x, y int) {
	if !c.tracking {
		c.lastX, c.lastY, c.tracking = x, y, true
		return
	}
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y

	c.Yaw += float32(dx) * c.RotationSpeed
	c.Pitch -= float32(dy) * c.RotationSpeed
	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}
