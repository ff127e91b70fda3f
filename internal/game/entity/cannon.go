package entity

import (
	gomath "math"

	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/pkg/math"
)

// Cannon power limits in world units per second.
const (
	MinPower float32 = 0.2
	MaxPower float32 = 2
)

const barrelLength = 0.04

// CannonOptions configures a cannon.
type CannonOptions struct {
	Origin    math.Vec3
	Heading   float32 // degrees around Y, 0 fires towards -Z
	Elevation float32 // degrees above the horizon
	Power     float32
	Color     math.Color
	Surface   Surface
	Extent    float32 // projectiles leaving [-Extent, Extent]² are dropped
	Sounds    Sounds
	Impact    func(at math.Vec3) // called where a projectile hits the water
}

// Cannon fires projectiles and owns them while they fly.
type Cannon struct {
	Origin    math.Vec3
	Heading   float32
	Elevation float32

	power   float32
	color   math.Color
	surface Surface
	extent  float32
	sounds  Sounds
	impact  func(at math.Vec3)

	now   float32
	shots *Group[*Projectile]
}

// NewCannon creates a cannon.
func NewCannon(opts CannonOptions) *Cannon {
	return &Cannon{
		Origin:    opts.Origin,
		Heading:   wrapDegrees(opts.Heading),
		Elevation: opts.Elevation,
		power:     clampPower(opts.Power),
		color:     opts.Color,
		surface:   opts.Surface,
		extent:    opts.Extent,
		sounds:    orSilence(opts.Sounds),
		impact:    opts.Impact,
		shots:     NewGroup[*Projectile](),
	}
}

// Direction returns the unit firing direction.
func (c *Cannon) Direction() math.Vec3 {
	h := float64(math.Radians(c.Heading))
	e := float64(math.Radians(c.Elevation))
	ce := gomath.Cos(e)
	return math.Vec3{
		X: float32(gomath.Sin(h) * ce),
		Y: float32(gomath.Sin(e)),
		Z: float32(-gomath.Cos(h) * ce),
	}
}

// Power returns the muzzle speed.
func (c *Cannon) Power() float32 { return c.power }

// Blast fires a projectile along the barrel.
func (c *Cannon) Blast() *Projectile {
	return c.fire(c.Direction().Scale(c.power))
}

// Defend fires a projectile straight up to intercept incoming fire.
func (c *Cannon) Defend() *Projectile {
	return c.fire(math.Vec3{Y: c.power})
}

func (c *Cannon) fire(velocity math.Vec3) *Projectile {
	muzzle := c.Origin.Add(velocity.Normalize().Scale(barrelLength))
	p := NewProjectile(c.now, muzzle, velocity, c.color, c.surface, c.extent, c.sounds)
	p.OnImpact(c.impact)
	c.shots.Add(p)
	c.sounds.Blast()
	return p
}

// Speed changes the power by delta within [MinPower, MaxPower].
func (c *Cannon) Speed(delta float32) {
	c.power = clampPower(c.power + delta)
}

// Rotate turns the heading by delta degrees.
func (c *Cannon) Rotate(delta float32) {
	c.Heading = wrapDegrees(c.Heading + delta)
}

// SetAngle aims the cannon.
func (c *Cannon) SetAngle(heading, elevation float32) {
	c.Heading = wrapDegrees(heading)
	c.Elevation = max(-90, min(90, elevation))
}

// InFlight returns the number of projectiles still flying.
func (c *Cannon) InFlight() int { return c.shots.Len() }

// Projectiles returns the flying projectiles.
func (c *Cannon) Projectiles() []*Projectile { return c.shots.Items() }

func (c *Cannon) Position() math.Vec3 { return c.Origin }

// Update advances the projectiles. A cannon never finishes.
func (c *Cannon) Update(frame scene.Frame) bool {
	c.now = frame.Time
	c.shots.Update(frame)
	return false
}

func (c *Cannon) Draw(r scene.Renderer) {
	r.Begin(scene.Lines)
	r.Color(c.color)
	r.Vertex(c.Origin)
	r.Vertex(c.Origin.Add(c.Direction().Scale(barrelLength)))
	r.End()
	c.shots.Draw(r)
}

func clampPower(p float32) float32 {
	return max(MinPower, min(MaxPower, p))
}

func wrapDegrees(d float32) float32 {
	d = float32(gomath.Mod(float64(d), 360))
	if d < 0 {
		d += 360
	}
	return d
}
