package entity

import (
	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/pkg/math"
)

// Projectile is a cannon ball on a ballistic path. It finishes when it falls
// into the water or leaves the world.
type Projectile struct {
	start    math.Vec3
	velocity math.Vec3
	startT   float32
	pos      math.Vec3
	color    math.Color

	surface Surface
	extent  float32
	sounds  Sounds
	impact  func(at math.Vec3)
	done    bool
}

// NewProjectile launches a projectile from start at time t.
func NewProjectile(t float32, start, velocity math.Vec3, color math.Color, surface Surface, extent float32, sounds Sounds) *Projectile {
	return &Projectile{
		start:    start,
		velocity: velocity,
		startT:   t,
		pos:      start,
		color:    color,
		surface:  surface,
		extent:   extent,
		sounds:   orSilence(sounds),
	}
}

func (p *Projectile) Position() math.Vec3 { return p.pos }

// OnImpact registers fn to receive the point where the projectile falls
// into the water. Leaving the world is not an impact.
func (p *Projectile) OnImpact(fn func(at math.Vec3)) { p.impact = fn }

// Velocity returns the velocity at launch.
func (p *Projectile) Velocity() math.Vec3 { return p.velocity }

// At returns the position along the trajectory dt seconds after launch.
func (p *Projectile) At(dt float32) math.Vec3 {
	pos := p.start.Add(p.velocity.Scale(dt))
	pos.Y += Gravity * dt * dt / 2
	return pos
}

func (p *Projectile) Update(frame scene.Frame) bool {
	if p.done {
		return true
	}
	dt := max(frame.Time-p.startT, 0)
	p.pos = p.At(dt)

	switch {
	case p.pos.X < -p.extent || p.pos.X > p.extent || p.pos.Z < -p.extent || p.pos.Z > p.extent:
		p.done = true
	case dt > 0 && p.pos.Y < p.surface.Height(p.pos.X, p.pos.Z, frame.Time):
		p.done = true
		p.sounds.Splash()
		if p.impact != nil {
			p.impact(p.pos)
		}
	}
	return p.done
}

func (p *Projectile) Draw(r scene.Renderer) {
	r.Begin(scene.Points)
	r.Color(p.color)
	r.Vertex(p.pos)
	r.End()
}
