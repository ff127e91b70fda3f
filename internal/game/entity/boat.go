package entity

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/internal/logger"
	"github.com/Faultbox/island-defense/pkg/math"
)

// Boat defaults.
const (
	DefaultBoatHealth       = 3
	DefaultBoatFireInterval = 4 // seconds between shots
	ShotDamage              = 1 // health one island shot removes
	boatElevation           = 45
	boatLength              = 0.05
	boatBeam                = 0.02
	boatFreeboard           = 0.012
)

// BoatOptions configures a boat.
type BoatOptions struct {
	Position     math.Vec3 // only X and Z are used, the boat floats
	Color        math.Color
	Target       math.Vec3 // what the cannon aims at
	Health       int
	FireInterval float32 // seconds, <= 0 never fires
	Surface      Surface
	Extent       float32
	Sounds       Sounds
}

// Boat floats on the water, tilts with the surface and shells its target.
type Boat struct {
	pos      math.Vec3
	color    math.Color
	heading  float32 // degrees, the bow faces the target
	tilt     math.Quat
	health   int
	interval float32
	lastFire float32
	armed    bool

	surface Surface
	cannon  *Cannon
	log     *zap.Logger
}

var (
	_ scene.Displayable = (*Boat)(nil)
	_ CannonBearer      = (*Boat)(nil)
)

// NewBoat creates a boat aiming at opts.Target.
func NewBoat(opts BoatOptions) *Boat {
	health := opts.Health
	if health <= 0 {
		health = DefaultBoatHealth
	}
	pos := math.Vec3{X: opts.Position.X, Z: opts.Position.Z}
	heading := headingTo(pos, opts.Target)

	// Muzzle speed for a 45° shot landing on the target.
	dist := math.Vec3{X: opts.Target.X - pos.X, Z: opts.Target.Z - pos.Z}.Length()
	power := float32(gomath.Sqrt(float64(dist * -Gravity)))

	b := &Boat{
		pos:      pos,
		color:    opts.Color,
		heading:  heading,
		tilt:     math.QuatIdentity(),
		health:   health,
		interval: opts.FireInterval,
		surface:  opts.Surface,
		log:      logger.Named("boat"),
	}
	b.cannon = NewCannon(CannonOptions{
		Origin:    pos,
		Heading:   heading,
		Elevation: boatElevation,
		Power:     power,
		Color:     opts.Color.Lerp(math.Black, 0.5),
		Surface:   opts.Surface,
		Extent:    opts.Extent,
		Sounds:    opts.Sounds,
	})
	return b
}

// headingTo returns the heading in degrees from p towards target.
func headingTo(p, target math.Vec3) float32 {
	dx, dz := target.X-p.X, target.Z-p.Z
	if dx == 0 && dz == 0 {
		return 0
	}
	return wrapDegrees(float32(gomath.Atan2(float64(dx), float64(-dz)) * 180 / gomath.Pi))
}

func (b *Boat) Position() math.Vec3 { return b.pos }

// Color returns the hull colour.
func (b *Boat) Color() math.Color { return b.color }

// Heading returns the bow direction in degrees.
func (b *Boat) Heading() float32 { return b.heading }

// Health returns the remaining health.
func (b *Boat) Health() int { return b.health }

// Cannon returns the boat's cannon.
func (b *Boat) Cannon() *Cannon { return b.cannon }

// InFootprint reports whether at lies within a hull length of the boat on
// the water plane.
func (b *Boat) InFootprint(at math.Vec3) bool {
	dx, dz := at.X-b.pos.X, at.Z-b.pos.Z
	return dx*dx+dz*dz <= boatLength*boatLength
}

// Damage removes health. The boat finishes on its next update once health
// reaches zero.
func (b *Boat) Damage(n int) {
	if n <= 0 || b.health == 0 {
		return
	}
	b.health = max(b.health-n, 0)
	if b.health == 0 {
		b.log.Debug("Boat sunk", zap.Float32("x", b.pos.X), zap.Float32("z", b.pos.Z))
	}
}

func (b *Boat) Update(frame scene.Frame) bool {
	if b.health == 0 {
		return true
	}

	h, n := b.surface.Sample(b.pos.X, b.pos.Z, frame.Time)
	b.pos.Y = h
	b.tilt = math.QuatBetween(math.Up, n)
	b.cannon.Origin = b.pos.Add(math.Vec3{Y: boatFreeboard})
	b.cannon.Update(frame)

	if b.interval > 0 {
		if !b.armed {
			b.lastFire, b.armed = frame.Time, true
		} else if frame.Time-b.lastFire >= b.interval {
			b.cannon.Blast()
			b.lastFire = frame.Time
		}
	}
	return false
}

// Model returns the hull transform: float at the surface, tilt with the
// normal, turn the bow towards the target.
func (b *Boat) Model() math.Mat4 {
	return math.Translate(b.pos).
		Mul(b.tilt.ToMat4()).
		Mul(math.RotateY(-math.Radians(b.heading)))
}

// hull is a wedge in model space with the bow towards -Z.
var hull = [...]math.Vec3{
	{Z: -boatLength},                       // bow
	{X: -boatBeam, Z: boatLength / 2},      // port stern
	{X: boatBeam, Z: boatLength / 2},       // starboard stern
	{Y: boatFreeboard, Z: -boatLength / 2}, // deck fore
	{X: -boatBeam, Y: boatFreeboard, Z: boatLength / 2},
	{X: boatBeam, Y: boatFreeboard, Z: boatLength / 2},
}

var hullFaces = [...][3]int{
	{0, 2, 1}, // keel
	{3, 4, 5}, // deck
	{0, 1, 4}, {0, 4, 3},
	{0, 3, 5}, {0, 5, 2},
	{1, 2, 5}, {1, 5, 4},
}

func (b *Boat) Draw(r scene.Renderer) {
	r.PushMatrix(b.Model())
	r.Begin(scene.Triangles)
	r.Color(b.color)
	for _, f := range hullFaces {
		p1, p2, p3 := hull[f[0]], hull[f[1]], hull[f[2]]
		r.Normal(p2.Sub(p1).Cross(p3.Sub(p1)).NormalizeOr(math.Up))
		r.Vertex(p1)
		r.Vertex(p2)
		r.Vertex(p3)
	}
	r.End()
	r.PopMatrix()

	b.cannon.Draw(r)
}
