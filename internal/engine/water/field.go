// Package water implements the analytic ocean surface: a wave field made of
// superposed sine waves and the tessellated Waves mesh that samples it.
package water

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/island-defense/pkg/math"
)

// ErrInvalidParams is returned by NewField for unusable wave parameters.
var ErrInvalidParams = errors.New("invalid wave parameters")

// Component is one sine wave of the surface.
type Component struct {
	Direction  math.Vec3 // propagation direction on the XZ plane, Y is ignored
	Wavelength float32   // world units, > 0
	Amplitude  float32   // world units
	Speed      float32   // phase speed in world units per second
}

// Params configures a Field.
type Params struct {
	Components []Component
}

type wave struct {
	dx, dz float64 // unit direction
	k      float64 // wave number 2π/λ
	omega  float64 // angular frequency k*speed
	amp    float64
}

// Field is the height field h(x, z, t) = Σ Aᵢ sin(kᵢ (dᵢ·(x, z)) + ωᵢ t).
// Components are summed, so the surface can rise to the sum of all
// amplitudes. A Field is immutable and all its methods are pure.
type Field struct {
	waves     []wave
	maxHeight float32
}

// NewField validates p and precomputes the per-wave constants.
// A zero direction propagates along +X.
func NewField(p Params) (Field, error) {
	if len(p.Components) == 0 {
		return Field{}, fmt.Errorf("%w: no components", ErrInvalidParams)
	}

	f := Field{waves: make([]wave, 0, len(p.Components))}
	var maxHeight float64
	for i, c := range p.Components {
		if !(c.Wavelength > 0) || gomath.IsInf(float64(c.Wavelength), 0) {
			return Field{}, fmt.Errorf("%w: component %d wavelength %v", ErrInvalidParams, i, c.Wavelength)
		}
		if !finite(c.Amplitude) || !finite(c.Speed) {
			return Field{}, fmt.Errorf("%w: component %d amplitude %v speed %v", ErrInvalidParams, i, c.Amplitude, c.Speed)
		}
		dir := math.Vec3{X: c.Direction.X, Z: c.Direction.Z}.NormalizeOr(math.Vec3{X: 1})
		k := 2 * gomath.Pi / float64(c.Wavelength)
		f.waves = append(f.waves, wave{
			dx:    float64(dir.X),
			dz:    float64(dir.Z),
			k:     k,
			omega: k * float64(c.Speed),
			amp:   float64(c.Amplitude),
		})
		maxHeight += gomath.Abs(float64(c.Amplitude))
	}
	f.maxHeight = float32(maxHeight)
	return f, nil
}

// MaxHeight returns the largest height the surface can reach.
func (f Field) MaxHeight() float32 {
	return f.maxHeight
}

func (w wave) phase(x, z, t float64) float64 {
	return w.k*(w.dx*x+w.dz*z) + w.omega*t
}

// Height returns the surface height at (x, z) and time t.
func (f Field) Height(x, z, t float32) float32 {
	var h float64
	for _, w := range f.waves {
		h += w.amp * gomath.Sin(w.phase(float64(x), float64(z), float64(t)))
	}
	return float32(h)
}

// Slope returns the exact partial derivatives ∂h/∂x and ∂h/∂z.
func (f Field) Slope(x, z, t float32) (dx, dz float32) {
	var sx, sz float64
	for _, w := range f.waves {
		c := w.amp * w.k * gomath.Cos(w.phase(float64(x), float64(z), float64(t)))
		sx += c * w.dx
		sz += c * w.dz
	}
	return float32(sx), float32(sz)
}

// Tangents returns the surface tangents along +X and +Z.
func (f Field) Tangents(x, z, t float32) (tx, tz math.Vec3) {
	dx, dz := f.Slope(x, z, t)
	return math.Vec3{X: 1, Y: dx}, math.Vec3{Y: dz, Z: 1}
}

// Normal returns the unit surface normal at (x, z) and time t.
// Flat points yield math.Up.
func (f Field) Normal(x, z, t float32) math.Vec3 {
	dx, dz := f.Slope(x, z, t)
	return normalFromSlope(dx, dz)
}

// Sample returns height and normal in a single pass over the components.
func (f Field) Sample(x, z, t float32) (height float32, normal math.Vec3) {
	var h, sx, sz float64
	for _, w := range f.waves {
		s, c := gomath.Sincos(w.phase(float64(x), float64(z), float64(t)))
		h += w.amp * s
		c *= w.amp * w.k
		sx += c * w.dx
		sz += c * w.dz
	}
	return float32(h), normalFromSlope(float32(sx), float32(sz))
}

// Submerged reports whether p lies below the surface at time t.
func (f Field) Submerged(p math.Vec3, t float32) bool {
	return p.Y < f.Height(p.X, p.Z, t)
}

// normalFromSlope is tz × tx = (-dx, 1, -dz) normalized. The Y component is
// 1 before normalization, so the vector never has zero length.
func normalFromSlope(dx, dz float32) math.Vec3 {
	return math.Vec3{X: -dx, Y: 1, Z: -dz}.NormalizeOr(math.Up)
}

func finite(v float32) bool {
	return !gomath.IsNaN(float64(v)) && !gomath.IsInf(float64(v), 0)
}
