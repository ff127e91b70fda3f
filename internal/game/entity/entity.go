// Package entity implements the game entities of the island scene: the
// island and the boats, their cannons and the projectiles they fire.
package entity

import (
	"github.com/Faultbox/island-defense/pkg/math"
)

// Surface is the water the entities float on and splash into.
type Surface interface {
	Height(x, z, t float32) float32
	Sample(x, z, t float32) (height float32, normal math.Vec3)
}

// Sounds plays fire-and-forget sound effects.
type Sounds interface {
	Blast()
	Splash()
}

type silence struct{}

func (silence) Blast()  {}
func (silence) Splash() {}

// CannonBearer is an entity armed with a cannon.
type CannonBearer interface {
	Cannon() *Cannon
}

// Gravity is the downward acceleration of projectiles in world units per s².
const Gravity float32 = -0.98

func orSilence(s Sounds) Sounds {
	if s == nil {
		return silence{}
	}
	return s
}
