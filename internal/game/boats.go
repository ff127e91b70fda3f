package game

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/internal/game/entity"
	"github.com/Faultbox/island-defense/pkg/math"
)

// GenerateBoats creates count boats around the island. Each boat gets a
// random hull colour and a position whose |x| and |z| are drawn uniformly
// from [SpawnMin, SpawnMax] with an independent random sign per axis.
// Boats may overlap: spawn points are independent draws.
func (g *Game) GenerateBoats(count int) *entity.Group[*entity.Boat] {
	gc := g.cfg.Game
	surface, ok := g.waveField()
	if !ok {
		g.log.Warn("Generating boats without waves")
	}

	boats := entity.NewGroup[*entity.Boat]()
	for range count {
		boats.Add(entity.NewBoat(entity.BoatOptions{
			Position: math.Vec3{
				X: g.spawnCoord(gc.SpawnMin, gc.SpawnMax),
				Z: g.spawnCoord(gc.SpawnMin, gc.SpawnMax),
			},
			Color:        g.hullColor(),
			Health:       entity.DefaultBoatHealth,
			FireInterval: entity.DefaultBoatFireInterval,
			Surface:      surface,
			Extent:       g.cfg.Waves.Extent,
			Sounds:       g.sounds,
		}))
	}
	return boats
}

// strike damages every boat whose footprint holds the splash point of an
// island shot. Sunk boats leave the scene on their next update.
func (g *Game) strike(at math.Vec3) {
	boats, err := scene.Lookup[*entity.Group[*entity.Boat]](g.entities, scene.KindBoats)
	if err != nil {
		return
	}
	for _, b := range boats.Items() {
		if !b.InFootprint(at) {
			continue
		}
		b.Damage(entity.ShotDamage)
		g.log.Debug("Boat hit",
			zap.Float32("x", at.X),
			zap.Float32("z", at.Z),
			zap.Int("health", b.Health()))
	}
}

func (g *Game) spawnCoord(lo, hi float32) float32 {
	v := lo + g.rng.Float32()*(hi-lo)
	if g.rng.IntN(2) == 0 {
		return -v
	}
	return v
}

// hullColor picks a saturated, bright colour.
func (g *Game) hullColor() math.Color {
	c := colorful.Hsv(g.rng.Float64()*360, 0.5+0.4*g.rng.Float64(), 0.6+0.4*g.rng.Float64()).Clamped()
	return math.RGB(float32(c.R), float32(c.G), float32(c.B))
}
