package game

import (
	"fmt"

	"github.com/Faultbox/island-defense/internal/config"
	"github.com/Faultbox/island-defense/internal/engine/camera"
	"github.com/Faultbox/island-defense/internal/engine/debug"
	"github.com/Faultbox/island-defense/internal/engine/lighting"
	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/internal/engine/sky"
	"github.com/Faultbox/island-defense/internal/engine/terrain"
	"github.com/Faultbox/island-defense/internal/engine/water"
	"github.com/Faultbox/island-defense/internal/game/entity"
	"github.com/Faultbox/island-defense/internal/game/ui"
	"github.com/Faultbox/island-defense/pkg/math"
)

// WaveParams converts the configured components into wave field parameters.
func WaveParams(wc []config.WaveComponent) water.Params {
	p := water.Params{Components: make([]water.Component, len(wc))}
	for i, c := range wc {
		p.Components[i] = water.Component{
			Direction:  math.Vec3{X: c.DirX, Z: c.DirZ},
			Wavelength: c.Wavelength,
			Amplitude:  c.Amplitude,
			Speed:      c.Speed,
		}
	}
	return p
}

func (g *Game) initEntities() error {
	wc := g.cfg.Waves
	field, err := water.NewField(WaveParams(wc.Components))
	if err != nil {
		return fmt.Errorf("wave field: %w", err)
	}
	waves, err := water.NewWaves(field, water.Options{
		Tessellation:    wc.Tessellation,
		MaxTessellation: wc.MaxTessellation,
		Extent:          wc.Extent,
		Animate:         wc.Animate,
	})
	if err != nil {
		return fmt.Errorf("waves: %w", err)
	}

	gen := terrain.DefaultGenOptions()
	gen.Seed = g.rng.Int64()
	island := entity.NewIsland(entity.IslandOptions{
		Terrain:    gen,
		WaterLevel: field.MaxHeight(),
		Surface:    field,
		Extent:     wc.Extent,
		Sounds:     g.sounds,
		Impact:     g.strike,
	})

	base := []placement{
		{scene.KindCamera, camera.New()},
		{scene.KindLight, lighting.NewSun()},
		{scene.KindSkybox, sky.New(g.cfg.Graphics.Far / 2)},
		{scene.KindIsland, island},
		{scene.KindWaves, waves},
		{scene.KindAxes, debug.NewAxes(1)},
	}
	if err := g.place(base...); err != nil {
		return err
	}

	// Boats float on the registered waves, so they come after them.
	if g.cfg.Game.Boats > 0 {
		if err := g.place(placement{scene.KindBoats, g.GenerateBoats(g.cfg.Game.Boats)}); err != nil {
			return err
		}
	}
	if g.cfg.Game.ShowStats {
		stats := ui.NewStats(Title, g, g.setTitle)
		stats.ShowMemory = g.cfg.Logging.Level == "debug"
		if err := g.place(placement{scene.KindStats, stats}); err != nil {
			return err
		}
	}
	return nil
}

type placement struct {
	kind scene.Kind
	d    scene.Displayable
}

func (g *Game) place(ps ...placement) error {
	for _, p := range ps {
		if err := g.entities.Insert(p.kind, p.d); err != nil {
			return err
		}
	}
	return nil
}

// waveField returns the field of the registered waves.
func (g *Game) waveField() (water.Field, bool) {
	w, err := scene.Lookup[*water.Waves](g.entities, scene.KindWaves)
	if err != nil {
		return water.Field{}, false
	}
	return w.Field(), true
}
