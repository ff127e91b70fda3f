package game

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/internal/game/entity"
	"github.com/Faultbox/island-defense/pkg/math"
)

func TestGenerateBoats(t *testing.T) {
	f := newFixture(t, testConfig())
	boats := f.g.GenerateBoats(5)
	if boats.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", boats.Len())
	}

	gc := f.g.cfg.Game
	for i, b := range boats.Items() {
		if !b.Color().Valid() {
			t.Errorf("boat %d: invalid colour %+v", i, b.Color())
		}
		p := b.Position()
		for _, v := range []float32{p.X, p.Z} {
			a := float32(gomath.Abs(float64(v)))
			if a < gc.SpawnMin || a > gc.SpawnMax {
				t.Errorf("boat %d: coordinate %v outside [%v, %v]", i, v, gc.SpawnMin, gc.SpawnMax)
			}
		}
		if b.Health() != entity.DefaultBoatHealth {
			t.Errorf("boat %d: Health() = %d", i, b.Health())
		}
	}
}

func TestGenerateBoatsDeterministic(t *testing.T) {
	a := newFixture(t, testConfig()).g.GenerateBoats(3).Items()
	b := newFixture(t, testConfig()).g.GenerateBoats(3).Items()
	for i := range a {
		if a[i].Position() != b[i].Position() || a[i].Color() != b[i].Color() {
			t.Errorf("boat %d differs between games with the same seed", i)
		}
	}
}

func TestGenerateBoatsZero(t *testing.T) {
	f := newFixture(t, testConfig())
	if n := f.g.GenerateBoats(0).Len(); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
}

func TestBoatsRegisteredAfterWaves(t *testing.T) {
	cfg := testConfig()
	cfg.Game.Boats = 2
	f := newFixture(t, cfg)

	boats := lookup[*entity.Group[*entity.Boat]](t, f.g, scene.KindBoats)
	if boats.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", boats.Len())
	}
	f.g.Update()
	f.clock.ms += 16
	f.g.Update()
	f.g.Draw()
	if f.backend.Unbalanced != 0 || f.backend.Depth() != 0 {
		t.Errorf("unbalanced=%d depth=%d", f.backend.Unbalanced, f.backend.Depth())
	}
}

// landing fires the island cannon at low power and steps the clock until
// the shot is gone. It returns where the shot ended.
func landing(t *testing.T, f *fixture) math.Vec3 {
	t.Helper()
	f.g.Update()
	cannon := lookup[entity.CannonBearer](t, f.g, scene.KindIsland).Cannon()
	cannon.Speed(0.5 - cannon.Power())
	shot := cannon.Blast()
	for range 1000 {
		if cannon.InFlight() == 0 {
			return shot.Position()
		}
		f.clock.ms += 10
		f.g.Update()
	}
	t.Fatal("shot never landed")
	return math.Zero
}

func TestIslandShotSinksBoat(t *testing.T) {
	at := landing(t, newFixture(t, testConfig()))
	extent := testConfig().Waves.Extent
	if gomath.Abs(float64(at.X)) > float64(extent) || gomath.Abs(float64(at.Z)) > float64(extent) {
		t.Fatalf("shot left the world at %v", at)
	}

	f := newFixture(t, testConfig())
	field, ok := f.g.waveField()
	if !ok {
		t.Fatal("no waves registered")
	}
	boat := entity.NewBoat(entity.BoatOptions{Position: at, Health: 2, Surface: field, Extent: extent})
	if err := f.g.entities.Insert(scene.KindBoats, entity.NewGroup(boat)); err != nil {
		t.Fatal(err)
	}

	landing(t, f)
	if boat.Health() != 1 {
		t.Fatalf("Health() = %d after one hit, want 1", boat.Health())
	}
	if _, ok := f.g.Entities().Get(scene.KindBoats); !ok {
		t.Fatal("damaged boat left the scene")
	}

	landing(t, f)
	if boat.Health() != 0 {
		t.Errorf("Health() = %d after two hits, want 0", boat.Health())
	}
	if _, ok := f.g.Entities().Get(scene.KindBoats); ok {
		t.Error("sunk boat still in the scene")
	}
}
