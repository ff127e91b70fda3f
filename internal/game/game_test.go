package game

import (
	"errors"
	gomath "math"
	"slices"
	"testing"

	"github.com/Faultbox/island-defense/internal/config"
	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/internal/engine/scene/scenetest"
	"github.com/Faultbox/island-defense/pkg/math"
)

// backend records draw calls and serves injected errors.
type backend struct {
	*scenetest.Recorder
	clears      int
	projections []math.Mat4
	resized     [][2]int
	errs        []error
}

func newBackend() *backend {
	return &backend{Recorder: scenetest.New()}
}

func (b *backend) Clear()                    { b.clears++ }
func (b *backend) SetProjection(m math.Mat4) { b.projections = append(b.projections, m) }
func (b *backend) Resize(w, h int)           { b.resized = append(b.resized, [2]int{w, h}) }

func (b *backend) Errors() []error {
	errs := b.errs
	b.errs = nil
	return errs
}

// clock is a settable millisecond clock.
type clock struct{ ms uint64 }

func (c *clock) now() uint64 { return c.ms }

// tracer is an entity that counts its updates and can finish or panic.
type tracer struct {
	updates  int
	draws    int
	finishAt int
	panics   bool
	frames   []scene.Frame
}

func (p *tracer) Position() math.Vec3 { return math.Zero }

func (p *tracer) Update(frame scene.Frame) bool {
	if p.panics {
		panic("entity exploded")
	}
	p.updates++
	p.frames = append(p.frames, frame)
	return p.finishAt > 0 && p.updates >= p.finishAt
}

func (p *tracer) Draw(r scene.Renderer) {
	p.draws++
	r.Begin(scene.Points)
	r.Vertex(math.Zero)
	r.End()
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Waves.Tessellation = 4
	cfg.Waves.MaxTessellation = 16
	cfg.Game.Boats = 0
	cfg.Game.ShowStats = false
	cfg.Game.Seed = 1
	return cfg
}

type fixture struct {
	g        *Game
	backend  *backend
	clock    *clock
	presents int
}

func newFixture(t *testing.T, cfg *config.Config) *fixture {
	t.Helper()
	f := &fixture{backend: newBackend(), clock: &clock{ms: 1000}}
	g, err := New(cfg, Deps{
		Backend: f.backend,
		Clock:   f.clock.now,
		Present: func() { f.presents++ },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f.g = g
	return f
}

func near(a, b, eps float32) bool {
	return gomath.Abs(float64(a-b)) <= float64(eps)
}

func TestNewPopulatesScene(t *testing.T) {
	cfg := testConfig()
	cfg.Game.Boats = 3
	cfg.Game.ShowStats = true
	f := newFixture(t, cfg)

	want := []scene.Kind{
		scene.KindCamera, scene.KindLight, scene.KindSkybox, scene.KindIsland,
		scene.KindWaves, scene.KindBoats, scene.KindAxes, scene.KindStats,
	}
	if got := f.g.Entities().Kinds(); !slices.Equal(got, want) {
		t.Errorf("Kinds() = %v, want %v", got, want)
	}
	if !f.g.Running() || f.g.GameOver() {
		t.Error("new game should be running and not over")
	}
}

func TestNewWithoutOptionalEntities(t *testing.T) {
	f := newFixture(t, testConfig())
	for _, k := range []scene.Kind{scene.KindBoats, scene.KindStats} {
		if _, ok := f.g.Entities().Get(k); ok {
			t.Errorf("%s registered, want absent", k)
		}
	}
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Waves.Tessellation = 0
	if _, err := New(cfg, Deps{}); err == nil {
		t.Fatal("expected error for zero tessellation")
	}
}

func TestNewDefaults(t *testing.T) {
	g, err := New(testConfig(), Deps{})
	if err != nil {
		t.Fatal(err)
	}
	// Nil deps fall back to working defaults.
	g.Update()
	g.Draw()
	g.Keyboard('f', false, 0, 0)
}

func TestFirstUpdateSetsBaseline(t *testing.T) {
	f := newFixture(t, testConfig())
	p := &tracer{}
	if err := f.g.entities.Insert(scene.KindStats, p); err != nil {
		t.Fatal(err)
	}

	f.g.Update()
	if f.g.DeltaTime() != 0 {
		t.Errorf("first delta = %v, want 0", f.g.DeltaTime())
	}
	if f.g.Time() != 1 {
		t.Errorf("Time() = %v, want 1", f.g.Time())
	}
	if p.updates != 1 {
		t.Errorf("entities updated %d times on the first tick, want 1", p.updates)
	}

	f.clock.ms = 1016
	f.g.Update()
	if !near(f.g.DeltaTime(), 0.016, 1e-4) {
		t.Errorf("delta = %v, want 0.016", f.g.DeltaTime())
	}
	if got := p.frames[1]; got.Number != 2 || !near(got.Delta, 0.016, 1e-4) || !near(got.Time, 1.016, 1e-4) {
		t.Errorf("second frame = %+v", got)
	}
}

func TestDeltaPreciseAfterLongUptime(t *testing.T) {
	f := newFixture(t, testConfig())
	p := &tracer{}
	if err := f.g.entities.Insert(scene.KindStats, p); err != nil {
		t.Fatal(err)
	}

	// Five hours in, float32 seconds only resolve about 2 ms.
	f.clock.ms = 5 * 60 * 60 * 1000
	f.g.Update()
	for i := range 10 {
		f.clock.ms++
		f.g.Update()
		if !near(f.g.DeltaTime(), 0.001, 1e-6) {
			t.Fatalf("step %d: delta = %v, want 0.001", i, f.g.DeltaTime())
		}
	}

	f.clock.ms += 16
	f.g.Update()
	if !near(f.g.DeltaTime(), 0.016, 1e-6) {
		t.Errorf("delta = %v, want 0.016", f.g.DeltaTime())
	}
	last := p.frames[len(p.frames)-1]
	if !near(last.Delta, 0.016, 1e-6) || !near(last.Time, 18000.026, 0.002) {
		t.Errorf("last frame = %+v", last)
	}
}

func TestTimeScaledBySpeed(t *testing.T) {
	cfg := testConfig()
	cfg.Game.Speed = 2
	f := newFixture(t, cfg)
	f.clock.ms = 4000
	f.g.Update()
	if f.g.Time() != 2 {
		t.Errorf("Time() = %v, want 2", f.g.Time())
	}
}

func TestFrameRate(t *testing.T) {
	f := newFixture(t, testConfig())
	f.g.Update()
	for range 10 {
		f.g.Draw()
	}

	// Still inside the sampling interval.
	f.clock.ms = 1100
	f.g.Update()
	if f.g.FrameRate() != 0 {
		t.Errorf("FrameRate() = %v before the interval elapsed", f.g.FrameRate())
	}

	f.clock.ms = 1250
	f.g.Update()
	if !near(f.g.FrameRate(), 40, 0.01) {
		t.Errorf("FrameRate() = %v, want 40", f.g.FrameRate())
	}
}

func TestUpdatePrunesFinished(t *testing.T) {
	f := newFixture(t, testConfig())
	p := &tracer{finishAt: 2}
	if err := f.g.entities.Insert(scene.KindStats, p); err != nil {
		t.Fatal(err)
	}
	before := f.g.Entities().Len()

	f.g.Update()
	if _, ok := f.g.Entities().Get(scene.KindStats); !ok {
		t.Fatal("entity removed before it finished")
	}
	f.g.Update()
	if _, ok := f.g.Entities().Get(scene.KindStats); ok {
		t.Fatal("finished entity still registered")
	}
	if f.g.Entities().Len() != before-1 {
		t.Errorf("Len() = %d, want %d", f.g.Entities().Len(), before-1)
	}

	f.g.Draw()
	if p.draws != 0 {
		t.Errorf("pruned entity drawn %d times", p.draws)
	}
}

func TestUpdateRecoversPanics(t *testing.T) {
	f := newFixture(t, testConfig())
	f.g.entities.Remove(scene.KindAxes)
	bad := &tracer{panics: true}
	after := &tracer{}
	if err := f.g.entities.Insert(scene.KindAxes, bad); err != nil {
		t.Fatal(err)
	}
	if err := f.g.entities.Insert(scene.KindStats, after); err != nil {
		t.Fatal(err)
	}

	f.g.Update()
	if _, ok := f.g.Entities().Get(scene.KindAxes); !ok {
		t.Error("panicking entity was removed")
	}
	if after.updates != 1 {
		t.Errorf("entity after the panic updated %d times, want 1", after.updates)
	}
}

func TestDraw(t *testing.T) {
	f := newFixture(t, testConfig())
	f.g.Update()
	f.g.Draw()

	b := f.backend
	if b.clears != 1 || len(b.projections) != 1 || f.presents != 1 {
		t.Errorf("clears=%d projections=%d presents=%d, want 1 each", b.clears, len(b.projections), f.presents)
	}
	if len(b.Views) != 1 {
		t.Errorf("camera set %d views, want 1", len(b.Views))
	}
	if len(b.Lights) != 1 || !b.Lights[0].Enabled {
		t.Errorf("lights = %+v, want one enabled light", b.Lights)
	}
	// 4x4 cells, 6 vertices each.
	if b.VertexCount(scene.Triangles) < 4*4*6 {
		t.Errorf("only %d triangle vertices drawn", b.VertexCount(scene.Triangles))
	}
	if b.Unbalanced != 0 || b.Depth() != 0 {
		t.Errorf("unbalanced=%d depth=%d after a frame", b.Unbalanced, b.Depth())
	}
}

func TestDrawDrainsBackendErrors(t *testing.T) {
	f := newFixture(t, testConfig())
	f.backend.errs = []error{errors.New("invalid operation"), errors.New("out of memory")}
	f.g.Draw()
	if len(f.backend.errs) != 0 {
		t.Errorf("errors not drained: %v", f.backend.errs)
	}
	if f.presents != 1 {
		t.Errorf("frame not presented after backend errors")
	}
}

func TestGameOverFreezes(t *testing.T) {
	f := newFixture(t, testConfig())
	p := &tracer{}
	if err := f.g.entities.Insert(scene.KindStats, p); err != nil {
		t.Fatal(err)
	}
	f.g.Update()

	f.g.SetGameOver(func() bool { return true })
	f.clock.ms = 2000
	f.g.Update()
	if p.updates != 1 {
		t.Errorf("updated %d times, want 1", p.updates)
	}
	if f.g.Time() != 1 {
		t.Errorf("clock advanced after game over: %v", f.g.Time())
	}

	f.backend.Reset()
	f.g.Draw()
	if p.draws != 0 || len(f.backend.Batches) != 0 {
		t.Errorf("entities drawn after game over")
	}

	f.g.SetGameOver(nil)
	if f.g.GameOver() {
		t.Error("nil predicate should restore the default")
	}
}

func TestResize(t *testing.T) {
	f := newFixture(t, testConfig())
	f.g.Resize(800, 400)
	f.g.Resize(0, 10)

	if len(f.backend.resized) != 1 || f.backend.resized[0] != [2]int{800, 400} {
		t.Fatalf("resized = %v, want [[800 400]]", f.backend.resized)
	}
	p := f.g.Projection()
	if !near(p[5]/p[0], 2, 1e-4) {
		t.Errorf("aspect = %v, want 2", p[5]/p[0])
	}
}
