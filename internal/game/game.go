// Package game implements the scheduler of the island scene: it owns the
// entity registry and the timing state, drives update then draw every tick
// and maps input to entity capabilities.
package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Faultbox/island-defense/internal/config"
	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/internal/game/entity"
	"github.com/Faultbox/island-defense/internal/logger"
	"github.com/Faultbox/island-defense/pkg/math"
)

// Title is the window title and the prefix of the stats readout.
const Title = "Island Defense"

// Backend is the render target the game draws through.
type Backend interface {
	scene.Renderer
	// Clear resets the colour and depth buffers.
	Clear()
	// SetProjection installs the projection matrix for the frame.
	SetProjection(m math.Mat4)
	// Resize changes the viewport.
	Resize(width, height int)
	// Errors drains the errors raised since the previous call.
	Errors() []error
}

// Deps are the collaborators of a Game. Nil fields get defaults.
type Deps struct {
	Backend  Backend
	Clock    func() uint64 // monotonic milliseconds
	Rand     *rand.Rand
	Present  func() // swaps buffers after a frame
	SetTitle func(string)
	Sounds   entity.Sounds
	// Screenshot saves the frame being drawn and returns the file path.
	Screenshot func() (string, error)
}

// Game is the scene scheduler. It is not safe for concurrent use; every
// method runs on the thread that owns the GL context.
type Game struct {
	cfg      *config.Config
	backend  Backend
	clock    func() uint64
	rng      *rand.Rand
	present  func()
	setTitle func(string)
	sounds   entity.Sounds
	shoot    func() (string, error)
	log      *zap.Logger

	entities *scene.Registry
	keys     map[byte]Action
	regen    *rate.Limiter
	gameOver func() bool
	running  bool
	capture  bool // save the next frame before presenting it

	width, height int

	// Timing
	sampled           bool
	time              float64 // seconds, narrowed only when building a Frame
	lastTime          float64
	delta             float32
	frames            int
	lastFrameRateT    float64
	frameRate         float32
	frameRateInterval float32
	speed             float32
	updates           uint64
}

// New creates a game and populates its scene from cfg.
func New(cfg *config.Config, deps Deps) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	g := &Game{
		cfg:               cfg,
		backend:           deps.Backend,
		clock:             deps.Clock,
		rng:               deps.Rand,
		present:           deps.Present,
		setTitle:          deps.SetTitle,
		sounds:            deps.Sounds,
		shoot:             deps.Screenshot,
		log:               logger.Named("game"),
		entities:          scene.NewRegistry(),
		gameOver:          func() bool { return false },
		running:           true,
		width:             cfg.Graphics.Width,
		height:            cfg.Graphics.Height,
		frameRateInterval: cfg.Game.FrameRateInterval,
		speed:             cfg.Game.Speed,
	}
	if g.backend == nil {
		g.backend = nopBackend{}
	}
	if g.clock == nil {
		start := time.Now()
		g.clock = func() uint64 { return uint64(time.Since(start).Milliseconds()) }
	}
	if g.rng == nil {
		seed := uint64(cfg.Game.Seed)
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		g.rng = rand.New(rand.NewPCG(seed, seed^0x5DEECE66D))
	}
	if g.present == nil {
		g.present = func() {}
	}
	if g.setTitle == nil {
		g.setTitle = func(string) {}
	}

	interval := time.Duration(cfg.Waves.RegenInterval * float64(time.Second))
	g.regen = rate.NewLimiter(rate.Every(interval), 1)
	if interval <= 0 {
		g.regen.SetLimit(rate.Inf)
	}

	if err := g.initEntities(); err != nil {
		return nil, err
	}
	g.bindKeys()

	g.log.Info("Game initialized",
		zap.Strings("entities", kindNames(g.entities.Kinds())),
		zap.Int("tessellation", cfg.Waves.Tessellation),
		zap.Int("boats", cfg.Game.Boats))
	return g, nil
}

func kindNames(kinds []scene.Kind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

// SetGameOver installs the predicate that freezes the simulation.
// nil restores the default, which never ends the game.
func (g *Game) SetGameOver(pred func() bool) {
	if pred == nil {
		pred = func() bool { return false }
	}
	g.gameOver = pred
}

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool { return g.gameOver() }

// Running reports whether the loop should continue.
func (g *Game) Running() bool { return g.running }

// Quit stops the loop after the current tick.
func (g *Game) Quit() {
	if g.running {
		g.log.Info("Quit requested")
	}
	g.running = false
}

// Time returns the simulation time in seconds.
func (g *Game) Time() float32 { return float32(g.time / float64(g.speed)) }

// DeltaTime returns the wall time between the last two updates in seconds.
func (g *Game) DeltaTime() float32 { return g.delta }

// FrameRate returns the frame rate measured over the last sampling interval.
func (g *Game) FrameRate() float32 { return g.frameRate }

// Entities returns read access to the scene.
func (g *Game) Entities() scene.Reader { return g.entities }

// Resize records the new window size and forwards it to the backend.
func (g *Game) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	g.width, g.height = width, height
	g.backend.Resize(width, height)
}

// sampleTime reads the clock. The first sample only sets the baseline.
func (g *Game) sampleTime() {
	now := float64(g.clock()) / 1000
	if !g.sampled {
		g.sampled = true
		g.time, g.lastTime, g.lastFrameRateT = now, now, now
		return
	}

	g.time = now
	g.delta = float32(now - g.lastTime)
	g.lastTime = now

	if elapsed := now - g.lastFrameRateT; elapsed > float64(g.frameRateInterval) {
		g.frameRate = float32(float64(g.frames) / elapsed)
		g.lastFrameRateT = now
		g.frames = 0
	}
}

// Update advances the clock and every entity, then drops the entities that
// finished. It does nothing once the game is over.
func (g *Game) Update() {
	if g.GameOver() {
		return
	}

	g.sampleTime()
	g.updates++
	frame := scene.Frame{Time: g.Time(), Delta: g.delta, Number: g.updates}

	removed := g.entities.Prune(func(kind scene.Kind, d scene.Displayable) bool {
		return !g.updateEntity(kind, d, frame)
	})
	for _, kind := range removed {
		g.log.Debug("Entity finished", zap.Stringer("kind", kind))
	}
}

// updateEntity reports whether d finished. A panicking entity is logged and
// kept.
func (g *Game) updateEntity(kind scene.Kind, d scene.Displayable, frame scene.Frame) (finished bool) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("Entity update panicked",
				zap.Stringer("kind", kind),
				zap.Any("panic", r))
			finished = false
		}
	}()
	return d.Update(frame)
}

// Projection returns the projection matrix for the current window size.
func (g *Game) Projection() math.Mat4 {
	gc := g.cfg.Graphics
	aspect := float32(g.width) / float32(max(g.height, 1))
	return math.Perspective(math.Radians(gc.FOVDegrees), aspect, gc.Near, gc.Far)
}

// Draw renders one frame and presents it.
func (g *Game) Draw() {
	g.backend.Clear()
	g.backend.SetProjection(g.Projection())
	g.logBackendErrors(nil)

	if !g.GameOver() {
		g.entities.Each(func(kind scene.Kind, d scene.Displayable) {
			d.Draw(g.backend)
			g.logBackendErrors(kind)
		})
	}

	if g.capture {
		g.capture = false
		g.saveScreenshot()
	}

	g.frames++
	g.present()
}

// RequestScreenshot saves the next drawn frame.
func (g *Game) RequestScreenshot() {
	if g.shoot == nil {
		g.log.Warn("Screenshots unavailable")
		return
	}
	g.capture = true
}

func (g *Game) saveScreenshot() {
	path, err := g.shoot()
	if err != nil {
		g.log.Error("Screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("Screenshot saved", zap.String("path", path))
}

func (g *Game) logBackendErrors(kind fmt.Stringer) {
	for _, err := range g.backend.Errors() {
		fields := []zap.Field{zap.Error(err)}
		if kind != nil {
			fields = append(fields, zap.Stringer("entity", kind))
		}
		g.log.Warn("Render backend error", fields...)
	}
}

// use runs fn on the entity under kind when it has capability T. A missing
// entity or capability is logged and ignored.
func use[T any](g *Game, kind scene.Kind, fn func(T)) {
	t, err := scene.Lookup[T](g.entities, kind)
	if err != nil {
		g.log.Warn("Action skipped", zap.Error(err))
		return
	}
	fn(t)
}

// nopBackend draws nowhere.
type nopBackend struct{}

func (nopBackend) Begin(scene.Primitive)   {}
func (nopBackend) Color(math.Color)        {}
func (nopBackend) Normal(math.Vec3)        {}
func (nopBackend) Vertex(math.Vec3)        {}
func (nopBackend) End()                    {}
func (nopBackend) SetWireframe(bool)       {}
func (nopBackend) SetView(math.Mat4)       {}
func (nopBackend) PushMatrix(math.Mat4)    {}
func (nopBackend) PopMatrix()              {}
func (nopBackend) SetLight(scene.Light)    {}
func (nopBackend) Clear()                  {}
func (nopBackend) SetProjection(math.Mat4) {}
func (nopBackend) Resize(int, int)         {}
func (nopBackend) Errors() []error         { return nil }
