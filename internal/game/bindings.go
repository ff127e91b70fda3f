package game

import (
	"time"

	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/internal/game/entity"
)

// KeyEscape is the symbol of the Escape key.
const KeyEscape byte = 27

// Cannon control steps.
const (
	powerStep    float32 = 0.1
	rotationStep float32 = 5 // degrees
)

// Action is a bound key handler. x and y are the pointer position.
type Action func(x, y int)

// bindKeys installs the AZERTY key map. Upper case symbols are reached
// with shift.
func (g *Game) bindKeys() {
	fast := g.cfg.Game.FastMultiplier

	g.keys = map[byte]Action{
		KeyEscape: func(int, int) { g.Quit() },

		// Camera
		'q': g.move(scene.Left, 1),
		'd': g.move(scene.Right, 1),
		'z': g.move(scene.Forward, 1),
		's': g.move(scene.Backward, 1),
		'a': g.move(scene.Up, 1),
		'e': g.move(scene.Down, 1),
		'Q': g.move(scene.Left, fast),
		'D': g.move(scene.Right, fast),
		'Z': g.move(scene.Forward, fast),
		'S': g.move(scene.Backward, fast),
		'A': g.move(scene.Up, fast),
		'E': g.move(scene.Down, fast),

		// Waves
		'n': func(int, int) { use(g, scene.KindWaves, scene.DebugDrawable.ToggleNormals) },
		't': func(int, int) { use(g, scene.KindWaves, scene.DebugDrawable.ToggleTangents) },
		'W': func(int, int) { use(g, scene.KindWaves, scene.DebugDrawable.ToggleWireframe) },
		'g': func(int, int) { use(g, scene.KindWaves, scene.Animatable.ToggleAnimation) },
		'+': g.throttled(func() { use(g, scene.KindWaves, scene.Tessellated.DoubleVertices) }),
		'-': g.throttled(func() { use(g, scene.KindWaves, scene.Tessellated.HalveSegments) }),

		// Light
		'l': func(int, int) { use(g, scene.KindLight, scene.Lightable.ToggleLight) },

		// Debug
		'b': func(int, int) { use(g, scene.KindIsland, scene.Outlined.ToggleBounds) },
		'p': func(int, int) { g.RequestScreenshot() },

		// Island cannon
		'f': g.cannon(func(c *entity.Cannon) { c.Blast() }),
		'v': g.cannon(func(c *entity.Cannon) { c.Defend() }),
		'u': g.cannon(func(c *entity.Cannon) { c.Speed(powerStep) }),
		'j': g.cannon(func(c *entity.Cannon) { c.Speed(-powerStep) }),
		'h': g.cannon(func(c *entity.Cannon) { c.Rotate(-rotationStep) }),
		'k': g.cannon(func(c *entity.Cannon) { c.Rotate(rotationStep) }),
	}
}

// Bind replaces the action of sym. A nil action unbinds it.
func (g *Game) Bind(sym byte, act Action) {
	if act == nil {
		delete(g.keys, sym)
		return
	}
	g.keys[sym] = act
}

func (g *Game) move(dir scene.Direction, coef float32) Action {
	return func(int, int) {
		use(g, scene.KindCamera, func(m scene.Movable) { m.Move(dir, coef) })
	}
}

func (g *Game) cannon(fn func(*entity.Cannon)) Action {
	return func(int, int) {
		use(g, scene.KindIsland, func(b entity.CannonBearer) { fn(b.Cannon()) })
	}
}

// throttled drops calls arriving faster than the regeneration interval.
func (g *Game) throttled(fn func()) Action {
	return func(int, int) {
		now := time.UnixMilli(int64(g.clock()))
		if !g.regen.AllowN(now, 1) {
			g.log.Debug("Tessellation change throttled")
			return
		}
		fn()
	}
}

// Keyboard dispatches a key press. With shift held, lower case letters
// select their upper case binding. Once the game is over only Escape is
// handled.
func (g *Game) Keyboard(sym byte, shift bool, x, y int) {
	if sym != KeyEscape && g.GameOver() {
		return
	}
	if shift && sym >= 'a' && sym <= 'z' {
		sym -= 'a' - 'A'
	}
	if act, ok := g.keys[sym]; ok {
		act(x, y)
	}
}

// Mouse forwards pointer motion to the camera.
func (g *Game) Mouse(x, y int) {
	use(g, scene.KindCamera, func(r scene.Rotatable) { r.Rotation(x, y) })
}
