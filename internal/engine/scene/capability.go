package scene

import "github.com/Faultbox/island-defense/pkg/math"

// Displayable is the base capability every registered entity satisfies.
type Displayable interface {
	Position() math.Vec3
	// Update advances the entity to frame and reports whether it is finished
	// and must be removed from the scene.
	Update(frame Frame) (finished bool)
	// Draw submits the entity to r. It must not mutate simulation state.
	Draw(r Renderer)
}

// Direction is a translation direction for Movable entities.
type Direction int

const (
	Left Direction = iota
	Right
	Forward
	Backward
	Up
	Down
)

var directionNames = [...]string{"left", "right", "forward", "backward", "up", "down"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// Movable entities can be translated. coef scales the step, 1 is a normal step.
type Movable interface {
	Displayable
	Move(dir Direction, coef float32)
}

// Rotatable entities follow pointer motion.
type Rotatable interface {
	Rotation(x, y int)
}

// Animatable entities can pause and resume their animation.
type Animatable interface {
	ToggleAnimation()
}

// Tessellated entities can change their mesh resolution at runtime.
type Tessellated interface {
	DoubleVertices()
	HalveSegments()
	Tessellation() int
}

// DebugDrawable entities expose debug visualisations.
type DebugDrawable interface {
	ToggleWireframe()
	ToggleNormals()
	ToggleTangents()
}

// Outlined entities can show their bounding box.
type Outlined interface {
	ToggleBounds()
}

// Lightable entities can switch scene lighting.
type Lightable interface {
	ToggleLight()
}
