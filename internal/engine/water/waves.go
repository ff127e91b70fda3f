package water

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/island-defense/internal/engine/debug"
	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/internal/logger"
	"github.com/Faultbox/island-defense/pkg/math"
)

// Surface colours.
var (
	waterColor   = math.Color{R: 0.1, G: 0.35, B: 0.6, A: 0.85}
	normalColor  = math.Color{R: 1, G: 1, B: 0, A: 1}
	tangentColor = math.Color{R: 1, G: 0.4, B: 0.4, A: 1}
)

// debugVectorLength is the drawn length of normal and tangent vectors.
const debugVectorLength = 0.05

// Options configures a Waves mesh.
type Options struct {
	Tessellation    int     // cells per axis, >= 1
	MaxTessellation int     // Tessellation·2^k bound for DoubleVertices, 0 means no limit
	Extent          float32 // the mesh covers [-Extent, Extent] on X and Z
	Animate         bool
}

// Vertex is one sample of the surface.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
}

// Waves is the tessellated ocean mesh. It owns a (t+1)×(t+1) vertex grid
// over the square extent and resamples the field every update while
// animation is enabled.
type Waves struct {
	field  Field
	extent float32
	tess   int
	max    int
	grid   []Vertex
	t      float32 // time of the last sample

	animate      bool
	wireframe    bool
	showNormals  bool
	showTangents bool

	log *zap.Logger
}

var (
	_ scene.Displayable   = (*Waves)(nil)
	_ scene.Animatable    = (*Waves)(nil)
	_ scene.Tessellated   = (*Waves)(nil)
	_ scene.DebugDrawable = (*Waves)(nil)
)

// NewWaves creates the mesh and samples it at time zero.
func NewWaves(field Field, opts Options) (*Waves, error) {
	if len(field.waves) == 0 {
		return nil, fmt.Errorf("%w: empty field", ErrInvalidParams)
	}
	if opts.Tessellation < 1 {
		return nil, fmt.Errorf("%w: tessellation %d", ErrInvalidParams, opts.Tessellation)
	}
	if opts.MaxTessellation != 0 && !Reachable(opts.Tessellation, opts.MaxTessellation) {
		return nil, fmt.Errorf("%w: max tessellation %d is not %d doubled", ErrInvalidParams, opts.MaxTessellation, opts.Tessellation)
	}
	if !(opts.Extent > 0) || !finite(opts.Extent) {
		return nil, fmt.Errorf("%w: extent %v", ErrInvalidParams, opts.Extent)
	}

	w := &Waves{
		field:   field,
		extent:  opts.Extent,
		tess:    opts.Tessellation,
		max:     opts.MaxTessellation,
		animate: opts.Animate,
		log:     logger.Named("waves"),
	}
	w.grid = w.build(w.tess)
	return w, nil
}

// Reachable reports whether limit is tess doubled zero or more times.
func Reachable(tess, limit int) bool {
	if tess < 1 {
		return false
	}
	for tess < limit {
		tess *= 2
	}
	return tess == limit
}

// build lays out a fresh grid for tessellation n sampled at w.t.
func (w *Waves) build(n int) []Vertex {
	grid := make([]Vertex, (n+1)*(n+1))
	for row := 0; row <= n; row++ {
		z := w.coord(row, n)
		for col := 0; col <= n; col++ {
			x := w.coord(col, n)
			h, normal := w.field.Sample(x, z, w.t)
			grid[row*(n+1)+col] = Vertex{
				Position: math.Vec3{X: x, Y: h, Z: z},
				Normal:   normal,
			}
		}
	}
	return grid
}

// coord maps grid index i of n cells to world space. Index 0 and n land
// exactly on -extent and +extent.
func (w *Waves) coord(i, n int) float32 {
	if i == n {
		return w.extent
	}
	u := float32(i) / float32(n)
	return -w.extent + 2*w.extent*u
}

func (w *Waves) Position() math.Vec3 { return math.Zero }

// Update resamples every vertex at frame.Time. The grid size never changes
// here and the mesh never finishes.
func (w *Waves) Update(frame scene.Frame) bool {
	if !w.animate {
		return false
	}
	w.t = frame.Time
	for i := range w.grid {
		p := &w.grid[i]
		p.Position.Y, p.Normal = w.field.Sample(p.Position.X, p.Position.Z, w.t)
	}
	return false
}

// Draw submits two triangles per cell, then the enabled debug vectors.
func (w *Waves) Draw(r scene.Renderer) {
	n := w.tess
	stride := n + 1

	r.SetWireframe(w.wireframe)
	r.Begin(scene.Triangles)
	r.Color(waterColor)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			i := row*stride + col
			w.emit(r, i)
			w.emit(r, i+stride)
			w.emit(r, i+1)

			w.emit(r, i+1)
			w.emit(r, i+stride)
			w.emit(r, i+stride+1)
		}
	}
	r.End()
	if w.wireframe {
		r.SetWireframe(false)
	}

	if w.showNormals {
		r.Begin(scene.Lines)
		r.Color(normalColor)
		for _, v := range w.grid {
			debug.DrawVector(r, v.Position, v.Normal, debugVectorLength, false)
		}
		r.End()
	}
	if w.showTangents {
		r.Begin(scene.Lines)
		r.Color(tangentColor)
		for _, v := range w.grid {
			tx, tz := w.field.Tangents(v.Position.X, v.Position.Z, w.t)
			debug.DrawVector(r, v.Position, tx, debugVectorLength, true)
			debug.DrawVector(r, v.Position, tz, debugVectorLength, true)
		}
		r.End()
	}
}

func (w *Waves) emit(r scene.Renderer, i int) {
	r.Normal(w.grid[i].Normal)
	r.Vertex(w.grid[i].Position)
}

// DoubleVertices doubles the tessellation. It does nothing when the
// result would exceed the configured maximum, so a following
// HalveSegments always restores the previous tessellation.
func (w *Waves) DoubleVertices() {
	n := w.tess * 2
	if w.max > 0 && n > w.max {
		return
	}
	w.resize(n)
}

// HalveSegments halves the tessellation. At 1 it does nothing.
func (w *Waves) HalveSegments() {
	n := w.tess / 2
	if n < 1 {
		n = 1
	}
	w.resize(n)
}

func (w *Waves) resize(n int) {
	if n == w.tess {
		return
	}
	grid := w.build(n)
	w.grid, w.tess = grid, n
	w.log.Debug("Tessellation changed",
		zap.Int("tessellation", n),
		zap.Int("vertices", len(grid)))
}

func (w *Waves) ToggleAnimation() { w.animate = !w.animate }
func (w *Waves) ToggleWireframe() { w.wireframe = !w.wireframe }
func (w *Waves) ToggleNormals()   { w.showNormals = !w.showNormals }
func (w *Waves) ToggleTangents()  { w.showTangents = !w.showTangents }

// Tessellation returns the number of cells per axis.
func (w *Waves) Tessellation() int { return w.tess }

// VertexCount returns (t+1)².
func (w *Waves) VertexCount() int { return len(w.grid) }

// Vertices returns a copy of the grid in row-major order.
func (w *Waves) Vertices() []Vertex {
	out := make([]Vertex, len(w.grid))
	copy(out, w.grid)
	return out
}

// Vertex returns the grid vertex at (row, col). Out of range indices panic.
func (w *Waves) Vertex(row, col int) Vertex {
	if row < 0 || row > w.tess || col < 0 || col > w.tess {
		panic(fmt.Sprintf("water: vertex (%d, %d) outside %d×%d grid", row, col, w.tess+1, w.tess+1))
	}
	return w.grid[row*(w.tess+1)+col]
}

// Field returns the sampled wave field.
func (w *Waves) Field() Field { return w.field }

// Animating reports whether Update resamples the surface.
func (w *Waves) Animating() bool { return w.animate }

// Extent returns the half size of the covered square.
func (w *Waves) Extent() float32 { return w.extent }
