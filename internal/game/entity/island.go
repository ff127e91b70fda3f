package entity

import (
	"github.com/Faultbox/island-defense/internal/engine/debug"
	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/internal/engine/terrain"
	"github.com/Faultbox/island-defense/pkg/math"
)

// Terrain colours.
var (
	sandColor  = math.RGB(0.86, 0.8, 0.55)
	grassColor = math.RGB(0.3, 0.6, 0.25)
	rockColor  = math.RGB(0.5, 0.45, 0.4)
	boundColor = math.RGB(1, 0.85, 0)
)

// IslandOptions configures the island.
type IslandOptions struct {
	Terrain    terrain.GenOptions
	WaterLevel float32 // highest wave crest, land below it is beach
	Surface    Surface
	Extent     float32
	Sounds     Sounds
	Impact     func(at math.Vec3) // where island shots hit the water
}

// Island is the defended heightmap island. Its cannon sits on the summit.
type Island struct {
	hm         *terrain.Heightmap
	mesh       *terrain.Mesh
	colors     []math.Color // per triangle
	waterLevel float32
	cannon     *Cannon
	showBounds bool
}

var (
	_ scene.Displayable = (*Island)(nil)
	_ scene.Outlined    = (*Island)(nil)
	_ CannonBearer      = (*Island)(nil)
)

// NewIsland generates the island terrain and mounts its cannon.
func NewIsland(opts IslandOptions) *Island {
	hm := terrain.Generate(opts.Terrain)
	mesh := terrain.BuildMesh(hm)
	is := &Island{
		hm:         hm,
		mesh:       mesh,
		waterLevel: opts.WaterLevel,
	}
	is.colors = is.paint()
	is.cannon = NewCannon(CannonOptions{
		Origin:    math.Vec3{Y: hm.HeightAt(0, 0) + 0.01},
		Heading:   0,
		Elevation: 45,
		Power:     1,
		Color:     math.Black,
		Surface:   opts.Surface,
		Extent:    opts.Extent,
		Sounds:    opts.Sounds,
		Impact:    opts.Impact,
	})
	return is
}

// paint colours each triangle by its mean height: beach below the wave
// crests, grass above, rock towards the summit.
func (is *Island) paint() []math.Color {
	top := max(is.hm.MaxHeight(), is.waterLevel+1e-3)
	colors := make([]math.Color, len(is.mesh.Triangles))
	for i, tri := range is.mesh.Triangles {
		var y float32
		for _, v := range tri.V {
			y += is.mesh.Vertices[v].Position.Y
		}
		y /= 3
		switch {
		case y <= is.waterLevel:
			colors[i] = sandColor
		default:
			t := (y - is.waterLevel) / (top - is.waterLevel)
			colors[i] = grassColor.Lerp(rockColor, min(t, 1))
		}
	}
	return colors
}

func (is *Island) Position() math.Vec3 { return math.Zero }

// Cannon returns the island cannon.
func (is *Island) Cannon() *Cannon { return is.cannon }

// HeightAt returns the ground height at (x, z).
func (is *Island) HeightAt(x, z float32) float32 { return is.hm.HeightAt(x, z) }

// Mesh returns the terrain mesh.
func (is *Island) Mesh() *terrain.Mesh { return is.mesh }

// ToggleBounds shows or hides the mesh bounding box.
func (is *Island) ToggleBounds() { is.showBounds = !is.showBounds }

// Update advances the cannon. The island never finishes.
func (is *Island) Update(frame scene.Frame) bool {
	is.cannon.Update(frame)
	return false
}

// Draw submits the terrain flat shaded with the face normals.
func (is *Island) Draw(r scene.Renderer) {
	r.Begin(scene.Triangles)
	for i, tri := range is.mesh.Triangles {
		r.Color(is.colors[i])
		r.Normal(tri.Normal)
		for _, v := range tri.V {
			r.Vertex(is.mesh.Vertices[v].Position)
		}
	}
	r.End()
	if is.showBounds {
		debug.DrawBox(r, is.mesh.Bounds.Min, is.mesh.Bounds.Max, 0.01, boundColor)
	}
	is.cannon.Draw(r)
}
