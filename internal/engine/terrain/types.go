// Package terrain generates the island heightmap and its triangle mesh.
package terrain

import "github.com/Faultbox/island-defense/pkg/math"

// Vertex is a mesh vertex shared by every triangle that references it.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3 // average of the adjacent face normals
}

// Triangle references three vertices of its mesh by index and carries its
// own face normal.
type Triangle struct {
	V      [3]uint32
	Normal math.Vec3
}

// Mesh holds the vertices and triangles of a terrain.
type Mesh struct {
	Vertices  []Vertex
	Triangles []Triangle
	Bounds    Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Heightmap is a square grid of heights over [-Extent, Extent]².
type Heightmap struct {
	Heights []float32 // row-major, Size×Size samples, row is Z
	Size    int       // samples per side
	Extent  float32   // half width in world units
	Floor   float32   // height outside the grid
}
