package terrain

import "github.com/Faultbox/island-defense/pkg/math"

// BuildMesh triangulates a heightmap. Each grid sample becomes one vertex
// shared by up to six triangles; vertex normals average the face normals
// around them.
func BuildMesh(hm *Heightmap) *Mesh {
	size := hm.Size
	mesh := &Mesh{
		Vertices: make([]Vertex, 0, size*size),
		Bounds: Bounds{
			Min: math.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
			Max: math.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
		},
	}
	for row := range size {
		z := hm.coord(row)
		for col := range size {
			p := math.Vec3{X: hm.coord(col), Y: hm.At(row, col), Z: z}
			mesh.Vertices = append(mesh.Vertices, Vertex{Position: p})
			updateBounds(&mesh.Bounds, p)
		}
	}

	cells := size - 1
	mesh.Triangles = make([]Triangle, 0, cells*cells*2)
	for row := range cells {
		for col := range cells {
			i := uint32(row*size + col)
			s := uint32(size)
			mesh.addTriangle(i, i+s, i+1)
			mesh.addTriangle(i+1, i+s, i+s+1)
		}
	}

	for _, tri := range mesh.Triangles {
		for _, v := range tri.V {
			mesh.Vertices[v].Normal = mesh.Vertices[v].Normal.Add(tri.Normal)
		}
	}
	for i := range mesh.Vertices {
		mesh.Vertices[i].Normal = mesh.Vertices[i].Normal.NormalizeOr(math.Up)
	}
	return mesh
}

func (m *Mesh) addTriangle(a, b, c uint32) {
	m.Triangles = append(m.Triangles, Triangle{
		V:      [3]uint32{a, b, c},
		Normal: faceNormal(m.Vertices[a].Position, m.Vertices[b].Position, m.Vertices[c].Position),
	})
}

// faceNormal returns the unit normal of a counter-clockwise triangle seen
// from above. Degenerate triangles face up.
func faceNormal(p1, p2, p3 math.Vec3) math.Vec3 {
	return p2.Sub(p1).Cross(p3.Sub(p1)).NormalizeOr(math.Up)
}

func updateBounds(b *Bounds, p math.Vec3) {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Min.Z = min(b.Min.Z, p.Z)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	b.Max.Z = max(b.Max.Z, p.Z)
}
