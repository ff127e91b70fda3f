package terrain

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/island-defense/pkg/math"
)

func TestGenerateShape(t *testing.T) {
	opts := DefaultGenOptions()
	opts.Tessellation = 10
	hm := Generate(opts)

	if hm.Size != 11 || len(hm.Heights) != 121 {
		t.Fatalf("Size = %d, len = %d, want 11 and 121", hm.Size, len(hm.Heights))
	}
	// The corners are outside the radius and sit on the floor.
	for _, rc := range [][2]int{{0, 0}, {0, 10}, {10, 0}, {10, 10}} {
		if h := hm.At(rc[0], rc[1]); h != opts.Floor {
			t.Errorf("corner %v height = %v, want floor %v", rc, h, opts.Floor)
		}
	}
	if center := hm.At(5, 5); center <= 0 {
		t.Errorf("center height = %v, want above sea level", center)
	}
	if top := hm.MaxHeight(); top > opts.Peak {
		t.Errorf("MaxHeight() = %v exceeds peak %v", top, opts.Peak)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	opts := DefaultGenOptions()
	a, b := Generate(opts), Generate(opts)
	for i := range a.Heights {
		if a.Heights[i] != b.Heights[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a.Heights[i], b.Heights[i])
		}
	}

	opts.Seed = 2
	c := Generate(opts)
	same := true
	for i := range a.Heights {
		if a.Heights[i] != c.Heights[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical islands")
	}
}

func TestHeightAt(t *testing.T) {
	hm := &Heightmap{
		Heights: []float32{0, 1, 2, 3},
		Size:    2,
		Extent:  1,
		Floor:   -1,
	}
	tests := []struct {
		x, z, want float32
	}{
		{-1, -1, 0},
		{1, -1, 1},
		{-1, 1, 2},
		{1, 1, 3},
		{0, 0, 1.5},
		{2, 0, -1},
	}
	for _, tt := range tests {
		if got := hm.HeightAt(tt.x, tt.z); gomath.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("HeightAt(%v, %v) = %v, want %v", tt.x, tt.z, got, tt.want)
		}
	}
}

func TestBuildMesh(t *testing.T) {
	opts := DefaultGenOptions()
	opts.Tessellation = 8
	mesh := BuildMesh(Generate(opts))

	if len(mesh.Vertices) != 81 {
		t.Errorf("vertices = %d, want 81", len(mesh.Vertices))
	}
	if len(mesh.Triangles) != 128 {
		t.Errorf("triangles = %d, want 128", len(mesh.Triangles))
	}
	for i, tri := range mesh.Triangles {
		if l := tri.Normal.Length(); gomath.Abs(float64(l-1)) > 1e-5 {
			t.Fatalf("triangle %d normal length %v", i, l)
		}
		if tri.Normal.Y <= 0 {
			t.Fatalf("triangle %d normal %v faces down", i, tri.Normal)
		}
	}
	if mesh.Bounds.Min.X != -opts.Extent || mesh.Bounds.Max.Z != opts.Extent {
		t.Errorf("Bounds = %+v", mesh.Bounds)
	}
}

func TestSharedVertices(t *testing.T) {
	mesh := BuildMesh(&Heightmap{Heights: make([]float32, 9), Size: 3, Extent: 1})
	uses := make(map[uint32]int)
	for _, tri := range mesh.Triangles {
		for _, v := range tri.V {
			uses[v]++
		}
	}
	// The center vertex of a 2×2 grid belongs to all six inner triangles.
	if uses[4] != 6 {
		t.Errorf("center vertex used by %d triangles, want 6", uses[4])
	}
	if mesh.Vertices[4].Normal != math.Up {
		t.Errorf("flat mesh normal = %v, want up", mesh.Vertices[4].Normal)
	}
}
