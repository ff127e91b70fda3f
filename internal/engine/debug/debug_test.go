package debug

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/internal/engine/scene/scenetest"
	"github.com/Faultbox/island-defense/pkg/math"
)

func TestBoxEdges(t *testing.T) {
	lo, hi := math.Vec3{X: -1, Y: 0, Z: -2}, math.Vec3{X: 1, Y: 3, Z: 2}
	edges := BoxEdges(lo, hi)

	for i := 0; i < len(edges); i += 2 {
		a, b := edges[i], edges[i+1]
		diff := 0
		if a.X != b.X {
			diff++
		}
		if a.Y != b.Y {
			diff++
		}
		if a.Z != b.Z {
			diff++
		}
		if diff != 1 {
			t.Errorf("edge %d %v -> %v is not axis aligned", i/2, a, b)
		}
		for _, v := range []math.Vec3{a, b} {
			if (v.X != lo.X && v.X != hi.X) || (v.Y != lo.Y && v.Y != hi.Y) || (v.Z != lo.Z && v.Z != hi.Z) {
				t.Errorf("vertex %v is not a corner", v)
			}
		}
	}
}

func TestDrawBoxPadding(t *testing.T) {
	rec := scenetest.New()
	DrawBox(rec, math.Zero, math.Vec3{X: 1, Y: 1, Z: 1}, 0.5, math.Red)

	if len(rec.Batches) != 1 || rec.Batches[0].Primitive != scene.Lines {
		t.Fatalf("batches = %+v, want one Lines batch", rec.Batches)
	}
	b := rec.Batches[0]
	if len(b.Vertices) != BoxVertexCount {
		t.Fatalf("got %d vertices, want %d", len(b.Vertices), BoxVertexCount)
	}
	if b.Vertices[0] != (math.Vec3{X: -0.5, Y: -0.5, Z: -0.5}) {
		t.Errorf("first corner = %v, want padded min", b.Vertices[0])
	}
	if b.Colors[0] != math.Red {
		t.Errorf("color = %v, want red", b.Colors[0])
	}
}

func TestScreenshotsSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewScreenshots(dir, "island")
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	// 2x2 frame, bottom row red, top row blue (bottom-up as GL returns it).
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	path, err := s.Save(pixels, 2, 2)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "island_2026-01-02_03-04-05_") {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if r, _, b, _ := img.At(0, 0).RGBA(); b == 0 || r != 0 {
		t.Errorf("top-left pixel should be blue after the flip")
	}
	if r, _, _, _ := img.At(0, 1).RGBA(); r == 0 {
		t.Errorf("bottom-left pixel should be red after the flip")
	}

	second, err := s.Save(pixels, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if second == path {
		t.Error("two captures in the same second share a file name")
	}
}

func TestScreenshotsSaveInvalid(t *testing.T) {
	s := NewScreenshots(t.TempDir(), "x")
	if _, err := s.Save(make([]byte, 3), 1, 1); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := s.Save(nil, 0, 0); err == nil {
		t.Error("expected invalid size error")
	}
}
