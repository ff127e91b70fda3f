package sky

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/internal/engine/scene/scenetest"
	"github.com/Faultbox/island-defense/pkg/math"
)

func TestSkyboxDraw(t *testing.T) {
	s := New(50)
	rec := scenetest.New()
	s.Draw(rec)

	if got := rec.VertexCount(scene.Triangles); got != 36 {
		t.Errorf("triangle vertices = %d, want 36", got)
	}
	if rec.Depth() != 0 || rec.Unbalanced != 0 {
		t.Errorf("Depth() = %d, Unbalanced = %d after Draw", rec.Depth(), rec.Unbalanced)
	}
	if rec.Batches[0].Depth != 1 {
		t.Errorf("cube drawn at matrix depth %d, want 1", rec.Batches[0].Depth)
	}
	for i, c := range rec.Batches[0].Colors {
		if !c.Valid() {
			t.Fatalf("vertex %d colour %v out of range", i, c)
		}
	}
}

func TestSkyboxGradient(t *testing.T) {
	s := New(1)
	tests := []struct {
		y    float32
		want math.Color
	}{
		{1, s.Zenith},
		{-1, s.Horizon},
	}
	for _, tt := range tests {
		got := s.colorAt(tt.y)
		d := gomath.Abs(float64(got.R-tt.want.R)) + gomath.Abs(float64(got.G-tt.want.G)) + gomath.Abs(float64(got.B-tt.want.B))
		if d > 1e-6 {
			t.Errorf("colorAt(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}
