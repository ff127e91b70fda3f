package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/internal/engine/scene/scenetest"
	"github.com/Faultbox/island-defense/pkg/math"
)

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-5
}

func TestMove(t *testing.T) {
	tests := []struct {
		dir  scene.Direction
		want math.Vec3
	}{
		{scene.Left, math.Vec3{X: -0.1}},
		{scene.Right, math.Vec3{X: 0.1}},
		{scene.Forward, math.Vec3{Z: -0.1}},
		{scene.Backward, math.Vec3{Z: 0.1}},
		{scene.Up, math.Vec3{Y: 0.1}},
		{scene.Down, math.Vec3{Y: -0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			c := New()
			c.Eye = math.Zero
			c.TranslationSpeed = 0.05
			c.Move(tt.dir, 2)
			if !near(c.Eye.X, tt.want.X) || !near(c.Eye.Y, tt.want.Y) || !near(c.Eye.Z, tt.want.Z) {
				t.Errorf("Move(%v, 2) = %v, want %v", tt.dir, c.Eye, tt.want)
			}
		})
	}
}

func TestMoveFollowsYaw(t *testing.T) {
	c := New()
	c.Eye = math.Zero
	c.Yaw = gomath.Pi / 2
	c.TranslationSpeed = 1
	c.Move(scene.Forward, 1)
	if !near(c.Eye.X, 1) || !near(c.Eye.Z, 0) {
		t.Errorf("forward at yaw 90° = %v, want +X", c.Eye)
	}
}

func TestRotation(t *testing.T) {
	c := New()
	c.Pitch = 0
	c.Rotation(100, 100)
	if c.Yaw != 0 || c.Pitch != 0 {
		t.Fatalf("first Rotation() changed orientation to yaw %v pitch %v", c.Yaw, c.Pitch)
	}
	c.Rotation(110, 90)
	if !near(c.Yaw, 10*c.RotationSpeed) || !near(c.Pitch, 10*c.RotationSpeed) {
		t.Errorf("yaw %v pitch %v after motion", c.Yaw, c.Pitch)
	}

	c.Rotation(110, -100000)
	if c.Pitch != c.MaxPitch {
		t.Errorf("Pitch = %v, want clamp %v", c.Pitch, c.MaxPitch)
	}
}

func TestDrawSetsView(t *testing.T) {
	c := New()
	rec := scenetest.New()
	c.Draw(rec)
	if len(rec.Views) != 1 {
		t.Fatalf("got %d views, want 1", len(rec.Views))
	}
	if rec.Views[0] != c.ViewMatrix() {
		t.Error("Draw() view differs from ViewMatrix()")
	}
	if c.Update(scene.Frame{}) {
		t.Error("camera reported finished")
	}
}

func TestForwardUnit(t *testing.T) {
	c := New()
	for _, yaw := range []float32{0, 1, 2.5, -3} {
		c.Yaw = yaw
		if l := c.Forward().Length(); !near(l, 1) {
			t.Errorf("Forward() length at yaw %v = %v", yaw, l)
		}
	}
}
