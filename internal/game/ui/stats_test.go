package ui

import (
	"strings"
	"testing"

	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/pkg/math"
)

type boats struct{ n int }

func (b *boats) Position() math.Vec3     { return math.Zero }
func (b *boats) Update(scene.Frame) bool { return false }
func (b *boats) Draw(scene.Renderer)     {}
func (b *boats) Len() int                { return b.n }

type source struct {
	fps float32
	t   float32
	reg *scene.Registry
}

func (s *source) FrameRate() float32     { return s.fps }
func (s *source) Time() float32          { return s.t }
func (s *source) Entities() scene.Reader { return s.reg }

func TestStatsTitle(t *testing.T) {
	reg := scene.NewRegistry()
	src := &source{fps: 1234.5, t: 3, reg: reg}
	var titles []string
	s := NewStats("Island Defense", src, func(title string) { titles = append(titles, title) })
	if err := reg.Insert(scene.KindStats, s); err != nil {
		t.Fatal(err)
	}
	if err := reg.Insert(scene.KindBoats, &boats{n: 4}); err != nil {
		t.Fatal(err)
	}

	s.Update(scene.Frame{Time: 1, Number: 12345})
	if len(titles) != 1 {
		t.Fatalf("got %d titles, want 1", len(titles))
	}
	for _, want := range []string{"Island Defense", "1,234.5 fps", "frame 12,345", "2 entities", "4 boats"} {
		if !strings.Contains(titles[0], want) {
			t.Errorf("title %q missing %q", titles[0], want)
		}
	}
	if s.Title() != titles[0] {
		t.Errorf("Title() = %q, want %q", s.Title(), titles[0])
	}
}

func TestStatsThrottle(t *testing.T) {
	src := &source{reg: scene.NewRegistry()}
	calls := 0
	s := NewStats("x", src, func(string) { calls++ })

	s.Update(scene.Frame{Time: 0, Number: 1})
	src.fps = 10
	s.Update(scene.Frame{Time: 0.2, Number: 2})
	if calls != 1 {
		t.Errorf("title refreshed %d times within the interval, want 1", calls)
	}
	s.Update(scene.Frame{Time: 0.6, Number: 3})
	if calls != 2 {
		t.Errorf("title refreshed %d times after the interval, want 2", calls)
	}
	if s.Update(scene.Frame{Time: 5}) {
		t.Error("stats reported finished")
	}
}

func TestStatsWithoutBoats(t *testing.T) {
	src := &source{reg: scene.NewRegistry()}
	s := NewStats("x", src, nil)
	s.ShowMemory = true
	s.Update(scene.Frame{Time: 1})
	if strings.Contains(s.Title(), "boats") {
		t.Errorf("title %q mentions boats without a boat group", s.Title())
	}
	if !strings.Contains(s.Title(), "B") {
		t.Errorf("title %q has no memory readout", s.Title())
	}
}
