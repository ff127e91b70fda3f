// Package ui provides the in-game readouts.
package ui

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/pkg/math"
)

// Source is the read-only view of the game the stats are taken from.
type Source interface {
	FrameRate() float32
	Time() float32
	Entities() scene.Reader
}

// counted is satisfied by composite entities such as the boat group.
type counted interface {
	Len() int
}

// Stats writes frame rate, time and entity counts to the window title.
type Stats struct {
	Prefix     string
	Interval   float32 // seconds between title refreshes
	ShowMemory bool

	src      Source
	setTitle func(string)

	last    float32
	started bool
	title   string

	// Memory stats
	memStats      runtime.MemStats
	memUpdateTime float32
}

// NewStats creates the readout. setTitle receives every new title.
func NewStats(prefix string, src Source, setTitle func(string)) *Stats {
	if setTitle == nil {
		setTitle = func(string) {}
	}
	return &Stats{
		Prefix:   prefix,
		Interval: 0.5,
		src:      src,
		setTitle: setTitle,
	}
}

func (s *Stats) Position() math.Vec3 { return math.Zero }

// Title returns the last published title.
func (s *Stats) Title() string { return s.title }

// Update refreshes the title at most once per Interval. Stats never finish.
func (s *Stats) Update(frame scene.Frame) bool {
	if s.started && frame.Time-s.last < s.Interval {
		return false
	}
	if s.ShowMemory && (!s.started || frame.Time-s.memUpdateTime >= 2) {
		runtime.ReadMemStats(&s.memStats)
		s.memUpdateTime = frame.Time
	}
	s.started = true
	s.last = frame.Time

	if title := s.format(frame); title != s.title {
		s.title = title
		s.setTitle(title)
	}
	return false
}

func (s *Stats) format(frame scene.Frame) string {
	entities := s.src.Entities()
	parts := []string{
		s.Prefix,
		humanize.FormatFloat("#,###.#", float64(s.src.FrameRate())) + " fps",
		fmt.Sprintf("t=%.1fs", s.src.Time()),
		"frame " + humanize.Comma(int64(frame.Number)),
		fmt.Sprintf("%d entities", entities.Len()),
	}
	if boats, err := scene.Lookup[counted](entities, scene.KindBoats); err == nil {
		parts = append(parts, fmt.Sprintf("%d boats", boats.Len()))
	}
	if s.ShowMemory {
		parts = append(parts, humanize.IBytes(s.memStats.Alloc))
	}
	return strings.Join(parts, " | ")
}

// Draw does nothing; the readout lives in the window title.
func (s *Stats) Draw(scene.Renderer) {}
