// Package scenetest provides a Renderer that records submissions, for tests
// that must not depend on a GL context.
package scenetest

import (
	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/pkg/math"
)

// Batch is one Begin/End block.
type Batch struct {
	Primitive scene.Primitive
	Vertices  []math.Vec3
	Normals   []math.Vec3
	Colors    []math.Color
	Wireframe bool
	Depth     int // matrix stack depth at End
}

// Recorder implements scene.Renderer by recording everything it is given.
type Recorder struct {
	Batches   []Batch
	Views     []math.Mat4
	Lights    []scene.Light
	Wireframe bool

	open       *Batch
	normal     math.Vec3
	color      math.Color
	stack      []math.Mat4
	Unbalanced int // Begin without End, End without Begin, PopMatrix on empty stack
}

var _ scene.Renderer = (*Recorder)(nil)

// New creates an empty recorder.
func New() *Recorder {
	return &Recorder{normal: math.Up, color: math.White}
}

func (r *Recorder) Begin(p scene.Primitive) {
	if r.open != nil {
		r.Unbalanced++
	}
	r.open = &Batch{Primitive: p, Wireframe: r.Wireframe}
}

func (r *Recorder) Color(c math.Color) { r.color = c }

func (r *Recorder) Normal(n math.Vec3) { r.normal = n }

func (r *Recorder) Vertex(v math.Vec3) {
	if r.open == nil {
		r.Unbalanced++
		return
	}
	r.open.Vertices = append(r.open.Vertices, v)
	r.open.Normals = append(r.open.Normals, r.normal)
	r.open.Colors = append(r.open.Colors, r.color)
}

func (r *Recorder) End() {
	if r.open == nil {
		r.Unbalanced++
		return
	}
	r.open.Depth = len(r.stack)
	r.Batches = append(r.Batches, *r.open)
	r.open = nil
}

func (r *Recorder) SetWireframe(on bool) { r.Wireframe = on }

func (r *Recorder) SetView(view math.Mat4) { r.Views = append(r.Views, view) }

func (r *Recorder) PushMatrix(model math.Mat4) { r.stack = append(r.stack, model) }

func (r *Recorder) PopMatrix() {
	if len(r.stack) == 0 {
		r.Unbalanced++
		return
	}
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) SetLight(l scene.Light) { r.Lights = append(r.Lights, l) }

// Depth returns the current matrix stack depth.
func (r *Recorder) Depth() int { return len(r.stack) }

// VertexCount returns the vertices submitted with primitive p.
func (r *Recorder) VertexCount(p scene.Primitive) int {
	n := 0
	for _, b := range r.Batches {
		if b.Primitive == p {
			n += len(b.Vertices)
		}
	}
	return n
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	*r = *New()
}
