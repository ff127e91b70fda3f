package entity

import (
	"github.com/Faultbox/island-defense/internal/engine/scene"
	"github.com/Faultbox/island-defense/pkg/math"
)

// Group is a composite entity. It updates and draws its members in order,
// drops the ones that finish and finishes itself once empty.
type Group[T scene.Displayable] struct {
	items []T
}

// NewGroup creates a group holding items.
func NewGroup[T scene.Displayable](items ...T) *Group[T] {
	return &Group[T]{items: items}
}

// Add appends an item.
func (g *Group[T]) Add(item T) {
	g.items = append(g.items, item)
}

// Len returns the number of live members.
func (g *Group[T]) Len() int { return len(g.items) }

// Items returns a copy of the members.
func (g *Group[T]) Items() []T {
	out := make([]T, len(g.items))
	copy(out, g.items)
	return out
}

// Position returns the centroid of the members.
func (g *Group[T]) Position() math.Vec3 {
	if len(g.items) == 0 {
		return math.Zero
	}
	var sum math.Vec3
	for _, it := range g.items {
		sum = sum.Add(it.Position())
	}
	return sum.Scale(1 / float32(len(g.items)))
}

// Update updates every member and compacts away the finished ones.
func (g *Group[T]) Update(frame scene.Frame) bool {
	kept := g.items[:0]
	for _, it := range g.items {
		if !it.Update(frame) {
			kept = append(kept, it)
		}
	}
	var zero T
	for i := len(kept); i < len(g.items); i++ {
		g.items[i] = zero
	}
	g.items = kept
	return len(g.items) == 0
}

func (g *Group[T]) Draw(r scene.Renderer) {
	for _, it := range g.items {
		it.Draw(r)
	}
}
