package scene

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

var (
	// ErrNotFound is returned when no entity is registered under a kind.
	ErrNotFound = errors.New("entity not found")
	// ErrCapability is returned when the entity under a kind lacks the requested capability.
	ErrCapability = errors.New("entity lacks capability")
	// ErrDuplicate is returned when inserting under a kind that is already taken.
	ErrDuplicate = errors.New("entity kind already registered")
)

// Reader is read-only access to a registry.
type Reader interface {
	Get(kind Kind) (Displayable, bool)
	Kinds() []Kind
	Len() int
}

type entry struct {
	kind Kind
	d    Displayable
}

// Registry maps entity kinds to their entity, ordered by kind.
// It is not safe for concurrent use; the game loop owns it.
type Registry struct {
	entries []entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make([]entry, 0, 8)}
}

func (r *Registry) search(kind Kind) (int, bool) {
	return slices.BinarySearchFunc(r.entries, kind, func(e entry, k Kind) int {
		return int(e.kind) - int(k)
	})
}

// Insert registers d under kind.
func (r *Registry) Insert(kind Kind, d Displayable) error {
	if d == nil {
		return fmt.Errorf("insert %s: nil entity", kind)
	}
	i, found := r.search(kind)
	if found {
		return fmt.Errorf("insert %s: %w", kind, ErrDuplicate)
	}
	r.entries = slices.Insert(r.entries, i, entry{kind: kind, d: d})
	return nil
}

// Get returns the entity registered under kind.
func (r *Registry) Get(kind Kind) (Displayable, bool) {
	i, found := r.search(kind)
	if !found {
		return nil, false
	}
	return r.entries[i].d, true
}

// Remove deletes kind from the registry and reports whether it was present.
func (r *Registry) Remove(kind Kind) bool {
	i, found := r.search(kind)
	if !found {
		return false
	}
	r.entries = slices.Delete(r.entries, i, i+1)
	return true
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Kinds returns the registered kinds in order.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, len(r.entries))
	for i, e := range r.entries {
		kinds[i] = e.kind
	}
	return kinds
}

// Each calls fn for every entity in kind order. It iterates over a snapshot,
// so fn may insert or remove entries.
func (r *Registry) Each(fn func(Kind, Displayable)) {
	for _, e := range slices.Clone(r.entries) {
		fn(e.kind, e.d)
	}
}

// Prune calls keep exactly once per entity in kind order and removes every
// entity for which keep returned false. Survivors are compacted behind the
// read position, so no entity is skipped or visited twice. keep must not
// modify the registry. It returns the removed kinds.
func (r *Registry) Prune(keep func(Kind, Displayable) bool) []Kind {
	var removed []Kind
	kept := r.entries[:0]
	for _, e := range r.entries {
		if keep(e.kind, e.d) {
			kept = append(kept, e)
		} else {
			removed = append(removed, e.kind)
		}
	}
	clear(r.entries[len(kept):])
	r.entries = kept
	return removed
}

// Lookup returns the entity under kind as capability T.
// It fails with ErrNotFound or ErrCapability instead of panicking.
func Lookup[T any](r Reader, kind Kind) (T, error) {
	var zero T
	d, ok := r.Get(kind)
	if !ok {
		return zero, fmt.Errorf("%s: %w", kind, ErrNotFound)
	}
	t, ok := d.(T)
	if !ok {
		return zero, fmt.Errorf("%s is %T, want %s: %w", kind, d, reflect.TypeFor[T](), ErrCapability)
	}
	return t, nil
}
