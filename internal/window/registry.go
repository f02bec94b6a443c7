package window

import (
	"fmt"
	"iter"
)

// Registry holds the docks of a window in registration order. The order is
// the default tab order, and the first dock anchors the layout.
type Registry struct {
	docks []*Dock
	byID  map[string]*Dock
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Dock)}
}

// Register appends d. Docks live as long as the window, there is no removal.
func (r *Registry) Register(d *Dock) error {
	if d == nil {
		return fmt.Errorf("cannot register nil dock")
	}
	if _, exists := r.byID[d.ID]; exists {
		return fmt.Errorf("dock %q already registered", d.ID)
	}
	r.docks = append(r.docks, d)
	r.byID[d.ID] = d
	return nil
}

// All yields the docks in registration order. The sequence can be ranged
// over any number of times.
func (r *Registry) All() iter.Seq[*Dock] {
	return func(yield func(*Dock) bool) {
		for _, d := range r.docks {
			if !yield(d) {
				return
			}
		}
	}
}

// Lookup finds a dock by its stable identifier.
func (r *Registry) Lookup(id string) (*Dock, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// First returns the layout anchor, or nil for an empty registry.
func (r *Registry) First() *Dock {
	if len(r.docks) == 0 {
		return nil
	}
	return r.docks[0]
}

// Len returns the number of registered docks.
func (r *Registry) Len() int {
	return len(r.docks)
}
