package task

import (
	"fmt"
	"slices"

	"github.com/vk/taskmill/internal/dag"
)

// Registry is the host-side collection of task descriptors, kept in
// declaration order. It enforces unique task names ahead of graph
// construction; the graph itself treats a duplicate name as a caller bug.
type Registry struct {
	tasks []*Descriptor
	index map[string]*Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]*Descriptor)}
}

// Register adds a descriptor. Task names are unique under the graph's name
// folding.
func (r *Registry) Register(d *Descriptor) error {
	key := dag.Fold(d.Name())
	if prev, ok := r.index[key]; ok {
		if prev.Name() == d.Name() {
			return fmt.Errorf("task '%s' is already defined", d.Name())
		}
		return fmt.Errorf("task '%s' is already defined (as '%s')", d.Name(), prev.Name())
	}
	r.index[key] = d
	r.tasks = append(r.tasks, d)
	return nil
}

// Lookup returns the descriptor registered under name, found
// case-insensitively.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.index[dag.Fold(name)]
	return d, ok
}

// Tasks returns the registered descriptors in declaration order.
func (r *Registry) Tasks() []*Descriptor {
	return slices.Clone(r.tasks)
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int {
	return len(r.tasks)
}
