package task

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vk/taskmill/internal/dag"
)

// Dependency is one dependency request attached to a task: the target task
// name plus how binding the request is. Optional targets that were never
// declared are skipped at build time instead of failing it; Soft requests
// order execution without gating it.
type Dependency struct {
	Target   string
	Optional bool
	Soft     bool
}

// Descriptor declares one task for graph construction: its name, the tasks
// it depends on, and the tasks it injects itself in front of. Lists keep
// declaration order; a target may appear at most once per direction,
// compared under the graph's name folding.
type Descriptor struct {
	name         string
	dependencies []Dependency
	dependents   []Dependency
}

// NewDescriptor creates a descriptor for the given task name.
func NewDescriptor(name string) (*Descriptor, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("task name must not be empty")
	}
	return &Descriptor{name: name}, nil
}

// Name returns the task's display name.
func (d *Descriptor) Name() string {
	return d.name
}

// DependsOn appends a required, hard dependency on each named target, in
// order. It is what the depends_on taskfile shorthand lowers to.
func (d *Descriptor) DependsOn(targets ...string) error {
	for _, target := range targets {
		if err := d.AddDependency(Dependency{Target: target}); err != nil {
			return err
		}
	}
	return nil
}

// AddDependency appends a forward dependency request.
func (d *Descriptor) AddDependency(dep Dependency) error {
	if strings.TrimSpace(dep.Target) == "" {
		return fmt.Errorf("task '%s': dependency target must not be empty", d.name)
	}
	if containsTarget(d.dependencies, dep.Target) {
		return fmt.Errorf("task '%s' already depends on '%s'", d.name, dep.Target)
	}
	d.dependencies = append(d.dependencies, dep)
	return nil
}

// AddDependent appends a reverse request: the task declares itself a
// dependency of the target.
func (d *Descriptor) AddDependent(dep Dependency) error {
	if strings.TrimSpace(dep.Target) == "" {
		return fmt.Errorf("task '%s': dependent target must not be empty", d.name)
	}
	if containsTarget(d.dependents, dep.Target) {
		return fmt.Errorf("task '%s' is already declared a dependency of '%s'", d.name, dep.Target)
	}
	d.dependents = append(d.dependents, dep)
	return nil
}

// Dependencies returns the forward requests in declaration order.
func (d *Descriptor) Dependencies() []Dependency {
	return slices.Clone(d.dependencies)
}

// Dependents returns the reverse requests in declaration order.
func (d *Descriptor) Dependents() []Dependency {
	return slices.Clone(d.dependents)
}

func containsTarget(deps []Dependency, target string) bool {
	for _, dep := range deps {
		if dag.Fold(dep.Target) == dag.Fold(target) {
			return true
		}
	}
	return false
}
