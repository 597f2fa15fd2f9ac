package builder

import (
	"context"

	"github.com/vk/taskmill/internal/ctxlog"
	"github.com/vk/taskmill/internal/dag"
	"github.com/vk/taskmill/internal/task"
)

// Build constructs a complete, validated dependency graph from the given
// descriptors. The first violation aborts the build; no partial graph is ever
// returned.
func Build(ctx context.Context, tasks []*task.Descriptor) (*dag.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting graph construction.", "task_count", len(tasks))

	g := dag.New()

	// First pass: register every task as a node, in declaration order.
	for _, t := range tasks {
		if err := g.Add(t.Name()); err != nil {
			return nil, err
		}
	}
	logger.Debug("Build: node registration complete.", "node_count", g.Len())

	// Second pass: wire forward dependencies.
	for _, t := range tasks {
		for _, dep := range t.Dependencies() {
			if !g.Exists(dep.Target) {
				if dep.Optional {
					logger.Debug("Build: skipping optional dependency on undeclared task.",
						"task", t.Name(), "target", dep.Target)
					continue
				}
				return nil, &UnknownDependencyError{Task: t.Name(), Target: dep.Target}
			}
			if err := g.Connect(t.Name(), dep.Target, !dep.Soft); err != nil {
				return nil, err
			}
		}
	}

	// Third pass: wire reverse declarations, task first so it becomes the
	// target's prerequisite.
	for _, t := range tasks {
		for _, dep := range t.Dependents() {
			if !g.Exists(dep.Target) {
				if dep.Optional {
					logger.Debug("Build: skipping optional dependent on undeclared task.",
						"task", t.Name(), "target", dep.Target)
					continue
				}
				return nil, &UnknownDependencyError{Task: t.Name(), Target: dep.Target, Reverse: true}
			}
			if err := g.Connect(dep.Target, t.Name(), !dep.Soft); err != nil {
				return nil, err
			}
		}
	}
	logger.Debug("Build: dependency linking complete.")

	// Final validation: the combined hard and soft relation must be acyclic.
	if g.DetectCycles() {
		return nil, ErrCyclicDependency
	}
	logger.Debug("Build: cycle detection passed.")

	return g, nil
}
