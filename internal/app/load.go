package app

import (
	"context"
	"fmt"

	"github.com/vk/taskmill/internal/config"
	"github.com/vk/taskmill/internal/ctxlog"
	"github.com/vk/taskmill/internal/task"
)

// buildRegistry converts the loaded model into registered task descriptors,
// preserving declaration order across files. Errors carry the source file of
// the offending task block.
func buildRegistry(ctx context.Context, model *config.Model) (*task.Registry, error) {
	logger := ctxlog.FromContext(ctx)
	registry := task.NewRegistry()

	for _, t := range model.Tasks {
		d, err := descriptorFromTask(t)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(d); err != nil {
			return nil, fmt.Errorf("%s: %w", t.Source, err)
		}
		logger.Debug("Registered task.", "task", t.Name, "source", t.Source)
	}

	return registry, nil
}

// descriptorFromTask lowers one config task into a descriptor, folding the
// depends_on shorthand and the requires/enables blocks into dependency
// entries.
func descriptorFromTask(t *config.Task) (*task.Descriptor, error) {
	d, err := task.NewDescriptor(t.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.Source, err)
	}

	if err := d.DependsOn(t.DependsOn...); err != nil {
		return nil, fmt.Errorf("%s: %w", t.Source, err)
	}
	for _, req := range t.Requires {
		dep := task.Dependency{Target: req.Task, Optional: req.Optional, Soft: req.Soft}
		if err := d.AddDependency(dep); err != nil {
			return nil, fmt.Errorf("%s: %w", t.Source, err)
		}
	}
	for _, req := range t.Enables {
		dep := task.Dependency{Target: req.Task, Optional: req.Optional, Soft: req.Soft}
		if err := d.AddDependent(dep); err != nil {
			return nil, fmt.Errorf("%s: %w", t.Source, err)
		}
	}

	return d, nil
}
