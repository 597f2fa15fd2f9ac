package app

import (
	"context"
	"fmt"

	"github.com/vk/taskmill/internal/builder"
	"github.com/vk/taskmill/internal/ctxlog"
)

// Run executes the planning flow for the configured target: build the
// dependency graph from the registered tasks, resolve the execution order,
// and render it to the output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.ListTasks {
		a.renderList()
		return nil
	}

	a.logger.Debug("Building dependency graph from task registry...")
	graph, err := builder.Build(ctx, a.registry.Tasks())
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}
	a.logger.Debug("Dependency graph built.", "node_count", graph.Len())

	target, ok := a.registry.Lookup(a.config.Target)
	if !ok {
		return fmt.Errorf("task '%s' is not defined in any loaded taskfile", a.config.Target)
	}

	order := graph.Traverse(target.Name())
	a.logger.Info("Execution order resolved.", "target", target.Name(), "task_count", len(order))

	a.renderPlan(target.Name(), order, graph)
	a.logger.Debug("App.Run method finished.")
	return nil
}
