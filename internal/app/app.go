package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/taskmill/internal/config"
	"github.com/vk/taskmill/internal/ctxlog"
	"github.com/vk/taskmill/internal/task"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	model    *config.Model
	registry *task.Registry
}

// New is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, carrying the loaded
// task model and the registry built from it.
func New(ctx context.Context, outW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg, outW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.TaskfilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load taskfiles: %w", err)
	}
	logger.Debug("Taskfiles loaded and translated into unified model.", "tasks", len(model.Tasks))

	registry, err := buildRegistry(ctx, model)
	if err != nil {
		return nil, err
	}
	logger.Debug("Task registry populated.", "count", registry.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		model:    model,
		registry: registry,
	}, nil
}

// Registry returns the application's task registry. This is primarily for testing.
func (a *App) Registry() *task.Registry {
	return a.registry
}
