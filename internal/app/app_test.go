package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/taskmill/internal/app"
	"github.com/vk/taskmill/internal/config"
)

// stubLoader satisfies config.Loader with a canned model, bypassing the
// filesystem entirely.
type stubLoader struct {
	model *config.Model
	err   error
}

func (s *stubLoader) Load(_ context.Context, _ ...string) (*config.Model, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.model, nil
}

func taskDef(name string, deps ...string) *config.Task {
	return &config.Task{Name: name, DependsOn: deps, Source: "taskfile.hcl"}
}

func newTestApp(t *testing.T, model *config.Model, cfg app.Config) (*app.App, *bytes.Buffer, error) {
	t.Helper()

	if cfg.TaskfilePath == "" {
		cfg.TaskfilePath = "taskfile.hcl"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "error"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	appCfg, err := app.NewConfig(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	a, err := app.New(context.Background(), &out, appCfg, &stubLoader{model: model})
	return a, &out, err
}

func TestNewConfig(t *testing.T) {
	t.Run("requires a taskfile path", func(t *testing.T) {
		_, err := app.NewConfig(app.Config{Target: "build"})
		assert.EqualError(t, err, "TaskfilePath is a required configuration field and cannot be empty")
	})

	t.Run("requires a target unless listing tasks", func(t *testing.T) {
		_, err := app.NewConfig(app.Config{TaskfilePath: "taskfile.hcl"})
		assert.EqualError(t, err, "Target is a required configuration field and cannot be empty")

		_, err = app.NewConfig(app.Config{TaskfilePath: "taskfile.hcl", ListTasks: true})
		assert.NoError(t, err)
	})
}

func TestNew(t *testing.T) {
	t.Run("registers every loaded task in declaration order", func(t *testing.T) {
		model := &config.Model{Tasks: []*config.Task{
			taskDef("clean"),
			taskDef("build", "clean"),
		}}

		a, _, err := newTestApp(t, model, app.Config{Target: "build"})
		require.NoError(t, err)

		require.Equal(t, 2, a.Registry().Len())
		assert.Equal(t, "clean", a.Registry().Tasks()[0].Name())
		assert.Equal(t, "build", a.Registry().Tasks()[1].Name())
	})

	t.Run("wraps loader failures", func(t *testing.T) {
		var out bytes.Buffer
		cfg, err := app.NewConfig(app.Config{
			TaskfilePath: "taskfile.hcl",
			Target:       "build",
			LogLevel:     "error",
		})
		require.NoError(t, err)

		_, err = app.New(context.Background(), &out, cfg, &stubLoader{err: errors.New("boom")})
		require.Error(t, err)
		assert.EqualError(t, err, "failed to load taskfiles: boom")
	})

	t.Run("rejects duplicate task names and points at the source file", func(t *testing.T) {
		model := &config.Model{Tasks: []*config.Task{
			{Name: "build", Source: "a.hcl"},
			{Name: "Build", Source: "b.hcl"},
		}}

		_, _, err := newTestApp(t, model, app.Config{Target: "build"})
		require.Error(t, err)
		assert.EqualError(t, err, "b.hcl: task 'Build' is already defined (as 'build')")
	})

	t.Run("rejects a task that repeats a dependency target", func(t *testing.T) {
		model := &config.Model{Tasks: []*config.Task{
			taskDef("build", "lint", "Lint"),
			taskDef("lint"),
		}}

		_, _, err := newTestApp(t, model, app.Config{Target: "build"})
		require.Error(t, err)
		assert.EqualError(t, err, "taskfile.hcl: task 'build' already depends on 'Lint'")
	})

	t.Run("rejects a blank task name", func(t *testing.T) {
		model := &config.Model{Tasks: []*config.Task{taskDef("")}}

		_, _, err := newTestApp(t, model, app.Config{Target: "build"})
		require.Error(t, err)
		assert.EqualError(t, err, "taskfile.hcl: task name must not be empty")
	})
}

func TestRun(t *testing.T) {
	t.Run("renders the execution plan for the target", func(t *testing.T) {
		// Arrange
		model := &config.Model{Tasks: []*config.Task{
			taskDef("clean"),
			taskDef("build", "clean"),
			taskDef("deploy", "build"),
		}}
		a, out, err := newTestApp(t, model, app.Config{Target: "deploy"})
		require.NoError(t, err)

		// Act
		err = a.Run(context.Background())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, `Execution plan for target 'deploy' (3 tasks):
  1. clean
  2. build (requires: clean)
  3. deploy (requires: build)
`, out.String())
	})

	t.Run("annotates soft ordering separately from hard prerequisites", func(t *testing.T) {
		model := &config.Model{Tasks: []*config.Task{
			taskDef("build"),
			{Name: "smoke", Source: "taskfile.hcl", Enables: []*config.Requirement{{Task: "deploy", Soft: true}}},
			taskDef("deploy", "build"),
		}}
		a, out, err := newTestApp(t, model, app.Config{Target: "deploy"})
		require.NoError(t, err)

		require.NoError(t, a.Run(context.Background()))
		assert.Equal(t, `Execution plan for target 'deploy' (3 tasks):
  1. build
  2. smoke
  3. deploy (requires: build) (after: smoke)
`, out.String())
	})

	t.Run("uses the singular noun for a one-task plan", func(t *testing.T) {
		model := &config.Model{Tasks: []*config.Task{taskDef("build")}}
		a, out, err := newTestApp(t, model, app.Config{Target: "build"})
		require.NoError(t, err)

		require.NoError(t, a.Run(context.Background()))
		assert.Equal(t, "Execution plan for target 'build' (1 task):\n  1. build\n", out.String())
	})

	t.Run("resolves the target case-insensitively but renders its declared name", func(t *testing.T) {
		model := &config.Model{Tasks: []*config.Task{taskDef("Build")}}
		a, out, err := newTestApp(t, model, app.Config{Target: "BUILD"})
		require.NoError(t, err)

		require.NoError(t, a.Run(context.Background()))
		assert.Contains(t, out.String(), "Execution plan for target 'Build' (1 task):")
	})

	t.Run("fails on a target that is not defined", func(t *testing.T) {
		model := &config.Model{Tasks: []*config.Task{taskDef("build")}}
		a, _, err := newTestApp(t, model, app.Config{Target: "ship"})
		require.NoError(t, err)

		err = a.Run(context.Background())
		assert.EqualError(t, err, "task 'ship' is not defined in any loaded taskfile")
	})

	t.Run("surfaces a dependency cycle from graph construction", func(t *testing.T) {
		model := &config.Model{Tasks: []*config.Task{
			taskDef("a", "b"),
			taskDef("b", "a"),
		}}
		a, _, err := newTestApp(t, model, app.Config{Target: "a"})
		require.NoError(t, err)

		err = a.Run(context.Background())
		require.Error(t, err)
		assert.EqualError(t, err, "failed to build dependency graph: Graph contains cyclic dependencies")
	})

	t.Run("surfaces a missing required dependency with its contractual wording", func(t *testing.T) {
		model := &config.Model{Tasks: []*config.Task{taskDef("build", "generate")}}
		a, _, err := newTestApp(t, model, app.Config{Target: "build"})
		require.NoError(t, err)

		err = a.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Task 'build' is dependent on task 'generate' which does not exist.")
	})

	t.Run("lists tasks with descriptions and declared dependencies", func(t *testing.T) {
		model := &config.Model{Tasks: []*config.Task{
			{Name: "build", Description: "Compile the project", Source: "taskfile.hcl"},
			taskDef("deploy", "build"),
		}}
		a, out, err := newTestApp(t, model, app.Config{ListTasks: true})
		require.NoError(t, err)

		require.NoError(t, a.Run(context.Background()))
		assert.Equal(t, `Tasks (2):
  build - Compile the project
  deploy (depends on: build)
`, out.String())
	})

	t.Run("lists an empty model without failing", func(t *testing.T) {
		a, out, err := newTestApp(t, &config.Model{}, app.Config{ListTasks: true})
		require.NoError(t, err)

		require.NoError(t, a.Run(context.Background()))
		assert.Equal(t, "No tasks defined.\n", out.String())
	})
}
