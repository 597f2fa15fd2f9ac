package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/taskmill/internal/app"
	"github.com/vk/taskmill/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing combined log and plan
// output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// PlanResult holds the outcomes of a planning harness run.
type PlanResult struct {
	Output string
	Err    error
	App    *app.App
}

// RunPlan provides a standardized harness for planning tests using a default
// background context.
func RunPlan(t *testing.T, files map[string]string, cfg app.Config) *PlanResult {
	t.Helper()
	return RunPlanWithContext(context.Background(), t, files, cfg)
}

// RunPlanWithContext writes the given taskfiles into a temporary directory,
// boots the app against them with the real HCL loader, and runs the planning
// flow. The test provides relative file names; subdirectories are created as
// needed.
func RunPlanWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *PlanResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	if cfg.TaskfilePath == "" {
		cfg.TaskfilePath = tmpDir
	}
	if cfg.Target == "" && !cfg.ListTasks {
		cfg.Target = "default"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &SafeBuffer{}

	testApp, err := app.New(ctx, out, appConfig, hcl.NewLoader())
	if err == nil {
		err = testApp.Run(ctx)
	}

	if os.Getenv("TASKMILL_TEST_LOGS") == "true" {
		t.Logf("--- Full Output for %s ---\n%s", t.Name(), out.String())
	}

	return &PlanResult{
		Output: out.String(),
		Err:    err,
		App:    testApp,
	}
}
