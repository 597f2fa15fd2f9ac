package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/taskmill/internal/app"
	"github.com/vk/taskmill/internal/testutil"
)

// Test for: an enables block injects the declaring task as a prerequisite
func TestPlanning_EnablesBlock_InjectsPrerequisite(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// deploy never mentions migrate; migrate declares itself a dependency of
	// deploy from its own block.
	taskfile := `
task "build" {}

task "migrate" {
  enables {
    task = "deploy"
  }
}

task "deploy" {
  depends_on = ["build"]
}
`

	// --- Act ---
	result := testutil.RunTaskfileTest(t, taskfile, app.Config{Target: "deploy"})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Contains(t, result.Output, "Execution plan for target 'deploy' (3 tasks):")
	testutil.AssertPlanned(t, result, 1, "build")
	testutil.AssertPlanned(t, result, 2, "migrate")
	testutil.AssertPlanned(t, result, 3, "deploy")
	require.Contains(t, result.Output, "deploy (requires: build, migrate)")
}
