package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/taskmill/internal/app"
	"github.com/vk/taskmill/internal/testutil"
)

// Test for: targets resolve case-insensitively but render as declared
func TestPlanning_Target_ResolvesCaseInsensitively(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	taskfile := `
task "Deploy-Staging" {
  depends_on = ["Build"]
}

task "Build" {}
`

	// --- Act ---
	result := testutil.RunTaskfileTest(t, taskfile, app.Config{Target: "deploy-staging"})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Contains(t, result.Output, "Execution plan for target 'Deploy-Staging' (2 tasks):")
	testutil.AssertPlanned(t, result, 1, "Build")
	testutil.AssertPlanned(t, result, 2, "Deploy-Staging")
}
