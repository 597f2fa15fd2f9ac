package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/taskmill/internal/app"
	"github.com/vk/taskmill/internal/testutil"
)

// Test for: plans the "default" task when no target is given
func TestPlanning_UsesDefaultTask_WhenNoTargetIsGiven(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	taskfile := `
task "fmt" {}

task "vet" {}

task "default" {
  description = "Run the standard checks"
  depends_on  = ["fmt", "vet"]
}
`

	// --- Act ---
	// The harness leaves Target empty, which planning resolves as "default".
	result := testutil.RunTaskfileTest(t, taskfile, app.Config{})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Contains(t, result.Output, "Execution plan for target 'default' (3 tasks):")
	testutil.AssertPlanned(t, result, 1, "fmt")
	testutil.AssertPlanned(t, result, 2, "vet")
	testutil.AssertPlanned(t, result, 3, "default")
}
