package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/taskmill/internal/app"
	"github.com/vk/taskmill/internal/testutil"
)

// Test for: a target that no taskfile defines is rejected
func TestPlanning_UnknownTarget_IsRejected(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	taskfile := `
task "build" {}
`

	// --- Act ---
	result := testutil.RunTaskfileTest(t, taskfile, app.Config{Target: "ship"})

	// --- Assert ---
	require.Error(t, result.Err)
	require.EqualError(t, result.Err, "task 'ship' is not defined in any loaded taskfile")
}
