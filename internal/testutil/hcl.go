package testutil

import (
	"testing"

	"github.com/vk/taskmill/internal/app"
)

// RunTaskfileTest provides a simplified harness for planning against a single
// taskfile string. It wraps the main harness, writing the string as the only
// taskfile in the temporary directory.
func RunTaskfileTest(t *testing.T, taskfileHCL string, cfg app.Config) *PlanResult {
	t.Helper()

	return RunPlan(t, map[string]string{"taskfile.hcl": taskfileHCL}, cfg)
}
