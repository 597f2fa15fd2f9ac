package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertPlanned checks the harness output to confirm that a task was emitted
// at the given position in the execution plan. It abstracts the plan's line
// format, making tests more resilient to rendering changes.
func AssertPlanned(t *testing.T, result *PlanResult, position int, taskName string) {
	t.Helper()

	expected := fmt.Sprintf("%3d. %s", position, taskName)
	require.True(t,
		strings.Contains(result.Output, expected),
		"expected task '%s' at position %d of the plan, output:\n%s", taskName, position, result.Output,
	)
}
