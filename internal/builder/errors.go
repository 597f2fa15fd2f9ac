package builder

import (
	"errors"
	"fmt"
)

// ErrCyclicDependency reports that the wired tasks form at least one directed
// dependency cycle. The message text is part of the public contract.
var ErrCyclicDependency = errors.New("Graph contains cyclic dependencies")

// UnknownDependencyError reports a required dependency entry whose target was
// never declared as a task. Reverse distinguishes the two declaration
// directions, which carry distinct contractual wording: a task depending on a
// missing target, or a task naming itself a dependency of a missing target.
type UnknownDependencyError struct {
	Task    string
	Target  string
	Reverse bool
}

func (e *UnknownDependencyError) Error() string {
	if e.Reverse {
		return fmt.Sprintf("Task '%s' has specified that it's a dependency for task '%s' which does not exist.", e.Task, e.Target)
	}
	return fmt.Sprintf("Task '%s' is dependent on task '%s' which does not exist.", e.Task, e.Target)
}
