package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Requirement represents a `requires` or `enables` block within a task. Both
// blocks share one shape; the enclosing block name decides the direction the
// dependency is declared in.
type Requirement struct {
	Task     string `hcl:"task"`
	Optional bool   `hcl:"optional,optional"`
	Soft     bool   `hcl:"soft,optional"`
}

// Task represents a `task` block from a user's taskfile. DependsOn is kept as
// a raw expression so translation can report a precise source range when an
// entry is not a task name.
type Task struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	DependsOn   hcl.Expression `hcl:"depends_on,optional"`
	Requires    []*Requirement `hcl:"requires,block"`
	Enables     []*Requirement `hcl:"enables,block"`
}

// Taskfile represents the top-level structure of a taskfile, containing all
// defined tasks.
type Taskfile struct {
	Tasks []*Task  `hcl:"task,block"`
	Body  hcl.Body `hcl:",remain"`
}
