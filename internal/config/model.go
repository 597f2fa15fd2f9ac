package config

// Model is the unified, format-agnostic representation of every loaded
// taskfile.
type Model struct {
	Tasks []*Task
}

// Task is the format-agnostic representation of a `task` block. Tasks keep
// the order they were declared in; graph construction relies on that order
// for deterministic output.
type Task struct {
	Name        string
	Description string
	DependsOn   []string
	Requires    []*Requirement
	Enables     []*Requirement
	Source      string
}

// Requirement is the format-agnostic representation of a `requires` or
// `enables` block.
type Requirement struct {
	Task     string
	Optional bool
	Soft     bool
}
