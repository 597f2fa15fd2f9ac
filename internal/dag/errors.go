package dag

import "errors"

// The message text of these errors is part of the public contract; callers
// and tests match on it literally.
var (
	// ErrDuplicateNode is returned by Add when the exact name string was
	// registered before. The comparison is ordinal, unlike every other
	// lookup in this package. See Graph.Add.
	ErrDuplicateNode = errors.New("Node has already been added to graph.")

	// ErrReflexiveEdge is returned by Connect when both endpoints name the
	// same task, in any casing.
	ErrReflexiveEdge = errors.New("Reflexive edges in graph are not allowed.")

	// ErrEmptyName is returned when a task name is empty or only whitespace.
	ErrEmptyName = errors.New("task name must not be empty")
)
