// Package task defines the descriptor contract the graph builder consumes: a
// task's name plus its ordered dependency requests, forward ("I depend on
// X") and reverse ("I am a dependency of X"), each flagged required or
// optional and hard or soft. A Registry collects descriptors in declaration
// order and enforces unique task names across all loaded taskfiles.
//
// Descriptors carry no action. What a task does when it runs belongs to the
// execution engine downstream of the planner.
package task
