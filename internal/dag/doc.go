// Package dag is the dependency-resolution core of the planner. It models
// declared tasks as nodes in a directed graph, with two flavors of edge:
// strong edges are hard prerequisites that gate execution, weak edges are
// advisory ordering requests. The graph rejects self-dependencies, detects
// cycles across the combined relation, and produces a deterministic
// execution order scoped to what a target task actually needs.
//
// Task identity is case-insensitive; the casing used when a node is first
// created is preserved for display. The one exception is the duplicate
// check in Add, which compares the exact string.
//
// A graph is mutated by a single owner during construction and queried
// afterwards. It carries no locks: share it read-only, or coordinate
// externally. DetectCycles and Traverse keep all working state in the call
// frame, so repeated calls on one graph are independent.
package dag
