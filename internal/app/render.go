package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vk/taskmill/internal/config"
	"github.com/vk/taskmill/internal/dag"
)

// renderPlan writes the resolved execution order, one numbered line per task,
// annotated with each task's hard prerequisites and soft ordering requests.
func (a *App) renderPlan(target string, order []string, g *dag.Graph) {
	noun := "tasks"
	if len(order) == 1 {
		noun = "task"
	}
	fmt.Fprintf(a.outW, "Execution plan for target '%s' (%d %s):\n", target, len(order), noun)
	for i, name := range order {
		line := fmt.Sprintf("%3d. %s", i+1, name)
		node, _ := g.Node(name)
		if reqs := node.Requires(); len(reqs) > 0 {
			line += fmt.Sprintf(" (requires: %s)", strings.Join(reqs, ", "))
		}
		if after := node.After(); len(after) > 0 {
			line += fmt.Sprintf(" (after: %s)", strings.Join(after, ", "))
		}
		fmt.Fprintln(a.outW, line)
	}
}

// renderList writes every defined task in declaration order, with its
// description and declared dependencies when it has any.
func (a *App) renderList() {
	if len(a.model.Tasks) == 0 {
		fmt.Fprintln(a.outW, "No tasks defined.")
		return
	}

	fmt.Fprintf(a.outW, "Tasks (%d):\n", len(a.model.Tasks))
	for _, t := range a.model.Tasks {
		line := "  " + t.Name
		if t.Description != "" {
			line += " - " + t.Description
		}
		if deps := forwardTargets(t); len(deps) > 0 {
			line += fmt.Sprintf(" (depends on: %s)", strings.Join(deps, ", "))
		}
		fmt.Fprintln(a.outW, line)
	}
}

// forwardTargets collects the task names a task declares it depends on, the
// depends_on shorthand first, then the requires blocks.
func forwardTargets(t *config.Task) []string {
	targets := slices.Clone(t.DependsOn)
	for _, req := range t.Requires {
		targets = append(targets, req.Task)
	}
	return targets
}
