package dag

// Traverse returns a valid execution order culminating in target, restricted
// to the tasks target transitively depends on. An unknown target yields an
// empty order; that is not an error. The result is fully determined by the
// sequence of prior Connect calls, and repeated calls return the same order:
// every piece of working state below lives in the call frame.
func (g *Graph) Traverse(target string) []string {
	start, ok := g.nodes[Fold(target)]
	if !ok {
		return nil
	}

	// Phase one: breadth-first relevance closure over prerequisite edges,
	// strong and weak alike. Everything reachable is needed for the target;
	// nodes outside the closure are invisible for the rest of the call.
	discovered := []*Node{start}
	inSet := map[*Node]bool{start: true}
	for i := 0; i < len(discovered); i++ {
		n := discovered[i]
		for _, m := range n.strongOut {
			if !inSet[m] {
				inSet[m] = true
				discovered = append(discovered, m)
			}
		}
		for _, m := range n.weakOut {
			if !inSet[m] {
				inSet[m] = true
				discovered = append(discovered, m)
			}
		}
	}

	// Phase two: Kahn-style emission. remaining counts each node's
	// prerequisites inside the closure; edges crossing the closure boundary
	// are not counted.
	remaining := make(map[*Node]int, len(discovered))
	for _, n := range discovered {
		count := 0
		for _, m := range n.strongOut {
			if inSet[m] {
				count++
			}
		}
		for _, m := range n.weakOut {
			if inSet[m] {
				count++
			}
		}
		remaining[n] = count
	}

	order := make([]string, 0, len(discovered))
	var drain func(n *Node)
	drain = func(n *Node) {
		order = append(order, n.name)
		for _, d := range n.strongIn {
			if inSet[d] {
				remaining[d]--
				if remaining[d] == 0 {
					drain(d)
				}
			}
		}
		for _, d := range n.weakIn {
			if inSet[d] {
				remaining[d]--
				if remaining[d] == 0 {
					drain(d)
				}
			}
		}
	}

	// Roots are the nodes ready before anything has run, taken in discovery
	// order. The root list is fixed up front: draining zeroes other
	// counters mid-loop, and each such node is emitted by its own cascade.
	var roots []*Node
	for _, n := range discovered {
		if remaining[n] == 0 {
			roots = append(roots, n)
		}
	}
	for _, n := range roots {
		drain(n)
	}
	return order
}
