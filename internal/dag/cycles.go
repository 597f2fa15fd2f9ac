package dag

// cycleScan holds the call-scoped state of one DetectCycles pass: discovery
// indexes, low-links, and the explicit component stack. A fresh scan is
// allocated per call, so repeated passes over one graph stay independent.
type cycleScan struct {
	counter int
	index   map[*Node]int
	lowlink map[*Node]int
	onStack map[*Node]bool
	stack   []*Node
}

// DetectCycles reports whether any node participates in a dependency cycle
// under the combined hard and soft prerequisite relation. Nodes are visited
// in creation order with a Tarjan-style depth-first search. A node whose
// final low-link differs from its discovery index sits inside a strongly
// connected component of at least two nodes; self-edges cannot exist, so
// that test catches every cycle.
func (g *Graph) DetectCycles() bool {
	scan := &cycleScan{
		index:   make(map[*Node]int, len(g.order)),
		lowlink: make(map[*Node]int, len(g.order)),
		onStack: make(map[*Node]bool, len(g.order)),
	}

	for _, n := range g.order {
		if _, visited := scan.index[n]; !visited {
			scan.visit(n)
		}
	}

	for _, n := range g.order {
		if scan.lowlink[n] != scan.index[n] {
			return true
		}
	}
	return false
}

// visit assigns n a discovery index and low-link, recurses into its
// prerequisites, and pops n's component off the stack once its low-link has
// settled. A prerequisite still on the stack belongs to the active
// component, so its discovery index caps n's low-link.
func (s *cycleScan) visit(n *Node) {
	s.index[n] = s.counter
	s.lowlink[n] = s.counter
	s.counter++

	s.stack = append(s.stack, n)
	s.onStack[n] = true

	follow := func(m *Node) {
		if _, seen := s.index[m]; !seen {
			s.visit(m)
			if s.lowlink[m] < s.lowlink[n] {
				s.lowlink[n] = s.lowlink[m]
			}
		} else if s.onStack[m] {
			if s.index[m] < s.lowlink[n] {
				s.lowlink[n] = s.index[m]
			}
		}
	}
	for _, m := range n.strongOut {
		follow(m)
	}
	for _, m := range n.weakOut {
		follow(m)
	}

	if s.lowlink[n] == s.index[n] {
		for {
			top := s.stack[len(s.stack)-1]
			s.stack = s.stack[:len(s.stack)-1]
			s.onStack[top] = false
			if top == n {
				break
			}
		}
	}
}
