package dag

// Node is a single task in the dependency graph. Its identity is the task
// name; the casing from the node's first registration is kept for display.
//
// Edges are stored in declaration order, and order is load-bearing: it is
// the tie-breaker that makes Traverse deterministic. Out edges point at the
// nodes this one depends on, in edges mirror them from the other side.
type Node struct {
	name string

	strongOut []*Node
	strongIn  []*Node
	weakOut   []*Node
	weakIn    []*Node
}

// Name returns the node's display name.
func (n *Node) Name() string {
	return n.name
}

// Requires returns the names of the node's hard prerequisites in
// declaration order.
func (n *Node) Requires() []string {
	return names(n.strongOut)
}

// RequiredBy returns the names of the nodes that hard-depend on this one.
func (n *Node) RequiredBy() []string {
	return names(n.strongIn)
}

// After returns the names of the nodes this one is softly ordered behind.
func (n *Node) After() []string {
	return names(n.weakOut)
}

// Before returns the names of the nodes softly ordered behind this one.
func (n *Node) Before() []string {
	return names(n.weakIn)
}

func names(nodes []*Node) []string {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.name
	}
	return out
}
