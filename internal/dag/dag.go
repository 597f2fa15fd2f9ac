package dag

import "strings"

// Graph is a mutable dependency graph keyed by case-folded task name. It is
// built once by a single owner and then queried; it performs no internal
// locking, so concurrent mutation requires external coordination.
type Graph struct {
	// nodes maps the folded name to its node; order records node creation
	// order, which fixes the root iteration order of DetectCycles.
	nodes map[string]*Node
	order []*Node

	// added records every display-name string a node has been registered
	// under, for the ordinal duplicate check in Add.
	added map[string]struct{}
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		added: make(map[string]struct{}),
	}
}

// Fold maps a task name to the canonical form used for identity comparison
// and map keying. All case-insensitive name matching in the module goes
// through this one folding.
func Fold(name string) string {
	return strings.ToLower(name)
}

// Add registers a task name as a node. It fails with ErrDuplicateNode when
// the exact same string was registered before; a name that differs from an
// existing node only by case is accepted and resolves to that node, which
// keeps its original casing. Note the asymmetry: the duplicate check is
// ordinal, every other lookup in this package folds case.
func (g *Graph) Add(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if _, taken := g.added[name]; taken {
		return ErrDuplicateNode
	}
	g.added[name] = struct{}{}

	if _, ok := g.nodes[Fold(name)]; ok {
		// Case variant of an existing node; nothing new to create.
		return nil
	}
	g.register(name)
	return nil
}

// Connect wires a dependency edge: from depends on to. Hard edges gate
// execution, soft edges only order it. Endpoints missing from the graph are
// created on first sight. Connecting a name to itself fails with
// ErrReflexiveEdge regardless of casing.
func (g *Graph) Connect(from, to string, hard bool) error {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return ErrEmptyName
	}
	if Fold(from) == Fold(to) {
		return ErrReflexiveEdge
	}

	src := g.lookupOrCreate(from)
	dst := g.lookupOrCreate(to)

	if hard {
		src.strongOut = append(src.strongOut, dst)
		dst.strongIn = append(dst.strongIn, src)
	} else {
		src.weakOut = append(src.weakOut, dst)
		dst.weakIn = append(dst.weakIn, src)
	}
	return nil
}

// Exists reports whether a task with the given name is in the graph. The
// check is case-insensitive.
func (g *Graph) Exists(name string) bool {
	_, ok := g.nodes[Fold(name)]
	return ok
}

// Node returns the node registered under the given name, found
// case-insensitively.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.nodes[Fold(name)]
	return n, ok
}

// Len returns the number of distinct nodes in the graph.
func (g *Graph) Len() int {
	return len(g.order)
}

func (g *Graph) lookupOrCreate(name string) *Node {
	if n, ok := g.nodes[Fold(name)]; ok {
		return n
	}
	g.added[name] = struct{}{}
	return g.register(name)
}

func (g *Graph) register(name string) *Node {
	n := &Node{name: name}
	g.nodes[Fold(name)] = n
	g.order = append(g.order, n)
	return n
}
