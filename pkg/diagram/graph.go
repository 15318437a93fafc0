package diagram

// Graph is the full compile input: the ordered node and edge sequences of one
// diagram snapshot. A Graph is owned by a single compile invocation and is
// never shared across calls.
type Graph struct {
	Nodes []*Node
	Edges []Edge

	index map[string]*Node
}

// NewGraph creates a graph from ordered node and edge sequences.
func NewGraph(nodes []*Node, edges []Edge) *Graph {
	return &Graph{Nodes: nodes, Edges: edges}
}

// Lookup returns the node with the given id, or nil. The id index is built
// once on first use; resolution logic reads it instead of rescanning the node
// sequence per lookup.
func (g *Graph) Lookup(id string) *Node {
	if g.index == nil {
		g.index = make(map[string]*Node, len(g.Nodes))
		for _, n := range g.Nodes {
			g.index[n.ID] = n
		}
	}
	return g.index[id]
}
