package graph

import (
	"maps"
	"slices"
)

// Graph is an ordered, attributed directed multigraph.
//
// The zero value is not usable - use [New] to create a Graph.
type Graph struct {
	name      string
	opts      Options
	nodes     map[string]*Node
	nodeOrder []string
	edges     map[string]*Edge
	edgeOrder []string
	outgoing  map[string][]string // nodeID -> edge IDs
	incoming  map[string][]string // nodeID -> edge IDs
}

// New creates an empty graph.
func New(name string, opts Options) *Graph {
	return &Graph{
		name:     name,
		opts:     opts,
		nodes:    make(map[string]*Node),
		edges:    make(map[string]*Edge),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// Name returns the graph's name.
func (g *Graph) Name() string { return g.name }

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// AddNode adds a node. On a non-strict graph adding an existing ID is a no-op.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, ok := g.nodes[id]; ok {
		if g.opts.Strict {
			return ErrDuplicateNodeID
		}
		return nil
	}
	g.nodes[id] = &Node{ID: id, Attrs: Attrs{}}
	g.nodeOrder = append(g.nodeOrder, id)
	return nil
}

// SetNodeAttr sets an attribute on an existing node.
func (g *Graph) SetNodeAttr(id, key, value string) error {
	n, ok := g.nodes[id]
	if !ok {
		return ErrUnknownNode
	}
	n.Attrs[key] = value
	return nil
}

// AddEdge adds a directed edge with a unique ID. Missing endpoints are created
// when auto-create is enabled.
func (g *Graph) AddEdge(id, from, to string) error {
	if id == "" {
		return ErrInvalidEdgeID
	}
	if _, ok := g.edges[id]; ok {
		return ErrDuplicateEdgeID
	}
	if err := g.ensureEndpoint(from, ErrUnknownSourceNode); err != nil {
		return err
	}
	if err := g.ensureEndpoint(to, ErrUnknownTargetNode); err != nil {
		return err
	}
	g.edges[id] = &Edge{ID: id, From: from, To: to, Attrs: Attrs{}}
	g.edgeOrder = append(g.edgeOrder, id)
	g.outgoing[from] = append(g.outgoing[from], id)
	g.incoming[to] = append(g.incoming[to], id)
	return nil
}

func (g *Graph) ensureEndpoint(id string, missing error) error {
	if _, ok := g.nodes[id]; ok {
		return nil
	}
	if !g.opts.AutoCreate {
		return missing
	}
	return g.AddNode(id)
}

// SetEdgeAttr sets an attribute on an existing edge.
func (g *Graph) SetEdgeAttr(id, key, value string) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrUnknownEdge
	}
	e.Attrs[key] = value
	return nil
}

// RemoveEdge removes the edge with the given ID if it exists.
func (g *Graph) RemoveEdge(id string) {
	e, ok := g.edges[id]
	if !ok {
		return
	}
	delete(g.edges, id)
	g.edgeOrder = slices.DeleteFunc(g.edgeOrder, func(s string) bool { return s == id })
	g.outgoing[e.From] = slices.DeleteFunc(g.outgoing[e.From], func(s string) bool { return s == id })
	g.incoming[e.To] = slices.DeleteFunc(g.incoming[e.To], func(s string) bool { return s == id })
}

// RemoveNode removes the node and every edge incident to it.
func (g *Graph) RemoveNode(id string) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	for _, eid := range slices.Clone(g.outgoing[id]) {
		g.RemoveEdge(eid)
	}
	for _, eid := range slices.Clone(g.incoming[id]) {
		g.RemoveEdge(eid)
	}
	delete(g.nodes, id)
	delete(g.outgoing, id)
	delete(g.incoming, id)
	g.nodeOrder = slices.DeleteFunc(g.nodeOrder, func(s string) bool { return s == id })
}

// Node returns the node with the given ID.
// The returned pointer refers to the graph's node.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id string) (*Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodeOrder))
	for i, id := range g.nodeOrder {
		out[i] = g.nodes[id]
	}
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edgeOrder))
	for i, id := range g.edgeOrder {
		out[i] = g.edges[id]
	}
	return out
}

// OutEdges returns the edges leaving the node, in insertion order.
func (g *Graph) OutEdges(id string) []*Edge {
	ids := g.outgoing[id]
	out := make([]*Edge, len(ids))
	for i, eid := range ids {
		out[i] = g.edges[eid]
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// OutDegree returns the number of edges leaving the node.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// InDegree returns the number of edges entering the node.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// Equal reports whether two graphs have the same nodes, edges and attributes
// in the same order.
func (g *Graph) Equal(o *Graph) bool {
	if !slices.Equal(g.nodeOrder, o.nodeOrder) || !slices.Equal(g.edgeOrder, o.edgeOrder) {
		return false
	}
	for id, n := range g.nodes {
		if !maps.Equal(n.Attrs, o.nodes[id].Attrs) {
			return false
		}
	}
	for id, e := range g.edges {
		oe := o.edges[id]
		if e.From != oe.From || e.To != oe.To || !maps.Equal(e.Attrs, oe.Attrs) {
			return false
		}
	}
	return true
}
